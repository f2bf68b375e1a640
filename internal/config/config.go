package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the compiled-in development secret. Running with it
// keeps the service usable but must be surfaced as a warning at startup.
const DefaultJWTSecret = "change-me-in-production"

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	StaticDir string
	DataDir   string

	JWTSecret string

	TelegramBotToken    string
	TelegramAPIBaseURL  string
	TelegramSendTimeout time.Duration
	TelegramPollTimeout time.Duration
	TelegramPollBackoff time.Duration

	RateLimitWindow        time.Duration
	RateLimitMaxAttempts   int
	RateLimitMaxIdentities int

	CORSAllowedOrigins string
}

// Load reads configuration from a .env file (if present) and the
// environment. Real environment variables win over .env entries.
func Load() *Config {
	// Best effort: absence of .env is the normal production case.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		StaticDir: getEnv("STATIC_DIR", "static"),
		DataDir:   getEnv("DATA_DIR", "data"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),

		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIBaseURL:  getEnv("TELEGRAM_API_BASE_URL", ""),
		TelegramSendTimeout: getEnvAsDuration("TELEGRAM_SEND_TIMEOUT", 10*time.Second),
		TelegramPollTimeout: getEnvAsDuration("TELEGRAM_POLL_TIMEOUT", 30*time.Second),
		TelegramPollBackoff: getEnvAsDuration("TELEGRAM_POLL_BACKOFF", 2*time.Second),

		RateLimitWindow:        getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMaxAttempts:   getEnvAsInt("RATE_LIMIT_MAX_ATTEMPTS", 5),
		RateLimitMaxIdentities: getEnvAsInt("RATE_LIMIT_MAX_IDENTITIES", 10000),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
