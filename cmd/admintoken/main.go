// Command admintoken generates the permanent admin-access token for the
// landing page editor. Run it once after setting JWT_SECRET in .env and
// put the printed token into the admin URL. Operator-only: this is never
// reachable over the network.
package main

import (
	"fmt"
	"os"

	"github.com/manptz/realty-landing/internal/auth"
	appconfig "github.com/manptz/realty-landing/internal/config"
)

func main() {
	cfg := appconfig.Load()

	if cfg.JWTSecret == appconfig.DefaultJWTSecret {
		fmt.Println("JWT_SECRET не задан — используем секрет для разработки (change-me-in-production).")
		fmt.Println("В production задайте в .env: JWT_SECRET=ваша-длинная-случайная-строка")
		fmt.Println()
	}

	token, err := auth.NewGate(cfg.JWTSecret).Issue()
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось создать токен: %v\n", err)
		os.Exit(1)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		base = "https://ваш-домен-или-ip"
	}

	fmt.Println("Токен для входа в админку (подставьте в URL вместо <токен>):")
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Printf("Ссылка для входа: %s/%s/admin\n", base, token)
}
