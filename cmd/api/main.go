package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/manptz/realty-landing/internal/api/router"
	"github.com/manptz/realty-landing/internal/auth"
	appconfig "github.com/manptz/realty-landing/internal/config"
	"github.com/manptz/realty-landing/internal/content"
	"github.com/manptz/realty-landing/internal/http/handlers"
	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/internal/ratelimit"
	"github.com/manptz/realty-landing/internal/telegram"
	"github.com/manptz/realty-landing/internal/uploads"
	"github.com/manptz/realty-landing/pkg/logging"
)

func main() {
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting realty-landing API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.JWTSecret == appconfig.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is the compiled-in default; admin access is NOT secure. Set JWT_SECRET in .env for production")
	}

	registry := prometheus.NewRegistry()
	siteMetrics := metrics.NewSiteMetrics(registry)

	gate := auth.NewGate(cfg.JWTSecret)
	limiter := ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMaxAttempts, cfg.RateLimitMaxIdentities)
	contentStore := content.NewStore(filepath.Join(cfg.DataDir, "site_content.json"))
	chatStore := telegram.NewChatStore(filepath.Join(cfg.DataDir, ".telegram_chat_id"))
	imageSaver := uploads.NewSaver(cfg.StaticDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var dispatcher handlers.LeadDispatcher
	if cfg.TelegramBotToken != "" {
		botClient, err := telegram.New(telegram.Config{
			Token:       cfg.TelegramBotToken,
			BaseURL:     cfg.TelegramAPIBaseURL,
			SendTimeout: cfg.TelegramSendTimeout,
			PollTimeout: cfg.TelegramPollTimeout,
			Logger:      logger,
		})
		if err != nil {
			logger.Error("failed to build telegram client", "error", err)
			os.Exit(1)
		}
		dispatcher = telegram.NewDispatcher(botClient, chatStore, siteMetrics, logger)

		poller := telegram.NewPoller(botClient, chatStore, cfg.TelegramPollBackoff, siteMetrics, logger)
		go poller.Run(ctx)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN is empty; leads will not be relayed")
		dispatcher = noopDispatcher{logger: logger}
	}

	r := router.New(&router.Config{
		Logger:             logger,
		SiteHandler:        handlers.NewSiteHandler(contentStore, cfg.StaticDir, logger),
		LeadHandler:        handlers.NewLeadHandler(dispatcher, siteMetrics, logger),
		AdminHandler:       handlers.NewAdminHandler(contentStore, imageSaver, siteMetrics, logger),
		Gate:               gate,
		Limiter:            limiter,
		Metrics:            siteMetrics,
		StaticDir:          cfg.StaticDir,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: splitOrigins(cfg.CORSAllowedOrigins),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	cancel() // stops the handshake listener

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

// noopDispatcher keeps the site serving when no bot token is configured;
// every lead submission reports the relay failure to the visitor.
type noopDispatcher struct {
	logger *logging.Logger
}

func (d noopDispatcher) Dispatch(_ context.Context, lead telegram.Lead) bool {
	d.logger.Warn("lead dropped: telegram relay not configured", "name", lead.Name)
	return false
}
