// Package router wires the HTTP surface: the public landing endpoints,
// the lead-capture API and the token-gated admin routes.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/manptz/realty-landing/internal/auth"
	"github.com/manptz/realty-landing/internal/http/handlers"
	httpmiddleware "github.com/manptz/realty-landing/internal/http/middleware"
	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/internal/ratelimit"
	"github.com/manptz/realty-landing/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger       *logging.Logger
	SiteHandler  *handlers.SiteHandler
	LeadHandler  *handlers.LeadHandler
	AdminHandler *handlers.AdminHandler

	Gate    *auth.Gate
	Limiter *ratelimit.Limiter
	Metrics *metrics.SiteMetrics

	StaticDir          string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.SiteHandler.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Get("/", cfg.SiteHandler.Index)
	if cfg.StaticDir != "" {
		serveStatic(r, cfg.StaticDir)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/content", cfg.SiteHandler.Content)
		api.With(httpmiddleware.RateLimit(cfg.Limiter, cfg.Metrics)).
			Post("/send-lead", cfg.LeadHandler.SendLead)
	})

	// Admin access rides on the token in the URL path.
	r.Route("/{token}", func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminToken(cfg.Gate))
		admin.Get("/admin", cfg.AdminHandler.GetPage)
		admin.Post("/admin/save", cfg.AdminHandler.SavePage)
		admin.Post("/admin/upload", cfg.AdminHandler.UploadImage)
	})

	return r
}

func serveStatic(r chi.Router, staticDir string) {
	root, err := filepath.Abs(staticDir)
	if err != nil {
		root = staticDir
	}
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(root)))
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		// Directory listings stay off.
		if strings.HasSuffix(req.URL.Path, "/") {
			http.NotFound(w, req)
			return
		}
		if _, err := os.Stat(root); err != nil {
			http.NotFound(w, req)
			return
		}
		fs.ServeHTTP(w, req)
	})
}
