package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/manptz/realty-landing/internal/content"
	"github.com/manptz/realty-landing/pkg/logging"
)

// SiteHandler serves the public page surface: the landing page itself and
// the merged content document the page's scripts read.
type SiteHandler struct {
	store     *content.Store
	staticDir string
	logger    *logging.Logger
}

// NewSiteHandler creates a site handler.
func NewSiteHandler(store *content.Store, staticDir string, logger *logging.Logger) *SiteHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SiteHandler{store: store, staticDir: staticDir, logger: logger}
}

// Index serves the landing page.
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// Content handles GET /api/content.
func (h *SiteHandler) Content(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"content": h.store.Load(),
	})
}

// HealthCheck reports liveness.
func (h *SiteHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
