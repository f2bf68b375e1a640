package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manptz/realty-landing/internal/content"
	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/internal/uploads"
	"github.com/manptz/realty-landing/pkg/logging"
)

const saveFailedMessage = "Не удалось сохранить изменения"

// AdminHandler serves the token-gated content editor endpoints. The gate
// itself lives in middleware; by the time these run the caller is admin.
type AdminHandler struct {
	store   *content.Store
	saver   *uploads.Saver
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(store *content.Store, saver *uploads.Saver, m *metrics.SiteMetrics, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{store: store, saver: saver, metrics: m, logger: logger}
}

// GetPage handles GET /{token}/admin: the full editable document.
func (h *AdminHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"content": h.store.Load(),
	})
}

// SavePage handles POST /{token}/admin/save. The body is a flat
// string-to-string object; keys outside the default set are silently
// dropped.
func (h *AdminHandler) SavePage(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "Нет данных")
		return
	}
	if err := h.store.Save(updates); err != nil {
		h.logger.Error("content save failed", "error", err)
		h.metrics.ObserveContentSave("failed")
		writeError(w, http.StatusInternalServerError, saveFailedMessage)
		return
	}
	h.metrics.ObserveContentSave("ok")
	h.logger.Info("content saved", "keys", len(updates))
	writeOK(w)
}

// UploadImage handles POST /{token}/admin/upload: a multipart form with
// a "slot" field and a "file" part. On success the slot's content key is
// updated to the stored filename.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploads.MaxSizeBytes + 1<<20); err != nil {
		writeError(w, http.StatusBadRequest, "Нет данных")
		return
	}
	slot := r.FormValue("slot")
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Файл не выбран")
		return
	}
	defer file.Close()

	filename, err := h.saver.Save(slot, header.Filename, file)
	if err != nil {
		var uploadErr *uploads.Error
		if errors.As(err, &uploadErr) {
			writeError(w, http.StatusBadRequest, uploadErr.Reason)
			return
		}
		h.logger.Error("image upload failed", "error", err, "slot", slot)
		writeError(w, http.StatusInternalServerError, saveFailedMessage)
		return
	}

	key, _ := uploads.ContentKey(slot)
	if err := h.store.Save(map[string]string{key: filename}); err != nil {
		h.logger.Error("content update after upload failed", "error", err, "slot", slot)
		h.metrics.ObserveContentSave("failed")
		writeError(w, http.StatusInternalServerError, saveFailedMessage)
		return
	}
	h.metrics.ObserveContentSave("ok")
	h.logger.Info("image uploaded", "slot", slot, "filename", filename)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "filename": filename})
}
