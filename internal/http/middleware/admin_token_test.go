package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/manptz/realty-landing/internal/auth"
)

func adminTestRouter(t *testing.T, gate *auth.Gate) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.With(AdminToken(gate)).Get("/{token}/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestAdminTokenValid(t *testing.T) {
	gate := auth.NewGate("secret")
	token, err := gate.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	adminTestRouter(t, gate).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+token+"/admin", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAdminTokenInvalid(t *testing.T) {
	gate := auth.NewGate("secret")

	rec := httptest.NewRecorder()
	adminTestRouter(t, gate).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/garbage/admin", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestAdminTokenWrongSecret(t *testing.T) {
	token, err := auth.NewGate("other").Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	adminTestRouter(t, auth.NewGate("secret")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+token+"/admin", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}
