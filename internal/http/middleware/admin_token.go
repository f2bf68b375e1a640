package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manptz/realty-landing/internal/auth"
)

// AdminToken gates admin routes on the bearer token carried in the URL
// path ({token} route parameter). The admin page is reached by a
// semi-permanent private link, so the token rides in the path rather
// than a header. Invalid and missing tokens are indistinguishable to the
// caller.
func AdminToken(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "token")
			if !gate.Verify(token) {
				http.Error(w, "Доступ запрещён", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
