package middleware

import (
	"net/http"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/models"
)

// RequireRole lets the request through only when the authenticated caller
// has role need; otherwise it answers 403 with msg. Mount after Auth.
func RequireRole(need models.Role, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				httpx.WriteErr(w, r, apperr.Unauthorized("Not authenticated"))
				return
			}
			if user.Role != need {
				httpx.WriteErr(w, r, apperr.Forbidden(msg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
