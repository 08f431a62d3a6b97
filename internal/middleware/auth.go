package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/models"
)

type userKey struct{}

// UserFrom returns the authenticated caller stored by AuthMiddleware.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}

func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserResolver maps a bearer token to the stored user it was issued for.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (models.User, error)
}

type AuthMiddleware struct {
	users UserResolver
}

func NewAuthMiddleware(users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Auth requires "Authorization: Bearer <token>" naming an existing user.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			httpx.WriteErr(w, r, apperr.Unauthorized("Not authenticated"))
			return
		}

		user, err := m.users.Resolve(r.Context(), token)
		if err != nil {
			httpx.WriteErr(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
