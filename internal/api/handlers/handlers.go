// Package handlers adapts HTTP requests to the marketplace services.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/middleware"
	"github.com/baharkarakas/farm-market/internal/models"
)

// storeTimeout bounds the store work done on behalf of one request.
const storeTimeout = 5 * time.Second

func storeCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), storeTimeout)
}

// caller returns the authenticated user. The route must be behind Auth.
func caller(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.WriteErr(w, r, apperr.Unauthorized("Not authenticated"))
	}
	return u, ok
}
