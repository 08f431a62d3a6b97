package handlers

import (
	"net/http"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/api/validate"
	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/baharkarakas/farm-market/internal/services"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	resp, err := h.users.Register(ctx, req)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	resp, err := h.users.Login(ctx, req)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
