package handlers

import (
	"net/http"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/api/validate"
	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/baharkarakas/farm-market/internal/services"
	"github.com/go-chi/chi/v5"
)

type CropHandler struct {
	crops *services.CropService
}

func NewCropHandler(crops *services.CropService) *CropHandler {
	return &CropHandler{crops: crops}
}

// List serves GET /crops?crop_type=&location=.
func (h *CropHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := storeCtx(r)
	defer cancel()

	crops, err := h.crops.List(ctx, q.Get("crop_type"), q.Get("location"))
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crops)
}

func (h *CropHandler) Create(w http.ResponseWriter, r *http.Request) {
	farmer, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.CropCreate
	if err := validate.DecodeJSON(r, &req); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	crop, err := h.crops.Create(ctx, farmer, req)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crop)
}

func (h *CropHandler) Mine(w http.ResponseWriter, r *http.Request) {
	farmer, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	crops, err := h.crops.Mine(ctx, farmer)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crops)
}

func (h *CropHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	if err := h.crops.Delete(ctx, u, chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteMessage(w, "Crop deleted successfully")
}

// UpdateStatus serves PUT /crops/{id}/status?status=.
func (h *CropHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	u, ok := caller(w, r)
	if !ok {
		return
	}
	status := r.URL.Query().Get("status")
	if fe := validate.Required("status", status); fe != nil {
		httpx.WriteErr(w, r, apperr.Validation("status: required", validate.Errs{*fe}))
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	if err := h.crops.UpdateStatus(ctx, u, chi.URLParam(r, "id"), status); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteMessage(w, "Status updated successfully")
}
