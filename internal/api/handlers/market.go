package handlers

import (
	"net/http"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/services"
)

type MarketHandler struct {
	prices *services.MarketService
}

func NewMarketHandler(prices *services.MarketService) *MarketHandler {
	return &MarketHandler{prices: prices}
}

func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeCtx(r)
	defer cancel()

	prices, err := h.prices.List(ctx)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, prices)
}

func (h *MarketHandler) Init(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeCtx(r)
	defer cancel()

	created, err := h.prices.Init(ctx)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	if !created {
		httpx.WriteMessage(w, "Market prices already initialized")
		return
	}
	httpx.WriteMessage(w, "Market prices initialized")
}
