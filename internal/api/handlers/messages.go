package handlers

import (
	"net/http"

	"github.com/baharkarakas/farm-market/internal/api/httpx"
	"github.com/baharkarakas/farm-market/internal/api/validate"
	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/baharkarakas/farm-market/internal/services"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	buyer, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.MessageCreate
	if err := validate.DecodeJSON(r, &req); err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	msg, err := h.messages.Send(ctx, buyer, req)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) Received(w http.ResponseWriter, r *http.Request) {
	farmer, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := storeCtx(r)
	defer cancel()

	msgs, err := h.messages.Received(ctx, farmer)
	if err != nil {
		httpx.WriteErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}
