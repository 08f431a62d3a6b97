package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/farm-market/internal/apperr"
)

// APIError is the error body. Detail repeats Error for clients that read
// the "detail" key.
type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Detail  string      `json:"detail"`
	Details interface{} `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Detail:  msg,
		Details: details,
	})
}

// WriteErr maps err onto its status code. Internal errors are logged and
// their cause withheld from the caller.
func WriteErr(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "err", err)
	}
	WriteError(w, e.Status(), string(e.Kind), e.Msg, e.Details)
}

func WriteMessage(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
