package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-insights/internal/core/port"
)

type errorResp struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResp{Error: msg})
}

// writeError maps use case errors to HTTP statuses. Unexpected errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrInvalidFile):
		h.writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrUnsupportedFormat),
		errors.Is(err, port.ErrEmptyReport),
		errors.Is(err, port.ErrInvalidCampaign):
		h.writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
