package httpadapter

import (
	"encoding/json"
	"net/http"

	"campaign-insights/internal/core/domain"
)

// handleDashboard returns the summary and anomaly flags for the stored
// campaigns matching the `platform`, `from` and `to` query parameters.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.svc.Dashboard(r.Context(), filter)
	if err != nil {
		h.writeError(w, "dashboard", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type analyzeReq struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// handleAnalyze runs the dashboard analysis on the campaigns in the request
// body. Nothing is read from or written to storage.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Analyze(req.Campaigns))
}
