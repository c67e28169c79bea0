package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campaign-insights/internal/core/port"
)

// handleListCampaigns returns stored campaigns. It accepts optional
// `platform`, `from` and `to` query parameters; timestamps are RFC3339 or
// plain dates, and a plain `to` date includes the whole day. Invalid
// parameters result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign by its {id}, or 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

type filterError string

func (e filterError) Error() string { return string(e) }

func parseFilter(r *http.Request) (port.CampaignFilter, error) {
	var (
		q      = r.URL.Query()
		filter = port.CampaignFilter{Platform: q.Get("platform")}
		err    error
	)
	if v := q.Get("from"); v != "" {
		if filter.From, err = parseTimeParam(v, false); err != nil {
			return filter, filterError("invalid 'from' timestamp")
		}
	}
	if v := q.Get("to"); v != "" {
		if filter.To, err = parseTimeParam(v, true); err != nil {
			return filter, filterError("invalid 'to' timestamp")
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return filter, filterError("'to' is before 'from'")
	}
	return filter, nil
}

// parseTimeParam reads an RFC3339 timestamp or a date. With endOfDay a
// date resolves to its last microsecond, the finest precision Postgres
// stores, so an inclusive upper bound keeps sends from later that day.
func parseTimeParam(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil || !endOfDay {
		return t, err
	}
	return t.AddDate(0, 0, 1).Add(-time.Microsecond), nil
}
