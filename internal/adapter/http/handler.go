package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"campaign-insights/internal/core/port"
)

// defaultMaxUploadBytes caps a multipart upload when Options leaves it unset.
const defaultMaxUploadBytes = 32 << 20

// Options tunes the HTTP adapter.
type Options struct {
	// MaxUploadBytes caps the size of one multipart upload request.
	MaxUploadBytes int64
	// AllowedOrigins are the CORS origins allowed to call the API.
	AllowedOrigins []string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, calls the CampaignUseCase and writes raw JSON
// numbers back. Formatting is left to the dashboard front-end.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	opts   Options
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	h := &Handler{svc: svc, logger: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports/parse", h.handleParseReports)
		r.Post("/reports", h.handleImportReports)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/dashboard", h.handleDashboard)
		r.Post("/analyze", h.handleAnalyze)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
