package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adspark-ai-wizard/internal/config/configs"
	"adspark-ai-wizard/internal/core/port"
)

// Services are the inbound ports served over HTTP. Scraping has no business
// logic of its own, so the scraper port is used directly.
type Services struct {
	Generate  port.GenerateUseCase
	Drafts    port.DraftUseCase
	Campaigns port.CampaignUseCase
	Reports   port.ReportUseCase
	Scraper   port.Scraper
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router under /api/v1.
type Handler struct {
	svc      Services
	cfg      configs.HTTP
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, cfg configs.HTTP, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.observe)
	r.Use(h.recoverer)
	r.Use(corsHandler(cfg.AllowedOrigin))

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}
		r.Post("/campaigns/generate", h.handleGenerate)
		r.Post("/scrape", h.handleScrape)

		r.Route("/google-ads", func(r chi.Router) {
			r.Get("/auth-url", h.handleAuthURL)
			r.Post("/oauth/exchange", h.handleExchange)
			r.Post("/report", h.handleReport)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Post("/campaigns", h.handleSaveCampaign)
			r.Get("/campaigns", h.handleListCampaigns)

			r.Get("/drafts", h.handleListDrafts)
			r.Post("/drafts", h.handleCreateDraft)
			r.Put("/drafts/{id}", h.handleUpdateDraft)
			r.Delete("/drafts/{id}", h.handleDeleteDraft)
		})
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

