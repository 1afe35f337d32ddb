package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

// Pinger reports whether the table store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the inbound ports the handler dispatches to.
type Services struct {
	Campaigns    port.CampaignUseCase
	Admin        port.AdminUseCase
	Partners     port.PartnerUseCase
	Registration port.RegistrationUseCase
	Statistics   port.StatisticsUseCase
	Auth         port.AuthProvider
	Store        Pinger
}

// Options tune the HTTP surface.
type Options struct {
	APIKey         string
	RequestTimeout time.Duration
	MaxUploadBytes int64
	// LogoDir is served read-only under LogoBasePath.
	LogoDir      string
	LogoBasePath string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: every route decodes its input, calls one service operation and
// encodes the result or the error envelope.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(recordMetrics)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	if opts.LogoDir != "" && opts.LogoBasePath != "" {
		base := "/" + trimSlashes(opts.LogoBasePath)
		r.With(logoHeaders).Handle(base+"/*", http.StripPrefix(base+"/", http.FileServer(http.Dir(opts.LogoDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}
		r.Use(h.requireAPIKey)

		r.Post("/auth/signin", h.handleSignIn)
		// Accounts are only created by the registration forms, which gate on
		// the postal code and insert the client or partner row.
		r.Post("/register/client", h.handleRegisterClient)
		r.Post("/register/partner", h.handleRegisterPartner)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/quotes/price", h.handlePriceQuote)
		r.Post("/quotes/steps/{step}", h.handleValidateStep)
		r.Get("/partners/nearby", h.handleNearbyPartners)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Post("/auth/signout", h.handleSignOut)
			r.Get("/auth/session", h.handleSession)

			r.Route("/client", func(r chi.Router) {
				r.Use(requireRole(domain.UserTypeClient))
				r.Get("/dashboard", h.handleClientDashboard)
				r.Post("/campaigns", h.handleSubmitCampaign)
				r.Post("/logos", h.handleUploadLogo)
			})
			r.Route("/partner", func(r chi.Router) {
				r.Use(requireRole(domain.UserTypePartner))
				r.Get("/dashboard", h.handlePartnerDashboard)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(requireRole(domain.UserTypeAdmin))
				r.Get("/overview", h.handleAdminOverview)
				r.Patch("/campaigns/{id}/status", h.handleCampaignStatus)
				r.Patch("/clients/{id}/status", h.handleClientStatus)
				r.Patch("/partners/{id}/status", h.handlePartnerStatus)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.svc.Store != nil {
		if err := h.svc.Store.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
