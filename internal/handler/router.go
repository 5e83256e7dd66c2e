package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterOptions carries the cross-cutting pieces of the router.
type RouterOptions struct {
	Logger      *slog.Logger
	CORSOrigins []string
	Limiter     *RateLimiter
	Metrics     http.Handler
}

// Routes builds the chi router for the portal.
func Routes(h *EventHandler, opts RouterOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(opts.Logger))
	r.Use(CORS(opts.CORSOrigins))

	limit := func(next http.Handler) http.Handler { return next }
	if opts.Limiter != nil {
		limit = opts.Limiter.Middleware
	}

	r.Get("/health", HealthCheck)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	// Page
	r.Get("/", h.Index)
	r.Get("/events", h.Filter)
	r.Post("/events/{id}/register", h.Register)
	r.With(limit).Post("/register", h.Submit)

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/events", h.ListEvents)
		r.Get("/events/selectable", h.ListSelectable)
		r.Post("/events/{id}/register", h.RegisterAPI)
		r.With(limit).Post("/registrations", h.SubmitAPI)
	})

	return r
}
