package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/baechuer/event-rest-api/internal/config"
	"github.com/baechuer/event-rest-api/internal/metrics"
	"github.com/baechuer/event-rest-api/internal/transport/http/handlers"
	appmw "github.com/baechuer/event-rest-api/internal/transport/http/middleware"
)

func New(
	h *handlers.EventsHandler,
	idx *handlers.IndexHandler,
	z *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)
	r.Use(appmw.Metrics)

	r.Get("/healthz", z.Healthz)
	r.Get("/readyz", z.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RLEnabled {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}

		r.Get("/", idx.Index)
		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
		})
	})

	return r
}
