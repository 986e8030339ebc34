package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"rift-rewind/internal/middleware"
)

// NewRouter wires the HTTP surface. SSE endpoints sit behind the same
// middleware chain; the Prometheus recorder passes Flush through.
func NewRouter(h *Handler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.Prometheus)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}).Handler)

	r.Get("/health", h.health)
	r.Get("/ready", h.ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/accounts/{platform}/{name}/{tag}", h.getAccount)

		r.Route("/summoners/{platform}/{puuid}", func(r chi.Router) {
			r.Get("/", h.getSummoner)
			r.Get("/ranks", h.getRanks)
			r.Get("/matches", h.getMatchIDs)
		})

		r.Route("/matches/{platform}/{id}", func(r chi.Router) {
			r.Get("/", h.getMatch)
			r.Get("/timeline", h.getTimeline)
		})

		r.Get("/static/{platform}", h.getStatic)

		r.Route("/rewinds", func(r chi.Router) {
			r.Get("/stats", h.getGlobalStats)
			r.Route("/{platform}/{puuid}", func(r chi.Router) {
				r.Get("/", h.getRewind)
				r.Get("/generate", h.generateRewind)
				r.Put("/showcase", h.putShowcase)
			})
		})
	})

	return r
}
