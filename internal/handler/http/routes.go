package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Get("/api/entities", h.getAllEntities)
	router.Get("/api/entities/search", h.searchEntities)
	router.Get("/api/entities/{id}", h.getEntityByID)
	router.With(h.withHashCheck).Post("/api/entities", h.upsertEntity)

	router.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{DisableCompression: true}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
