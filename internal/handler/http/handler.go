package http

import (
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/MKhiriev/go-list-sync/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header; nil disables the check.
	hasher *utils.Hasher

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		registry: prometheus.NewRegistry(),
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}
	h.registerMetrics()

	return h
}
