// Package grpc exposes the companion's gRPC health service used by the
// watch's connectivity probe.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

// Handler owns the health status of the companion service.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler returns a handler reporting the companion as serving.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus(adapter.HealthService, healthpb.HealthCheckResponse_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing switches the reported companion status. A companion that is
// not serving looks disconnected to the watch.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(adapter.HealthService, status)
	h.logger.Info().Bool("serving", serving).Msg("companion health status changed")
}

// Shutdown marks every service as not serving.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
