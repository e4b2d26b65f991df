// Package handler groups the transport handlers of the companion simulator.
package handler

import (
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/handler/grpc"
	"github.com/MKhiriev/go-drip-watch/internal/handler/http"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(info http.InfoSource, images http.ImageSource, cfg *config.CompanionConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(info, images, cfg.HashKey, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}
	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}
	return handlers, nil
}
