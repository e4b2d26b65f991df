package http

import (
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
)

type Handler struct {
	info   InfoSource
	images ImageSource
	signer *utils.Signer
	ids    utils.IDGenerator

	logger *logger.Logger
}

// NewHandler creates the channel handler. An empty hashKey disables body
// signature checks.
func NewHandler(info InfoSource, images ImageSource, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		info:   info,
		images: images,
		signer: utils.NewSigner(hashKey),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}
