package http

import (
	"context"

	"github.com/MKhiriev/go-drip-watch/models"
)

// InfoSource answers get_info.
type InfoSource interface {
	Info(ctx context.Context, params string) (models.InfoPayload, error)
}

// ImageSource answers get_img.
type ImageSource interface {
	Image(ctx context.Context, path string) ([]byte, error)
}
