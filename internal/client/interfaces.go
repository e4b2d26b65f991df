// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-drip-watch/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run serves the configured page and blocks until it is done.
	Run(ctx context.Context) error
	// Close releases the store and the companion channel.
	Close() error
}

// screen is a display the App drives for one page. Run blocks until the
// user leaves or ctx is cancelled.
type screen interface {
	service.Display
	Run(ctx context.Context) error
}
