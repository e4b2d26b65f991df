// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the companion app that produces
// glucose readings.
//
// The primary abstraction is [CompanionAdapter], which decouples the sync
// engine from the underlying protocol. Requests go over HTTP/JSON with resty;
// the connectivity probe is either an HTTP ping or a gRPC health check.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrDisconnected], [ErrTimeout],
// [ErrApplication]).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CompanionAdapter is the request/response channel to the companion app.
type CompanionAdapter interface {
	// GetInfo requests the current reading. The returned payload is the raw
	// JSON document produced by the companion. An embedded error marker is
	// returned as [ErrApplication].
	GetInfo(ctx context.Context, params string) (string, error)

	// GetImg requests an image by path and returns its decoded bytes.
	GetImg(ctx context.Context, path string) ([]byte, error)

	// Connected reports whether the companion is reachable right now.
	Connected(ctx context.Context) bool

	// Close releases the underlying connections.
	Close() error
}

// ConnectivityProbe reports companion reachability.
type ConnectivityProbe interface {
	Connected(ctx context.Context) bool
	Close() error
}
