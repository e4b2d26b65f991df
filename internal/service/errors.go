// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrParse = errors.New("malformed payload")

	ErrMissingReading = errors.New("payload has no bg section")
	ErrMissingStatus  = errors.New("payload has no status section")

	ErrUnknownToggle    = errors.New("unknown settings toggle")
	ErrUpdatesDisabled  = errors.New("data updates are disabled")
	ErrEngineNotStarted = errors.New("sync engine is not running")
)
