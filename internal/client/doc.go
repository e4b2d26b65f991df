// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the watch app runtime.
//
// One process run serves one entry page: the foreground view, a single
// update, a settings toggle or the wake daemon. The App wires the durable
// store, the companion channel, the sync engine and a display for the
// selected page and tears them down when the page is done.
package client
