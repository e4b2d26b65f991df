// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the companion config enables
// neither the HTTP channel nor the gRPC health endpoint.
var errNoServersAreCreated = errors.New("no companion servers are created")
