// Package http implements the HTTP side of the companion simulator.
//
// It exposes the channel endpoint (/api/request) and the reachability ping
// (/api/ping). Request tracing, access logging and body signature checks
// are handled by middleware before a request reaches the channel handler.
package http
