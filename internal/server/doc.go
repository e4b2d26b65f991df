// Package server wires and runs the transport servers of the companion
// simulator.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
package server
