package server

// Server is one listener of the companion simulator: the data channel over
// HTTP or the gRPC health endpoint the watch probes for connectivity.
type Server interface {
	// RunServer serves until the listener is closed.
	RunServer()
	// Shutdown stops accepting requests and drains in-flight ones.
	Shutdown()
}
