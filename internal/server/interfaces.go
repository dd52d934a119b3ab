package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives or Shutdown is called, and
// returns only after in-flight requests and background workers are done.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown asks a running server to stop.
	Shutdown()
}
