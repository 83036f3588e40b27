package server

import "time"

const (
	// DefaultHost is the interface the server binds to when none is configured.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the TCP port the server listens on when none is configured.
	DefaultPort = 8000

	// DefaultReadTimeout is the default timeout for reading the request.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default timeout for writing the response.
	// Embedding backends can be slow, so it is longer than the read timeout.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the default timeout for idle connections.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes is the default maximum size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
