package server

import "errors"

var (
	// ErrMissingAddress is returned when neither host nor port can form an address.
	ErrMissingAddress = errors.New("server address is required")

	// ErrInvalidPort is returned for ports outside 0..65535.
	ErrInvalidPort = errors.New("invalid server port")

	// ErrFailedLoadCert is returned when the configured TLS pair cannot be loaded.
	ErrFailedLoadCert = errors.New("failed to load certificate")

	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrHTTPServer           = errors.New("HTTP server error")
	ErrHTTPShutdown         = errors.New("HTTP shutdown error")
)
