// Package server wraps http.Server with graceful shutdown and environment
// driven configuration.
//
// The server binds to HOST:PORT (127.0.0.1:8000 by default). Timeouts and an
// optional TLS key pair come from SERVER_* variables:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run blocks until the context is canceled, then shuts the server down within
// the configured shutdown timeout. A listen failure is returned immediately.
package server
