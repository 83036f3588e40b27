// Command aiservice serves text embeddings and cosine-similarity ranking over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/aiservice/core/config"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	log.Info("starting application",
		logger.Component("app"),
		logger.Key("env", cfg.Env),
		logger.Provider(cfg.Embedding.Provider),
	)

	h, err := newHandler(cfg, log)
	if err != nil {
		log.Error("Failed to configure embedding backend", logger.Component("embedding"), logger.Error(err))
		os.Exit(1)
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, h))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
