package main

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/aiservice/api"
	"github.com/dmitrymomot/aiservice/core/embedding"
	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/router"
	"github.com/dmitrymomot/aiservice/core/similarity"
	"github.com/dmitrymomot/aiservice/middleware"
)

type Context = *router.Context

// newHandler selects the embedding backend and builds the HTTP handler.
func newHandler(cfg Config, log *slog.Logger) (http.Handler, error) {
	vec, err := embedding.NewVectorizerWithFallback(cfg.Embedding, log)
	if err != nil {
		return nil, err
	}

	svc := embedding.New(vec, embedding.WithLogger(log))
	ranker := similarity.NewRanker(svc)

	r := router.New[Context](
		router.WithErrorHandler(api.ErrorHandler[Context]),
		router.WithLogger[Context](log),
		router.WithStripSlashes[Context](),
		router.WithMiddleware(
			middleware.RequestIDWithConfig[Context](middleware.RequestIDConfig{UseExisting: true}),
			middleware.LoggingWithConfig[Context](middleware.LoggingConfig{
				Logger:         log,
				LogRequestBody: cfg.Debug,
				ErrorMapper:    api.ToHTTPError,
				Skip: func(ctx handler.Context) bool {
					return ctx.Request().URL.Path == "/health/live"
				},
			}),
			middleware.CORSWithConfig[Context](middleware.CORSConfig{
				AllowOrigins:     cfg.CORSOrigins,
				AllowCredentials: true,
				AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				ExposeHeaders:    []string{middleware.RequestIDHeader},
			}),
		),
	)

	api.New[Context](svc, ranker,
		api.WithLogger[Context](log),
		api.WithServiceInfo[Context](cfg.AppName, cfg.AppVersion),
		api.WithMaxItems[Context](cfg.Embedding.MaxBatchSize),
		api.WithMaxBodySize[Context](cfg.MaxBodySize),
	).Register(r)

	log.Info("http handler ready",
		logger.Component("app"),
		logger.Dimensions(svc.Dimensions()),
		logger.Count("routes", len(r.Routes())),
	)

	return r, nil
}
