package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/response"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Readiness runs every check and answers "READY", or 503 on the first failure.
//
//	r.Get("/health/ready", health.Readiness[*router.Context](log, embeddingService.Ready))
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
