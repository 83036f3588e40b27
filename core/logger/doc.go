// Package logger builds slog loggers and provides attribute helpers for
// consistent structured logging.
//
//	log := logger.New(
//		logger.WithDevelopment("aiservice"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor()),
//	)
//
//	log.InfoContext(ctx, "embedding backend selected",
//		logger.Component("embedding"),
//		logger.Provider("fake"),
//		logger.Dimensions(64),
//	)
//
// Development loggers write debug-level text; production loggers write
// info-level JSON. ParseLevel maps names such as "INFO" or "warning" to
// slog levels.
package logger
