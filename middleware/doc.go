// Package middleware provides HTTP middleware for the generic router.
//
// Every middleware is a generic handler.Middleware with a default constructor
// and a WithConfig variant:
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
//			Logger:         log,
//			LogRequestBody: debug,
//		}),
//		middleware.CORSWithConfig[*router.Context](middleware.CORSConfig{
//			AllowOrigins:     origins,
//			AllowCredentials: true,
//		}),
//	)
//
// RequestID stores the ID in the request context; GetRequestID reads it back
// and RequestIDExtractor attaches it to every log record written with that
// context.
//
// Logging writes one record per request with the final status, size and
// duration. Handler errors are logged with the status the error handler will
// render; set ErrorMapper when that handler translates errors before writing
// them.
//
// CORS answers preflight requests itself (204, or 403 for a disallowed origin
// or method) and decorates other responses. Credentials are never allowed
// together with a wildcard origin.
package middleware
