package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/response"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogRequestBody logs the head of every request body at LogLevel.
	LogRequestBody bool

	// MaxBodyLogSize is the maximum size of body to log in bytes (default: 4KB)
	MaxBodyLogSize int

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string

	// ErrorMapper translates handler errors the same way the router's error
	// handler does, so the logged status matches the rendered one.
	// Defaults to passing the error through.
	ErrorMapper func(error) error
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
// One record is written per request after the response is produced. Errors
// returned by the handler are logged with the status the error handler will
// render, then passed on unchanged.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxBodyLogSize <= 0 {
		cfg.MaxBodyLogSize = 4 * 1024
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}
	if cfg.ErrorMapper == nil {
		cfg.ErrorMapper = func(err error) error { return err }
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			if cfg.LogRequestBody && req.Body != nil {
				logRequestBody(cfg, req)
			}

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := resp(wrapped, r)
				duration := time.Since(start)

				status := wrapped.statusCode
				if err != nil && !wrapped.headerWritten {
					status = response.ToHTTPError(cfg.ErrorMapper(err)).Status
				}

				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(status),
					logger.BytesOut(int64(wrapped.size)),
					logger.Duration(duration),
					logger.RemoteAddr(r.RemoteAddr),
				}
				if r.URL.RawQuery != "" {
					attrs = append(attrs, slog.String("query", r.URL.RawQuery))
				}

				level := cfg.LogLevel
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					if err != nil {
						attrs = append(attrs, logger.Error(err))
					}
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
					if err != nil {
						attrs = append(attrs, logger.Error(err))
					}
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)
				return err
			}
		}
	}
}

// logRequestBody logs at most MaxBodyLogSize bytes and leaves the body intact
// for the handler.
func logRequestBody(cfg LoggingConfig, req *http.Request) {
	head, _ := io.ReadAll(io.LimitReader(req.Body, int64(cfg.MaxBodyLogSize)+1))
	req.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), req.Body), req.Body}

	if len(head) == 0 {
		return
	}

	truncated := len(head) > cfg.MaxBodyLogSize
	if truncated {
		head = head[:cfg.MaxBodyLogSize]
	}
	cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "request body",
		logger.Component(cfg.Component),
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
		slog.String("body", string(head)),
		slog.Bool("truncated", truncated),
	)
}

// responseWriter captures the status code and body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int
	headerWritten bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.headerWritten {
		rw.statusCode = statusCode
		rw.headerWritten = true
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
