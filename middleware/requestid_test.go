package middleware_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/response"
	"github.com/dmitrymomot/aiservice/core/router"
	"github.com/dmitrymomot/aiservice/middleware"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestID[*router.Context]())

	var captured string
	r.Get("/", func(ctx *router.Context) handler.Response {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok)
		captured = id
		return response.NoContent()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(captured)
	require.NoError(t, err)
	assert.Equal(t, captured, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{UseExisting: true}))
	r.Get("/", func(*router.Context) handler.Response { return response.NoContent() })

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reused", incoming: "abc-123", reuse: true},
		{name: "missing", incoming: "", reuse: false},
		{name: "too long", incoming: strings.Repeat("x", 200), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			require.NotEmpty(t, got)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Generator: func() string { return "fixed-id" },
	}))
	r.Get("/", func(ctx *router.Context) handler.Response {
		log.InfoContext(ctx, "inside handler")
		return response.NoContent()
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), `"request_id":"fixed-id"`)

	buf.Reset()
	log.InfoContext(context.Background(), "outside request")
	assert.NotContains(t, buf.String(), "request_id")
}
