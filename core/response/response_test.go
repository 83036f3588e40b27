package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/response"
	"github.com/dmitrymomot/aiservice/core/router"
)

type statusErr struct{ status int }

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e statusErr) StatusCode() int { return e.status }

func render(t *testing.T, resp func(http.ResponseWriter, *http.Request) error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	return w
}

func TestString(t *testing.T) {
	t.Parallel()

	w := render(t, response.String("ALIVE"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))

	w = render(t, response.StringWithStatus("nope", http.StatusServiceUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = render(t, response.StringWithStatus("", 0))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestStatusResponses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNoContent, render(t, response.NoContent()).Code)
	assert.Equal(t, http.StatusAccepted, render(t, response.Status(http.StatusAccepted)).Code)
	assert.Equal(t, http.StatusOK, render(t, response.Status(0)).Code)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		w := render(t, response.JSON(map[string]bool{"ok": true}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()

		w := render(t, response.JSONWithStatus([]int{1}, http.StatusCreated))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `[1]`, w.Body.String())
	})

	t.Run("zero status", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNoContent, render(t, response.JSONWithStatus(nil, 0)).Code)
		assert.Equal(t, http.StatusOK, render(t, response.JSONWithStatus("x", 0)).Code)
	})

	t.Run("no body for 204", func(t *testing.T) {
		t.Parallel()

		w := render(t, response.JSONWithStatus(map[string]int{"a": 1}, http.StatusNoContent))
		assert.Empty(t, w.Body.String())
	})
}

func TestToHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("http error passes through", func(t *testing.T) {
		t.Parallel()

		in := response.ErrUnprocessableEntity.WithMessage("texts is required")
		out := response.ToHTTPError(fmt.Errorf("wrapped: %w", in))
		assert.Equal(t, in, out)
	})

	t.Run("status code interface", func(t *testing.T) {
		t.Parallel()

		out := response.ToHTTPError(fmt.Errorf("outer: %w", statusErr{status: http.StatusNotFound}))
		assert.Equal(t, http.StatusNotFound, out.Status)
		assert.Equal(t, "not_found", out.Code)
		assert.Equal(t, "outer: status 404", out.Details["cause"])
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		out := response.ToHTTPError(statusErr{status: http.StatusTeapot})
		assert.Equal(t, http.StatusTeapot, out.Status)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		out := response.ToHTTPError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, out.Status)
		assert.Equal(t, "internal_server_error", out.Code)
		assert.Equal(t, "boom", out.Details["cause"])
	})

	t.Run("predefined errors are not mutated", func(t *testing.T) {
		t.Parallel()

		_ = response.ErrBadRequest.WithError(errors.New("x"))
		assert.Nil(t, response.ErrBadRequest.Details)
	})
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context](router.WithErrorHandler(response.JSONErrorHandler[*router.Context]))
	r.Post("/fail", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrUnprocessableEntity.WithMessage("texts is required"))
	})

	t.Run("structured body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unprocessable_entity", body["code"])
		assert.Equal(t, "texts is required", body["message"])
		assert.NotContains(t, body, "details")
	})

	t.Run("routing errors", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"not_found"`)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context](router.WithErrorHandler(response.ErrorHandler[*router.Context]))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())
}
