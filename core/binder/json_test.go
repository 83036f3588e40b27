package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aiservice/core/binder"
)

type payload struct {
	Texts     []string `json:"texts"`
	Normalize *bool    `json:"normalize"`
}

func newRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := binder.JSON()(newRequest(`{"texts":["a","<b>&"],"normalize":false}`, "application/json; charset=utf-8"), &p)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "<b>&"}, p.Texts, "strings are kept verbatim")
		require.NotNil(t, p.Normalize)
		assert.False(t, *p.Normalize)
	})

	t.Run("missing fields stay nil", func(t *testing.T) {
		t.Parallel()

		var p payload
		require.NoError(t, binder.JSON()(newRequest(`{}`, "application/json"), &p))
		assert.Nil(t, p.Texts)
		assert.Nil(t, p.Normalize)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{name: "missing content type", body: `{}`, want: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", want: binder.ErrUnsupportedMediaType},
		{name: "malformed", body: `{"texts":`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "wrong type", body: `{"texts":"a"}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"text":["a"]}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{} {}`, contentType: "application/json", want: binder.ErrFailedToParseJSON},
		{name: "empty body", body: ``, contentType: "application/json", want: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p payload
			err := binder.JSON()(newRequest(tt.body, tt.contentType), &p)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		body := `{"texts":["` + strings.Repeat("a", 100) + `"]}`
		var p payload

		err := binder.JSON(binder.WithMaxSize(50))(newRequest(body, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrRequestTooLarge)

		err = binder.JSON(binder.WithMaxSize(int64(len(body))))(newRequest(body, "application/json"), &p)
		assert.NoError(t, err)
	})
}
