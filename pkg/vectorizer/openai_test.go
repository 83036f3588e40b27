package vectorizer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/aiservice/pkg/vectorizer"
)

type embeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions"`
}

type embeddingData struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// newOpenAIServer answers embedding requests with vectors of the requested size,
// listed in reverse order. Component j of input i is i+1.
func newOpenAIServer(t *testing.T, seen *embeddingRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if seen != nil {
			*seen = req
		}

		data := make([]embeddingData, 0, len(req.Input))
		for i := len(req.Input) - 1; i >= 0; i-- {
			vec := make([]float64, req.Dimensions)
			for j := range vec {
				vec[j] = float64(i + 1)
			}
			data = append(data, embeddingData{Object: "embedding", Index: i, Embedding: vec})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   data,
			"model":  req.Model,
			"usage":  map[string]int{"prompt_tokens": len(req.Input), "total_tokens": len(req.Input)},
		})
	}))
}

func TestNewOpenAI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apiKey  string
		opts    []vectorizer.OpenAIOption
		dims    int
		wantErr error
	}{
		{name: "defaults", apiKey: "k", dims: 1536},
		{name: "large model default", apiKey: "k", opts: []vectorizer.OpenAIOption{
			vectorizer.WithOpenAIModel(vectorizer.OpenAITextEmbedding3Large),
		}, dims: 3072},
		{name: "reduced dimensions", apiKey: "k", opts: []vectorizer.OpenAIOption{
			vectorizer.WithOpenAIDimensions(256),
		}, dims: 256},
		{name: "missing key", apiKey: "", wantErr: vectorizer.ErrInvalidAPIKey},
		{name: "unknown model", apiKey: "k", opts: []vectorizer.OpenAIOption{
			vectorizer.WithOpenAIModel("text-embedding-ada-001"),
		}, wantErr: vectorizer.ErrModelNotSupported},
		{name: "too many dimensions", apiKey: "k", opts: []vectorizer.OpenAIOption{
			vectorizer.WithOpenAIDimensions(2048),
		}, wantErr: vectorizer.ErrInvalidDimensions},
		{name: "negative dimensions", apiKey: "k", opts: []vectorizer.OpenAIOption{
			vectorizer.WithOpenAIDimensions(-5),
		}, wantErr: vectorizer.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := vectorizer.NewOpenAI(tt.apiKey, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dims, v.Dimensions())
		})
	}
}

func TestOpenAIDefaultDimensions(t *testing.T) {
	t.Parallel()

	dims, err := vectorizer.OpenAIDefaultDimensions("")
	require.NoError(t, err)
	assert.Equal(t, 1536, dims)

	dims, err = vectorizer.OpenAIDefaultDimensions(vectorizer.OpenAITextEmbedding3Large)
	require.NoError(t, err)
	assert.Equal(t, 3072, dims)

	_, err = vectorizer.OpenAIDefaultDimensions("unknown")
	assert.ErrorIs(t, err, vectorizer.ErrModelNotSupported)
}

func TestOpenAIEmbedBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("places vectors by index", func(t *testing.T) {
		t.Parallel()

		var seen embeddingRequest
		srv := newOpenAIServer(t, &seen)
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key",
			vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"),
			vectorizer.WithOpenAIHTTPClient(srv.Client()),
			vectorizer.WithOpenAIDimensions(8),
		)
		require.NoError(t, err)

		vecs, err := v.EmbedBatch(ctx, []string{"first", "second", "third"})
		require.NoError(t, err)
		require.Len(t, vecs, 3)
		for i, vec := range vecs {
			require.Len(t, vec, 8)
			assert.Equal(t, float32(i+1), vec[0])
		}

		assert.Equal(t, vectorizer.OpenAITextEmbedding3Small, seen.Model)
		assert.Equal(t, []string{"first", "second", "third"}, seen.Input)
		assert.Equal(t, 8, seen.Dimensions)
	})

	t.Run("single embed", func(t *testing.T) {
		t.Parallel()

		srv := newOpenAIServer(t, nil)
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key",
			vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"),
			vectorizer.WithOpenAIDimensions(4),
		)
		require.NoError(t, err)

		vec, err := v.Embed(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 1, 1, 1}, vec)
	})

	t.Run("empty input skips the request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}))
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key", vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"))
		require.NoError(t, err)

		vecs, err := v.EmbedBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, vecs)
	})

	t.Run("large batch is split into chunks", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		inner := newOpenAIServer(t, nil)
		defer inner.Close()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			inner.Config.Handler.ServeHTTP(w, r)
		}))
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key",
			vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"),
			vectorizer.WithOpenAIDimensions(2),
			vectorizer.WithOpenAIMaxBatchSize(0),
		)
		require.NoError(t, err)

		texts := make([]string, 150)
		for i := range texts {
			texts[i] = fmt.Sprintf("text %d", i)
		}

		vecs, err := v.EmbedBatch(ctx, texts)
		require.NoError(t, err)
		require.Len(t, vecs, 150)
		assert.Equal(t, int32(2), calls.Load())

		// Values restart at 1 for each chunk of 100.
		assert.Equal(t, []float32{1, 1}, vecs[0])
		assert.Equal(t, []float32{100, 100}, vecs[99])
		assert.Equal(t, []float32{1, 1}, vecs[100])
		assert.Equal(t, []float32{50, 50}, vecs[149])
	})

	t.Run("batch size above api limit is clamped", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		inner := newOpenAIServer(t, nil)
		defer inner.Close()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			inner.Config.Handler.ServeHTTP(w, r)
		}))
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key",
			vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"),
			vectorizer.WithOpenAIDimensions(1),
			vectorizer.WithOpenAIMaxBatchSize(5000),
		)
		require.NoError(t, err)

		texts := make([]string, 2049)
		for i := range texts {
			texts[i] = "t"
		}

		vecs, err := v.EmbedBatch(ctx, texts)
		require.NoError(t, err)
		require.Len(t, vecs, 2049)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, []float32{2048}, vecs[2047])
		assert.Equal(t, []float32{1}, vecs[2048])
	})

	t.Run("api failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
		}))
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key", vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"))
		require.NoError(t, err)

		_, err = v.EmbedBatch(ctx, []string{"a"})
		assert.ErrorIs(t, err, vectorizer.ErrEmbeddingFailed)
	})

	t.Run("short response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"object":"list","model":"text-embedding-3-small","data":[` +
				`{"object":"embedding","index":0,"embedding":[0.1,0.2]}],` +
				`"usage":{"prompt_tokens":2,"total_tokens":2}}`))
		}))
		defer srv.Close()

		v, err := vectorizer.NewOpenAI("test-key", vectorizer.WithOpenAIBaseURL(srv.URL+"/v1/"))
		require.NoError(t, err)

		_, err = v.EmbedBatch(ctx, []string{"a", "b"})
		assert.ErrorIs(t, err, vectorizer.ErrEmbeddingCountMismatch)
	})
}
