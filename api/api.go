package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/aiservice/core/binder"
	"github.com/dmitrymomot/aiservice/core/embedding"
	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/health"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/response"
	"github.com/dmitrymomot/aiservice/core/router"
	"github.com/dmitrymomot/aiservice/core/similarity"
)

// Embedder produces vectors for a batch of texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string, normalize bool) ([][]float32, error)
	Dimensions() int
	Ready(ctx context.Context) error
}

// Ranker ranks corpus documents against queries.
type Ranker interface {
	Rank(ctx context.Context, queries, corpus []string, k int) ([][]similarity.Match, error)
}

// API serves the embedding and similarity endpoints.
type API[C handler.Context] struct {
	embedder Embedder
	ranker   Ranker
	bind     binder.Binder
	log      *slog.Logger

	service  string
	version  string
	maxItems int
}

// Option configures API.
type Option[C handler.Context] func(*API[C])

// WithLogger sets the logger used by the readiness probe.
func WithLogger[C handler.Context](log *slog.Logger) Option[C] {
	return func(a *API[C]) {
		if log != nil {
			a.log = log
		}
	}
}

// WithServiceInfo sets the name and version reported by GET /health.
func WithServiceInfo[C handler.Context](name, version string) Option[C] {
	return func(a *API[C]) {
		a.service = name
		a.version = version
	}
}

// WithMaxItems caps every text list in a request. Zero disables the cap.
func WithMaxItems[C handler.Context](n int) Option[C] {
	return func(a *API[C]) {
		if n >= 0 {
			a.maxItems = n
		}
	}
}

// WithMaxBodySize sets the request body limit in bytes.
func WithMaxBodySize[C handler.Context](n int64) Option[C] {
	return func(a *API[C]) {
		a.bind = binder.JSON(binder.WithMaxSize(n))
	}
}

// New creates the API on top of an embedder and a ranker.
func New[C handler.Context](e Embedder, r Ranker, opts ...Option[C]) *API[C] {
	a := &API[C]{
		embedder: e,
		ranker:   r,
		bind:     binder.JSON(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxItems: embedding.DefaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register mounts every endpoint on r.
func (a *API[C]) Register(r router.Router[C]) {
	r.Get("/", a.Root)
	r.Get("/health", health.Status[C](a.service, a.version))
	r.Get("/health/live", health.Liveness[C])
	r.Get("/health/ready", health.Readiness[C](a.log, a.embedder.Ready))
	r.Post("/embed", a.Embed)
	r.Post("/similarity", a.Similarity)
}

// Root answers {"ok": true}.
func (a *API[C]) Root(C) handler.Response {
	return response.JSON(map[string]bool{"ok": true})
}

// Embed handles POST /embed.
func (a *API[C]) Embed(ctx C) handler.Response {
	var req EmbedRequest
	if err := a.bind(ctx.Request(), &req); err != nil {
		return response.Error(err)
	}
	if err := req.Validate(a.maxItems); err != nil {
		return response.Error(err)
	}

	vectors, err := a.embedder.Embed(ctx, req.Texts, req.ShouldNormalize())
	if err != nil {
		return response.Error(err)
	}

	a.log.DebugContext(ctx, "texts embedded",
		logger.Component("api"),
		logger.Count("count", len(vectors)),
		logger.Dimensions(a.embedder.Dimensions()),
	)

	return response.JSON(EmbedResponse{
		Embeddings: vectors,
		Dimension:  a.embedder.Dimensions(),
		Count:      len(vectors),
	})
}

// Similarity handles POST /similarity.
func (a *API[C]) Similarity(ctx C) handler.Response {
	var req SimilarityRequest
	if err := a.bind(ctx.Request(), &req); err != nil {
		return response.Error(err)
	}
	if err := req.Validate(a.maxItems); err != nil {
		return response.Error(err)
	}

	results, err := a.ranker.Rank(ctx, req.Queries, req.Corpus, req.K())
	if err != nil {
		return response.Error(err)
	}

	return response.JSON(SimilarityResponse{Results: results})
}
