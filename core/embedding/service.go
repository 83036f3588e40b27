package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/pkg/vecmath"
	"github.com/dmitrymomot/aiservice/pkg/vectorizer"
)

// Service turns batches of texts into fixed-size vectors.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	v   vectorizer.Vectorizer
	log *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used to report backend failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Service on top of the given backend.
func New(v vectorizer.Vectorizer, opts ...Option) *Service {
	s := &Service{
		v:   v,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dimensions returns the length of every vector produced by Embed.
func (s *Service) Dimensions() int {
	return s.v.Dimensions()
}

// Embed returns one vector per text, in input order. With normalize set, each
// vector is divided by its L2 norm plus vecmath.Epsilon.
//
// Empty input returns an empty batch without calling the backend. Backend
// failures are returned joined with ErrEmbeddingBackend and are not retried.
func (s *Service) Embed(ctx context.Context, texts []string, normalize bool) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vecs, err := s.v.EmbedBatch(ctx, texts)
	if err != nil {
		s.log.ErrorContext(ctx, "embedding backend failed",
			logger.Component("embedding"),
			logger.Count("texts", len(texts)),
			logger.Error(err),
		)
		return nil, errors.Join(ErrEmbeddingBackend, err)
	}

	if err := s.check(texts, vecs); err != nil {
		s.log.ErrorContext(ctx, "embedding backend returned malformed batch",
			logger.Component("embedding"),
			logger.Error(err),
		)
		return nil, errors.Join(ErrEmbeddingBackend, err)
	}

	if normalize {
		for i, v := range vecs {
			vecs[i] = vecmath.Normalize(v)
		}
	}

	return vecs, nil
}

// Ready reports whether the backend can serve requests. Lazily built
// backends are initialized by this call.
func (s *Service) Ready(ctx context.Context) error {
	if r, ok := s.v.(interface{ Ready(context.Context) error }); ok {
		if err := r.Ready(ctx); err != nil {
			return errors.Join(ErrEmbeddingBackend, err)
		}
	}
	return nil
}

func (s *Service) check(texts []string, vecs [][]float32) error {
	if len(vecs) != len(texts) {
		return fmt.Errorf("%w: got %d vectors for %d texts", ErrDimensionMismatch, len(vecs), len(texts))
	}
	dims := s.v.Dimensions()
	for i, v := range vecs {
		if len(v) != dims {
			return fmt.Errorf("%w: vector %d has %d components, want %d", ErrDimensionMismatch, i, len(v), dims)
		}
	}
	return nil
}
