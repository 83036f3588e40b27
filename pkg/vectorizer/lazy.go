package vectorizer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Factory builds a Vectorizer. It is called by Lazy on first use.
type Factory func(ctx context.Context) (Vectorizer, error)

// Lazy is a read-only handle to a Vectorizer that is built on first use.
//
// The fast path is a single atomic load. Concurrent first callers serialize on
// a mutex and the factory runs exactly once per successful build. A failed
// build is not remembered: the next call tries again.
type Lazy struct {
	dimensions int
	factory    Factory

	mu     sync.Mutex
	loaded atomic.Pointer[Vectorizer]
}

// NewLazy returns a handle that calls factory on first use. The dimensions are
// reported before the backend exists, so they must be known up front.
func NewLazy(dimensions int, factory Factory) *Lazy {
	return &Lazy{
		dimensions: dimensions,
		factory:    factory,
	}
}

// Ready builds the underlying vectorizer if needed and reports any failure.
func (l *Lazy) Ready(ctx context.Context) error {
	_, err := l.get(ctx)
	return err
}

// Embed converts a single text to vector embedding.
func (l *Lazy) Embed(ctx context.Context, text string) ([]float32, error) {
	v, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return v.Embed(ctx, text)
}

// EmbedBatch converts multiple texts to vector embeddings.
func (l *Lazy) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	v, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return v.EmbedBatch(ctx, texts)
}

// Dimensions returns the vector size the wrapped implementation produces.
func (l *Lazy) Dimensions() int {
	return l.dimensions
}

func (l *Lazy) get(ctx context.Context) (Vectorizer, error) {
	if v := l.loaded.Load(); v != nil {
		return *v, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if v := l.loaded.Load(); v != nil {
		return *v, nil
	}

	if l.factory == nil {
		return nil, errors.Join(ErrClientCreationFailed, errors.New("no factory configured"))
	}

	v, err := l.factory(ctx)
	if err != nil {
		return nil, errors.Join(ErrClientCreationFailed, err)
	}
	if v == nil {
		return nil, errors.Join(ErrClientCreationFailed, errors.New("factory returned nil vectorizer"))
	}

	l.loaded.Store(&v)
	return v, nil
}
