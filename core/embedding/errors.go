package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbeddingBackend indicates the backend failed to produce vectors.
	// The backend's own error is joined to it.
	ErrEmbeddingBackend = errors.New("embedding backend error")

	// ErrConfiguration indicates an invalid backend selection or backend settings.
	ErrConfiguration = errors.New("embedding configuration error")

	// ErrUnknownProvider indicates the configured provider name is not recognized.
	ErrUnknownProvider = fmt.Errorf("%w: unknown embeddings provider", ErrConfiguration)

	// ErrDimensionMismatch indicates vectors of unexpected size or count.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
