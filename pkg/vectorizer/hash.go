package vectorizer

import (
	"context"
	"crypto/sha256"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// DefaultHashDimensions is the vector size produced by NewHash when no
// dimension option is given.
const DefaultHashDimensions = 64

// Hash is a deterministic, model-free vectorizer. Each text is hashed with
// SHA-256 and the 32 digest bytes are repeated and truncated to the configured
// dimension. Vectors are stable across processes and machines but carry no
// semantic meaning. It holds no mutable state and is safe for concurrent use.
type Hash struct {
	dimensions int
	nfc        bool
}

// HashOption is a functional option for configuring Hash.
type HashOption func(*Hash)

// WithHashDimensions sets the output dimensions.
func WithHashDimensions(dims int) HashOption {
	return func(h *Hash) {
		h.dimensions = dims
	}
}

// WithUnicodeNormalization converts text to Unicode NFC before hashing, so that
// canonically equivalent strings (precomposed vs. combining marks) share a vector.
func WithUnicodeNormalization() HashOption {
	return func(h *Hash) {
		h.nfc = true
	}
}

// NewHash creates a deterministic hash vectorizer.
func NewHash(opts ...HashOption) (*Hash, error) {
	h := &Hash{dimensions: DefaultHashDimensions}
	for _, opt := range opts {
		opt(h)
	}

	if h.dimensions <= 0 {
		return nil, fmt.Errorf("%w: hash vectorizer needs a positive dimension, got %d",
			ErrInvalidDimensions, h.dimensions)
	}

	return h, nil
}

// Embed converts a single text to its raw hash vector. It never fails.
func (h *Hash) Embed(_ context.Context, text string) ([]float32, error) {
	return h.vector(text), nil
}

// EmbedBatch converts multiple texts to raw hash vectors in input order.
func (h *Hash) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, text := range texts {
		result[i] = h.vector(text)
	}
	return result, nil
}

// Dimensions returns the vector size this implementation produces.
func (h *Hash) Dimensions() int {
	return h.dimensions
}

func (h *Hash) vector(text string) []float32 {
	if h.nfc {
		text = norm.NFC.String(text)
	}

	digest := sha256.Sum256([]byte(text))

	vec := make([]float32, h.dimensions)
	for i := range vec {
		vec[i] = float32(digest[i%len(digest)])
	}
	return vec
}
