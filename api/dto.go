package api

import (
	"fmt"

	"github.com/dmitrymomot/aiservice/core/similarity"
)

// Defaults applied when optional request fields are omitted.
const (
	DefaultNormalize = true
	DefaultTopK      = 5
)

// EmbedRequest is the body of POST /embed.
type EmbedRequest struct {
	Texts     []string `json:"texts"`
	Normalize *bool    `json:"normalize,omitempty"`
}

// Validate checks the request shape. An empty list is valid; a missing or
// null one is not.
func (r EmbedRequest) Validate(maxItems int) error {
	return validateList("texts", r.Texts, maxItems)
}

// ShouldNormalize returns the normalize flag or its default.
func (r EmbedRequest) ShouldNormalize() bool {
	if r.Normalize == nil {
		return DefaultNormalize
	}
	return *r.Normalize
}

// EmbedResponse is the body returned by POST /embed.
type EmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	Count      int         `json:"count"`
}

// SimilarityRequest is the body of POST /similarity.
type SimilarityRequest struct {
	Queries []string `json:"queries"`
	Corpus  []string `json:"corpus"`
	TopK    *int     `json:"top_k,omitempty"`
}

// Validate checks the request shape. top_k is passed to the ranker as is.
func (r SimilarityRequest) Validate(maxItems int) error {
	if err := validateList("queries", r.Queries, maxItems); err != nil {
		return err
	}
	return validateList("corpus", r.Corpus, maxItems)
}

// K returns top_k or its default.
func (r SimilarityRequest) K() int {
	if r.TopK == nil {
		return DefaultTopK
	}
	return *r.TopK
}

// SimilarityResponse is the body returned by POST /similarity.
type SimilarityResponse struct {
	Results [][]similarity.Match `json:"results"`
}

func validateList(field string, items []string, maxItems int) error {
	if items == nil {
		return &ValidationError{Field: field, Reason: "field required"}
	}
	if maxItems > 0 && len(items) > maxItems {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("at most %d items allowed, got %d", maxItems, len(items)),
		}
	}
	return nil
}
