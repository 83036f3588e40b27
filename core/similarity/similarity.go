package similarity

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/dmitrymomot/aiservice/core/embedding"
	"github.com/dmitrymomot/aiservice/pkg/vecmath"
)

// Embedder produces one vector per text. *embedding.Service satisfies it.
type Embedder interface {
	Embed(ctx context.Context, texts []string, normalize bool) ([][]float32, error)
}

// Match is one ranked corpus document.
type Match struct {
	Doc   string  `json:"doc"`
	Score float64 `json:"score"`
}

// Ranker ranks corpus documents against queries by cosine similarity.
// It holds no state besides its Embedder and is safe for concurrent use.
type Ranker struct {
	embedder Embedder
}

// NewRanker creates a Ranker that obtains vectors from e.
func NewRanker(e Embedder) *Ranker {
	return &Ranker{embedder: e}
}

// Rank returns, for each query in order, the top k corpus documents sorted by
// descending cosine similarity. Equal scores keep corpus order. k is clamped
// to [1, len(corpus)].
//
// No queries yield an empty result and an empty corpus yields one empty list
// per query; the embedder is not called in either case. Embedder errors are
// returned unchanged.
func (r *Ranker) Rank(ctx context.Context, queries, corpus []string, k int) ([][]Match, error) {
	if len(queries) == 0 {
		return [][]Match{}, nil
	}
	if len(corpus) == 0 {
		results := make([][]Match, len(queries))
		for i := range results {
			results[i] = []Match{}
		}
		return results, nil
	}

	// Cosine is computed explicitly below, so raw vectors are enough.
	qv, err := r.embedder.Embed(ctx, queries, false)
	if err != nil {
		return nil, err
	}
	cv, err := r.embedder.Embed(ctx, corpus, false)
	if err != nil {
		return nil, err
	}

	scores, err := CosineMatrix(qv, cv)
	if err != nil {
		return nil, err
	}

	results := make([][]Match, len(scores))
	for i, row := range scores {
		top := TopK(row, k)
		matches := make([]Match, len(top))
		for j, idx := range top {
			matches[j] = Match{Doc: corpus[idx], Score: row[idx]}
		}
		results[i] = matches
	}
	return results, nil
}

// CosineMatrix returns a len(queries) x len(corpus) matrix whose entry (i, j)
// is dot(q_i, c_j) / (‖q_i‖·‖c_j‖ + vecmath.Epsilon). All vectors must have the
// same length.
func CosineMatrix(queries, corpus [][]float32) ([][]float64, error) {
	dims := -1
	for _, set := range [][][]float32{queries, corpus} {
		for _, v := range set {
			if dims == -1 {
				dims = len(v)
			}
			if len(v) != dims {
				return nil, fmt.Errorf("%w: vectors of length %d and %d", embedding.ErrDimensionMismatch, dims, len(v))
			}
		}
	}

	// Norms are computed once per vector rather than once per pair.
	cnorms := make([]float64, len(corpus))
	for j, c := range corpus {
		cnorms[j] = vecmath.Norm(c)
	}

	matrix := make([][]float64, len(queries))
	for i, q := range queries {
		qnorm := vecmath.Norm(q)
		row := make([]float64, len(corpus))
		for j, c := range corpus {
			row[j] = vecmath.Dot(q, c) / (qnorm*cnorms[j] + vecmath.Epsilon)
		}
		matrix[i] = row
	}
	return matrix, nil
}

// TopK returns the indices of the EffectiveK(k, len(scores)) highest scores,
// highest first. Equal scores keep their original order.
func TopK(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return idx[:EffectiveK(k, len(scores))]
}

// EffectiveK clamps k to [1, n]. It returns 0 when n is 0.
func EffectiveK(k, n int) int {
	if n <= 0 {
		return 0
	}
	return max(1, min(k, n))
}
