package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/aiservice/pkg/vecmath"
)

func TestDot(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 32.0, vecmath.Dot([]float32{1, 2, 3}, []float32{4, 5, 6}), 1e-9)
	assert.InDelta(t, 0.0, vecmath.Dot(nil, nil), 1e-9)
}

func TestNorm(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, vecmath.Norm([]float32{3, 4}), 1e-9)
	assert.InDelta(t, 0.0, vecmath.Norm([]float32{0, 0, 0}), 1e-9)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("unit length", func(t *testing.T) {
		v := []float32{3, 4}
		n := vecmath.Normalize(v)

		assert.InDelta(t, 1.0, vecmath.Norm(n), 1e-6)
		assert.InDelta(t, 0.6, n[0], 1e-6)
		assert.InDelta(t, 0.8, n[1], 1e-6)
		assert.Equal(t, []float32{3, 4}, v, "input must not be modified")
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		n := vecmath.Normalize([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, n)
	})
}

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
		{"orthogonal", []float32{1, 0, 0}, []float32{0, 1, 0}, 0},
		{"opposite", []float32{1, 2, 3}, []float32{-1, -2, -3}, -1},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, vecmath.Cosine(tt.a, tt.b), 1e-6)
		})
	}
}
