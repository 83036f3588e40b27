// Package vecmath provides the small set of vector operations shared by the
// embedding and similarity packages.
//
// Vectors are []float32 to match what embedding backends return. All
// accumulation happens in float64 so that long vectors do not lose precision.
//
//	v := []float32{3, 4}
//	vecmath.Norm(v)          // 5
//	vecmath.Normalize(v)     // [0.6 0.8]
//	vecmath.Cosine(v, v)     // ~1.0
package vecmath

import "math"

// Epsilon guards divisions by a norm. A zero vector therefore normalizes to a
// zero vector and has cosine similarity 0 with anything.
const Epsilon = 1e-8

// Dot returns the dot product of a and b over their common prefix.
// Callers that need equal lengths must check them first.
func Dot(a, b []float32) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := range n {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// Norm returns the L2 norm of v.
func Norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalize returns a new vector equal to v / (‖v‖ + Epsilon).
// The input is not modified.
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	denom := Norm(v) + Epsilon
	for i, x := range v {
		out[i] = float32(float64(x) / denom)
	}
	return out
}

// Cosine returns dot(a, b) / (‖a‖·‖b‖ + Epsilon).
func Cosine(a, b []float32) float64 {
	return Dot(a, b) / (Norm(a)*Norm(b) + Epsilon)
}
