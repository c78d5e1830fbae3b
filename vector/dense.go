package vector

import "iter"

// Dense is a fixed-size array storing every index's value explicitly.
// Most entries of a trained coefficient vector are exactly zero; the encoder's
// significance filter drops them during encoding.
type Dense []float64

var _ Vector = (Dense)(nil)

// NewDense creates an all-zero dense vector of the given dimension.
func NewDense(dimension int) Dense {
	return make(Dense, dimension)
}

// Dimension returns the fixed dimensionality of the vector.
func (v Dense) Dimension() int {
	return len(v)
}

// All returns an iterator over every (index, value) pair in index order.
func (v Dense) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, val := range v {
			if !yield(i, val) {
				return
			}
		}
	}
}
