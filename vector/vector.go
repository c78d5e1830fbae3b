// Package vector provides the dense and sparse numeric vector representations
// consumed by the record encoder.
//
// Both representations expose the same capability: a lazy iterator over their
// physically stored (index, value) pairs. A sparse vector's unset entries are
// defined to be exactly zero and are never visited, which is an intentional
// size/performance characteristic rather than an approximation: the encoder's
// significance filter would exclude them regardless.
package vector

import "iter"

// Vector is a fixed-dimension numeric vector over indices [0, N).
//
// Implementations are read-only from the codec's point of view; the encoder
// never mutates the vectors it is given.
type Vector interface {
	// Dimension returns the fixed dimensionality N of the vector.
	Dimension() int

	// All returns an iterator over the physically stored (index, value) pairs.
	// For a dense vector that is every index in [0, N); for a sparse vector
	// only the materialized entries.
	All() iter.Seq2[int, float64]
}
