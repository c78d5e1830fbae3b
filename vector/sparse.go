package vector

import (
	"fmt"
	"iter"

	"github.com/arloliu/featrec/errs"
)

// Sparse is a fixed-dimension logical vector that materializes only explicitly
// set (index, value) pairs; unset indices are implicitly exactly zero.
//
// Entries iterate in insertion order. Setting an index twice overwrites the
// previous value in place.
type Sparse struct {
	dimension int
	indices   []int
	values    []float64
	slots     map[int]int // index -> position in the parallel slices
}

var _ Vector = (*Sparse)(nil)

// NewSparse creates an empty sparse vector of the given dimension.
//
// Returns:
//   - *Sparse: Empty sparse vector
//   - error: ErrInvalidDimension if dimension is negative
func NewSparse(dimension int) (*Sparse, error) {
	if dimension < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidDimension, dimension)
	}

	return &Sparse{
		dimension: dimension,
		slots:     make(map[int]int),
	}, nil
}

// NewSparseFromPairs creates a sparse vector from parallel index/value slices.
//
// Returns:
//   - *Sparse: Sparse vector holding the given pairs
//   - error: ErrInvalidDimension, ErrLengthMismatch if the slices differ in
//     length, or ErrIndexOutOfRange for an index outside [0, dimension)
func NewSparseFromPairs(dimension int, indices []int, values []float64) (*Sparse, error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("%w: %d indices, %d values", errs.ErrLengthMismatch, len(indices), len(values))
	}

	v, err := NewSparse(dimension)
	if err != nil {
		return nil, err
	}

	for i, index := range indices {
		if err := v.Set(index, values[i]); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Dimension returns the fixed dimensionality of the vector.
func (v *Sparse) Dimension() int {
	return v.dimension
}

// Set materializes the value at the given index.
//
// Setting a value of exactly zero still materializes the entry; the encoder's
// significance filter excludes it later, so the distinction is invisible in
// encoded output.
//
// Returns:
//   - error: ErrIndexOutOfRange if index is outside [0, dimension)
func (v *Sparse) Set(index int, value float64) error {
	if index < 0 || index >= v.dimension {
		return fmt.Errorf("%w: index %d, dimension %d", errs.ErrIndexOutOfRange, index, v.dimension)
	}

	if pos, ok := v.slots[index]; ok {
		v.values[pos] = value
		return nil
	}

	v.slots[index] = len(v.indices)
	v.indices = append(v.indices, index)
	v.values = append(v.values, value)

	return nil
}

// NNZ returns the number of materialized entries.
func (v *Sparse) NNZ() int {
	return len(v.indices)
}

// All returns an iterator over the materialized (index, value) pairs in
// insertion order.
func (v *Sparse) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, index := range v.indices {
			if !yield(index, v.values[i]) {
				return
			}
		}
	}
}

// ToDense converts the sparse vector to its dense equivalent.
func (v *Sparse) ToDense() Dense {
	dense := NewDense(v.dimension)
	for i, index := range v.indices {
		dense[index] = v.values[i]
	}

	return dense
}
