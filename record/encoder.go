package record

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/internal/options"
	"github.com/arloliu/featrec/vector"
)

// DefaultSignificanceThreshold is the minimum absolute value a coefficient
// must exceed to be retained during encoding. Coefficients at or below the
// threshold carry no useful precision and are treated as zero.
const DefaultSignificanceThreshold = 1e-9

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithSignificanceThreshold overrides the significance threshold.
//
// The threshold must be finite and non-negative. A threshold of zero retains
// every stored coefficient whose value is not exactly zero.
func WithSignificanceThreshold(threshold float64) EncoderOption {
	return options.New(func(e *Encoder) error {
		if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			return fmt.Errorf("%w: %v", errs.ErrInvalidThreshold, threshold)
		}
		e.threshold = threshold

		return nil
	})
}

// Encoder converts numeric vectors into ordered feature entry sequences.
//
// The Encoder is stateless between calls and safe for concurrent use.
type Encoder struct {
	threshold float64
}

// NewEncoder creates an Encoder with the default significance threshold.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{threshold: DefaultSignificanceThreshold}

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// SignificanceThreshold returns the threshold the encoder filters with.
func (e *Encoder) SignificanceThreshold() float64 {
	return e.threshold
}

// indexedValue is a retained (index, value) pair awaiting identity resolution.
type indexedValue struct {
	index int
	value float64
}

// Encode converts one vector into an ordered sequence of feature entries.
//
// The stored (index, value) pairs of the vector are filtered so only pairs
// with abs(value) strictly above the significance threshold survive, sorted
// by absolute value descending, and resolved through the directory. The
// relative order of entries with equal magnitudes is unspecified.
//
// The output order is deterministic for a given input and exists for human
// inspection of persisted records; callers must not depend on it for
// correctness.
//
// Returns:
//   - []feature.Entry: Retained entries, magnitude-descending; empty (non-nil)
//     when nothing survives the filter
//   - error: ErrNilVector or ErrNilDirectory for absent inputs, or
//     ErrUnmappedIndex if a retained index has no identity in the directory.
//     On error no partial output is returned.
func (e *Encoder) Encode(vec vector.Vector, dir *feature.Directory) ([]feature.Entry, error) {
	if vec == nil {
		return nil, errs.ErrNilVector
	}
	if dir == nil {
		return nil, errs.ErrNilDirectory
	}

	var retained []indexedValue
	for index, value := range vec.All() {
		if math.Abs(value) > e.threshold {
			retained = append(retained, indexedValue{index: index, value: value})
		}
	}

	sort.Slice(retained, func(i, j int) bool {
		return math.Abs(retained[i].value) > math.Abs(retained[j].value)
	})

	entries := make([]feature.Entry, 0, len(retained))
	for _, pair := range retained {
		identity, ok := dir.Identity(pair.index)
		if !ok {
			return nil, fmt.Errorf("%w: index %d in a directory of dimension %d",
				errs.ErrUnmappedIndex, pair.index, dir.Dimension())
		}
		entries = append(entries, feature.Entry{Identity: identity, Value: pair.value})
	}

	return entries, nil
}
