package record

import (
	"fmt"

	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/vector"
)

// Record is the logical persisted form of one numeric model.
//
// Means is always present. Variances is optional: a nil slice means the model
// carries no uncertainty vector, while an empty non-nil slice means the
// uncertainty vector existed but nothing survived the significance filter.
// The two cases stay distinct through both the JSON and the binary container
// forms.
type Record struct {
	// ModelID is the caller-supplied opaque model identifier.
	ModelID string `json:"modelId"`
	// Means holds the encoded mean/coefficient entries, magnitude-descending.
	Means []feature.Entry `json:"means"`
	// Variances holds the encoded uncertainty entries when the model has an
	// uncertainty vector; nil otherwise.
	Variances []feature.Entry `json:"variances,omitzero"`
}

// HasVariances reports whether the record carries an uncertainty entry
// sequence, including a present-but-empty one.
func (r *Record) HasVariances() bool {
	return r.Variances != nil
}

// Build encodes a full model record.
//
// The means vector is mandatory. Pass a nil variances vector for models
// without an uncertainty vector; the resulting record then has no variance
// entries at all, as opposed to an empty variance sequence. Both vectors are
// encoded independently against the same directory.
//
// Returns:
//   - *Record: Complete record ready for persistence
//   - error: Encoder construction or encode errors; no partial record is
//     returned
func Build(modelID string, means vector.Vector, variances vector.Vector, dir *feature.Directory, opts ...EncoderOption) (*Record, error) {
	encoder, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	meanEntries, err := encoder.Encode(means, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to encode means: %w", err)
	}

	rec := &Record{
		ModelID: modelID,
		Means:   meanEntries,
	}

	if variances != nil {
		varianceEntries, err := encoder.Encode(variances, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to encode variances: %w", err)
		}
		rec.Variances = varianceEntries
	}

	return rec, nil
}
