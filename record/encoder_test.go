package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/vector"
)

func testDirectory(t *testing.T, identities ...feature.Identity) *feature.Directory {
	t.Helper()
	dir, err := feature.NewDirectory(identities)
	require.NoError(t, err)

	return dir
}

func TestEncode_FilterAndOrder(t *testing.T) {
	// Index 2 is dropped by the threshold; index 0 is exactly zero.
	dir := testDirectory(t,
		feature.NewIdentity("f0", "t0"),
		feature.NewIdentity("f1", "t1"),
		feature.NewIdentity("f2", "t2"),
		feature.NewIdentity("f3", "t3"),
	)

	encoder, err := NewEncoder(WithSignificanceThreshold(1e-5))
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{0.0, 5.0, -0.0000001, 3.0}, dir)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, feature.NewIdentity("f1", "t1"), entries[0].Identity)
	assert.Equal(t, 5.0, entries[0].Value)
	assert.Equal(t, feature.NewIdentity("f3", "t3"), entries[1].Identity)
	assert.Equal(t, 3.0, entries[1].Value)
}

func TestEncode_MagnitudeDescending(t *testing.T) {
	dir := testDirectory(t,
		feature.NewIdentity("a", ""),
		feature.NewIdentity("b", ""),
		feature.NewIdentity("c", ""),
		feature.NewIdentity("d", ""),
		feature.NewIdentity("e", ""),
	)

	encoder, err := NewEncoder()
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{0.5, -8.0, 0.25, 3.0, -1.5}, dir)
	require.NoError(t, err)

	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(entries[i-1].Value), math.Abs(entries[i].Value),
			"entries must be ordered by descending magnitude")
	}
	assert.Equal(t, -8.0, entries[0].Value)
}

func TestEncode_ThresholdExcludesBoundary(t *testing.T) {
	dir := testDirectory(t,
		feature.NewIdentity("at", ""),
		feature.NewIdentity("above", ""),
		feature.NewIdentity("below", ""),
	)

	encoder, err := NewEncoder(WithSignificanceThreshold(0.5))
	require.NoError(t, err)

	// Retention requires abs(value) strictly greater than the threshold.
	entries, err := encoder.Encode(vector.Dense{0.5, 0.500001, -0.4}, dir)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "above", entries[0].Identity.Name)

	for _, entry := range entries {
		assert.Greater(t, math.Abs(entry.Value), 0.5)
	}
}

func TestEncode_NegativeZeroDropped(t *testing.T) {
	dir := testDirectory(t, feature.NewIdentity("a", ""))

	encoder, err := NewEncoder()
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{math.Copysign(0, -1)}, dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncode_SparseDenseEquivalence(t *testing.T) {
	dir := testDirectory(t,
		feature.NewIdentity("a", ""),
		feature.NewIdentity("b", ""),
		feature.NewIdentity("c", ""),
		feature.NewIdentity("d", ""),
	)

	dense := vector.Dense{0, 7.0, 0, -2.0}

	sparse, err := vector.NewSparse(4)
	require.NoError(t, err)
	require.NoError(t, sparse.Set(3, -2.0))
	require.NoError(t, sparse.Set(1, 7.0))

	encoder, err := NewEncoder()
	require.NoError(t, err)

	fromDense, err := encoder.Encode(dense, dir)
	require.NoError(t, err)
	fromSparse, err := encoder.Encode(sparse, dir)
	require.NoError(t, err)

	// No equal magnitudes in the fixture, so the sequences must be identical.
	assert.Equal(t, fromDense, fromSparse)
}

func TestEncode_UnmappedIndexFails(t *testing.T) {
	// Directory narrower than the vector: a nonzero at index 2 cannot resolve.
	dir := testDirectory(t,
		feature.NewIdentity("a", ""),
		feature.NewIdentity("b", ""),
	)

	encoder, err := NewEncoder()
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{1.0, 0, 9.0}, dir)
	require.ErrorIs(t, err, errs.ErrUnmappedIndex)
	assert.Nil(t, entries, "no partial output on failure")
}

func TestEncode_UnmappedZeroNeverResolved(t *testing.T) {
	// A zero beyond the directory is filtered before resolution, so the
	// narrow directory is not an error.
	dir := testDirectory(t, feature.NewIdentity("a", ""))

	encoder, err := NewEncoder()
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{4.0, 0.0}, dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Identity.Name)
}

func TestEncode_NilInputs(t *testing.T) {
	dir := testDirectory(t, feature.NewIdentity("a", ""))
	encoder, err := NewEncoder()
	require.NoError(t, err)

	_, err = encoder.Encode(nil, dir)
	require.ErrorIs(t, err, errs.ErrNilVector)

	_, err = encoder.Encode(vector.Dense{1.0}, nil)
	require.ErrorIs(t, err, errs.ErrNilDirectory)
}

func TestEncode_EmptyResultIsNonNil(t *testing.T) {
	dir := testDirectory(t, feature.NewIdentity("a", ""))
	encoder, err := NewEncoder()
	require.NoError(t, err)

	entries, err := encoder.Encode(vector.Dense{0.0}, dir)
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestNewEncoder_InvalidThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
	}{
		{"negative", -1e-9},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder(WithSignificanceThreshold(tt.threshold))
			require.ErrorIs(t, err, errs.ErrInvalidThreshold)
		})
	}
}

func TestNewEncoder_DefaultThreshold(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	assert.Equal(t, DefaultSignificanceThreshold, encoder.SignificanceThreshold())
}
