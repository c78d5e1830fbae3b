// Package featrec converts between numeric feature vectors and named,
// human-readable model records.
//
// A trained linear model stores its coefficients as a vector indexed by
// feature position. Featrec turns such a vector into a list of
// (name, term, value) entries ordered by descending magnitude, and turns a
// list of entries back into a dense vector, using a feature directory as the
// index-to-identity mapping.
//
// # Core Features
//
//   - Significance filtering: near-zero coefficients are dropped on encode
//   - Magnitude ordering: the most influential features come first
//   - Dense and sparse vector inputs, identical output for equal contents
//   - Tolerant decoding: entries whose identity is unknown to the directory
//     are skipped, so records survive feature-set drift between model versions
//   - Self-describing binary container with xxHash64 identity verification
//     and per-payload compression (None, Zstd, S2, LZ4)
//   - Concurrent bulk loading of partitioned record files
//
// # Basic Usage
//
// Encoding a coefficient vector into named entries:
//
//	import "github.com/arloliu/featrec"
//
//	builder := feature.NewDirectoryBuilder(3)
//	builder.Add(feature.NewIdentity("country", "us"))
//	builder.Add(feature.NewIdentity("device", "mobile"))
//	builder.Add(feature.NewIdentity("intercept", ""))
//	dir := builder.Build()
//
//	means := vector.Dense{0.0021, -1.75, 0.33}
//	entries, _ := featrec.EncodeVector(means, dir)
//	for _, entry := range entries {
//	    fmt.Printf("%s = %g\n", entry.Identity, entry.Value)
//	}
//
// Decoding entries back into a dense vector:
//
//	vec, _ := featrec.DecodeEntries(entries, dir)
//
// Persisting a record as a binary container:
//
//	rec, _ := featrec.BuildRecord("ctr-model-42", means, nil, dir)
//	data, _ := featrec.MarshalRecord(rec)
//	loaded, _ := featrec.UnmarshalRecord(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the record and
// blob packages, simplifying the most common use cases. For fine-grained
// control (custom thresholds, compression choices, decode logging), use the
// record and blob packages directly.
package featrec

import (
	"github.com/arloliu/featrec/blob"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/format"
	"github.com/arloliu/featrec/internal/hash"
	"github.com/arloliu/featrec/record"
	"github.com/arloliu/featrec/vector"
)

var defaultRecordOptions = []blob.RecordEncoderOption{
	blob.WithLittleEndian(),
	blob.WithIdentityCompression(format.CompressionZstd),
	blob.WithValueCompression(format.CompressionNone),
}

// FeatureID computes the 64-bit xxHash64 identifier of a feature identity.
//
// The same (name, term) pair always produces the same ID, so IDs can be
// computed independently by writers and readers. The binary container stores
// this ID in each index entry and verifies it against the identity string on
// decode.
//
// Parameters:
//   - name: Feature family name, e.g. "country"
//   - term: Feature term within the family, e.g. "us"; may be empty
//
// Returns:
//   - uint64: The xxHash64 identity ID
//
// Example:
//
//	id := featrec.FeatureID("country", "us")
func FeatureID(name string, term string) uint64 {
	return hash.ID(name, term)
}

// EncodeVector converts a feature vector into named entries ordered by
// descending absolute value.
//
// Values with an absolute value at or below the significance threshold are
// dropped. If any surviving index has no identity in the directory, encoding
// fails and no partial output is returned.
//
// Parameters:
//   - vec: Dense or sparse coefficient vector
//   - dir: Directory mapping vector indices to feature identities
//   - opts: Optional configuration (see record.EncoderOption)
//
// Returns:
//   - []feature.Entry: Entries ordered by descending magnitude; empty but
//     non-nil when nothing survives the threshold
//   - error: Nil-input, threshold or unmapped-index errors
//
// Example:
//
//	entries, err := featrec.EncodeVector(means, dir,
//	    record.WithSignificanceThreshold(1e-6),
//	)
func EncodeVector(vec vector.Vector, dir *feature.Directory, opts ...record.EncoderOption) ([]feature.Entry, error) {
	encoder, err := record.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(vec, dir)
}

// DecodeEntries converts named entries back into a dense vector of the
// directory's dimension.
//
// Entries whose identity is not present in the directory are skipped, so a
// record written against an older or newer feature set still decodes. Use
// record.NewDecoder with record.WithLogger to observe skipped identities.
//
// Parameters:
//   - entries: Named entries; may be empty but not nil
//   - dir: Directory mapping feature identities to vector indices
//
// Returns:
//   - vector.Dense: Dense vector of dimension dir.Dimension()
//   - error: Nil-input errors
//
// Example:
//
//	vec, err := featrec.DecodeEntries(rec.Means, dir)
func DecodeEntries(entries []feature.Entry, dir *feature.Directory) (vector.Dense, error) {
	decoder, err := record.NewDecoder()
	if err != nil {
		return nil, err
	}

	return decoder.Decode(entries, dir)
}

// BuildRecord encodes mean and optional variance vectors into a complete
// model record.
//
// Pass a nil variances vector for models without uncertainty estimates; the
// resulting record distinguishes "no variances" from "variances present but
// all filtered out".
//
// Parameters:
//   - modelID: Identifier of the model the coefficients belong to
//   - means: Mean/coefficient vector
//   - variances: Variance vector, or nil when the model has none
//   - dir: Directory mapping vector indices to feature identities
//   - opts: Optional configuration (see record.EncoderOption)
//
// Returns:
//   - *record.Record: Record with magnitude-ordered entries
//   - error: Encoding errors; no partial record is returned
//
// Example:
//
//	rec, err := featrec.BuildRecord("ctr-model-42", means, variances, dir)
func BuildRecord(modelID string, means vector.Vector, variances vector.Vector, dir *feature.Directory, opts ...record.EncoderOption) (*record.Record, error) {
	return record.Build(modelID, means, variances, dir, opts...)
}

// MarshalRecord serializes a record into the binary container format with
// recommended default settings.
//
// Defaults:
//   - Little-endian byte order (native on x86/x64/ARM)
//   - Zstd compression for the identity payload (string-heavy, compresses well)
//   - No compression for the value payload (raw float64 bits compress poorly)
//
// For custom byte order or compression, use blob.NewRecordEncoder directly.
//
// Parameters:
//   - rec: Record to serialize
//
// Returns:
//   - []byte: Self-describing container bytes
//   - error: Validation or compression errors
//
// Example:
//
//	data, err := featrec.MarshalRecord(rec)
func MarshalRecord(rec *record.Record) ([]byte, error) {
	encoder, err := blob.NewRecordEncoder(defaultRecordOptions...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(rec)
}

// UnmarshalRecord deserializes a binary container into a record.
//
// The container is self-describing: byte order and compression are read from
// the header, and every identity string is verified against its stored
// xxHash64 ID.
//
// Parameters:
//   - data: Container bytes produced by MarshalRecord or blob.RecordEncoder
//
// Returns:
//   - *record.Record: Record with entry order exactly as persisted
//   - error: Header, decompression or integrity errors
//
// Example:
//
//	rec, err := featrec.UnmarshalRecord(data)
func UnmarshalRecord(data []byte) (*record.Record, error) {
	decoder, err := blob.NewRecordDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
