// Package errs defines the sentinel errors shared across featrec packages.
//
// Callers should match errors with errors.Is since most call sites wrap these
// sentinels with additional context via fmt.Errorf and the %w verb.
package errs

import "errors"

// Encoding errors.
var (
	// ErrUnmappedIndex indicates a retained vector index has no feature identity
	// in the supplied directory. The enclosing encode call fails without output.
	ErrUnmappedIndex = errors.New("vector index has no feature identity")

	// ErrNilVector indicates a nil vector was passed to an encode operation.
	ErrNilVector = errors.New("vector is nil")

	// ErrInvalidThreshold indicates a negative or non-finite significance threshold.
	ErrInvalidThreshold = errors.New("invalid significance threshold")
)

// Decoding errors.
var (
	// ErrNilEntries indicates the entry sequence passed to decode is absent.
	// An empty (non-nil) sequence is valid and decodes to an all-zero vector.
	ErrNilEntries = errors.New("entry sequence is nil")

	// ErrNilDirectory indicates the feature directory passed to a codec
	// operation is absent.
	ErrNilDirectory = errors.New("feature directory is nil")
)

// Directory errors.
var (
	// ErrInvalidIdentity indicates a feature identity with an empty name.
	ErrInvalidIdentity = errors.New("invalid feature identity")

	// ErrDuplicateIdentity indicates the same feature identity was registered twice.
	ErrDuplicateIdentity = errors.New("duplicate feature identity")
)

// Vector errors.
var (
	// ErrIndexOutOfRange indicates a vector index outside [0, dimension).
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrLengthMismatch indicates parallel index/value slices of different lengths.
	ErrLengthMismatch = errors.New("index and value slice lengths mismatch")

	// ErrInvalidDimension indicates a negative vector dimension.
	ErrInvalidDimension = errors.New("invalid vector dimension")
)

// Record container errors.
var (
	// ErrNilRecord indicates a nil record was passed to the container encoder.
	ErrNilRecord = errors.New("record is nil")

	// ErrModelIDTooLong indicates a model identifier exceeding the uint16 length prefix.
	ErrModelIDTooLong = errors.New("model identifier too long")

	// ErrIdentityTooLong indicates a feature name or term exceeding the uint16 length field.
	ErrIdentityTooLong = errors.New("feature identity component too long")

	// ErrEntryCountExceeded indicates more entries than the container format can index.
	ErrEntryCountExceeded = errors.New("entry count exceeded")

	// ErrContainerTooLarge indicates a container whose section offsets would
	// not fit in the 32-bit header fields.
	ErrContainerTooLarge = errors.New("container too large")

	// ErrInvalidHeaderSize indicates a container header shorter than the fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates data that is not a featrec record container.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates reserved flag bits set or unknown compression types.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidIndexOffset indicates an index section offset outside the container bounds.
	ErrInvalidIndexOffset = errors.New("invalid index section offset")

	// ErrInvalidIdentityPayloadOffset indicates an identity payload offset outside the container bounds.
	ErrInvalidIdentityPayloadOffset = errors.New("invalid identity payload offset")

	// ErrInvalidValuePayloadOffset indicates a value payload offset outside the container bounds.
	ErrInvalidValuePayloadOffset = errors.New("invalid value payload offset")

	// ErrTruncatedPayload indicates a payload shorter than its index entries describe.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrHashMismatch indicates an identity string whose hash does not match its index entry.
	ErrHashMismatch = errors.New("identity hash mismatch")
)

// Bulk loading errors.
var (
	// ErrNoInputPaths indicates an empty partition path list.
	ErrNoInputPaths = errors.New("no input paths")

	// ErrEmptyInputPath indicates a blank path in the partition path list.
	ErrEmptyInputPath = errors.New("empty input path")

	// ErrTooFewPartitions indicates fewer partition files than the configured minimum.
	ErrTooFewPartitions = errors.New("too few partitions")

	// ErrDuplicateModelID indicates two partition files carrying the same model identifier.
	ErrDuplicateModelID = errors.New("duplicate model identifier")

	// ErrInvalidConcurrency indicates a non-positive loader concurrency limit.
	ErrInvalidConcurrency = errors.New("invalid concurrency limit")
)
