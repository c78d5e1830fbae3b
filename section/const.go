package section

import "math"

const (
	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0): 0=little, 1=big
	VariancesMask    = 0x0002 // Mask for has-variances bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicRecordV1Opt is the version 1 magic number for the model record container.
	MagicRecordV1Opt = 0xFC10
)

// Offsets and section sizes in the container.
const (
	HeaderSize     = 32             // fixed header size in bytes
	IndexEntrySize = 16             // fixed index entry size in bytes
	MaxModelIDLen  = math.MaxUint16 // maximum model identifier length in bytes
	MaxComponent   = math.MaxUint16 // maximum feature name/term length in bytes

	// MaxEntryCount is the maximum number of entries per sequence. It is
	// derived so the header, model ID, index and uncompressed value sections
	// of a container holding two full sequences always fit in the uint32
	// section offsets. The identity payload varies with string lengths and
	// is bounded at encode time instead.
	MaxEntryCount = (math.MaxUint32 - HeaderSize - 2 - MaxModelIDLen) / (2 * (IndexEntrySize + 8))
)
