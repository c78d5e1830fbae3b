package section

import (
	"fmt"

	"github.com/arloliu/featrec/endian"
	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/format"
)

// Flag represents the packed option bytes at the start of the record header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is the has-variances flag.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the container format:
	//   - 0xFC10: model record container format v1
	Options uint16

	// IdentityCompression is the compression applied to the identity payload.
	IdentityCompression uint8
	// ValueCompression is the compression applied to the value payload.
	ValueCompression uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a Flag with default settings: little-endian, no variances,
// Zstd identity payload, uncompressed value payload.
func NewFlag() Flag {
	return Flag{
		Options:             MagicRecordV1Opt,
		IdentityCompression: uint8(format.CompressionZstd),
		ValueCompression:    uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the container data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian marks the container as little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian marks the container as big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// HasVariances returns whether the record carries a variance entry sequence.
// An empty-but-present sequence still sets this flag; absence clears it.
func (f Flag) HasVariances() bool {
	return (f.Options & VariancesMask) != 0
}

// SetHasVariances enables or disables the variance sequence flag.
func (f *Flag) SetHasVariances(enabled bool) {
	if enabled {
		f.Options |= VariancesMask
	} else {
		f.Options &^= VariancesMask
	}
}

// IdentityCompressionType returns the identity payload compression as a format enum.
func (f Flag) IdentityCompressionType() format.CompressionType {
	return format.CompressionType(f.IdentityCompression)
}

// SetIdentityCompression sets the identity payload compression.
func (f *Flag) SetIdentityCompression(c format.CompressionType) {
	f.IdentityCompression = uint8(c)
}

// ValueCompressionType returns the value payload compression as a format enum.
func (f Flag) ValueCompressionType() format.CompressionType {
	return format.CompressionType(f.ValueCompression)
}

// SetValueCompression sets the value payload compression.
func (f *Flag) SetValueCompression(c format.CompressionType) {
	f.ValueCompression = uint8(c)
}

// Validate checks the magic number, reserved bits and compression enums.
func (f Flag) Validate() error {
	if f.Options&MagicNumberMask != MagicRecordV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.Options&MagicNumberMask)
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}

	if _, ok := validCompressions[f.IdentityCompression]; !ok {
		return fmt.Errorf("%w: identity compression 0x%02x", errs.ErrInvalidHeaderFlags, f.IdentityCompression)
	}

	if _, ok := validCompressions[f.ValueCompression]; !ok {
		return fmt.Errorf("%w: value compression 0x%02x", errs.ErrInvalidHeaderFlags, f.ValueCompression)
	}

	return nil
}
