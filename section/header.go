package section

import "github.com/arloliu/featrec/errs"

// Header represents the fixed-size header at the start of the record container.
type Header struct {
	// MeanCount is the number of mean/coefficient entries. byte offset 4-7
	MeanCount uint32
	// VarianceCount is the number of variance entries; zero when variances
	// are absent or present-but-empty (the flag disambiguates). byte offset 8-11
	VarianceCount uint32
	// IndexOffset is the byte offset to the start of the index entry section,
	// after the header and the model ID section. byte offset 12-15
	IndexOffset uint32
	// IdentityPayloadOffset is the byte offset to the start of the compressed
	// identity payload, after the index entries. byte offset 16-19
	IdentityPayloadOffset uint32
	// ValuePayloadOffset is the byte offset to the start of the compressed
	// value payload, after the identity payload. byte offset 20-23
	ValuePayloadOffset uint32

	// Flag is the packed options field. byte offset 0-3
	// Bytes 24-31 are reserved and must be zero.
	Flag Flag
}

// NewHeader creates a header with default flags. Counts and payload offsets
// are filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than 32 bytes, or flag
//     validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field is always little-endian so the decoder can bootstrap
	// the byte order of the remaining fields.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.IdentityCompression = data[2]
	h.Flag.ValueCompression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.MeanCount = engine.Uint32(data[4:8])
	h.VarianceCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.IdentityPayloadOffset = engine.Uint32(data[16:20])
	h.ValuePayloadOffset = engine.Uint32(data[20:24])

	return nil
}

// Bytes serializes the header into a fresh 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.IdentityCompression
	b[3] = h.Flag.ValueCompression

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.MeanCount)
	engine.PutUint32(b[8:12], h.VarianceCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.IdentityPayloadOffset)
	engine.PutUint32(b[20:24], h.ValuePayloadOffset)
	// bytes 24-31 stay zero (reserved)

	return b
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
