package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/featrec/compress"
	"github.com/arloliu/featrec/endian"
	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/format"
	"github.com/arloliu/featrec/internal/options"
	"github.com/arloliu/featrec/internal/pool"
	"github.com/arloliu/featrec/record"
	"github.com/arloliu/featrec/section"
)

// RecordEncoderOption configures a RecordEncoder.
type RecordEncoderOption = options.Option[*RecordEncoder]

// WithLittleEndian encodes container fields in little-endian byte order (default).
func WithLittleEndian() RecordEncoderOption {
	return options.NoError(func(e *RecordEncoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian encodes container fields in big-endian byte order.
func WithBigEndian() RecordEncoderOption {
	return options.NoError(func(e *RecordEncoder) {
		e.flag.WithBigEndian()
	})
}

// WithIdentityCompression sets the compression for the identity payload.
// The default is Zstd; identity strings share long prefixes and compress well.
func WithIdentityCompression(compression format.CompressionType) RecordEncoderOption {
	return options.NoError(func(e *RecordEncoder) {
		e.flag.SetIdentityCompression(compression)
	})
}

// WithValueCompression sets the compression for the float64 value payload.
// The default is None; coefficient values rarely compress.
func WithValueCompression(compression format.CompressionType) RecordEncoderOption {
	return options.NoError(func(e *RecordEncoder) {
		e.flag.SetValueCompression(compression)
	})
}

// RecordEncoder serializes model records into the binary container format.
//
// The encoder is stateless between Encode calls and safe for concurrent use.
type RecordEncoder struct {
	flag          section.Flag
	engine        endian.EndianEngine
	identityCodec compress.Codec
	valueCodec    compress.Codec
}

// NewRecordEncoder creates a RecordEncoder with the given options.
//
// Returns:
//   - *RecordEncoder: Encoder ready for any number of Encode calls
//   - error: Invalid option or unknown compression type
func NewRecordEncoder(opts ...RecordEncoderOption) (*RecordEncoder, error) {
	encoder := &RecordEncoder{
		flag: section.NewFlag(),
	}

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	encoder.engine = encoder.flag.GetEndianEngine()

	var err error
	encoder.identityCodec, err = compress.CreateCodec(encoder.flag.IdentityCompressionType(), "identity")
	if err != nil {
		return nil, err
	}
	encoder.valueCodec, err = compress.CreateCodec(encoder.flag.ValueCompressionType(), "value")
	if err != nil {
		return nil, err
	}

	return encoder, nil
}

// Encode serializes one record into a complete container byte slice.
//
// Returns:
//   - []byte: Complete container with header, model ID, index entries and
//     compressed payloads
//   - error: ErrNilRecord, ErrModelIDTooLong, ErrIdentityTooLong,
//     ErrEntryCountExceeded, or a payload compression error
func (e *RecordEncoder) Encode(rec *record.Record) ([]byte, error) {
	if rec == nil {
		return nil, errs.ErrNilRecord
	}

	if len(rec.ModelID) > section.MaxModelIDLen {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrModelIDTooLong, len(rec.ModelID))
	}

	if uint64(len(rec.Means)) > section.MaxEntryCount || uint64(len(rec.Variances)) > section.MaxEntryCount {
		return nil, fmt.Errorf("%w: %d means, %d variances", errs.ErrEntryCountExceeded, len(rec.Means), len(rec.Variances))
	}

	total := len(rec.Means) + len(rec.Variances)

	// Assemble index entries and both payloads in entry order, means first.
	indexEntries := make([]section.IndexEntry, 0, total)

	identityBuf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(identityBuf)

	valueBuf := make([]byte, 0, total*8)

	appendSequence := func(entries []feature.Entry) error {
		for _, entry := range entries {
			name, term := entry.Identity.Name, entry.Identity.Term
			if len(name) > section.MaxComponent || len(term) > section.MaxComponent {
				return fmt.Errorf("%w: %s", errs.ErrIdentityTooLong, entry.Identity)
			}

			indexEntries = append(indexEntries, section.NewIndexEntry(
				entry.Identity.ID(), uint16(len(name)), uint16(len(term)))) //nolint: gosec

			identityBuf.Grow(len(name) + len(term))
			identityBuf.MustWrite([]byte(name))
			identityBuf.MustWrite([]byte(term))

			valueBuf = e.engine.AppendUint64(valueBuf, math.Float64bits(entry.Value))
		}

		return nil
	}

	if err := appendSequence(rec.Means); err != nil {
		return nil, err
	}
	if err := appendSequence(rec.Variances); err != nil {
		return nil, err
	}

	identityPayload, err := e.identityCodec.Compress(identityBuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress identity payload: %w", err)
	}
	valuePayload, err := e.valueCodec.Compress(valueBuf)
	if err != nil {
		return nil, fmt.Errorf("failed to compress value payload: %w", err)
	}

	modelIDSize := 2 + len(rec.ModelID)
	indexSize := section.IndexEntrySize * total

	blobSize := section.HeaderSize + modelIDSize + indexSize + len(identityPayload) + len(valuePayload)
	if uint64(blobSize) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrContainerTooLarge, blobSize)
	}

	// Finalize header with counts and section offsets.
	header := section.NewHeader()
	header.Flag = e.flag
	header.Flag.SetHasVariances(rec.HasVariances())
	header.MeanCount = uint32(len(rec.Means))         //nolint: gosec
	header.VarianceCount = uint32(len(rec.Variances)) //nolint: gosec

	header.IndexOffset = uint32(section.HeaderSize + modelIDSize)                           //nolint: gosec
	header.IdentityPayloadOffset = header.IndexOffset + uint32(indexSize)                   //nolint: gosec
	header.ValuePayloadOffset = header.IdentityPayloadOffset + uint32(len(identityPayload)) //nolint: gosec

	blob := make([]byte, blobSize)
	offset := 0

	offset += copy(blob[offset:], header.Bytes())

	e.engine.PutUint16(blob[offset:], uint16(len(rec.ModelID))) //nolint: gosec
	offset += 2
	offset += copy(blob[offset:], rec.ModelID)

	for i, entry := range indexEntries {
		entry.WriteToSlice(blob, offset+i*section.IndexEntrySize, e.engine)
	}
	offset += indexSize

	offset += copy(blob[offset:], identityPayload)
	copy(blob[offset:], valuePayload)

	return blob, nil
}
