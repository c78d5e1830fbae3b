package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/featrec/compress"
	"github.com/arloliu/featrec/endian"
	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/internal/hash"
	"github.com/arloliu/featrec/record"
	"github.com/arloliu/featrec/section"
)

// RecordDecoder deserializes one binary container back into a model record.
//
// Note: The RecordDecoder is NOT reusable. Create a new decoder for each
// container.
type RecordDecoder struct {
	data    []byte
	header  section.Header
	engine  endian.EndianEngine
	modelID string
}

// NewRecordDecoder creates a decoder for the given container bytes.
//
// The decoder validates the header, section offsets and the model ID section
// but does not decompress payloads until Decode is called.
//
// Returns:
//   - *RecordDecoder: Decoder ready for Decode
//   - error: Header parsing or offset validation errors
func NewRecordDecoder(data []byte) (*RecordDecoder, error) {
	decoder := &RecordDecoder{data: data}

	if err := decoder.parseHeader(); err != nil {
		return nil, err
	}

	return decoder, nil
}

// ModelID returns the model identifier stored in the container.
func (d *RecordDecoder) ModelID() string {
	return d.modelID
}

func (d *RecordDecoder) parseHeader() error {
	header, err := section.ParseHeader(d.data)
	if err != nil {
		return err
	}
	d.header = header
	d.engine = header.Flag.GetEndianEngine()

	// Model ID section directly follows the header.
	if len(d.data) < section.HeaderSize+2 {
		return fmt.Errorf("%w: missing model ID length", errs.ErrInvalidIndexOffset)
	}
	idLen := int(d.engine.Uint16(d.data[section.HeaderSize:]))

	wantIndexOffset := section.HeaderSize + 2 + idLen
	if int(header.IndexOffset) != wantIndexOffset || wantIndexOffset > len(d.data) {
		return fmt.Errorf("%w: index offset %d, expected %d", errs.ErrInvalidIndexOffset, header.IndexOffset, wantIndexOffset)
	}
	d.modelID = string(d.data[section.HeaderSize+2 : wantIndexOffset])

	total := int(header.MeanCount) + int(header.VarianceCount)
	wantIdentityOffset := wantIndexOffset + total*section.IndexEntrySize
	if int(header.IdentityPayloadOffset) != wantIdentityOffset || wantIdentityOffset > len(d.data) {
		return fmt.Errorf("%w: identity payload offset %d, expected %d",
			errs.ErrInvalidIdentityPayloadOffset, header.IdentityPayloadOffset, wantIdentityOffset)
	}

	if int(header.ValuePayloadOffset) < wantIdentityOffset || int(header.ValuePayloadOffset) > len(d.data) {
		return fmt.Errorf("%w: value payload offset %d", errs.ErrInvalidValuePayloadOffset, header.ValuePayloadOffset)
	}

	if header.VarianceCount > 0 && !header.Flag.HasVariances() {
		return fmt.Errorf("%w: %d variance entries without variance flag", errs.ErrInvalidHeaderFlags, header.VarianceCount)
	}

	return nil
}

// Decode deserializes the container into a record.
//
// Every identity string is verified against the xxHash64 ID stored in its
// index entry, so a corrupted identity or index section fails loudly instead
// of resolving to the wrong feature.
//
// Returns:
//   - *record.Record: Record with entry order exactly as persisted
//   - error: Decompression errors, ErrTruncatedPayload, or ErrHashMismatch
func (d *RecordDecoder) Decode() (*record.Record, error) {
	total := int(d.header.MeanCount) + int(d.header.VarianceCount)

	// Parse index entries.
	indexEntries := make([]section.IndexEntry, total)
	identityBytes := 0
	for i := range indexEntries {
		indexEntries[i] = section.ParseIndexEntry(d.data, int(d.header.IndexOffset)+i*section.IndexEntrySize, d.engine)
		identityBytes += int(indexEntries[i].NameLength) + int(indexEntries[i].TermLength)
	}

	// Decompress payloads.
	identityCodec, err := compress.CreateCodec(d.header.Flag.IdentityCompressionType(), "identity")
	if err != nil {
		return nil, err
	}
	valueCodec, err := compress.CreateCodec(d.header.Flag.ValueCompressionType(), "value")
	if err != nil {
		return nil, err
	}

	identityPayload, err := identityCodec.Decompress(d.data[d.header.IdentityPayloadOffset:d.header.ValuePayloadOffset])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress identity payload: %w", err)
	}
	valuePayload, err := valueCodec.Decompress(d.data[d.header.ValuePayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress value payload: %w", err)
	}

	if len(identityPayload) != identityBytes {
		return nil, fmt.Errorf("%w: identity payload %d bytes, index describes %d",
			errs.ErrTruncatedPayload, len(identityPayload), identityBytes)
	}
	if len(valuePayload) != total*8 {
		return nil, fmt.Errorf("%w: value payload %d bytes, expected %d",
			errs.ErrTruncatedPayload, len(valuePayload), total*8)
	}

	// Rebuild and verify entries in persisted order.
	entries := make([]feature.Entry, total)
	identityOffset := 0
	for i, indexEntry := range indexEntries {
		name := string(identityPayload[identityOffset : identityOffset+int(indexEntry.NameLength)])
		identityOffset += int(indexEntry.NameLength)
		term := string(identityPayload[identityOffset : identityOffset+int(indexEntry.TermLength)])
		identityOffset += int(indexEntry.TermLength)

		if id := hash.ID(name, term); id != indexEntry.ID {
			return nil, fmt.Errorf("%w: entry %d %q/%q: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, i, name, term, indexEntry.ID, id)
		}

		entries[i] = feature.Entry{
			Identity: feature.NewIdentity(name, term),
			Value:    math.Float64frombits(d.engine.Uint64(valuePayload[i*8 : i*8+8])),
		}
	}

	rec := &record.Record{
		ModelID: d.modelID,
		Means:   entries[:d.header.MeanCount],
	}

	if d.header.Flag.HasVariances() {
		// Slice is non-nil even when empty, keeping "present but empty"
		// distinct from "absent".
		rec.Variances = entries[d.header.MeanCount:]
	}

	return rec, nil
}
