package section

import "github.com/arloliu/featrec/endian"

// IndexEntry is the fixed-size index record for one encoded feature entry.
//
// The 64-bit ID is the xxHash64 of the entry's (name, term) identity. It lets
// a decoder verify the identity payload against the index without re-parsing,
// and gives tools a fixed-stride view of the container. The two length fields
// locate the entry's name and term bytes inside the identity payload, which
// concatenates them in entry order without per-string prefixes.
//
// Layout (16 bytes):
//
//	byte 0-7:   ID (uint64)
//	byte 8-9:   NameLength (uint16)
//	byte 10-11: TermLength (uint16)
//	byte 12-15: reserved, must be zero
type IndexEntry struct {
	ID         uint64
	NameLength uint16
	TermLength uint16
}

// NewIndexEntry creates an index entry for one feature identity.
func NewIndexEntry(id uint64, nameLength uint16, termLength uint16) IndexEntry {
	return IndexEntry{
		ID:         id,
		NameLength: nameLength,
		TermLength: termLength,
	}
}

// WriteToSlice serializes the entry into data at the given offset.
// The caller guarantees data has at least IndexEntrySize bytes at offset.
func (e IndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) {
	engine.PutUint64(data[offset:offset+8], e.ID)
	engine.PutUint16(data[offset+8:offset+10], e.NameLength)
	engine.PutUint16(data[offset+10:offset+12], e.TermLength)
	// bytes 12-15 stay zero (reserved)
}

// ParseIndexEntry deserializes an entry from data at the given offset.
// The caller guarantees data has at least IndexEntrySize bytes at offset.
func ParseIndexEntry(data []byte, offset int, engine endian.EndianEngine) IndexEntry {
	return IndexEntry{
		ID:         engine.Uint64(data[offset : offset+8]),
		NameLength: engine.Uint16(data[offset+8 : offset+10]),
		TermLength: engine.Uint16(data[offset+10 : offset+12]),
	}
}
