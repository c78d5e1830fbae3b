package feature

import (
	"fmt"
	"iter"

	"github.com/arloliu/featrec/errs"
)

// Directory is an immutable bidirectional association between integer vector
// indices [0, N) and feature identities.
//
// A directory is built once by upstream feature interning and then shared
// read-only by any number of concurrent encode/decode calls. The record codec
// only needs its three lookups: dimension, index→identity, identity→index.
type Directory struct {
	identities []Identity
	index      map[Identity]int
}

// NewDirectory creates a directory from identities listed in index order.
//
// Returns:
//   - *Directory: Directory with Dimension() == len(identities)
//   - error: ErrInvalidIdentity for an empty feature name, or
//     ErrDuplicateIdentity if the same identity appears twice
func NewDirectory(identities []Identity) (*Directory, error) {
	b := NewDirectoryBuilder(len(identities))
	for _, id := range identities {
		if _, err := b.Add(id); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Dimension returns the number of indexed features, N.
func (d *Directory) Dimension() int {
	return len(d.identities)
}

// Identity resolves a vector index to its feature identity.
// The second return value reports whether the index is within [0, N).
func (d *Directory) Identity(index int) (Identity, bool) {
	if index < 0 || index >= len(d.identities) {
		return Identity{}, false
	}

	return d.identities[index], true
}

// Index resolves a feature identity to its vector index.
// The second return value reports whether the identity is known.
func (d *Directory) Index(id Identity) (int, bool) {
	index, ok := d.index[id]
	return index, ok
}

// All returns an iterator over (index, identity) pairs in index order.
func (d *Directory) All() iter.Seq2[int, Identity] {
	return func(yield func(int, Identity) bool) {
		for i, id := range d.identities {
			if !yield(i, id) {
				return
			}
		}
	}
}

// DirectoryBuilder accumulates identities and assigns them consecutive indices.
//
// The builder is single-use: Build returns the finished directory and further
// Add calls after Build are not supported.
type DirectoryBuilder struct {
	identities []Identity
	index      map[Identity]int
}

// NewDirectoryBuilder creates a builder with capacity for sizeHint identities.
func NewDirectoryBuilder(sizeHint int) *DirectoryBuilder {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &DirectoryBuilder{
		identities: make([]Identity, 0, sizeHint),
		index:      make(map[Identity]int, sizeHint),
	}
}

// Add registers an identity and returns its assigned index.
//
// Returns:
//   - int: Index assigned to the identity (consecutive, starting at 0)
//   - error: ErrInvalidIdentity for an empty feature name, or
//     ErrDuplicateIdentity if the identity was already added
func (b *DirectoryBuilder) Add(id Identity) (int, error) {
	if id.Name == "" {
		return 0, fmt.Errorf("%w: empty feature name (term %q)", errs.ErrInvalidIdentity, id.Term)
	}

	if existing, ok := b.index[id]; ok {
		return 0, fmt.Errorf("%w: %s already registered at index %d", errs.ErrDuplicateIdentity, id, existing)
	}

	index := len(b.identities)
	b.identities = append(b.identities, id)
	b.index[id] = index

	return index, nil
}

// Build finalizes the directory.
func (b *DirectoryBuilder) Build() *Directory {
	return &Directory{
		identities: b.identities,
		index:      b.index,
	}
}
