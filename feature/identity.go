// Package feature defines the symbolic feature identities and the
// index↔identity directory that the record codec resolves against.
//
// A feature is named by an immutable (name, term) pair rather than by its
// integer index in a coefficient vector. Persisting coefficients against
// identities keeps a model readable even when the index assignment differs
// between the process that saved it and the process that loads it.
package feature

import (
	"fmt"

	"github.com/arloliu/featrec/internal/hash"
)

// Identity is an immutable (name, term) pair naming one feature.
//
// Two identities are equal iff both fields match exactly, so Identity is
// directly usable as a map key. The name carries the feature family
// (e.g. "country") and the term carries the concrete value (e.g. "us");
// features without terms, such as an intercept, use an empty term.
type Identity struct {
	Name string
	Term string
}

// NewIdentity creates a feature identity from its name and term.
func NewIdentity(name string, term string) Identity {
	return Identity{Name: name, Term: term}
}

// ID returns the 64-bit xxHash64 identifier of the identity.
//
// The ID is what the binary record container stores in its fixed-size index
// entries; the identity strings themselves live in a separate payload and the
// decoder cross-checks them against the stored IDs.
func (id Identity) ID() uint64 {
	return hash.ID(id.Name, id.Term)
}

// String returns "name(term)" for logs and error messages.
func (id Identity) String() string {
	return fmt.Sprintf("%s(%s)", id.Name, id.Term)
}
