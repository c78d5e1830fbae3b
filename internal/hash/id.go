package hash

import "github.com/cespare/xxhash/v2"

// separator is written between the name and term components so that
// ("ab", "c") and ("a", "bc") never hash to the same ID. NUL cannot appear
// in a well-formed feature name.
var separator = []byte{0x00}

// ID computes the xxHash64 of a (name, term) feature identity.
func ID(name string, term string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write(separator)
	_, _ = d.WriteString(term)

	return d.Sum64()
}
