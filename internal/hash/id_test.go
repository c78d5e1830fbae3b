package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		term string
	}{
		{"empty components", "", ""},
		{"empty term", "intercept", ""},
		{"short pair", "country", "us"},
		{"long pair", "user.agent.normalized.family", "mobile-safari-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ID(tt.fn, tt.term), ID(tt.fn, tt.term))
		})
	}
}

func TestID_ComponentBoundary(t *testing.T) {
	// The separator must keep ("ab","c") and ("a","bc") apart even though the
	// concatenated bytes are identical.
	assert.NotEqual(t, ID("ab", "c"), ID("a", "bc"))
	assert.NotEqual(t, ID("abc", ""), ID("", "abc"))
}

func TestID_DistinctInputs(t *testing.T) {
	seen := make(map[uint64]string)
	pairs := [][2]string{
		{"country", "us"},
		{"country", "uk"},
		{"device", "us"},
		{"country", "US"},
		{"", "us"},
	}
	for _, p := range pairs {
		id := ID(p[0], p[1])
		prev, exists := seen[id]
		assert.False(t, exists, "unexpected collision between %q and %v", prev, p)
		seen[id] = p[0] + "/" + p[1]
	}
}

func BenchmarkID(b *testing.B) {
	for b.Loop() {
		ID("user.agent.normalized.family", "mobile-safari-15")
	}
}
