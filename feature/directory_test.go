package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/featrec/errs"
)

func TestNewDirectory(t *testing.T) {
	identities := []Identity{
		NewIdentity("intercept", ""),
		NewIdentity("country", "us"),
		NewIdentity("country", "uk"),
	}

	dir, err := NewDirectory(identities)
	require.NoError(t, err)
	assert.Equal(t, 3, dir.Dimension())

	for i, want := range identities {
		got, ok := dir.Identity(i)
		require.True(t, ok)
		assert.Equal(t, want, got)

		index, ok := dir.Index(want)
		require.True(t, ok)
		assert.Equal(t, i, index)
	}
}

func TestDirectoryUnknownLookups(t *testing.T) {
	dir, err := NewDirectory([]Identity{NewIdentity("country", "us")})
	require.NoError(t, err)

	_, ok := dir.Identity(-1)
	assert.False(t, ok)
	_, ok = dir.Identity(1)
	assert.False(t, ok)

	_, ok = dir.Index(NewIdentity("country", "uk"))
	assert.False(t, ok)
}

func TestNewDirectoryDuplicate(t *testing.T) {
	_, err := NewDirectory([]Identity{
		NewIdentity("country", "us"),
		NewIdentity("country", "us"),
	})
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestNewDirectoryEmptyName(t *testing.T) {
	_, err := NewDirectory([]Identity{NewIdentity("", "us")})
	require.ErrorIs(t, err, errs.ErrInvalidIdentity)
}

func TestDirectoryBuilderAssignsConsecutiveIndices(t *testing.T) {
	b := NewDirectoryBuilder(0)

	first, err := b.Add(NewIdentity("country", "us"))
	require.NoError(t, err)
	second, err := b.Add(NewIdentity("country", "uk"))
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	dir := b.Build()
	assert.Equal(t, 2, dir.Dimension())
}

func TestDirectoryAllIteration(t *testing.T) {
	dir, err := NewDirectory([]Identity{
		NewIdentity("a", "1"),
		NewIdentity("b", "2"),
	})
	require.NoError(t, err)

	var indices []int
	var names []string
	for i, id := range dir.All() {
		indices = append(indices, i)
		names = append(names, id.Name)
	}
	assert.Equal(t, []int{0, 1}, indices)
	assert.Equal(t, []string{"a", "b"}, names)

	// Early break must stop iteration.
	count := 0
	for range dir.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestEmptyDirectory(t *testing.T) {
	dir, err := NewDirectory(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dir.Dimension())
}
