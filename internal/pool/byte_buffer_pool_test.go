package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("abc"))
	require.NoError(t, bb.WriteByte('d'))

	assert.Equal(t, []byte("abcd"), bb.Bytes())
	assert.Equal(t, 4, bb.Len())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 16, "reset keeps capacity")
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(1024)
	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 1024)
	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes(), "grow preserves content")
}

func TestByteBufferPoolReuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len(), "buffers come back reset")
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	// Must not panic; oversized buffer is dropped instead of pooled.
	p.Put(bb)
	p.Put(nil)
}

func TestDefaultRecordPool(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{0xFC})
	PutRecordBuffer(bb)
}
