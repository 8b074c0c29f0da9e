package explode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReaderLSBFirst(t *testing.T) {
	br := bitReader{src: &sliceByteReader{data: []byte{0xA5, 0x3C}}}
	require.NoError(t, br.fill(16))
	assert.Equal(t, uint(16), br.n)

	assert.Equal(t, uint32(1), br.take(1))
	assert.Equal(t, uint32(0x2), br.take(3)) // 0xA5 = 1010_0101 -> bits 1..3 = 010
	assert.Equal(t, uint32(0xA), br.take(4))
	assert.Equal(t, uint32(0x3C), br.peek(8))
	assert.Equal(t, uint(8), br.n)
}

func TestBitReaderFillAppendsAbove(t *testing.T) {
	br := bitReader{src: &sliceByteReader{data: []byte{0xFF, 0x01}}}
	require.NoError(t, br.fill(8))
	br.consume(4)
	require.NoError(t, br.fill(8))
	assert.Equal(t, uint(12), br.n)
	assert.Equal(t, uint32(0x01F), br.peek(12))
}

func TestBitReaderExhausted(t *testing.T) {
	br := bitReader{src: &sliceByteReader{data: []byte{0x01}}}
	err := br.fill(9)
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestBitReaderTakeZero(t *testing.T) {
	br := bitReader{src: &sliceByteReader{data: []byte{0xFF}}}
	require.NoError(t, br.fill(8))
	assert.Zero(t, br.take(0))
	assert.Equal(t, uint(8), br.n)
}
