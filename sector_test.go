package explode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplodeSectorStored(t *testing.T) {
	raw := []byte("stored sector")
	out, err := ExplodeSector(raw, len(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, raw, out)

	out[0] = 'S'
	assert.Equal(t, byte('s'), raw[0], "stored output must not alias the sector")
}

func TestExplodeSectorCompressed(t *testing.T) {
	out, err := ExplodeSector(aiStream, 13, nil)
	require.NoError(t, err)
	assert.Equal(t, "AIAIAIAIAIAIA", string(out))

	_, err = ExplodeSector(aiStream, -1, nil)
	assert.ErrorIs(t, err, ErrNegativeOutLen)
}

func TestDecompressMaskedSector(t *testing.T) {
	sector := append([]byte{CompressionImplode}, aiStream...)
	out, err := DecompressMaskedSector(sector, 13, nil)
	require.NoError(t, err)
	assert.Equal(t, "AIAIAIAIAIAIA", string(out))

	deflated := append([]byte{0x02}, aiStream...)
	_, err = DecompressMaskedSector(deflated, 13, nil)
	assert.ErrorIs(t, err, ErrUnsupportedCompression)

	_, err = DecompressMaskedSector(nil, 13, nil)
	assert.ErrorIs(t, err, ErrIncompleteInput)

	raw := []byte{0x08, 0x00, 0x04}
	out, err = DecompressMaskedSector(raw, len(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}
