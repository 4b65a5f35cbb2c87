package dbc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompressKnownStream(t *testing.T) {
	in := []byte{0x00, 0x04, 0x82, 0x24, 0x25, 0x8f, 0x80, 0x7f}

	out, err := decompress(bytes.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []byte("AIAIAIAIAIAIA"), out)
}

func TestDecompressBadStream(t *testing.T) {
	_, err := decompress(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.ErrorIs(t, err, ErrDecompression)
}

func TestDecompressEmpty(t *testing.T) {
	_, err := decompress(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrDecompression)
}

func TestChunkSourceBoundsReads(t *testing.T) {
	src := &chunkSource{r: bytes.NewReader(make([]byte, 3*chunkSize))}

	p := make([]byte, 2*chunkSize)
	n, err := src.Read(p)
	require.NoError(t, err)
	require.LessOrEqual(t, n, chunkSize)
}
