package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCodePages(t *testing.T) {
	cases := []struct {
		encoding string
		in       []byte
		want     string
	}{
		{"cp850", []byte{0x87}, "ç"},
		{"cp850", []byte{0xA0}, "á"},
		{"cp437", []byte{0x87}, "ç"},
		{"cp1252", []byte{0xE9}, "é"},
		{"cp1252", []byte("SAO PAULO"), "SAO PAULO"},
		{"cp852", []byte{0xA5}, "ą"},
	}
	for _, c := range cases {
		conv := New(c.encoding)
		require.Equal(t, c.encoding, conv.Name())

		got, err := conv.Decode(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, string(got))
	}
}

func TestDecodeEmpty(t *testing.T) {
	conv := New("cp850")
	got, err := conv.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNameIsCaseInsensitive(t *testing.T) {
	require.Equal(t, "cp850", New("CP850").Name())
}

func TestScratchBufferReuse(t *testing.T) {
	conv := New("cp850")

	first, err := conv.Decode([]byte{0x87, 0xA0})
	require.NoError(t, err)
	require.Equal(t, "çá", string(first))

	// The next call may reuse the scratch buffer; only the fresh result is
	// guaranteed valid.
	second, err := conv.Decode([]byte{0xA0})
	require.NoError(t, err)
	require.Equal(t, "á", string(second))
}

func TestMahoniaFallback(t *testing.T) {
	conv := New("gbk")
	require.Equal(t, "gbk", conv.Name())

	got, err := conv.Decode([]byte("plain ascii"))
	require.NoError(t, err)
	require.Equal(t, "plain ascii", string(got))
}

func TestUnknownEncodingPassesThrough(t *testing.T) {
	conv := New("no-such-encoding")
	require.Equal(t, "no-such-encoding", conv.Name())

	got, err := conv.Decode([]byte{0x41, 0x42})
	require.NoError(t, err)
	require.Equal(t, "AB", string(got))
}
