package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0x7F, 0x80, 0xC8, 0x7FFF, 0x7800, 0x7801,
		300, 1<<16 - 1, 1 << 16, 1 << 32, 1<<64 - 1,
	}

	for _, v := range values {
		buf := Encode(nil, v)
		got, n, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), Len(v))
	}
}

func TestEncode_OneByteForm(t *testing.T) {
	require.Equal(t, []byte{0x00}, Encode(nil, 0))
	require.Equal(t, []byte{0x7F}, Encode(nil, 0x7F))
}

func TestEncode_TwoByteForm(t *testing.T) {
	// Scenario B from spec: token 0x03 length 200 (0xC8) -> header bytes 03 80 C8.
	got := Encode(nil, 0xC8)
	require.Equal(t, []byte{0x80, 0xC8}, got)
}

func TestEncode_EightByteFormTrimsLeadingZeros(t *testing.T) {
	got := Encode(nil, 0x7800)
	require.Equal(t, []byte{0xF9, 0x78, 0x00}, got)

	got = Encode(nil, 1)
	require.NotEqual(t, []byte{0xF9, 0x00, 0x01}, got, "1 fits in the one-byte form")
}

func TestDecode_Truncated(t *testing.T) {
	_, _, err := Decode(nil)
	require.Error(t, err)

	_, _, err = Decode([]byte{0x80}) // two-byte form missing second byte
	require.Error(t, err)

	_, _, err = Decode([]byte{0xFB}) // n=4, no payload bytes
	require.Error(t, err)
}

func TestDecode_ListEscapeIsMalformedAsPlainVarint(t *testing.T) {
	_, _, err := Decode([]byte{0xF8, 0x00})
	require.Error(t, err)
	require.True(t, IsListEscape(0xF8))
	require.False(t, IsListEscape(0xF7))
}

func TestLen_MatchesEncodedSize(t *testing.T) {
	for _, v := range []uint64{0, 0x7F, 0x80, 0x7800, 1 << 40, 1<<64 - 1} {
		require.Equal(t, len(Encode(nil, v)), Len(v))
	}
}
