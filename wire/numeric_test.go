package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendExtendUint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xFF, 0x100, 300, 1 << 20, 1<<64 - 1}
	for _, v := range values {
		payload := AppendUint(nil, v)
		require.Equal(t, v, ExtendUint(payload))
	}

	require.Empty(t, AppendUint(nil, 0), "zero must trim to an empty payload")
}

func TestAppendUint_Scenario_LeadingZeroTrim(t *testing.T) {
	// Spec scenario C: u32 value 300 (0x0000012C) trims to 01 2C.
	require.Equal(t, []byte{0x01, 0x2C}, AppendUint(nil, 300))
}

func TestAppendExtendInt_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 200, -200, math.MaxInt64, math.MinInt64, -9000000}
	for _, v := range values {
		payload := AppendInt(nil, v)
		require.Equal(t, v, ExtendInt(payload), "value %d", v)
	}

	require.Empty(t, AppendInt(nil, 0))
}

func TestAppendInt_PreservesSignBitWithPadByte(t *testing.T) {
	// 200 is positive but its low byte (0xC8) has the high bit set, so a
	// pad 0x00 byte must be kept or it would decode as negative.
	payload := AppendInt(nil, 200)
	require.Equal(t, []byte{0x00, 0xC8}, payload)

	// -1 is all-0xFF and collapses to a single byte.
	require.Equal(t, []byte{0xFF}, AppendInt(nil, -1))

	// math.MinInt64 cannot shed any bytes: its top byte already has the
	// sign bit set correctly.
	require.Len(t, AppendInt(nil, math.MinInt64), 8)
}

func TestFloat64_RoundTripAndTrailingTrim(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 3.14159, -123456.789, math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		payload := AppendFloat64(nil, v)
		require.Equal(t, v, ExtendFloat64(payload), "value %v", v)
		require.LessOrEqual(t, len(payload), 8)
	}

	require.Empty(t, AppendFloat64(nil, 0), "0.0 has an all-zero bit pattern and trims away entirely")
}

func TestFloat64_NaNRoundTrips(t *testing.T) {
	payload := AppendFloat64(nil, math.NaN())
	require.True(t, math.IsNaN(ExtendFloat64(payload)))
}

func TestFloat32_RoundTripAndTrailingTrim(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 3.14159}
	for _, v := range values {
		payload := AppendFloat32(nil, v)
		require.Equal(t, v, ExtendFloat32(payload))
		require.LessOrEqual(t, len(payload), 4)
	}
}

func TestBool_EncodingAndDefaultOmission(t *testing.T) {
	require.Equal(t, []byte{0x01}, AppendBool(nil, true))
	require.Empty(t, AppendBool(nil, false))

	require.True(t, ExtendBool([]byte{0x01}))
	require.False(t, ExtendBool(nil))
	require.False(t, ExtendBool([]byte{0x00}))
}

func TestString_RoundTripHasNoTerminator(t *testing.T) {
	payload := AppendString(nil, "Joe Smith")
	require.Equal(t, []byte("Joe Smith"), payload)
	require.Equal(t, "Joe Smith", ExtendString(payload))
}
