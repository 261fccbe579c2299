package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTupleU8BoolString(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeU8(out, 1)
	EncodeBool(out, true)
	EncodeString(out, "OK")
	assert.Equal(t, []byte{0x01, 0x01, 0x08, 0x4f, 0x4b}, out.Bytes())
}

func TestScenarioUnicodeString(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeString(out, "SCALE♡")
	assert.Equal(t, []byte{0x20, 0x53, 0x43, 0x41, 0x4c, 0x45, 0xe2, 0x99, 0xa1}, out.Bytes())
}

func TestScenarioU32AliasedAsU16AndU64(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeU32(out, 50462976)
	data := out.Bytes()
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03}, data)

	in16 := NewByteInput(data)
	v16, err := DecodeU16(in16)
	require.NoError(t, err)
	assert.Equal(t, uint16(256), v16)
	rem, ok := in16.RemainingLen()
	assert.True(t, ok)
	assert.NotZero(t, rem, "decode_all::<u16> should see trailing data")

	in64 := NewByteInput(data)
	_, err = DecodeU64(in64)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeCompactUint64(out, 3)
	out.Write([]byte{0xff, 0xfe, 0xfd})
	_, err := DecodeString(NewByteInput(out.Bytes()))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestEmptyStringRoundTrip(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeString(out, "")
	assert.Equal(t, []byte{0x00}, out.Bytes())

	s, err := DecodeString(NewByteInput(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestCharRejectsSurrogateHalf(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeU32(out, 0xD800) // UTF-16 surrogate, not a valid scalar value
	_, err := DecodeChar(NewByteInput(out.Bytes()))
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestOptionBoolThreeValues(t *testing.T) {
	trueV, falseV := true, false

	for _, tc := range []struct {
		name string
		in   *bool
		want byte
	}{
		{"none", nil, 0},
		{"some false", &falseV, 1},
		{"some true", &trueV, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := NewByteOutput(nil)
			EncodeOptionBool(out, tc.in)
			assert.Equal(t, []byte{tc.want}, out.Bytes())

			got, err := DecodeOptionBool(NewByteInput(out.Bytes()))
			require.NoError(t, err)
			if tc.in == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.in, *got)
			}
		})
	}
}

func TestFixedWidthIntegerRoundTrips(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeI8(out, -1)
	EncodeI16(out, -256)
	EncodeI32(out, -70000)
	EncodeI64(out, -1)
	EncodeU128(out, Uint128{Lo: 1, Hi: 2})
	EncodeF64(out, 3.5)

	in := NewByteInput(out.Bytes())
	i8, err := DecodeI8(in)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)

	i16, err := DecodeI16(in)
	require.NoError(t, err)
	assert.Equal(t, int16(-256), i16)

	i32, err := DecodeI32(in)
	require.NoError(t, err)
	assert.Equal(t, int32(-70000), i32)

	i64, err := DecodeI64(in)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i64)

	u128, err := DecodeU128(in)
	require.NoError(t, err)
	assert.Equal(t, Uint128{Lo: 1, Hi: 2}, u128)

	f64, err := DecodeF64(in)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f64)
}
