package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAllConcatenatesTuple(t *testing.T) {
	encoded := EncodeAll(CompactUint(3), boolValue(true))
	assert.Equal(t, []byte{0x0c, 0x01}, encoded)
}

type boolValue bool

func (b boolValue) EncodeTo(out Output) { EncodeBool(out, bool(b)) }
func (b boolValue) SizeHint() int       { return 1 }

func TestDecodeAllRejectsTrailingData(t *testing.T) {
	encoded := Encode(CompactUint(3))
	encoded = append(encoded, 0xff)

	_, err := DecodeAll[CompactUint](encoded)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestDecodeAllAcceptsExactConsumption(t *testing.T) {
	encoded := Encode(CompactUint(300))
	got, err := DecodeAll[CompactUint](encoded)
	require.NoError(t, err)
	assert.EqualValues(t, 300, got)
}

func TestDecodeAndAdvanceWithDepthLimitLeavesTrailingBytes(t *testing.T) {
	encoded := append(Encode(CompactUint(1)), 0xAB)
	in := NewByteInput(encoded)

	got, err := DecodeAndAdvanceWithDepthLimit[CompactUint](in, 8)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)

	rest, err := in.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), rest)
}
