package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioVecU8(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeBytes(out, []byte{1, 2, 4})
	encoded := out.Bytes()
	assert.Equal(t, []byte{0x0c, 0x01, 0x02, 0x04}, encoded)

	set, err := DecodeSet(NewByteInput(encoded), DecodeU8)
	require.NoError(t, err)
	assert.Equal(t, map[uint8]struct{}{1: {}, 2: {}, 4: {}}, set)

	reencoded := NewByteOutput(nil)
	EncodeSet(reencoded, set, EncodeU8)
	assert.Equal(t, encoded, reencoded.Bytes())
}

func TestEmptySequence(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeSlice(out, []uint32(nil), encodeU32Elem)
	assert.Equal(t, []byte{0x00}, out.Bytes())

	got, err := DecodeSlice(NewByteInput(out.Bytes()), 4, decodeU32Elem)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeSliceRejectsOverLargeDeclaredLength(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeCompactUint64(out, 1<<20) // declares a million 4-byte elements
	_, err := DecodeSlice(NewByteInput(out.Bytes()), 4, decodeU32Elem)
	assert.ErrorIs(t, err, ErrTooLargeAlloc)
}

func TestDecodeSliceWrapsElementIndexOnFailure(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeCompactUint64(out, 2)
	EncodeU32(out, 1)
	out.Write([]byte{0x01}) // second element truncated

	// minElemSize 0 skips the length pre-check, so the failure comes from
	// decoding element 1 itself.
	_, err := DecodeSlice(NewByteInput(out.Bytes()), 0, decodeU32Elem)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding element 1")
}
