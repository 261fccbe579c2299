package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipAdvancesSameAmountAsDecode(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeString(out, "hello world")
	EncodeU32(out, 42)
	data := out.Bytes()

	skipIn := NewByteInput(data)
	require.NoError(t, SkipString(skipIn))
	skippedPos := skipIn.Position()

	decodeIn := NewByteInput(data)
	_, err := DecodeString(decodeIn)
	require.NoError(t, err)
	assert.Equal(t, decodeIn.Position(), skippedPos)
}

func TestSkipCompact(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeCompactUint64(out, 1073741824)
	EncodeU8(out, 7)
	data := out.Bytes()

	in := NewByteInput(data)
	require.NoError(t, SkipCompact(in))
	b, err := in.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(7), b)
}

func TestSkipOptionAndSlice(t *testing.T) {
	out := NewByteOutput(nil)
	EncodeOption(out, Some(uint32(9)), encodeU32Elem)
	EncodeSlice(out, []uint32{1, 2, 3}, encodeU32Elem)
	data := out.Bytes()

	in := NewByteInput(data)
	require.NoError(t, SkipOption(in, func(in Input) error { return SkipFixedBytes(in, 4) }))
	require.NoError(t, SkipSlice(in, func(in Input) error { return SkipFixedBytes(in, 4) }))
	rem, ok := in.RemainingLen()
	require.True(t, ok)
	assert.Zero(t, rem)
}
