package scale

import (
	"github.com/rony4d/scale/scale/bits"
)

// EncodeBitSequence writes v as a compact bit-count prefix followed by the
// bits packed LSB-first into bytes (spec §4.5: BitSequence container),
// delegating the packing itself to the bits package adapted from the
// teacher's utils/bits.
func EncodeBitSequence(out Output, v []bool) {
	EncodeCompactUint64(out, uint64(len(v)))
	arr := &bits.Array{}
	w := bits.NewWriter(arr)
	for _, b := range v {
		var x uint
		if b {
			x = 1
		}
		w.Write(1, x)
	}
	out.Write(arr.Bytes)
}

// DecodeBitSequence is the inverse of EncodeBitSequence.
func DecodeBitSequence(in Input) ([]bool, error) {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return nil, err
	}
	nBytes := int((n + 7) / 8)
	if rem, ok := in.RemainingLen(); ok && nBytes > rem {
		return nil, ErrTooLargeAlloc
	}
	buf := make([]byte, nBytes)
	if err := in.Read(buf); err != nil {
		return nil, err
	}
	r := bits.NewReader(&bits.Array{Bytes: buf})
	out := make([]bool, n)
	for i := uint64(0); i < n; i++ {
		out[i] = r.Read(1) != 0
	}
	return out, nil
}
