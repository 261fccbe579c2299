package scale

// maxPreallocHint bounds how large a slice we'll eagerly pre-allocate from an
// attacker-controlled length prefix, regardless of the declared count.
const maxPreallocHint = 1 << 16

func preallocHint(n uint64) int {
	if n > maxPreallocHint {
		return maxPreallocHint
	}
	return int(n)
}

// EncodeSlice writes a compact length prefix followed by each element's
// encoding in order (spec §4.5: variable-length sequences).
func EncodeSlice[T any](out Output, items []T, encodeElem func(Output, T)) {
	EncodeCompactUint64(out, uint64(len(items)))
	for _, it := range items {
		encodeElem(out, it)
	}
}

// SliceSizeHint sums a fixed per-element size hint with the compact length
// prefix's size, for types whose SizeHint would otherwise have to walk the
// whole slice redundantly.
func SliceSizeHint(n, perElem int) int {
	return compactSizeHintUint64(uint64(n)) + n*perElem
}

// DecodeSlice reads a compact-length-prefixed sequence of T. minElemSize, if
// positive, is used to pre-reject a declared length that can't possibly fit
// in the remaining input (spec §5: resource policy for bounded element
// types); pass 0 for element types with no positive lower bound (e.g. Unit).
func DecodeSlice[T any](in Input, minElemSize int, decodeElem func(Input) (T, error)) ([]T, error) {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return nil, err
	}
	if minElemSize > 0 {
		if rem, ok := in.RemainingLen(); ok && n > uint64(rem/minElemSize) {
			return nil, ErrTooLargeAlloc
		}
	}
	items := make([]T, 0, preallocHint(n))
	for i := uint64(0); i < n; i++ {
		v, err := decodeElem(in)
		if err != nil {
			return nil, wrapIndex(int(i), err)
		}
		items = append(items, v)
	}
	return items, nil
}

// DecodeVecWithLen reads exactly n already-known elements without an
// additional length prefix, for use inside codecs that encode the count out
// of band (e.g. a fixed-size container of variable-length entries).
func DecodeVecWithLen[T any, PT interface {
	*T
	Decodable
}](in Input, n uint64) ([]T, error) {
	items := make([]T, 0, preallocHint(n))
	for i := uint64(0); i < n; i++ {
		v, err := Decode[T, PT](in)
		if err != nil {
			return nil, wrapIndex(int(i), err)
		}
		items = append(items, v)
	}
	return items, nil
}

// EncodeBytes is the Vec<u8> fast path: a compact length prefix followed by
// the raw bytes, with no per-byte dispatch.
func EncodeBytes(out Output, v []byte) {
	EncodeCompactUint64(out, uint64(len(v)))
	out.Write(v)
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(in Input) ([]byte, error) {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return nil, err
	}
	if rem, ok := in.RemainingLen(); ok && uint64(rem) < n {
		return nil, ErrTooLargeAlloc
	}
	buf := make([]byte, n)
	if err := in.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
