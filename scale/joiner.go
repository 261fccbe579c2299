package scale

// EncodeAll concatenates the encodings of values in order, matching the
// `(A, B, C)` tuple convention: SCALE has no internal framing between
// adjacent fields (spec §4.5).
func EncodeAll(values ...Encodable) []byte {
	total := 0
	for _, v := range values {
		total += v.SizeHint()
	}
	out := NewByteOutput(make([]byte, 0, total))
	for _, v := range values {
		v.EncodeTo(out)
	}
	return out.Bytes()
}

// DecodeAll decodes a single T from data and requires the whole input to be
// consumed, rejecting any trailing bytes (spec §8: "decoding must consume
// exactly the encoded length").
func DecodeAll[T any, PT interface {
	*T
	Decodable
}](data []byte) (T, error) {
	in := NewByteInput(data)
	v, err := Decode[T, PT](in)
	if err != nil {
		var zero T
		return zero, err
	}
	if rem, ok := in.RemainingLen(); ok && rem != 0 {
		var zero T
		return zero, ErrTrailingData
	}
	return v, nil
}

// DecodeWithDepthLimit decodes a single T from data, failing any decode that
// recurses past maxDepth levels.
func DecodeWithDepthLimit[T any, PT interface {
	*T
	Decodable
}](data []byte, maxDepth int) (T, error) {
	in := WithDepthLimit(NewByteInput(data), maxDepth)
	v, err := Decode[T, PT](in)
	if err != nil {
		var zero T
		return zero, err
	}
	if rem, ok := in.RemainingLen(); ok && rem != 0 {
		var zero T
		return zero, ErrTrailingData
	}
	return v, nil
}

// DecodeAndAdvanceWithDepthLimit decodes a single T from an already-open
// Input (leaving any trailing bytes for the caller to keep reading), but
// bounds recursion depth for this one decode the same way
// DecodeWithDepthLimit does for a whole buffer.
func DecodeAndAdvanceWithDepthLimit[T any, PT interface {
	*T
	Decodable
}](in Input, maxDepth int) (T, error) {
	return Decode[T, PT](WithDepthLimit(in, maxDepth))
}
