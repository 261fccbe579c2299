package scale

// Encodable is implemented by any type that knows how to write itself to an
// Output. EncodeTo must be infallible: Output is assumed to accept all
// writes (spec: "Encoding is infallible").
type Encodable interface {
	EncodeTo(out Output)
	// SizeHint returns a best-effort estimate of the encoded size, used to
	// pre-size the Output buffer. It need not be exact.
	SizeHint() int
}

// Decodable is implemented by any type that knows how to populate itself
// from an Input. Implementations should be on a pointer receiver so Decode's
// generic helper below can allocate and mutate in place.
type Decodable interface {
	DecodeFrom(in Input) error
}

// Skippable is an optional refinement of Decodable: a type whose encoding
// can be skipped without materializing a value (spec §4.9). Types that
// don't implement it fall back to a full decode-and-discard in Skip.
type Skippable interface {
	SkipScale(in Input) error
}

// FixedSizer is implemented by types whose encoded size never varies.
type FixedSizer interface {
	// EncodedFixedSize returns (n, true) if every value of the type encodes
	// to exactly n bytes, or (0, false) otherwise.
	EncodedFixedSize() (int, bool)
}

// MaxEncodedLener is implemented by types with a statically-known upper
// bound on encoded size (spec §4.7).
type MaxEncodedLener interface {
	MaxEncodedLen() int
}

// Encode serializes v to a freshly allocated byte slice.
func Encode(v Encodable) []byte {
	out := NewByteOutput(make([]byte, 0, v.SizeHint()))
	v.EncodeTo(out)
	return out.Bytes()
}

// UsingEncoded encodes v and feeds the resulting bytes to fn, returning
// whatever fn returns. Useful to avoid callers re-implementing the
// encode-then-inspect pattern.
func UsingEncoded[R any](v Encodable, fn func([]byte) R) R {
	return fn(Encode(v))
}

// EncodedSize returns the exact byte length of v's encoding. It must match
// len(Encode(v)) for every v (spec §8 quantified invariant).
func EncodedSize(v Encodable) int {
	return len(Encode(v))
}

// Decode allocates a T, decodes in into it via *T's Decodable
// implementation, and returns it. T's pointer type must implement
// Decodable; this is enforced at compile time via the PT constraint.
func Decode[T any, PT interface {
	*T
	Decodable
}](in Input) (T, error) {
	var v T
	if err := PT(&v).DecodeFrom(in); err != nil {
		return v, err
	}
	return v, nil
}

// Skip advances in past a single encoded T without returning a value. If
// *T implements Skippable that path is used; otherwise Skip falls back to a
// full decode-and-discard.
func Skip[T any, PT interface {
	*T
	Decodable
}](in Input) error {
	var v T
	if s, ok := any(PT(&v)).(Skippable); ok {
		return s.SkipScale(in)
	}
	return PT(&v).DecodeFrom(in)
}

// EncodedFixedSizeOf reports the fixed encoded size of T, if any. It
// allocates a zero value only to query the interface; callers on a hot path
// should cache the result (types are expected to answer this statically).
func EncodedFixedSizeOf[T any, PT interface {
	*T
	Decodable
}]() (int, bool) {
	var v T
	if fs, ok := any(PT(&v)).(FixedSizer); ok {
		return fs.EncodedFixedSize()
	}
	return 0, false
}
