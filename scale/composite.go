package scale

// Option is a generic `Option<T>` (spec §4.5): None encodes as 0x00,
// Some(v) as 0x01 followed by v's encoding. Callers supply the element
// codec as a closure since Go cannot dispatch generically on T's own
// methods without also requiring *T to satisfy Decodable.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some wraps v as a populated Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None returns an empty Option of T.
func None[T any]() Option[T] { return Option[T]{} }

// EncodeOption writes o using encodeElem for the payload when present.
func EncodeOption[T any](out Output, o Option[T], encodeElem func(Output, T)) {
	if !o.Valid {
		out.PushByte(0)
		return
	}
	out.PushByte(1)
	encodeElem(out, o.Value)
}

// DecodeOption reads an Option[T], using decodeElem for the payload.
func DecodeOption[T any](in Input, decodeElem func(Input) (T, error)) (Option[T], error) {
	b, err := in.ReadByte()
	if err != nil {
		return Option[T]{}, err
	}
	switch b {
	case 0:
		return Option[T]{}, nil
	case 1:
		v, err := decodeElem(in)
		if err != nil {
			return Option[T]{}, err
		}
		return Option[T]{Valid: true, Value: v}, nil
	default:
		return Option[T]{}, ErrInvalidBool
	}
}

// Result is a generic `Result<T, E>`: Ok(v) encodes as 0x00 ∥ E(v), Err(e)
// as 0x01 ∥ E(e).
type Result[T, E any] struct {
	IsOk bool
	Ok   T
	Err  E
}

// EncodeResult writes r using the appropriate closure for whichever branch
// is populated.
func EncodeResult[T, E any](out Output, r Result[T, E], encodeOk func(Output, T), encodeErr func(Output, E)) {
	if r.IsOk {
		out.PushByte(0)
		encodeOk(out, r.Ok)
		return
	}
	out.PushByte(1)
	encodeErr(out, r.Err)
}

// DecodeResult is the inverse of EncodeResult.
func DecodeResult[T, E any](in Input, decodeOk func(Input) (T, error), decodeErr func(Input) (E, error)) (Result[T, E], error) {
	b, err := in.ReadByte()
	if err != nil {
		return Result[T, E]{}, err
	}
	switch b {
	case 0:
		v, err := decodeOk(in)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{IsOk: true, Ok: v}, nil
	case 1:
		e, err := decodeErr(in)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{Err: e}, nil
	default:
		return Result[T, E]{}, ErrInvalidDiscriminant
	}
}

// EncodeDiscriminant writes a sum type's one-byte variant tag. Sum
// (tagged-enum) types are expected to implement Encodable/Decodable
// themselves, writing this discriminant followed by the active variant's
// field encodings — see spec.md §8 scenario 4 for the canonical
// recursive-sum fixture.
func EncodeDiscriminant(out Output, index uint8) {
	out.PushByte(index)
}

// DecodeDiscriminant reads a sum type's variant tag.
func DecodeDiscriminant(in Input) (uint8, error) {
	return in.ReadByte()
}

// Boxed holds a heap-allocated T, used for sum variants that recurse into
// Self (spec §9: "owned references to Self require heap indirection").
// Its own encoding is a transparent pass-through to T's.
type Boxed[T any] struct {
	Value *T
}

// EncodeBoxed writes the pointee using encodeElem.
func EncodeBoxed[T any](out Output, b Boxed[T], encodeElem func(Output, T)) {
	encodeElem(out, *b.Value)
}

// DecodeBoxed decodes a T and heap-allocates it, bracketing the recursive
// decode with DescendRef/AscendRef so a DepthLimited Input can enforce its
// bound (spec §4.6/§9).
func DecodeBoxed[T any](in Input, decodeElem func(Input) (T, error)) (Boxed[T], error) {
	if err := in.DescendRef(); err != nil {
		return Boxed[T]{}, err
	}
	defer in.AscendRef()
	v, err := decodeElem(in)
	if err != nil {
		return Boxed[T]{}, err
	}
	return Boxed[T]{Value: &v}, nil
}
