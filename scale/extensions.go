package scale

// CompactAsUint64 adapts a type T to the compact integer format via an
// explicit bijection to/from uint64, for types that wrap an integer but
// don't want their natural fixed width (spec: "CompactAs implements a
// bijection between a type and a compact-encodable representation").
type CompactAsUint64[T any] struct {
	Value T
	To    func(T) uint64
	From  func(uint64) T
}

func (c CompactAsUint64[T]) EncodeTo(out Output) { EncodeCompactUint64(out, c.To(c.Value)) }
func (c CompactAsUint64[T]) SizeHint() int       { return compactSizeHintUint64(c.To(c.Value)) }

func (c *CompactAsUint64[T]) DecodeFrom(in Input) error {
	v, err := DecodeCompactUint64(in)
	if err != nil {
		return err
	}
	c.Value = c.From(v)
	return nil
}

// EncodeAppend rewrites encoded's length prefix and appends one more
// element, without decoding the existing elements (spec: the "append or
// new" fast path for growing an already-encoded sequence in place). A nil or
// empty encoded starts a new one-element sequence.
func EncodeAppend(encoded []byte, encodeElem func(Output)) []byte {
	oldLen := uint64(0)
	prefixLen := 0
	if len(encoded) > 0 {
		in := NewByteInput(encoded)
		if n, err := DecodeCompactUint64(in); err == nil {
			oldLen = n
			prefixLen = in.Position()
		}
	}
	tail := encoded[prefixLen:]
	out := NewByteOutput(make([]byte, 0, len(tail)+9))
	EncodeCompactUint64(out, oldLen+1)
	out.Write(tail)
	encodeElem(out)
	return out.Bytes()
}

// MemTracked wraps an Input, failing once the cumulative bytes read exceed
// Budget (spec §5: bounding total allocation across a whole decode, as a
// coarser alternative to per-sequence RemainingLen checks).
type MemTracked struct {
	Input
	Budget int
	used   int
}

// WithMemTracking returns an Input identical to in except that total
// consumption past budget bytes fails with ErrTooLargeAlloc.
func WithMemTracking(in Input, budget int) *MemTracked {
	return &MemTracked{Input: in, Budget: budget}
}

func (m *MemTracked) Read(dst []byte) error {
	if err := m.Input.Read(dst); err != nil {
		return err
	}
	m.used += len(dst)
	if m.used > m.Budget {
		return ErrTooLargeAlloc
	}
	return nil
}

func (m *MemTracked) ReadByte() (byte, error) {
	b, err := m.Input.ReadByte()
	if err != nil {
		return 0, err
	}
	m.used++
	if m.used > m.Budget {
		return 0, ErrTooLargeAlloc
	}
	return b, nil
}
