package scale

import (
	"github.com/cespare/xxhash/v2"

	"github.com/rony4d/scale/scale/internal/buffer"
)

// Input is the abstract byte-level source decoders read from. Advancement on
// failure is implementation-defined; callers must not rely on the cursor
// position after a failed Read.
type Input interface {
	// RemainingLen reports the number of bytes left, when known. The second
	// return is false for unbounded streams.
	RemainingLen() (int, bool)
	// Read fills dst exactly or returns ErrNotEnoughData.
	Read(dst []byte) error
	// ReadByte is a convenience wrapper over Read for the single-byte case.
	ReadByte() (byte, error)
	// DescendRef records entry into a nested decode; base implementations
	// never fail. DepthLimited overrides this to enforce a bound.
	DescendRef() error
	// AscendRef records exit from a nested decode.
	AscendRef()
	// AscendByteRead is an optional per-byte hook for memory-tracking
	// Inputs. No decoder in this package calls it (MemTracked counts bytes
	// in Read/ReadByte instead), and the base implementation is a no-op.
	AscendByteRead()
}

// Output is the abstract byte-level sink encoders write to. Encoding is
// infallible: Output is assumed to accept all writes.
type Output interface {
	Write(src []byte)
	PushByte(b byte)
}

// ByteInput is the default Input, backed by an in-memory byte slice. It is
// adapted from the teacher's utils/fast.Reader, with one deliberate
// deviation: short reads return ErrNotEnoughData instead of panicking, since
// Decode is a public boundary that must handle adversarial input gracefully.
type ByteInput struct {
	r *buffer.Reader
}

// NewByteInput wraps raw for sequential decoding.
func NewByteInput(raw []byte) *ByteInput {
	return &ByteInput{r: buffer.NewReader(raw)}
}

func (in *ByteInput) RemainingLen() (int, bool) {
	return in.r.Remaining(), true
}

func (in *ByteInput) Read(dst []byte) error {
	src, ok := in.r.Read(len(dst))
	if !ok {
		return ErrNotEnoughData
	}
	copy(dst, src)
	return nil
}

func (in *ByteInput) ReadByte() (byte, error) {
	b, ok := in.r.ReadByte()
	if !ok {
		return 0, ErrNotEnoughData
	}
	return b, nil
}

func (in *ByteInput) DescendRef() error { return nil }
func (in *ByteInput) AscendRef()        {}
func (in *ByteInput) AscendByteRead()   {}

// Position returns the current read cursor, mainly useful for Skip.
func (in *ByteInput) Position() int { return in.r.Position() }

// ByteOutput is the default Output, a growable byte slice. Adapted from the
// teacher's utils/fast.Writer.
type ByteOutput struct {
	w *buffer.Writer
}

// NewByteOutput creates an Output backed by buf (often make([]byte, 0, n)).
func NewByteOutput(buf []byte) *ByteOutput {
	return &ByteOutput{w: buffer.NewWriter(buf)}
}

func (out *ByteOutput) Write(src []byte) { out.w.Write(src) }
func (out *ByteOutput) PushByte(b byte)  { out.w.WriteByte(b) }
func (out *ByteOutput) Bytes() []byte    { return out.w.Bytes() }

// HashOutput is an Output backed by an xxhash digest: it discards the bytes
// it's given and only accumulates their hash. Useful for computing a
// content hash of a value's encoding without materializing the byte slice
// (spec: "Outputs MAY be... backed by... a hash accumulator").
type HashOutput struct {
	digest *xxhash.Digest
}

// NewHashOutput creates a fresh hash-accumulating Output.
func NewHashOutput() *HashOutput {
	return &HashOutput{digest: xxhash.New()}
}

func (out *HashOutput) Write(src []byte) {
	_, _ = out.digest.Write(src)
}

func (out *HashOutput) PushByte(b byte) {
	out.digest.Write([]byte{b})
}

// Sum64 returns the accumulated 64-bit hash of everything written so far.
func (out *HashOutput) Sum64() uint64 {
	return out.digest.Sum64()
}

// FixedOutput writes into a caller-supplied fixed-size buffer. It panics on
// overflow: callers using it are expected to have pre-sized buf via
// EncodedSize or EncodedFixedSize, so an overflow indicates a programming
// error, not adversarial input.
type FixedOutput struct {
	buf []byte
	pos int
}

// NewFixedOutput wraps buf for writing at a fixed capacity.
func NewFixedOutput(buf []byte) *FixedOutput {
	return &FixedOutput{buf: buf}
}

func (out *FixedOutput) Write(src []byte) {
	n := copy(out.buf[out.pos:], src)
	if n != len(src) {
		panic("scale: FixedOutput overflow")
	}
	out.pos += n
}

func (out *FixedOutput) PushByte(b byte) {
	if out.pos >= len(out.buf) {
		panic("scale: FixedOutput overflow")
	}
	out.buf[out.pos] = b
	out.pos++
}
