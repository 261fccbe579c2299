package scale

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Unit encodes to zero bytes, matching the Rust `()` / empty-tuple type.
type Unit struct{}

func (Unit) EncodeTo(Output) {}
func (Unit) SizeHint() int   { return 0 }

func (*Unit) DecodeFrom(Input) error { return nil }

// EncodeBool writes a single byte: 0x00 for false, 0x01 for true.
func EncodeBool(out Output, v bool) {
	if v {
		out.PushByte(1)
	} else {
		out.PushByte(0)
	}
}

// DecodeBool reads a bool byte, rejecting anything other than 0x00/0x01.
func DecodeBool(in Input) (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// EncodeU8/DecodeU8 and friends encode fixed-width integers little-endian,
// matching every wire-format codec in the retrieval pack that touches raw
// integers (encoding/binary.LittleEndian is the uncontested idiomatic
// choice here; no third-party LE-packing library appears in the pack).

func EncodeU8(out Output, v uint8) { out.PushByte(v) }
func DecodeU8(in Input) (uint8, error) {
	return in.ReadByte()
}

func EncodeI8(out Output, v int8) { out.PushByte(byte(v)) }
func DecodeI8(in Input) (int8, error) {
	b, err := in.ReadByte()
	return int8(b), err
}

func EncodeU16(out Output, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	out.Write(buf[:])
}

func DecodeU16(in Input) (uint16, error) {
	var buf [2]byte
	if err := in.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func EncodeI16(out Output, v int16) { EncodeU16(out, uint16(v)) }
func DecodeI16(in Input) (int16, error) {
	v, err := DecodeU16(in)
	return int16(v), err
}

func EncodeU32(out Output, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	out.Write(buf[:])
}

func DecodeU32(in Input) (uint32, error) {
	var buf [4]byte
	if err := in.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func EncodeI32(out Output, v int32) { EncodeU32(out, uint32(v)) }
func DecodeI32(in Input) (int32, error) {
	v, err := DecodeU32(in)
	return int32(v), err
}

func EncodeU64(out Output, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	out.Write(buf[:])
}

func DecodeU64(in Input) (uint64, error) {
	var buf [8]byte
	if err := in.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func EncodeI64(out Output, v int64) { EncodeU64(out, uint64(v)) }
func DecodeI64(in Input) (int64, error) {
	v, err := DecodeU64(in)
	return int64(v), err
}

// Uint128 is a 128-bit unsigned integer split into low/high 64-bit halves,
// since Go has no native 128-bit integer type.
type Uint128 struct {
	Lo, Hi uint64
}

func EncodeU128(out Output, v Uint128) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], v.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], v.Hi)
	out.Write(buf[:])
}

func DecodeU128(in Input) (Uint128, error) {
	var buf [16]byte
	if err := in.Read(buf[:]); err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(buf[0:8]),
		Hi: binary.LittleEndian.Uint64(buf[8:16]),
	}, nil
}

// Int128 is the signed counterpart of Uint128: Hi's top bit carries the
// sign, matching standard two's-complement 128-bit layout.
type Int128 struct {
	Lo uint64
	Hi int64
}

func EncodeI128(out Output, v Int128) {
	EncodeU128(out, Uint128{Lo: v.Lo, Hi: uint64(v.Hi)})
}

func DecodeI128(in Input) (Int128, error) {
	u, err := DecodeU128(in)
	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}, err
}

func EncodeF32(out Output, v float32) {
	EncodeU32(out, math.Float32bits(v))
}

func DecodeF32(in Input) (float32, error) {
	u, err := DecodeU32(in)
	return math.Float32frombits(u), err
}

func EncodeF64(out Output, v float64) {
	EncodeU64(out, math.Float64bits(v))
}

func DecodeF64(in Input) (float64, error) {
	u, err := DecodeU64(in)
	return math.Float64frombits(u), err
}

// EncodeFixedBytes writes v verbatim: the SCALE encoding of a fixed-size
// byte array [u8; N] is simply its N raw bytes.
func EncodeFixedBytes(out Output, v []byte) {
	out.Write(v)
}

// DecodeFixedBytes fills dst exactly from in.
func DecodeFixedBytes(in Input, dst []byte) error {
	return in.Read(dst)
}

// EncodeChar writes r as the u32 encoding of its scalar value.
func EncodeChar(out Output, r rune) {
	EncodeU32(out, uint32(r))
}

// DecodeChar reads a u32 and rejects any value that isn't a valid unicode
// scalar value (i.e. a surrogate half or out of range).
func DecodeChar(in Input) (rune, error) {
	v, err := DecodeU32(in)
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if v > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, ErrInvalidChar
	}
	return r, nil
}

// EncodeString writes a compact length prefix followed by the raw UTF-8
// bytes.
func EncodeString(out Output, s string) {
	EncodeCompactUint64(out, uint64(len(s)))
	out.Write([]byte(s))
}

// DecodeString reads a compact-length-prefixed UTF-8 string, rejecting
// invalid UTF-8 and guarding against over-large allocations when the
// remaining input length is known (spec §5 resource policy).
func DecodeString(in Input) (string, error) {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return "", err
	}
	if rem, ok := in.RemainingLen(); ok && uint64(rem) < n {
		return "", ErrTooLargeAlloc
	}
	buf := make([]byte, n)
	if err := in.Read(buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// EncodeOptionBool implements the Option<bool> collapse: a single byte with
// three possible values instead of the generic 1+payload encoding.
func EncodeOptionBool(out Output, v *bool) {
	switch {
	case v == nil:
		out.PushByte(0)
	case !*v:
		out.PushByte(1)
	default:
		out.PushByte(2)
	}
}

// DecodeOptionBool is the inverse of EncodeOptionBool.
func DecodeOptionBool(in Input) (*bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0:
		return nil, nil
	case 1:
		v := false
		return &v, nil
	case 2:
		v := true
		return &v, nil
	default:
		return nil, ErrInvalidBool
	}
}
