package scale

import (
	"encoding/binary"
	"errors"
	"math/big"
)

// Four compact-integer modes, tagged by the low 2 bits of the first byte.
const (
	compactModeSingle   = 0b00
	compactModeTwoByte  = 0b01
	compactModeFourByte = 0b10
	compactModeBigInt   = 0b11

	compactSingleMax   = 1 << 6
	compactTwoByteMax  = 1 << 14
	compactFourByteMax = 1 << 30

	// compactMaxBigBytes is the largest big-integer byte count the 6-bit
	// length field (m-4) can express: m-4 <= 63, so m <= 67, covering
	// values up to 2^536-1.
	compactMaxBigBytes = 67
)

var errCompactNegative = errors.New("scale: compact integers must be non-negative")
var errCompactTooLarge = errors.New("scale: compact integer exceeds 2^536-1")

// EncodeCompactBig writes v (which must be non-negative and < 2^536) using
// the minimal of the four compact modes.
func EncodeCompactBig(out Output, v *big.Int) error {
	if v.Sign() < 0 {
		return errCompactNegative
	}
	switch {
	case v.Cmp(big.NewInt(compactSingleMax)) < 0:
		out.PushByte(byte(v.Uint64()<<2) | compactModeSingle)
	case v.Cmp(big.NewInt(compactTwoByteMax)) < 0:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(v.Uint64()<<2)|compactModeTwoByte)
		out.Write(buf[:])
	case v.Cmp(big.NewInt(compactFourByteMax)) < 0:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v.Uint64()<<2)|compactModeFourByte)
		out.Write(buf[:])
	default:
		be := v.Bytes() // big-endian, minimal (big.Int never keeps leading zero bytes)
		m := len(be)
		if m < 4 {
			m = 4 // unreachable in practice: v >= 2^30 always needs >= 4 bytes
		}
		if m > compactMaxBigBytes {
			return errCompactTooLarge
		}
		out.PushByte(byte(m-4)<<2 | compactModeBigInt)
		// Reverse the big-endian magnitude into little-endian, leaving zero
		// bytes at the high end if m was forced up above len(be) (only possible
		// when the value needs fewer than 4 bytes but m has a 4-byte floor).
		le := make([]byte, m)
		for i := 0; i < len(be); i++ {
			le[len(be)-1-i] = be[i]
		}
		out.Write(le)
	}
	return nil
}

// DecodeCompactBig reads a compact integer, rejecting any encoding that
// does not use the minimal mode for its value (mandatory canonicity check).
func DecodeCompactBig(in Input) (*big.Int, error) {
	b0, err := in.ReadByte()
	if err != nil {
		return nil, err
	}
	mode := b0 & 0b11
	switch mode {
	case compactModeSingle:
		return big.NewInt(int64(b0 >> 2)), nil
	case compactModeTwoByte:
		var buf [2]byte
		buf[0] = b0
		if err := in.Read(buf[1:]); err != nil {
			return nil, err
		}
		v := uint64(binary.LittleEndian.Uint16(buf[:])) >> 2
		if v < compactSingleMax {
			return nil, ErrNonCanonicalCompact
		}
		return new(big.Int).SetUint64(v), nil
	case compactModeFourByte:
		var buf [4]byte
		buf[0] = b0
		if err := in.Read(buf[1:]); err != nil {
			return nil, err
		}
		v := uint64(binary.LittleEndian.Uint32(buf[:])) >> 2
		if v < compactTwoByteMax {
			return nil, ErrNonCanonicalCompact
		}
		return new(big.Int).SetUint64(v), nil
	default:
		m := int(b0>>2) + 4
		if m > compactMaxBigBytes {
			return nil, ErrNonCanonicalCompact
		}
		le := make([]byte, m)
		if err := in.Read(le); err != nil {
			return nil, err
		}
		if le[m-1] == 0 {
			return nil, ErrNonCanonicalCompact
		}
		be := make([]byte, m)
		for i, b := range le {
			be[m-1-i] = b
		}
		v := new(big.Int).SetBytes(be)
		if v.Cmp(big.NewInt(compactFourByteMax)) < 0 {
			return nil, ErrNonCanonicalCompact
		}
		return v, nil
	}
}

// CompactSizeHint returns the exact encoded size of v without encoding it.
func CompactSizeHint(v *big.Int) int {
	switch {
	case v.Cmp(big.NewInt(compactSingleMax)) < 0:
		return 1
	case v.Cmp(big.NewInt(compactTwoByteMax)) < 0:
		return 2
	case v.Cmp(big.NewInt(compactFourByteMax)) < 0:
		return 4
	default:
		m := len(v.Bytes())
		if m < 4 {
			m = 4
		}
		return 1 + m
	}
}

// EncodeCompactUint64 is the fast path for the common case of a value that
// fits in a uint64.
func EncodeCompactUint64(out Output, v uint64) {
	_ = EncodeCompactBig(out, new(big.Int).SetUint64(v))
}

// DecodeCompactUint64 decodes a compact integer and requires it to fit in a
// uint64, failing otherwise.
func DecodeCompactUint64(in Input) (uint64, error) {
	v, err := DecodeCompactBig(in)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, errors.New("scale: compact value overflows uint64")
	}
	return v.Uint64(), nil
}

func compactSizeHintUint64(v uint64) int {
	return CompactSizeHint(new(big.Int).SetUint64(v))
}

// CompactUint is Encodable/Decodable wrapper around a uint64 using the
// compact integer format. Use CompactBigUint for values that may exceed 64
// bits.
type CompactUint uint64

func (c CompactUint) EncodeTo(out Output) { EncodeCompactUint64(out, uint64(c)) }
func (c CompactUint) SizeHint() int       { return compactSizeHintUint64(uint64(c)) }

func (c *CompactUint) DecodeFrom(in Input) error {
	v, err := DecodeCompactUint64(in)
	*c = CompactUint(v)
	return err
}

// MaxEncodedLen is the compact-mode bound for a value that may use the full
// uint64 range: 1 big-mode length byte plus 8 magnitude bytes (spec §4.7).
func (c CompactUint) MaxEncodedLen() int { return 9 }

// CompactBigUint is the arbitrary-precision (up to 2^536-1) compact wrapper.
type CompactBigUint struct {
	Value *big.Int
}

func (c CompactBigUint) EncodeTo(out Output) { _ = EncodeCompactBig(out, c.Value) }
func (c CompactBigUint) SizeHint() int       { return CompactSizeHint(c.Value) }

func (c *CompactBigUint) DecodeFrom(in Input) error {
	v, err := DecodeCompactBig(in)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

// MaxEncodedLen is the compact big-integer bound: 1 big-mode length byte
// plus the largest magnitude compactMaxBigBytes allows (spec §4.7, the
// 2^536-1 ceiling).
func (c CompactBigUint) MaxEncodedLen() int { return 1 + compactMaxBigBytes }

// CompactRef borrows an existing uint64 for encoding only, avoiding a copy
// into a CompactUint when the caller already owns the value (spec: "a
// variant CompactRef borrows its operand for encoding only").
type CompactRef struct {
	V *uint64
}

func (c CompactRef) EncodeTo(out Output) { EncodeCompactUint64(out, *c.V) }
func (c CompactRef) SizeHint() int       { return compactSizeHintUint64(*c.V) }
