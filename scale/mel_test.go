package scale

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type melFixedStruct struct {
	A uint32
	B bool
	C [4]uint8
}

func (s melFixedStruct) EncodeTo(out Output) {
	EncodeU32(out, s.A)
	EncodeBool(out, s.B)
	EncodeFixedBytes(out, s.C[:])
}

func (s melFixedStruct) SizeHint() int { return 9 }

func (s *melFixedStruct) DecodeFrom(in Input) error {
	a, err := DecodeU32(in)
	if err != nil {
		return err
	}
	b, err := DecodeBool(in)
	if err != nil {
		return err
	}
	s.A, s.B = a, b
	return DecodeFixedBytes(in, s.C[:])
}

type melNested struct {
	Inner melFixedStruct
	Tag   uint8
}

func (s melNested) EncodeTo(out Output) {
	s.Inner.EncodeTo(out)
	EncodeU8(out, s.Tag)
}
func (s melNested) SizeHint() int { return s.Inner.SizeHint() + 1 }
func (s *melNested) DecodeFrom(in Input) error {
	if err := s.Inner.DecodeFrom(in); err != nil {
		return err
	}
	v, err := DecodeU8(in)
	s.Tag = v
	return err
}

func TestMaxEncodedLenOfStruct(t *testing.T) {
	assert.Equal(t, 4+1+4, MaxEncodedLenOf[melFixedStruct]())
}

func TestMaxEncodedLenOfNestedStruct(t *testing.T) {
	assert.Equal(t, (4+1+4)+1, MaxEncodedLenOf[melNested]())
}

type dynamicBytes struct{ V []byte }

func TestMaxEncodedLenOfUnboundedTypeFallsBack(t *testing.T) {
	// A slice field has no statically known bound; the structural
	// computation should fall back to unboundedMEL rather than panic.
	assert.Equal(t, unboundedMEL, computeMaxEncodedLenOfType(reflect.TypeOf(dynamicBytes{})))
}

func TestMaxEncodedLenRegistrationOverridesComputation(t *testing.T) {
	RegisterMaxEncodedLen(reflect.TypeOf(dynamicBytes{}), 64)
	assert.Equal(t, 64, computeMaxEncodedLenOfType(reflect.TypeOf(dynamicBytes{})))
}

func TestMaxEncodedLenOfCompactUint(t *testing.T) {
	// 1 big-mode length byte + 8 magnitude bytes, not the plain uint64
	// reflect bound of 8 (spec §4.7).
	assert.Equal(t, 9, MaxEncodedLenOf[CompactUint]())
}

func TestMaxEncodedLenOfCompactBigUint(t *testing.T) {
	assert.Equal(t, 68, MaxEncodedLenOf[CompactBigUint]())
}

func TestResultMaxEncodedLen(t *testing.T) {
	assert.Equal(t, 1+9, ResultMaxEncodedLen(4, 9))
}

func TestSumMaxEncodedLen(t *testing.T) {
	assert.Equal(t, 1+12, SumMaxEncodedLen(3, 12, 7))
}
