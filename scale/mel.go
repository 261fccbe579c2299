package scale

import (
	"math"
	"reflect"
	"sync"
)

// unboundedMEL marks a type with no statically known encoded-size bound.
const unboundedMEL = math.MaxInt

var melCache sync.Map // reflect.Type -> int

func saturatingAdd(a, b int) int {
	if a >= unboundedMEL || b >= unboundedMEL {
		return unboundedMEL
	}
	sum := a + b
	if sum < a {
		return unboundedMEL
	}
	return sum
}

func saturatingMul(a, n int) int {
	if a == 0 || n == 0 {
		return 0
	}
	if a >= unboundedMEL || n >= unboundedMEL {
		return unboundedMEL
	}
	if a > unboundedMEL/n {
		return unboundedMEL
	}
	return a * n
}

// RegisterMaxEncodedLen caches a manually computed bound for t, for
// composite types whose MEL can't be derived structurally (e.g. a sequence
// bounded by an external policy rather than its Go type). Call this from an
// init() before any MaxEncodedLenOf call for the type.
func RegisterMaxEncodedLen(t reflect.Type, n int) {
	melCache.Store(t, n)
}

// MaxEncodedLenOf returns T's maximum possible encoded length (spec §4.7),
// computed once per type and cached. Types implementing MaxEncodedLener are
// asked directly; otherwise the bound is derived structurally from T's
// fields, falling back to unboundedMEL for anything with no statically
// knowable size (slices, maps, strings without an explicit registration).
func MaxEncodedLenOf[T any, PT interface {
	*T
	Decodable
}]() int {
	var v T
	t := reflect.TypeOf(v)
	return maxEncodedLenOfType(t, any(PT(&v)))
}

func maxEncodedLenOfType(t reflect.Type, zeroPtr any) int {
	if t != nil {
		if cached, ok := melCache.Load(t); ok {
			return cached.(int)
		}
	}
	n := computeMaxEncodedLen(t, zeroPtr)
	if t != nil {
		melCache.Store(t, n)
	}
	return n
}

func computeMaxEncodedLen(t reflect.Type, zeroPtr any) int {
	if m, ok := zeroPtr.(MaxEncodedLener); ok {
		return m.MaxEncodedLen()
	}
	if fs, ok := zeroPtr.(FixedSizer); ok {
		if n, ok2 := fs.EncodedFixedSize(); ok2 {
			return n
		}
	}
	if t == nil {
		return unboundedMEL
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.Array:
		return saturatingMul(computeMaxEncodedLenOfType(t.Elem()), t.Len())
	case reflect.Struct:
		total := 0
		for i := 0; i < t.NumField(); i++ {
			total = saturatingAdd(total, computeMaxEncodedLenOfType(t.Field(i).Type))
		}
		return total
	default:
		return unboundedMEL
	}
}

// ResultMaxEncodedLen is the tight §4.7 bound for a Result[T, E]-shaped sum:
// 1 discriminant byte plus whichever branch is larger, not the sum of both
// branches. The generic Result type has no dedicated MaxEncodedLen of its
// own (Ok/Err aren't known without instantiating it), so callers that want
// the tight bound compute the branch MELs themselves and pass them here.
func ResultMaxEncodedLen(okMEL, errMEL int) int {
	return saturatingAdd(1, maxInt(okMEL, errMEL))
}

// SumMaxEncodedLen is the tight §4.7 bound for a tagged sum with more than
// two variants: 1 discriminant byte plus the largest variant. Go structs
// modeling a sum (one field per variant) are
// computed structurally as a field sum by computeMaxEncodedLen's default
// reflect.Struct case, which is a valid but looser bound; types that want
// the tight one should implement MaxEncodedLener directly using this helper.
func SumMaxEncodedLen(variantMELs ...int) int {
	widest := 0
	for _, m := range variantMELs {
		widest = maxInt(widest, m)
	}
	return saturatingAdd(1, widest)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func computeMaxEncodedLenOfType(t reflect.Type) int {
	if cached, ok := melCache.Load(t); ok {
		return cached.(int)
	}
	ptr := reflect.New(t).Interface()
	n := computeMaxEncodedLen(t, ptr)
	melCache.Store(t, n)
	return n
}
