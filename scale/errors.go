package scale

import "errors"

// Sentinel errors for the decode-side failure kinds named by the format.
// Sequence and map decoders wrap element failures with index context via
// newDecodeError, and Decodable implementations can add field context with
// WrapFieldError; in the default build callers can still match the sentinel
// through those wraps with errors.Is.
var (
	ErrNotEnoughData       = errors.New("scale: not enough data to fill buffer")
	ErrTrailingData        = errors.New("scale: input buffer has still data left after decoding")
	ErrInvalidDiscriminant = errors.New("scale: invalid sum discriminant")
	ErrInvalidBool         = errors.New("scale: invalid boolean byte")
	ErrInvalidChar         = errors.New("scale: char does not encode a valid unicode scalar value")
	ErrInvalidUTF8         = errors.New("scale: string is not valid utf-8")
	ErrNonCanonicalCompact = errors.New("scale: non canonical compact integer encoding")
	ErrDepthExceeded       = errors.New("scale: maximum recursion depth reached")
	ErrLengthMismatch      = errors.New("scale: fixed-size value has the wrong length")
	ErrTooLargeAlloc       = errors.New("scale: declared length exceeds remaining input")
	ErrDuplicateMapKey     = errors.New("scale: duplicate key while decoding map")
)
