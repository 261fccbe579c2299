//go:build !scale_nochain

package scale

// DecodeError carries a human-readable description plus the cause that led
// to it. This file is compiled by default, mirroring the reference codec's
// "chain-error" feature being on; build with -tags scale_nochain for the
// stripped, no-alloc-chain variant in chainerror_off.go.
type DecodeError struct {
	desc  string
	cause error
}

func newDecodeError(desc string, cause error) *DecodeError {
	return &DecodeError{desc: desc, cause: cause}
}

// Error renders the top-level description followed by the cause's own
// message, however deep its own chain goes.
func (e *DecodeError) Error() string {
	if e.cause == nil {
		return e.desc
	}
	return e.desc + ": " + e.cause.Error()
}

// Unwrap exposes the immediate cause, so errors.Is/errors.As can walk
// through any number of nested DecodeErrors down to the original sentinel.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// Causes returns the full chain from this error down to its root cause.
func (e *DecodeError) Causes() []error {
	var out []error
	var cur error = e
	for cur != nil {
		out = append(out, cur)
		unwrapper, ok := cur.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cur = unwrapper.Unwrap()
	}
	return out
}
