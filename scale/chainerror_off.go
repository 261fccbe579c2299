//go:build scale_nochain

package scale

// DecodeError is the stripped variant: only the top-level description is
// retained, no cause chain, no extra allocations beyond the string itself.
// Build with -tags scale_nochain to select this file over chainerror_on.go.
type DecodeError struct {
	desc string
}

func newDecodeError(desc string, _ error) *DecodeError {
	return &DecodeError{desc: desc}
}

func (e *DecodeError) Error() string {
	return e.desc
}

func (e *DecodeError) Unwrap() error {
	return nil
}
