package scale

// DepthLimited wraps an Input, failing any decode that nests deeper than Max
// recursive references (spec §4.6: bounding recursive/indirect decode
// depth). Composite codecs that recurse through a Boxed[T] or similar owned
// indirection already bracket the recursive call with DescendRef/AscendRef,
// so wrapping the top-level Input here is sufficient to bound the whole
// decode.
type DepthLimited struct {
	Input
	Max int
	cur int
}

// WithDepthLimit returns an Input identical to in except that nesting past
// max levels fails with ErrDepthExceeded.
func WithDepthLimit(in Input, max int) *DepthLimited {
	return &DepthLimited{Input: in, Max: max}
}

func (d *DepthLimited) DescendRef() error {
	d.cur++
	if d.cur > d.Max {
		return ErrDepthExceeded
	}
	return d.Input.DescendRef()
}

func (d *DepthLimited) AscendRef() {
	d.cur--
	d.Input.AscendRef()
}
