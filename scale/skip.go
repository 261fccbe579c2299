package scale

// SkipFixedBytes advances in past n raw bytes without retaining them.
func SkipFixedBytes(in Input, n int) error {
	if n == 0 {
		return nil
	}
	return in.Read(make([]byte, n))
}

// SkipCompact advances in past one compact integer. There's no cheaper path
// than decoding it, since the mode byte alone doesn't bound the value's
// magnitude for the big-integer mode.
func SkipCompact(in Input) error {
	_, err := DecodeCompactBig(in)
	return err
}

// SkipString advances in past one compact-length-prefixed string without
// validating its UTF-8.
func SkipString(in Input) error {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return err
	}
	return SkipFixedBytes(in, int(n))
}

// SkipOption advances in past one Option<T>, using skipElem when the option
// is populated.
func SkipOption(in Input, skipElem func(Input) error) error {
	b, err := in.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		return nil
	case 1:
		return skipElem(in)
	default:
		return ErrInvalidBool
	}
}

// SkipSlice advances in past one compact-length-prefixed sequence, using
// skipElem for each element in turn.
func SkipSlice(in Input, skipElem func(Input) error) error {
	n, err := DecodeCompactUint64(in)
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		if err := skipElem(in); err != nil {
			return wrapIndex(int(i), err)
		}
	}
	return nil
}
