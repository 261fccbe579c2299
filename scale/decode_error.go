package scale

import "fmt"

// wrapField attributes a field-decode failure to its name, the way
// eventUnmarshalCSER in the teacher repo attributes failures to the specific
// sub-field being read.
func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return newDecodeError(fmt.Sprintf("decoding field %s", field), err)
}

// wrapIndex attributes a sequence/array element failure to its index.
func wrapIndex(i int, err error) error {
	if err == nil {
		return nil
	}
	return newDecodeError(fmt.Sprintf("decoding element %d", i), err)
}

// WrapFieldError is the exported form of wrapField, for Decodable
// implementations outside this package that want the same
// which-field-failed attribution on their own decode errors.
func WrapFieldError(field string, err error) error {
	return wrapField(field, err)
}
