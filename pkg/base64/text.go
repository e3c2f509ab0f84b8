package base64

import "unicode/utf8"

// EncodeText returns the base64 encoding of the UTF-8 text s.
func (e *Encoding) EncodeText(s string) (string, error) {
	if i := invalidUTF8([]byte(s)); i >= 0 {
		return "", NewInvalidTextError(i)
	}
	return e.EncodeToString([]byte(s)), nil
}

// DecodeText decodes s and requires the result to be well-formed UTF-8.
// Base64 errors are returned as is; malformed text yields *ErrInvalidText.
func (e *Encoding) DecodeText(s string) (string, error) {
	b, err := e.DecodeString(s)
	if err != nil {
		return "", err
	}
	if i := invalidUTF8(b); i >= 0 {
		return "", NewInvalidTextError(i)
	}
	return string(b), nil
}

// EncodeText encodes s with StdEncoding.
func EncodeText(s string) (string, error) {
	return StdEncoding.EncodeText(s)
}

// DecodeText decodes s with StdEncoding.
func DecodeText(s string) (string, error) {
	return StdEncoding.DecodeText(s)
}

// invalidUTF8 returns the offset of the first byte that does not start a
// valid UTF-8 sequence, or -1.
func invalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
