package base64

import (
	"fmt"
	"strings"
)

// DecodeURL returns the base64url decoded bytes from the given input.
// This function implements base64url decoding as defined in RFC 4648 Section 5,
// which is used in JWT and JWS specifications (RFC 7515).
//
// Padded and unpadded input are both accepted.
func DecodeURL(input string) ([]byte, error) {
	if padLen := len(input) % 4; padLen > 1 {
		var b strings.Builder
		b.Grow(len(input) + (4 - padLen))
		b.WriteString(input)
		for i := padLen; i < 4; i++ {
			b.WriteByte('=')
		}
		input = b.String()
	}

	result, err := URLEncoding.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("invalid base64url input: %w", err)
	}
	return result, nil
}

// EncodeURL returns the unpadded base64url encoding of input, as required
// by the JWS compact serialization.
func EncodeURL(input []byte) string {
	return RawURLEncoding.EncodeToString(input)
}
