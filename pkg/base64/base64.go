package base64

import (
	"golang.org/x/exp/slices"

	"github.com/picatz/b64/pkg/alphabet"
)

// Encoding is a base64 codec for one alphabet and padding choice. It holds
// only immutable lookup tables, so it is safe for concurrent use.
type Encoding struct {
	table *alphabet.Table
}

// Predefined encodings for both RFC 4648 alphabets, with and without
// padding.
var (
	StdEncoding    = mustEncoding(alphabet.Standard)
	URLEncoding    = mustEncoding(alphabet.URLSafe)
	RawStdEncoding = mustEncoding(alphabet.Standard, WithoutPadding())
	RawURLEncoding = mustEncoding(alphabet.URLSafe, WithoutPadding())
)

type options struct {
	pad rune
}

// Option configures an Encoding created with NewEncoding.
type Option func(*options)

// WithPadding replaces the default '=' padding character.
func WithPadding(pad rune) Option {
	return func(o *options) {
		o.pad = pad
	}
}

// WithoutPadding omits padding from encoded output. Decoding then expects
// unpadded input and treats any padding character as illegal.
func WithoutPadding() Option {
	return WithPadding(alphabet.NoPadding)
}

// NewEncoding returns an Encoding for the given alphabet variant.
func NewEncoding(v alphabet.Variant, opts ...Option) (*Encoding, error) {
	o := options{pad: alphabet.StdPadding}
	for _, opt := range opts {
		opt(&o)
	}

	table, err := alphabet.New(v, o.pad)
	if err != nil {
		return nil, err
	}
	return &Encoding{table: table}, nil
}

func mustEncoding(v alphabet.Variant, opts ...Option) *Encoding {
	enc, err := NewEncoding(v, opts...)
	if err != nil {
		panic(err)
	}
	return enc
}

// Alphabet returns the lookup table used by e.
func (e *Encoding) Alphabet() *alphabet.Table {
	return e.table
}

// EncodedLen returns the length of the encoding of n raw bytes.
func (e *Encoding) EncodedLen(n int) int {
	if !e.table.Padded() {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes src decodes to, derived from the
// position of its first padding character.
func (e *Encoding) DecodedLen(src []byte) int {
	return e.dataLength(src) * 3 / 4
}

// dataLength is the index of the first padding character, or len(src).
func (e *Encoding) dataLength(src []byte) int {
	if !e.table.Padded() {
		return len(src)
	}
	if i := slices.Index(src, byte(e.table.Padding())); i >= 0 {
		return i
	}
	return len(src)
}

// Encode returns the base64 encoding of src. Encoding never fails; empty
// input gives empty output.
func (e *Encoding) Encode(src []byte) []byte {
	dst := make([]byte, e.EncodedLen(len(src)))

	si, di := 0, 0
	for n := len(src) / 3 * 3; si < n; si += 3 {
		quartet := splitTrio([3]byte{src[si], src[si+1], src[si+2]})
		for i, v := range quartet {
			dst[di+i] = e.table.Char(v)
		}
		di += 4
	}

	rem := len(src) - si
	if rem == 0 {
		return dst
	}

	// The missing bytes of the final trio are zero.
	var trio [3]byte
	copy(trio[:], src[si:])
	quartet := splitTrio(trio)
	for i := 0; i <= rem; i++ {
		dst[di+i] = e.table.Char(quartet[i])
	}
	if e.table.Padded() {
		for i := rem + 1; i < 4; i++ {
			dst[di+i] = byte(e.table.Padding())
		}
	}
	return dst
}

// EncodeToString returns the base64 encoding of src as a string.
func (e *Encoding) EncodeToString(src []byte) string {
	return string(e.Encode(src))
}

// Decode returns the bytes represented by the base64 input src.
//
// With padding, len(src) must be a multiple of four and padding may only
// close the final quartet, after at least two data characters. Without
// padding, any length except 1 (mod 4) is accepted. Empty input decodes to
// an empty slice.
func (e *Encoding) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	n, err := e.checkLayout(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n*3/4)

	si, di := 0, 0
	for full := n / 4 * 4; si < full; si += 4 {
		quartet, err := e.lookup(src[si:si+4], si)
		if err != nil {
			return nil, err
		}
		trio := joinQuartet(quartet)
		copy(dst[di:], trio[:])
		di += 3
	}

	// A tail of two or three characters carries one or two bytes.
	if rem := n - si; rem > 0 {
		quartet, err := e.lookup(src[si:n], si)
		if err != nil {
			return nil, err
		}
		trio := joinQuartet(quartet)
		copy(dst[di:], trio[:rem-1])
	}

	return dst, nil
}

// DecodeString returns the bytes represented by the base64 string s.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return e.Decode([]byte(s))
}

// checkLayout validates the input length and padding, returning the number
// of data characters.
func (e *Encoding) checkLayout(src []byte) (int, error) {
	if !e.table.Padded() {
		if len(src)%4 == 1 {
			return 0, NewInvalidLengthError(len(src))
		}
		return len(src), nil
	}

	if len(src)%4 != 0 {
		return 0, NewInvalidLengthError(len(src))
	}

	n := e.dataLength(src)
	if n == len(src) {
		return n, nil
	}

	// Padding may start at index 2 or 3 of the final quartet.
	last := len(src) - 4
	if n < last || n-last < 2 {
		return 0, NewPaddingError(n)
	}
	pad := byte(e.table.Padding())
	for i := n + 1; i < len(src); i++ {
		if src[i] != pad {
			return 0, NewPaddingError(i)
		}
	}
	return n, nil
}

// lookup maps up to four characters to their 6-bit values. Missing
// characters are left as zero.
func (e *Encoding) lookup(chars []byte, offset int) ([4]byte, error) {
	var quartet [4]byte
	for i, c := range chars {
		v := e.table.Value(c)
		if v >= alphabet.Size {
			return quartet, NewInvalidCharacterError(offset+i, c)
		}
		quartet[i] = v
	}
	return quartet, nil
}

// splitTrio regroups three bytes into four 6-bit values.
func splitTrio(b [3]byte) [4]byte {
	return [4]byte{
		b[0] >> 2,
		(b[0]&0x3)<<4 | b[1]>>4,
		(b[1]&0xF)<<2 | b[2]>>6,
		b[2] & 0x3F,
	}
}

// joinQuartet is the inverse of splitTrio.
func joinQuartet(v [4]byte) [3]byte {
	return [3]byte{
		v[0]<<2 | v[1]>>4,
		v[1]<<4 | v[2]>>2,
		v[2]<<6 | v[3],
	}
}

// Encode returns the standard, padded base64 encoding of src.
func Encode(src []byte) []byte {
	return StdEncoding.Encode(src)
}

// Decode decodes standard, padded base64.
func Decode(src []byte) ([]byte, error) {
	return StdEncoding.Decode(src)
}
