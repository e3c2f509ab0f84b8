package alphabet

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Variant selects one of the RFC 4648 alphabets.
type Variant int

const (
	// Standard is the "base64" alphabet, ending in '+' and '/'.
	//
	// https://www.rfc-editor.org/rfc/rfc4648#section-4
	Standard Variant = iota

	// URLSafe is the "base64url" alphabet, ending in '-' and '_'.
	//
	// https://www.rfc-editor.org/rfc/rfc4648#section-5
	URLSafe
)

const (
	standardChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlSafeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Size is the number of characters in an alphabet.
const Size = 64

// Padding characters.
const (
	StdPadding rune = '='
	NoPadding  rune = -1
)

// Reverse table sentinels. Neither can collide with a 6-bit value.
const (
	Invalid byte = 0xFF
	Pad     byte = 0xFE
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case URLSafe:
		return "url"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the variant named by s. Both short and long names
// are accepted, case insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "std", "standard", "base64":
		return Standard, nil
	case "url", "urlsafe", "url-safe", "base64url":
		return URLSafe, nil
	default:
		return 0, fmt.Errorf("alphabet: unknown variant %q", s)
	}
}

func (v Variant) chars() (string, error) {
	switch v {
	case Standard:
		return standardChars, nil
	case URLSafe:
		return urlSafeChars, nil
	default:
		return "", fmt.Errorf("alphabet: unknown variant %v", v)
	}
}

// Table is an immutable pair of lookup tables for one alphabet and one
// padding choice.
type Table struct {
	variant Variant
	pad     rune
	forward [Size]byte
	reverse [128]byte
}

var (
	standard = mustBuild(Standard, StdPadding)
	urlSafe  = mustBuild(URLSafe, StdPadding)
)

// Get returns the prebuilt table for v using '=' as padding. Unknown
// variants get the Standard table.
func Get(v Variant) *Table {
	if v == URLSafe {
		return urlSafe
	}
	return standard
}

// New builds a table for v with the given padding character, or without
// padding when pad is NoPadding.
//
// The padding character must be ASCII, must not be a line break, and must
// not appear in the alphabet itself.
func New(v Variant, pad rune) (*Table, error) {
	if pad == StdPadding {
		if _, err := v.chars(); err != nil {
			return nil, err
		}
		return Get(v), nil
	}
	return build(v, pad)
}

func mustBuild(v Variant, pad rune) *Table {
	t, err := build(v, pad)
	if err != nil {
		panic(err)
	}
	return t
}

func build(v Variant, pad rune) (*Table, error) {
	chars, err := v.chars()
	if err != nil {
		return nil, err
	}

	if pad != NoPadding {
		switch {
		case pad < 0 || pad > 0x7F:
			return nil, fmt.Errorf("alphabet: padding %q is not ASCII", pad)
		case pad == '\r' || pad == '\n':
			return nil, fmt.Errorf("alphabet: padding cannot be a line break")
		case slices.Contains([]byte(chars), byte(pad)):
			return nil, fmt.Errorf("alphabet: padding %q is part of the %v alphabet", pad, v)
		}
	}

	t := &Table{variant: v, pad: pad}
	for i := range t.reverse {
		t.reverse[i] = Invalid
	}
	for i := 0; i < Size; i++ {
		c := chars[i]
		t.forward[i] = c
		t.reverse[c] = byte(i)
	}
	if pad != NoPadding {
		t.reverse[pad] = Pad
	}
	return t, nil
}

// Variant returns the alphabet the table was built for.
func (t *Table) Variant() Variant {
	return t.variant
}

// Padding returns the padding character, or NoPadding.
func (t *Table) Padding() rune {
	return t.pad
}

// Padded reports whether the table has a padding character.
func (t *Table) Padded() bool {
	return t.pad != NoPadding
}

// Chars returns the 64 alphabet characters in value order.
func (t *Table) Chars() string {
	return string(t.forward[:])
}

// Char returns the character for the low 6 bits of v.
func (t *Table) Char(v byte) byte {
	return t.forward[v&0x3F]
}

// Value returns the 6-bit value of c, Pad if c is the padding character, or
// Invalid if c is outside the alphabet.
func (t *Table) Value(c byte) byte {
	if c >= byte(len(t.reverse)) {
		return Invalid
	}
	return t.reverse[c]
}
