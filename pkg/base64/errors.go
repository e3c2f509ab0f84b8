package base64

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// ErrPadding is returned when the padding at the end of the input does not
// describe one, two or three trailing bytes.
type ErrPadding struct {
	// Offset of the first misplaced padding or data character.
	Offset int
}

func (e *ErrPadding) Error() string {
	return fmt.Sprintf("base64: invalid padding at offset %d", e.Offset)
}

func NewPaddingError(offset int) *ErrPadding {
	return &ErrPadding{Offset: offset}
}

// ErrInvalidCharacter is returned when the input contains a byte outside the
// alphabet of the decoding Encoding.
type ErrInvalidCharacter struct {
	Offset int
	Char   byte
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("base64: illegal byte %q at offset %d", e.Char, e.Offset)
}

func NewInvalidCharacterError(offset int, c byte) *ErrInvalidCharacter {
	return &ErrInvalidCharacter{Offset: offset, Char: c}
}

// ErrInvalidLength is returned when the input cannot be a whole number of
// quartets (padded) or a valid unpadded tail.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("base64: invalid input length %d", e.Length)
}

func NewInvalidLengthError(length int) *ErrInvalidLength {
	return &ErrInvalidLength{Length: length}
}

// ErrInvalidText is returned by the text helpers when a string is not
// well-formed UTF-8.
type ErrInvalidText struct {
	Offset int
	Inner  error
}

func (e *ErrInvalidText) Error() string {
	return fmt.Sprintf("base64: text is not valid UTF-8 at offset %d: %v", e.Offset, e.Inner)
}

func (e *ErrInvalidText) Unwrap() error {
	return e.Inner
}

func NewInvalidTextError(offset int) *ErrInvalidText {
	return &ErrInvalidText{Offset: offset, Inner: ErrInvalidUTF8}
}
