// Package alphabet provides the lookup tables behind base64 encoding and
// decoding, for the two alphabets defined by RFC 4648.
//
// A Table pairs a forward table, mapping a 6-bit value to its character,
// with a reverse table addressed by ASCII code point. Tables are built once
// by a pure function and never modified afterwards, so a single Table can be
// shared by any number of goroutines.
//
// https://www.rfc-editor.org/rfc/rfc4648#section-4
// https://www.rfc-editor.org/rfc/rfc4648#section-5
package alphabet
