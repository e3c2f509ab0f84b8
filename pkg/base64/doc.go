// Package base64 implements base64 encoding and decoding as defined in
// RFC 4648, for both the standard and the URL-safe alphabet.
//
// Input is processed in groups of three raw bytes, each mapped to a quartet
// of four characters. A final group of one or two bytes is padded with two
// or one padding characters ('=' unless configured otherwise), or left
// unpadded for the Raw encodings.
//
// Decoding is strict: bytes outside the alphabet, misplaced padding and
// impossible lengths are reported as typed errors rather than decoded into
// garbage.
//
// The EncodeURL and DecodeURL helpers produce and accept the unpadded
// base64url form used by JSON Web Signatures (RFC 7515).
//
// http://www.rfc-editor.org/rfc/rfc4648
package base64
