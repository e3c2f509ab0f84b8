// Package b64 implements Base64 encoding as described by RFC 4648.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
//  - RFC2397 https://datatracker.ietf.org/doc/html/rfc2397 The "data" URL scheme
//  - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515#section-2 base64url without padding
//
// Packages:
//  - alphabet: the Standard and URL-safe lookup tables
//  - base64: the encoder and decoder
//  - datauri: data URLs built on the encoder
package b64
