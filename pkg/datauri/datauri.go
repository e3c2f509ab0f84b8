// Package datauri builds and parses "data" URLs (RFC 2397), which carry a
// small payload inline, usually base64 encoded.
//
// https://www.rfc-editor.org/rfc/rfc2397
package datauri

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/picatz/b64/pkg/base64"
)

const (
	scheme       = "data:"
	base64Marker = ";base64"

	// DefaultMediaType applies when a data URL omits its media type.
	DefaultMediaType = "text/plain;charset=US-ASCII"
)

var (
	ErrNotDataURI = errors.New("datauri: missing data: scheme")
	ErrMalformed  = errors.New("datauri: missing comma before payload")
)

// DataURI is a parsed data URL.
type DataURI struct {
	MediaType string
	Data      []byte
}

// Encode returns a base64 data URL for data, with the media type detected
// from the content itself.
func Encode(data []byte) string {
	return EncodeWithType(DetectMediaType(data), data)
}

// EncodeWithType returns a base64 data URL for data with the given media
// type.
func EncodeWithType(mediaType string, data []byte) string {
	payload := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	b.Grow(len(scheme) + len(mediaType) + len(base64Marker) + 1 + len(payload))
	b.WriteString(scheme)
	b.WriteString(mediaType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(payload)
	return b.String()
}

// DetectMediaType sniffs the media type of data, in the compact form used
// inside data URLs (no spaces between parameters).
func DetectMediaType(data []byte) string {
	return strings.ReplaceAll(mimetype.Detect(data).String(), " ", "")
}

// String returns d as a base64 data URL.
func (d *DataURI) String() string {
	return EncodeWithType(d.MediaType, d.Data)
}

// Parse decodes a data URL. Base64 payloads may use either alphabet and may
// omit padding; other payloads are percent-decoded.
func Parse(uri string) (*DataURI, error) {
	if len(uri) < len(scheme) || !strings.EqualFold(uri[:len(scheme)], scheme) {
		return nil, ErrNotDataURI
	}

	meta, payload, ok := strings.Cut(uri[len(scheme):], ",")
	if !ok {
		return nil, ErrMalformed
	}

	meta, isBase64 := cutSuffixFold(meta, base64Marker)
	if meta == "" {
		meta = DefaultMediaType
	} else if strings.HasPrefix(meta, ";") {
		meta = "text/plain" + meta
	}

	payload, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("datauri: unescaping payload: %w", err)
	}

	if !isBase64 {
		return &DataURI{MediaType: meta, Data: []byte(payload)}, nil
	}

	data, err := payloadEncoding(payload).DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("datauri: decoding payload: %w", err)
	}
	return &DataURI{MediaType: meta, Data: data}, nil
}

func payloadEncoding(payload string) *base64.Encoding {
	urlSafe := strings.ContainsAny(payload, "-_")
	raw := len(payload)%4 != 0

	switch {
	case urlSafe && raw:
		return base64.RawURLEncoding
	case urlSafe:
		return base64.URLEncoding
	case raw:
		return base64.RawStdEncoding
	default:
		return base64.StdEncoding
	}
}

func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
