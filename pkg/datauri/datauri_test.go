package datauri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/picatz/b64/pkg/base64"
)

// Smallest valid PNG header, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestEncode(t *testing.T) {
	uri := Encode(pngHeader)
	require.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), uri)

	text := Encode([]byte("hello world"))
	require.Equal(t, "data:text/plain;charset=utf-8;base64,aGVsbG8gd29ybGQ=", text)
}

func TestParse(t *testing.T) {
	tests := []struct {
		Name    string
		URI     string
		Require func(t *testing.T, d *DataURI, err error)
	}{
		{
			Name: "base64 png",
			URI:  Encode(pngHeader),
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, "image/png", d.MediaType)
				require.Equal(t, pngHeader, d.Data)
			},
		},
		{
			Name: "default media type",
			URI:  "data:;base64,TWFu",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, DefaultMediaType, d.MediaType)
				require.Equal(t, "Man", string(d.Data))
			},
		},
		{
			Name: "charset only",
			URI:  "data:;charset=utf-8;base64,TWFu",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, "text/plain;charset=utf-8", d.MediaType)
			},
		},
		{
			Name: "url alphabet without padding",
			URI:  "data:application/octet-stream;base64,-_-_Zg",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, []byte{0xfb, 0xff, 0xbf, 'f'}, d.Data)
			},
		},
		{
			Name: "percent encoded",
			URI:  "data:,A%20brief%20note",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, "A brief note", string(d.Data))
			},
		},
		{
			Name: "upper case scheme and marker",
			URI:  "DATA:text/plain;BASE64,Zm91cg==",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.NoError(t, err)
				require.Equal(t, "text/plain", d.MediaType)
				require.Equal(t, "four", string(d.Data))
			},
		},
		{
			Name: "not a data uri",
			URI:  "https://example.com",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.ErrorIs(t, err, ErrNotDataURI)
				require.Nil(t, d)
			},
		},
		{
			Name: "missing comma",
			URI:  "data:text/plain;base64",
			Require: func(t *testing.T, d *DataURI, err error) {
				require.ErrorIs(t, err, ErrMalformed)
			},
		},
		{
			Name: "bad padding",
			URI:  "data:;base64,T===",
			Require: func(t *testing.T, d *DataURI, err error) {
				var perr *base64.ErrPadding
				require.ErrorAs(t, err, &perr)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, err := Parse(test.URI)
			test.Require(t, d, err)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	d := &DataURI{MediaType: "application/json", Data: []byte(`{"a":1}`)}

	parsed, err := Parse(d.String())
	require.NoError(t, err)
	require.Equal(t, d, parsed)
}
