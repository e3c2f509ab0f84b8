package base64

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	for _, in := range []string{
		"",
		"hello world",
		"Olá! isto é um teste",
		"你好，这是一个测试",
		"emoji 🦫 and ü",
	} {
		encoded, err := EncodeText(in)
		require.NoError(t, err)

		decoded, err := DecodeText(encoded)
		require.NoError(t, err)
		require.Equal(t, in, decoded)

		encoded, err = URLEncoding.EncodeText(in)
		require.NoError(t, err)

		decoded, err = URLEncoding.DecodeText(encoded)
		require.NoError(t, err)
		require.Equal(t, in, decoded)
	}
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	encoded := StdEncoding.EncodeToString([]byte{'o', 'k', 0xc3, 0x28})

	_, err := DecodeText(encoded)
	require.Error(t, err)

	var terr *ErrInvalidText
	require.ErrorAs(t, err, &terr)
	require.Equal(t, 2, terr.Offset)
	require.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestDecodeTextBase64Failure(t *testing.T) {
	_, err := DecodeText("T===")

	var perr *ErrPadding
	require.ErrorAs(t, err, &perr)
	require.False(t, errors.Is(err, ErrInvalidUTF8))
}

func TestEncodeTextInvalidUTF8(t *testing.T) {
	_, err := EncodeText("bad \xff text")

	var terr *ErrInvalidText
	require.ErrorAs(t, err, &terr)
	require.Equal(t, 4, terr.Offset)
}
