package b64_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/picatz/b64/pkg/alphabet"
	"github.com/picatz/b64/pkg/base64"
	"github.com/picatz/b64/pkg/datauri"
)

func Example() {
	encoded, err := base64.EncodeText("Assuming")
	if err != nil {
		panic(fmt.Sprintf("failed to encode text: %v", err))
	}

	fmt.Println(encoded)
	// Output: QXNzdW1pbmc=
}

func TestEncodingsShareTables(t *testing.T) {
	require.Same(t, alphabet.Get(alphabet.Standard), base64.StdEncoding.Alphabet())
	require.Same(t, alphabet.Get(alphabet.URLSafe), base64.URLEncoding.Alphabet())
	require.False(t, base64.RawURLEncoding.Alphabet().Padded())
}

func TestDataURIOfEncodedText(t *testing.T) {
	text := "Olá, 世界"

	uri := datauri.EncodeWithType("text/plain;charset=utf-8", []byte(text))

	parsed, err := datauri.Parse(uri)
	require.NoError(t, err)
	require.Equal(t, text, string(parsed.Data))

	encoded, err := base64.EncodeText(text)
	require.NoError(t, err)
	require.Equal(t, "data:text/plain;charset=utf-8;base64,"+encoded, uri)
}

func TestConcurrentUse(t *testing.T) {
	payload := []byte("shared tables are immutable")
	want := base64.URLEncoding.EncodeToString(payload)

	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		go func() {
			got := base64.URLEncoding.EncodeToString(payload)
			if got != want {
				errs <- fmt.Errorf("got %q, want %q", got, want)
				return
			}
			_, err := base64.URLEncoding.DecodeString(got)
			errs <- err
		}()
	}
	for i := 0; i < cap(errs); i++ {
		require.NoError(t, <-errs)
	}
}
