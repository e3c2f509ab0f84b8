package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bobg/subcmd/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/picatz/b64/pkg/base64"
)

func newTestCmd(stdin string) (maincmd, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return maincmd{
		fs:     afero.NewMemMapFs(),
		stdin:  strings.NewReader(stdin),
		stdout: out,
	}, out
}

func Test_encodeStdin(t *testing.T) {
	c, out := newTestCmd("Man")

	err := subcmd.Run(context.Background(), c, []string{"encode"})
	require.NoError(t, err)
	require.Equal(t, "TWFu\n", out.String())
}

func Test_encodeURLNoPad(t *testing.T) {
	c, out := newTestCmd(string([]byte{0xfb, 0xff}))

	err := subcmd.Run(context.Background(), c, []string{"encode", "-url", "-nopad"})
	require.NoError(t, err)
	require.Equal(t, "-_8\n", out.String())
}

func Test_encodeDataURI(t *testing.T) {
	c, out := newTestCmd("hello world")

	err := subcmd.Run(context.Background(), c, []string{"encode", "-datauri"})
	require.NoError(t, err)
	require.Equal(t, "data:text/plain;charset=utf-8;base64,aGVsbG8gd29ybGQ=\n", out.String())
}

func Test_decodeFileToFile(t *testing.T) {
	c, _ := newTestCmd("")
	require.NoError(t, afero.WriteFile(c.fs, "/in.b64", []byte("dGhyZWVz\n"), 0o644))

	err := subcmd.Run(context.Background(), c, []string{"decode", "-in", "/in.b64", "-out", "/out.txt"})
	require.NoError(t, err)

	data, err := afero.ReadFile(c.fs, "/out.txt")
	require.NoError(t, err)
	require.Equal(t, "threes", string(data))
}

func Test_decodeErrors(t *testing.T) {
	c, _ := newTestCmd("T===")
	err := subcmd.Run(context.Background(), c, []string{"decode"})
	var perr *base64.ErrPadding
	require.ErrorAs(t, err, &perr)

	c, _ = newTestCmd(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe}))
	err = subcmd.Run(context.Background(), c, []string{"decode", "-text"})
	var terr *base64.ErrInvalidText
	require.ErrorAs(t, err, &terr)
}

func Test_batch(t *testing.T) {
	c, out := newTestCmd("")
	require.NoError(t, afero.WriteFile(c.fs, "/a.txt", []byte("four"), 0o644))
	require.NoError(t, afero.WriteFile(c.fs, "/b.txt", []byte("three"), 0o644))

	err := subcmd.Run(context.Background(), c, []string{"batch", "-workers", "2", "/a.txt", "/b.txt"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "/a.txt -> /a.txt.b64")

	data, err := afero.ReadFile(c.fs, "/b.txt.b64")
	require.NoError(t, err)
	require.Equal(t, "dGhyZWU=", string(data))

	require.NoError(t, c.fs.Remove("/a.txt"))
	err = subcmd.Run(context.Background(), c, []string{"batch", "-decode", "/a.txt.b64"})
	require.NoError(t, err)

	data, err = afero.ReadFile(c.fs, "/a.txt")
	require.NoError(t, err)
	require.Equal(t, "four", string(data))
}

func Test_batchRequiresFiles(t *testing.T) {
	c, _ := newTestCmd("")
	err := subcmd.Run(context.Background(), c, []string{"batch"})
	require.Error(t, err)
}
