// Command b64 encodes and decodes Base64 (RFC 4648).
//
// Usage:
//
//	b64 encode [-in FILE] [-out FILE] [-url] [-nopad] [-datauri] [-config FILE] [-env DIR]
//	b64 decode [-in FILE] [-out FILE] [-url] [-nopad] [-text] [-config FILE] [-env DIR]
//	b64 batch [-decode] [-url] [-nopad] [-workers N] [-config FILE] [-env DIR] FILE...
//
// Input and output default to stdin and stdout ("-").
// With -url the URL-safe alphabet is used,
// and with -nopad padding is omitted when encoding and rejected when decoding.
// Otherwise the alphabet and padding come from the configuration
// (b64.yaml in the current or config/ directory, .env files, and B64_* variables).
//
// With -datauri,
// encode wraps its output in a data: URL whose media type is sniffed from the input.
// With -text,
// decode fails unless the decoded bytes are valid UTF-8.
//
// batch encodes every FILE into FILE.b64,
// or with -decode turns every FILE.b64 back into FILE,
// using a pool of workers.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bobg/subcmd/v2"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		ctx = context.Background()

		c = maincmd{
			fs:     afero.NewOsFs(),
			stdin:  os.Stdin,
			stdout: os.Stdout,
		}
	)

	return subcmd.Run(ctx, c, os.Args[1:])
}

type maincmd struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
}

func (c maincmd) Subcmds() subcmd.Map {
	return subcmd.Commands(
		"encode", c.doEncode, "encode a file or stdin", subcmd.Params(
			"-in", subcmd.String, "-", "input file, - for stdin",
			"-out", subcmd.String, "-", "output file, - for stdout",
			"-url", subcmd.Bool, false, "use the URL-safe alphabet",
			"-nopad", subcmd.Bool, false, "omit padding",
			"-datauri", subcmd.Bool, false, "emit a data: URL",
			"-config", subcmd.String, "", "path to configuration file",
			"-env", subcmd.String, "config/", "path to environment files",
		),
		"decode", c.doDecode, "decode a file or stdin", subcmd.Params(
			"-in", subcmd.String, "-", "input file, - for stdin",
			"-out", subcmd.String, "-", "output file, - for stdout",
			"-url", subcmd.Bool, false, "use the URL-safe alphabet",
			"-nopad", subcmd.Bool, false, "expect unpadded input",
			"-text", subcmd.Bool, false, "require the result to be UTF-8 text",
			"-config", subcmd.String, "", "path to configuration file",
			"-env", subcmd.String, "config/", "path to environment files",
		),
		"batch", c.doBatch, "encode or decode many files concurrently", subcmd.Params(
			"-decode", subcmd.Bool, false, "decode FILE.b64 into FILE instead of encoding",
			"-url", subcmd.Bool, false, "use the URL-safe alphabet",
			"-nopad", subcmd.Bool, false, "omit padding",
			"-workers", subcmd.Int, 0, "number of concurrent files (default from config)",
			"-config", subcmd.String, "", "path to configuration file",
			"-env", subcmd.String, "config/", "path to environment files",
		),
	)
}
