package main

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/picatz/b64/internal/fileio"
	"github.com/picatz/b64/internal/logger"
	"github.com/picatz/b64/pkg/datauri"
)

func (c maincmd) doEncode(ctx context.Context, in, out string, url, nopad, dataURI bool, configFile, envPath string, _ []string) error {
	_, enc, err := setup(codecFlags{configFile: configFile, envPath: envPath, url: url, nopad: nopad})
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := c.readInput(in)
	if err != nil {
		return err
	}

	var encoded []byte
	if dataURI {
		// data: URLs always use the standard alphabet with padding
		encoded = []byte(datauri.Encode(data))
	} else {
		encoded = enc.Encode(data)
	}

	logger.Debug("encoded",
		zap.String("in", in),
		zap.Int("bytes", len(data)),
		zap.Stringer("alphabet", enc.Alphabet().Variant()),
	)
	return c.writeOutput(out, encoded, true)
}

func (c maincmd) readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(c.stdin)
	}
	return fileio.NewStore(c.fs).Read(path)
}

// writeOutput writes data to path, or to stdout followed by a newline when
// newline is set.
func (c maincmd) writeOutput(path string, data []byte, newline bool) error {
	if path == "-" || path == "" {
		if _, err := c.stdout.Write(data); err != nil {
			return err
		}
		if newline {
			_, err := io.WriteString(c.stdout, "\n")
			return err
		}
		return nil
	}
	return fileio.NewStore(c.fs).Write(path, data)
}
