package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/picatz/b64/internal/fileio"
	"github.com/picatz/b64/internal/logger"
)

func (c maincmd) doDecode(ctx context.Context, in, out string, url, nopad, text bool, configFile, envPath string, _ []string) error {
	_, enc, err := setup(codecFlags{configFile: configFile, envPath: envPath, url: url, nopad: nopad})
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := c.readInput(in)
	if err != nil {
		return err
	}
	data = fileio.TrimLineEnd(data)

	var decoded []byte
	if text {
		s, err := enc.DecodeText(string(data))
		if err != nil {
			return err
		}
		decoded = []byte(s)
	} else {
		decoded, err = enc.Decode(data)
		if err != nil {
			return err
		}
	}

	logger.Debug("decoded",
		zap.String("in", in),
		zap.Int("bytes", len(decoded)),
		zap.Stringer("alphabet", enc.Alphabet().Variant()),
	)
	return c.writeOutput(out, decoded, false)
}
