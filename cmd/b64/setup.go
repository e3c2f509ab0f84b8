package main

import (
	"fmt"

	"github.com/picatz/b64/internal/config"
	"github.com/picatz/b64/internal/logger"
	"github.com/picatz/b64/pkg/alphabet"
	"github.com/picatz/b64/pkg/base64"
)

type codecFlags struct {
	configFile string
	envPath    string
	url        bool
	nopad      bool
}

// setup loads configuration, initializes logging and returns the encoding
// selected by the configuration and the command-line flags.
func setup(flags codecFlags) (*config.Config, *base64.Encoding, error) {
	cfg, err := config.Load(flags.configFile, flags.envPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flags.url {
		cfg.Alphabet = alphabet.URLSafe.String()
	}
	if flags.nopad {
		cfg.OmitPadding = true
	}

	if err := logger.Initialize(logger.Config{Debug: cfg.Debug}); err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	enc, err := cfg.Encoding()
	if err != nil {
		return nil, nil, err
	}
	return cfg, enc, nil
}
