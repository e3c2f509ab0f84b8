package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/picatz/b64/internal/batch"
	"github.com/picatz/b64/internal/fileio"
	"github.com/picatz/b64/internal/logger"
)

func (c maincmd) doBatch(ctx context.Context, decode, url, nopad bool, workers int, configFile, envPath string, files []string) error {
	if len(files) == 0 {
		return errors.New("usage: b64 batch [-decode] [-url] [-nopad] [-workers N] FILE...")
	}

	cfg, enc, err := setup(codecFlags{configFile: configFile, envPath: envPath, url: url, nopad: nopad})
	if err != nil {
		return err
	}
	defer logger.Sync()

	if workers <= 0 {
		workers = cfg.Workers.PoolSize
	}

	op := batch.Encode
	if decode {
		op = batch.Decode
	}

	runner := batch.NewRunner(fileio.NewStore(c.fs), enc,
		batch.WithWorkers(workers),
		batch.WithQueueSize(cfg.Workers.QueueSize),
		batch.WithLogger(logger.Default()),
	)

	results, err := runner.Run(ctx, op, batch.Jobs(op, files...))
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err == nil {
			fmt.Fprintf(c.stdout, "%s -> %s\n", res.Job.Src, res.Job.Dst)
		}
	}
	return batch.Errors(results)
}
