// Package batch transcodes many files concurrently. Each file is an
// independent buffer and the codec's tables are immutable, so jobs share
// nothing but the worker pool.
package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/picatz/b64/internal/fileio"
)

// Extension is appended to encoded file names.
const Extension = ".b64"

// Operation selects the transcoding direction
type Operation int

const (
	Encode Operation = iota
	Decode
)

func (o Operation) String() string {
	if o == Decode {
		return "decode"
	}
	return "encode"
}

// Job is one file to transcode
type Job struct {
	Src string
	Dst string
}

// Result is the outcome of one Job
type Result struct {
	Job     Job
	Written int
	Err     error
	Done    bool // false when the run was cancelled before the job started
}

// Runner transcodes jobs on a bounded worker pool
type Runner struct {
	store     *fileio.Store
	codec     fileio.Codec
	workers   int
	queueSize int
	log       *zap.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithWorkers sets the maximum number of concurrent jobs
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithQueueSize bounds the number of queued jobs; 0 leaves it unbounded
func WithQueueSize(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.queueSize = n
		}
	}
}

// WithLogger sets the logger used for per-job events
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner returns a Runner that reads and writes through store
func NewRunner(store *fileio.Store, codec fileio.Codec, opts ...Option) *Runner {
	r := &Runner{
		store:   store,
		codec:   codec,
		workers: 4,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Jobs builds jobs for the given source files using DefaultDestination
func Jobs(op Operation, srcs ...string) []Job {
	jobs := make([]Job, 0, len(srcs))
	for _, src := range srcs {
		jobs = append(jobs, Job{Src: src, Dst: DefaultDestination(op, src)})
	}
	return jobs
}

// DefaultDestination names the output file for src: encoding appends
// Extension, decoding strips it (or appends ".out" when absent).
func DefaultDestination(op Operation, src string) string {
	if op == Encode {
		return src + Extension
	}
	if dst, ok := strings.CutSuffix(src, Extension); ok && dst != "" {
		return dst
	}
	return src + ".out"
}

// Run transcodes every job and returns one Result per job, in order. Job
// failures are reported in the results, not as the returned error, which
// is only set when ctx ends the run early.
func (r *Runner) Run(ctx context.Context, op Operation, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i].Job = job
	}

	if err := ctx.Err(); err != nil {
		return cancelled(results, err), err
	}

	opts := []pond.Option{pond.WithContext(ctx)}
	if r.queueSize > 0 {
		opts = append(opts, pond.WithQueueSize(r.queueSize))
	}
	pool := pond.NewPool(r.workers, opts...)

	group := pool.NewGroup()
	for i := range jobs {
		group.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			results[i] = r.run(op, jobs[i])
		})
	}

	waitErr := group.Wait()
	// Jobs still running after a cancellation must finish before results are read
	pool.StopAndWait()
	if err := ctx.Err(); err != nil {
		return cancelled(results, err), err
	}
	if waitErr != nil {
		return cancelled(results, waitErr), waitErr
	}

	r.log.Info("batch finished",
		zap.Stringer("operation", op),
		zap.Int("files", len(jobs)),
		zap.Int("failed", countFailed(results)),
	)
	return results, nil
}

func (r *Runner) run(op Operation, job Job) Result {
	var (
		n   int
		err error
	)
	if op == Decode {
		n, err = r.store.DecodeFile(r.codec, job.Src, job.Dst)
	} else {
		n, err = r.store.EncodeFile(r.codec, job.Src, job.Dst)
	}

	if err != nil {
		r.log.Warn("transcoding failed",
			zap.Stringer("operation", op),
			zap.String("src", job.Src),
			zap.Error(err),
		)
		return Result{Job: job, Err: fmt.Errorf("%s %s: %w", op, job.Src, err), Done: true}
	}

	r.log.Debug("transcoded",
		zap.Stringer("operation", op),
		zap.String("src", job.Src),
		zap.String("dst", job.Dst),
		zap.Int("bytes", n),
	)
	return Result{Job: job, Written: n, Done: true}
}

// Errors combines the errors of all failed results, or returns nil
func Errors(results []Result) error {
	var err error
	for _, res := range results {
		if res.Err != nil {
			err = multierr.Append(err, res.Err)
		}
	}
	return err
}

// cancelled marks every job that never ran with err
func cancelled(results []Result, err error) []Result {
	for i := range results {
		if !results[i].Done {
			results[i].Err = err
		}
	}
	return results
}

func countFailed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
