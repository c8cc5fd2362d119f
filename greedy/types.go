// SPDX-License-Identifier: MIT

package greedy

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netim/diffusion"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil view is supplied.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrBadBudget is returned when k is not in [1, n].
	ErrBadBudget = errors.New("greedy: budget k must be in [1, n]")

	// ErrBadRounds is returned when the Monte-Carlo trial count is not positive.
	ErrBadRounds = errors.New("greedy: rounds must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")
)

// Progress is reported to the observer after each accepted seed.
type Progress struct {
	Algorithm   string
	Iteration   int // 1-based
	K           int
	Node        int
	Gain        float64
	Spread      float64
	Evaluations int // estimates performed so far
}

// Option configures a selection run.
type Option func(*Options)

// Options holds selection parameters.
type Options struct {
	Seed        int64
	HasSeed     bool
	Workers     int
	MaxRounds   int
	Diffusion   []diffusion.Option
	ReuseEngine bool
	Observer    func(Progress)
	Ctx         context.Context
	Logger      zerolog.Logger

	err error
}

// DefaultOptions returns sequential, unseeded options with a disabled logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Ctx:     context.Background(),
		Logger:  zerolog.Nop(),
	}
}

// WithSeed fixes the Monte-Carlo base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed, o.HasSeed = seed, true
	}
}

// WithWorkers parallelizes the trials of each estimate over n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxRounds caps every diffusion at r rounds; r <= 0 means no cap.
func WithMaxRounds(r int) Option {
	return func(o *Options) {
		o.MaxRounds = r
	}
}

// WithDiffusionOptions forwards options (beta, gamma, thresholds) to the
// diffusion engines.
func WithDiffusionOptions(opts ...diffusion.Option) Option {
	return func(o *Options) {
		o.Diffusion = append(o.Diffusion, opts...)
	}
}

// WithEngineReuse scores every candidate on one long-lived engine, reset
// between estimates, instead of building a new engine per estimate.
func WithEngineReuse() Option {
	return func(o *Options) {
		o.ReuseEngine = true
	}
}

// WithObserver registers a progress callback.
func WithObserver(fn func(Progress)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithContext makes selection cancellable.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for per-seed debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
