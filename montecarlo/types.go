// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netim/diffusion"
)

// Sentinel errors.
var (
	// ErrBadRounds is returned when the trial count is not positive.
	ErrBadRounds = errors.New("montecarlo: rounds must be positive")

	// ErrNilEngine is returned when RunEngine receives a nil engine.
	ErrNilEngine = errors.New("montecarlo: engine is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

// Summary describes the distribution of outcome sizes over all trials.
type Summary struct {
	// Mean is the estimated expected spread.
	Mean float64
	// StdDev is the sample standard deviation of the outcome size.
	StdDev float64
	// StdErr is StdDev / sqrt(Trials).
	StdErr float64
	// Trials is the number of diffusions performed.
	Trials int
	// Total is the summed outcome size over all trials. It is an exact
	// integer, so totals from equal worlds compare without rounding.
	Total float64
}

// Option configures an estimate.
type Option func(*Options)

// Options holds estimate parameters. Use the With* helpers to set them.
type Options struct {
	Seed      int64
	HasSeed   bool
	Workers   int
	MaxRounds int
	Diffusion []diffusion.Option
	Ctx       context.Context
	Logger    zerolog.Logger

	err error
}

// DefaultOptions returns a sequential, unseeded configuration with no round
// limit and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Ctx:     context.Background(),
		Logger:  zerolog.Nop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithSeed fixes the base seed; trial i uses seed+i.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed, o.HasSeed = seed, true
	}
}

// WithWorkers runs trials on n goroutines. n == 1 is sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithParallel uses one worker per CPU.
func WithParallel() Option {
	return WithWorkers(runtime.NumCPU())
}

// WithMaxRounds caps every diffusion at r rounds; r <= 0 means no cap.
func WithMaxRounds(r int) Option {
	return func(o *Options) {
		o.MaxRounds = r
	}
}

// WithDiffusionOptions forwards options to diffusion.New. Ignored by
// RunEngine, whose engine is already configured.
func WithDiffusionOptions(opts ...diffusion.Option) Option {
	return func(o *Options) {
		o.Diffusion = append(o.Diffusion, opts...)
	}
}

// WithContext makes the estimate cancellable between trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
