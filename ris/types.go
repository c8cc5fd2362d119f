// SPDX-License-Identifier: MIT

package ris

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil view is supplied.
	ErrNilGraph = errors.New("ris: graph is nil")

	// ErrUnsupportedModel is returned for models without a reverse sampler.
	ErrUnsupportedModel = errors.New("ris: model must be IC or LT")

	// ErrBadBudget is returned when k is not in [1, n].
	ErrBadBudget = errors.New("ris: budget k must be in [1, n]")

	// ErrBadSampleCount is returned when the RR-set count is not positive.
	ErrBadSampleCount = errors.New("ris: number of RR sets must be positive")

	// ErrBadEpsilon is returned when epsilon is not in (0, 1).
	ErrBadEpsilon = errors.New("ris: epsilon must be in (0, 1)")

	// ErrBadEll is returned when ell is not positive.
	ErrBadEll = errors.New("ris: ell must be positive")

	// ErrNodeOutOfRange is returned when an RR set names a node outside [0, n).
	ErrNodeOutOfRange = errors.New("ris: node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ris: invalid option supplied")
)

const (
	// DefaultEpsilon is IMM's default approximation slack.
	DefaultEpsilon = 0.5
	// DefaultEll is IMM's default confidence exponent.
	DefaultEll = 1.0
	// ChunkSize is the number of RR sets drawn from one seeded source.
	ChunkSize = 512
)

// Selection is the outcome of greedy max-coverage.
type Selection struct {
	// Seeds in selection order.
	Seeds []int
	// Covered is the number of RR sets hit by Seeds.
	Covered int
	// Ratio is Covered divided by the number of RR sets.
	Ratio float64
}

// Result is the outcome of RIS or IMM.
type Result struct {
	Seeds []int
	// Coverage is the fraction of RR sets covered by Seeds.
	Coverage float64
	// Samples is the number of RR sets the final selection used.
	Samples int
	// LowerBound is IMM's spread lower bound LB (0 for RIS).
	LowerBound float64
	// Theta is IMM's θ* = λ*/LB (0 for RIS).
	Theta float64
}

// Option configures RIS and IMM.
type Option func(*Options)

// Options holds sampling parameters.
type Options struct {
	Seed    int64
	HasSeed bool
	Workers int
	Epsilon float64
	Ell     float64
	Ctx     context.Context
	Logger  zerolog.Logger

	err error
}

// DefaultOptions returns sequential, unseeded options with ε = 0.5, ℓ = 1.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Epsilon: DefaultEpsilon,
		Ell:     DefaultEll,
		Ctx:     context.Background(),
		Logger:  zerolog.Nop(),
	}
}

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed, o.HasSeed = seed, true
	}
}

// WithWorkers generates RR-set chunks on n goroutines.
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

// WithEpsilon sets IMM's ε.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithEll sets IMM's ℓ before its ln 2 / ln n adjustment.
func WithEll(ell float64) Option {
	return func(o *Options) {
		o.Ell = ell
	}
}

// WithContext makes sampling cancellable between chunks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for phase-level debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
