// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/workpool"
	"github.com/katalvlaran/netim/network"
)

// Run builds a diffusion engine for model over g and runs rounds trials
// from seeds.
//
// Errors: ErrBadRounds, ErrOptionViolation, any diffusion.New error and
// context errors.
func Run(g network.View, model diffusion.Model, seeds []int, rounds int, opts ...Option) (Summary, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return Summary{}, err
	}
	if rounds <= 0 {
		return Summary{}, fmt.Errorf("Run: rounds=%d: %w", rounds, ErrBadRounds)
	}
	e, err := diffusion.New(g, model, seeds, o.Diffusion...)
	if err != nil {
		return Summary{}, fmt.Errorf("Run: %w", err)
	}

	return run(e, rounds, o)
}

// Estimate is Run returning only the mean spread.
func Estimate(g network.View, model diffusion.Model, seeds []int, rounds int, opts ...Option) (float64, error) {
	s, err := Run(g, model, seeds, rounds, opts...)
	return s.Mean, err
}

// RunEngine runs rounds trials on e from its current seeds. In sequential
// mode e itself is reseeded and reused, and is left in the final state of
// the last trial; in parallel mode every worker drives its own clone and e
// is not modified.
//
// Reseeding is done through e.Seed, so a source injected with
// diffusion.WithRand is reseeded too: after a sequential call it continues
// from base+rounds-1, not from where the caller left it.
func RunEngine(e *diffusion.Engine, rounds int, opts ...Option) (Summary, error) {
	if e == nil {
		return Summary{}, ErrNilEngine
	}
	o, err := NewOptions(opts...)
	if err != nil {
		return Summary{}, err
	}
	if rounds <= 0 {
		return Summary{}, fmt.Errorf("RunEngine: rounds=%d: %w", rounds, ErrBadRounds)
	}

	return run(e, rounds, o)
}

// EstimateEngine is RunEngine returning only the mean spread.
func EstimateEngine(e *diffusion.Engine, rounds int, opts ...Option) (float64, error) {
	s, err := RunEngine(e, rounds, opts...)
	return s.Mean, err
}

func run(e *diffusion.Engine, rounds int, o Options) (Summary, error) {
	base := o.Seed
	if !o.HasSeed {
		base = time.Now().UnixNano()
	}
	sizes := make([]float64, rounds)

	spans := workpool.Split(rounds, o.Workers)
	tasks := make([]workpool.Task, len(spans))
	for w, span := range spans {
		span := span
		eng := e
		if len(spans) > 1 {
			eng = e.Clone(base)
		}
		tasks[w] = func(ctx context.Context) error {
			return trials(ctx, eng, span, base, o.MaxRounds, sizes)
		}
	}
	if err := workpool.Run(o.Ctx, o.Workers, tasks...); err != nil {
		return Summary{}, fmt.Errorf("montecarlo: %w", err)
	}

	s := summarize(sizes)
	o.Logger.Debug().
		Str("model", e.Model().String()).
		Int("seeds", len(e.Seeds())).
		Int("trials", s.Trials).
		Int("workers", len(spans)).
		Float64("mean", s.Mean).
		Float64("stderr", s.StdErr).
		Msg("spread estimated")

	return s, nil
}

// trials runs the block [span.Lo, span.Hi) on eng; trial i uses base+i.
func trials(ctx context.Context, eng *diffusion.Engine, span workpool.Span, base int64, maxRounds int, sizes []float64) error {
	for i := span.Lo; i < span.Hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		eng.Seed(base + int64(i))
		if err := eng.Reset(nil); err != nil {
			return err
		}
		eng.Run(maxRounds)
		sizes[i] = float64(eng.OutcomeSize())
	}

	return nil
}

func summarize(sizes []float64) Summary {
	n := len(sizes)
	if n == 1 {
		return Summary{Mean: sizes[0], Trials: 1, Total: sizes[0]}
	}
	mean, std := stat.MeanStdDev(sizes, nil)

	return Summary{
		Mean:   mean,
		StdDev: std,
		StdErr: std / math.Sqrt(float64(n)),
		Trials: n,
		Total:  floats.Sum(sizes),
	}
}
