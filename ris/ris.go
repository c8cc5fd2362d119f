// SPDX-License-Identifier: MIT

package ris

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/network"
)

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.HasSeed {
		o.Seed, o.HasSeed = time.Now().UnixNano(), true
	}

	return o, o.err
}

func checkBudget(g network.View, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if n := g.NumberOfNodes(); k < 1 || k > n {
		return fmt.Errorf("k=%d n=%d: %w", k, n, ErrBadBudget)
	}

	return nil
}

// RIS samples numRRSets RR sets from uniformly random roots and returns the
// greedy max-coverage seeds. The sample size carries no guarantee.
//
// Errors: ErrNilGraph, ErrBadBudget, ErrBadSampleCount,
// ErrUnsupportedModel, ErrOptionViolation, network.ErrWeightOutOfRange and
// context errors.
func RIS(g network.View, model diffusion.Model, k, numRRSets int, opts ...Option) (Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("RIS: %w", err)
	}
	if err = checkBudget(g, k); err != nil {
		return Result{}, fmt.Errorf("RIS: %w", err)
	}
	if numRRSets <= 0 {
		return Result{}, fmt.Errorf("RIS: numRRSets=%d: %w", numRRSets, ErrBadSampleCount)
	}
	pool, err := NewPool(g, model, o.Seed, o.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("RIS: %w", err)
	}
	if err = pool.Grow(o.Ctx, numRRSets); err != nil {
		return Result{}, fmt.Errorf("RIS: %w", err)
	}

	sets := pool.Take(numRRSets)
	sel, err := Select(g.NumberOfNodes(), sets, k)
	if err != nil {
		return Result{}, fmt.Errorf("RIS: %w", err)
	}
	o.Logger.Debug().
		Str("model", model.String()).
		Int("k", k).
		Int("rr_sets", len(sets)).
		Float64("coverage", sel.Ratio).
		Msg("ris selection done")

	return Result{Seeds: sel.Seeds, Coverage: sel.Ratio, Samples: len(sets)}, nil
}

// IMM selects k seeds with the martingale-based sample-size controller.
//
// Implementation:
//   - Stage 0: ℓ ← AdjustedEll(ℓ, n). For n == 1 or k == n every node is
//     returned without sampling.
//   - Stage 1 (lower bound): for i = 1..⌊log₂ n⌋, x = n/2^i, grow the pool
//     to θᵢ = ⌊λ′/x⌋ sets and select; the first i with n·F ≥ (1+ε′)·x
//     sets LB = n·F/(1+ε′). LB stays 1 if no i qualifies.
//   - Stage 2: grow the pool to θ* = λ*/LB sets (reusing stage-1 sets) and
//     select the final seeds.
//
// Errors: as RIS, plus ErrBadEpsilon and ErrBadEll.
func IMM(g network.View, model diffusion.Model, k int, opts ...Option) (Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("IMM: %w", err)
	}
	if err = checkBudget(g, k); err != nil {
		return Result{}, fmt.Errorf("IMM: %w", err)
	}
	eps, ell := o.Epsilon, o.Ell
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		return Result{}, fmt.Errorf("IMM: eps=%g: %w", eps, ErrBadEpsilon)
	}
	if math.IsNaN(ell) || ell <= 0 {
		return Result{}, fmt.Errorf("IMM: ell=%g: %w", ell, ErrBadEll)
	}
	pool, err := NewPool(g, model, o.Seed, o.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("IMM: %w", err)
	}

	n := g.NumberOfNodes()
	if n == 1 || k == n {
		seeds := make([]int, n)
		for v := range seeds {
			seeds[v] = v
		}
		return Result{Seeds: seeds, Coverage: 1}, nil
	}

	ell = AdjustedEll(ell, n)
	nf := float64(n)
	epsP := eps * math.Sqrt2
	lambdaP := LambdaPrime(n, k, eps, ell)

	lb, used := 1.0, 0
	for i := 1; i <= int(math.Log2(nf)); i++ {
		x := nf / math.Pow(2, float64(i))
		theta := int(lambdaP / x)
		if err = pool.Grow(o.Ctx, theta); err != nil {
			return Result{}, fmt.Errorf("IMM: phase 1: %w", err)
		}
		used = theta
		sel, err := Select(n, pool.Take(theta), k)
		if err != nil {
			return Result{}, fmt.Errorf("IMM: phase 1: %w", err)
		}
		o.Logger.Debug().
			Int("i", i).
			Int("theta", theta).
			Float64("coverage", sel.Ratio).
			Msg("imm lower-bound round")
		if nf*sel.Ratio >= (1+epsP)*x {
			lb = nf * sel.Ratio / (1 + epsP)
			break
		}
	}

	thetaStar := ThetaStar(n, k, eps, ell, lb)
	final := int(math.Ceil(thetaStar))
	if final < used {
		final = used
	}
	if err = pool.Grow(o.Ctx, final); err != nil {
		return Result{}, fmt.Errorf("IMM: phase 2: %w", err)
	}
	sel, err := Select(n, pool.Take(final), k)
	if err != nil {
		return Result{}, fmt.Errorf("IMM: phase 2: %w", err)
	}
	o.Logger.Debug().
		Str("model", model.String()).
		Int("k", k).
		Float64("lower_bound", lb).
		Float64("theta_star", thetaStar).
		Int("rr_sets", final).
		Float64("coverage", sel.Ratio).
		Msg("imm selection done")

	return Result{
		Seeds:      sel.Seeds,
		Coverage:   sel.Ratio,
		Samples:    final,
		LowerBound: lb,
		Theta:      thetaStar,
	}, nil
}
