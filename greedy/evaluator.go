// SPDX-License-Identifier: MIT

package greedy

import (
	"fmt"
	"time"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/montecarlo"
	"github.com/katalvlaran/netim/network"
)

// evaluator scores seed sets with Monte-Carlo estimates and counts them.
// Scores are summed outcome sizes over all trials; trial i of every
// estimate runs in the same random world, so differences of scores are
// exact marginal gains over those worlds.
type evaluator struct {
	g      network.View
	model  diffusion.Model
	rounds int
	opts   Options
	dopts  []diffusion.Option
	mc     []montecarlo.Option
	engine *diffusion.Engine
	evals  int
	buf    []int
}

func newEvaluator(g network.View, model diffusion.Model, k, rounds int, opts []Option) (*evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.NumberOfNodes(); k < 1 || k > n {
		return nil, fmt.Errorf("k=%d n=%d: %w", k, n, ErrBadBudget)
	}
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds=%d: %w", rounds, ErrBadRounds)
	}
	if !o.HasSeed {
		o.Seed, o.HasSeed = time.Now().UnixNano(), true
	}

	ev := &evaluator{g: g, model: model, rounds: rounds, opts: o}
	if model == diffusion.LT {
		ev.dopts = append(ev.dopts, diffusion.WithThresholdPolicy(diffusion.LiveEdge))
	}
	ev.dopts = append(ev.dopts, o.Diffusion...)
	ev.mc = []montecarlo.Option{
		montecarlo.WithSeed(o.Seed),
		montecarlo.WithWorkers(o.Workers),
		montecarlo.WithMaxRounds(o.MaxRounds),
		montecarlo.WithDiffusionOptions(ev.dopts...),
		montecarlo.WithContext(o.Ctx),
	}
	if o.ReuseEngine {
		e, err := diffusion.New(g, model, []int{}, ev.dopts...)
		if err != nil {
			return nil, err
		}
		ev.engine = e
	} else if _, err := diffusion.New(g, model, []int{}, ev.dopts...); err != nil {
		// Surface configuration errors before the first estimate.
		return nil, err
	}

	return ev, nil
}

// total sums the outcome sizes of seeds over all trials. The empty set
// spreads to nobody and costs no estimate.
func (ev *evaluator) total(seeds []int) (float64, error) {
	if len(seeds) == 0 {
		return 0, nil
	}
	ev.evals++
	var (
		s   montecarlo.Summary
		err error
	)
	if ev.engine != nil {
		if err = ev.engine.Reset(seeds); err != nil {
			return 0, err
		}
		s, err = montecarlo.RunEngine(ev.engine, ev.rounds, ev.mc...)
	} else {
		s, err = montecarlo.Run(ev.g, ev.model, seeds, ev.rounds, ev.mc...)
	}

	return s.Total, err
}

// with scores seeds ∪ {v} without touching seeds.
func (ev *evaluator) with(seeds []int, v int) (float64, error) {
	ev.buf = append(append(ev.buf[:0], seeds...), v)
	return ev.total(ev.buf)
}

// mean turns a score into an expected spread.
func (ev *evaluator) mean(total float64) float64 { return total / float64(ev.rounds) }

// report publishes a pick; gain and spread are scores.
func (ev *evaluator) report(algo string, it, k, node int, gain, spread float64) {
	ev.opts.Logger.Debug().
		Str("algorithm", algo).
		Int("iteration", it).
		Int("node", node).
		Float64("gain", ev.mean(gain)).
		Float64("spread", ev.mean(spread)).
		Int("evaluations", ev.evals).
		Msg("seed selected")
	if ev.opts.Observer != nil {
		ev.opts.Observer(Progress{
			Algorithm:   algo,
			Iteration:   it,
			K:           k,
			Node:        node,
			Gain:        ev.mean(gain),
			Spread:      ev.mean(spread),
			Evaluations: ev.evals,
		})
	}
}
