// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/netim/network"
)

// Engine is a single-owner propagation state machine over a network.View.
// It is not safe for concurrent use; use Clone to obtain independent
// engines for parallel trials.
type Engine struct {
	g     network.View
	n     int
	model Model
	cfg   config
	rng   *rand.Rand
	// world keys every random decision of the current run; drawn at Reset.
	world uint64

	beta, gamma float64

	seeds []int
	state []State
	round int

	// frontier holds the nodes activated in the previous round (IC/LT).
	frontier []int
	// reached lists every Active node in activation order; for SI/SIR it
	// is the current infectious set.
	reached   []int
	recovered []int

	// LT bookkeeping.
	influence  []float64
	influenced []int
	mark       []int
	stamp      int

	// LiveEdge parents, valid where parentAt equals epoch.
	parent   []int
	parentAt []uint32
	epoch    uint32

	history []Round
}

// New builds an engine for model over g and resets it to seeds.
//
// IC and LT require every edge weight to lie in [0,1]. SI and SIR use a
// scalar beta; without WithBeta it is derived as
// network.InfectionThreshold(g) * BetaSafetyMargin. SIR requires WithGamma.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrUnknownModel, ErrOptionViolation,
// ErrBadProbability, ErrMissingGamma, ErrSeedOutOfRange and wrapped
// network errors.
func New(g network.View, model Model, seeds []int, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !model.Valid() {
		return nil, fmt.Errorf("New(%s): %w", model, ErrUnknownModel)
	}
	n := g.NumberOfNodes()
	if n == 0 {
		return nil, fmt.Errorf("New(%s): %w", model, ErrEmptyGraph)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("New(%s): %w", model, cfg.err)
	}

	e := &Engine{g: g, n: n, model: model, cfg: cfg, rng: cfg.rng}
	if e.rng == nil {
		e.rng = newEntropyRand()
	}

	switch model {
	case IC, LT:
		if err := network.CheckProbabilities(g); err != nil {
			return nil, fmt.Errorf("New(%s): %w", model, err)
		}
	case SI, SIR:
		if err := e.resolveRates(); err != nil {
			return nil, fmt.Errorf("New(%s): %w", model, err)
		}
	}

	e.alloc()
	if err := e.Reset(seeds); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) resolveRates() error {
	beta := e.cfg.beta
	if !e.cfg.hasBeta {
		thr, err := network.InfectionThreshold(e.g)
		if err != nil {
			return err
		}
		beta = thr * BetaSafetyMargin
	}
	if !isProbability(beta) {
		return fmt.Errorf("beta=%g: %w", beta, ErrBadProbability)
	}
	e.beta = beta

	if e.model == SIR {
		if !e.cfg.hasGamma {
			return ErrMissingGamma
		}
		if !isProbability(e.cfg.gamma) {
			return fmt.Errorf("gamma=%g: %w", e.cfg.gamma, ErrBadProbability)
		}
		e.gamma = e.cfg.gamma
	}

	return nil
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

func (e *Engine) alloc() {
	e.state = make([]State, e.n)
	if e.model == LT {
		e.influence = make([]float64, e.n)
		e.mark = make([]int, e.n)
		if e.cfg.policy == LiveEdge {
			e.parent = make([]int, e.n)
			e.parentAt = make([]uint32, e.n)
		}
	}
}

// Reset reinitializes the engine to exactly the given seeds. A nil slice
// keeps the current seeds. Duplicate seeds are collapsed; the history is
// cleared when recording is enabled.
//
// Every Reset draws a new world from the engine's source. After Seed(s),
// the world of the next Reset depends on s alone, so runs from different
// seed sets that follow the same Seed see identical edge coins,
// thresholds and live edges.
//
// Errors: ErrSeedOutOfRange.
func (e *Engine) Reset(seeds []int) error {
	if seeds == nil {
		seeds = e.seeds
	}
	clean, err := normalizeSeeds(seeds, e.n)
	if err != nil {
		return fmt.Errorf("Reset: %w", err)
	}

	for _, v := range e.reached {
		e.state[v] = Inactive
	}
	for _, v := range e.recovered {
		e.state[v] = Inactive
	}
	for _, v := range e.influenced {
		e.influence[v] = 0
	}
	e.reached = e.reached[:0]
	e.recovered = e.recovered[:0]
	e.influenced = e.influenced[:0]
	e.frontier = e.frontier[:0]
	e.round = 0

	e.seeds = clean
	for _, v := range clean {
		e.state[v] = Active
		e.reached = append(e.reached, v)
		e.frontier = append(e.frontier, v)
	}
	e.world = e.rng.Uint64()
	if e.parentAt != nil {
		e.epoch++
		if e.epoch == 0 {
			for v := range e.parentAt {
				e.parentAt[v] = 0
			}
			e.epoch = 1
		}
	}

	e.history = e.history[:0]
	if e.cfg.record {
		e.history = append(e.history, Round{Index: 0, Activated: append([]int(nil), clean...)})
	}

	return nil
}

func normalizeSeeds(seeds []int, n int) ([]int, error) {
	out := make([]int, 0, len(seeds))
	for _, v := range seeds {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("seed %d not in [0,%d): %w", v, n, ErrSeedOutOfRange)
		}
		out = append(out, v)
	}
	sort.Ints(out)
	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}

	return out[:w], nil
}

// Step performs exactly one round and returns the nodes that became
// Active (Infected) in it, sorted ascending.
func (e *Engine) Step() []int {
	var activated, recovered []int
	switch e.model {
	case IC:
		activated = e.stepIC()
	case LT:
		activated = e.stepLT()
	case SI:
		activated = e.spread()
	case SIR:
		recovered = e.heal()
		activated = e.spread()
	}
	e.round++
	sort.Ints(activated)

	if e.cfg.record && (len(activated) > 0 || len(recovered) > 0) {
		sort.Ints(recovered)
		e.history = append(e.history, Round{
			Index:     e.round,
			Activated: append([]int(nil), activated...),
			Recovered: recovered,
		})
	}

	return activated
}

// Done reports whether no further transition is possible.
//
//	IC, LT: the last round activated nothing.
//	SI:     every node is infected, or no infected node can reach a
//	        susceptible one with positive probability.
//	SIR:    the infectious set is empty, or gamma is 0 and SI's condition holds.
func (e *Engine) Done() bool {
	switch e.model {
	case IC, LT:
		return len(e.frontier) == 0
	case SI:
		return len(e.reached) == e.n || e.stalled()
	case SIR:
		return len(e.reached) == 0 || (e.gamma == 0 && e.stalled())
	}

	return true
}

// Run steps until Done or until maxRounds rounds have been performed by
// this call (maxRounds <= 0 means no limit) and returns Outcome.
func (e *Engine) Run(maxRounds int) []int {
	for r := 0; maxRounds <= 0 || r < maxRounds; r++ {
		if e.Done() {
			break
		}
		e.Step()
	}

	return e.Outcome()
}

// Outcome returns the final set, sorted: the Active set for IC/LT, the
// Infected set for SI and the Recovered set for SIR.
func (e *Engine) Outcome() []int {
	src := e.reached
	if e.model == SIR {
		src = e.recovered
	}
	out := append([]int(nil), src...)
	sort.Ints(out)

	return out
}

// OutcomeSize returns len(Outcome()) without allocating.
func (e *Engine) OutcomeSize() int {
	if e.model == SIR {
		return len(e.recovered)
	}

	return len(e.reached)
}

// State returns the state of node v. It panics if v is out of range.
func (e *Engine) State(v int) State { return e.state[v] }

// Round returns the number of rounds performed since the last Reset.
func (e *Engine) Round() int { return e.round }

// History returns the recorded rounds, or nil when recording is disabled.
// Round 0 holds the seeds; rounds without transitions are not recorded.
func (e *Engine) History() []Round {
	if !e.cfg.record {
		return nil
	}

	return append([]Round(nil), e.history...)
}

// Seed reseeds the engine's random source. It takes effect at the next
// Reset, which derives the run's world from it.
func (e *Engine) Seed(seed int64) { e.rng.Seed(seed) }

// Clone returns an independent engine with the same graph, model,
// parameters and seeds, reset and driven by a fresh source seeded with seed.
func (e *Engine) Clone(seed int64) *Engine {
	c := &Engine{
		g:     e.g,
		n:     e.n,
		model: e.model,
		cfg:   e.cfg,
		rng:   rand.New(rand.NewSource(seed)),
		beta:  e.beta,
		gamma: e.gamma,
	}
	c.cfg.rng = nil
	c.alloc()
	_ = c.Reset(e.seeds) // seeds were validated by e

	return c
}

// Model returns the propagation model.
func (e *Engine) Model() Model { return e.model }

// Seeds returns a copy of the current seed set, sorted.
func (e *Engine) Seeds() []int { return append([]int(nil), e.seeds...) }

// Beta returns the SI/SIR infection probability (0 for IC/LT).
func (e *Engine) Beta() float64 { return e.beta }

// Gamma returns the SIR recovery probability (0 otherwise).
func (e *Engine) Gamma() float64 { return e.gamma }

// Graph returns the view the engine runs on.
func (e *Engine) Graph() network.View { return e.g }
