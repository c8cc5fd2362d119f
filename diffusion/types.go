// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Sentinel errors for engine construction and control.
var (
	// ErrNilGraph is returned when a nil view is supplied.
	ErrNilGraph = errors.New("diffusion: graph is nil")

	// ErrEmptyGraph is returned for a view without nodes.
	ErrEmptyGraph = errors.New("diffusion: graph has no nodes")

	// ErrUnknownModel is returned for an unsupported model tag.
	ErrUnknownModel = errors.New("diffusion: unknown model")

	// ErrSeedOutOfRange is returned when a seed lies outside [0, n).
	ErrSeedOutOfRange = errors.New("diffusion: seed out of range")

	// ErrBadProbability is returned when beta or gamma lies outside [0,1].
	ErrBadProbability = errors.New("diffusion: probability outside [0,1]")

	// ErrMissingGamma is returned when SIR is configured without a recovery rate.
	ErrMissingGamma = errors.New("diffusion: SIR requires gamma")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("diffusion: invalid option supplied")
)

// BetaSafetyMargin inflates the epidemic threshold when beta is derived
// from the degree distribution.
const BetaSafetyMargin = 1.1

// Model is the propagation rule an Engine applies.
type Model int

const (
	// IC is the Independent Cascade model.
	IC Model = iota
	// LT is the Linear Threshold model.
	LT
	// SI is the Susceptible-Infected epidemic model.
	SI
	// SIR is the Susceptible-Infected-Recovered epidemic model.
	SIR
)

// String implements fmt.Stringer.
func (m Model) String() string {
	switch m {
	case IC:
		return "IC"
	case LT:
		return "LT"
	case SI:
		return "SI"
	case SIR:
		return "SIR"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool { return m >= IC && m <= SIR }

// ParseModel resolves a case-insensitive model tag.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IC":
		return IC, nil
	case "LT":
		return LT, nil
	case "SI":
		return SI, nil
	case "SIR":
		return SIR, nil
	default:
		return 0, fmt.Errorf("ParseModel(%q): %w", s, ErrUnknownModel)
	}
}

// State is the per-node diffusion state.
type State uint8

const (
	// Inactive is a node that has not been reached (Susceptible in SI/SIR).
	Inactive State = iota
	// Active is a reached node (Infected in SI/SIR).
	Active
	// Recovered is the terminal SIR state.
	Recovered
)

// Epidemic aliases.
const (
	Susceptible = Inactive
	Infected    = Active
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ThresholdPolicy decides when LT thresholds are drawn.
type ThresholdPolicy int

const (
	// PerRound redraws the threshold of every candidate node in every round.
	PerRound ThresholdPolicy = iota
	// PerRun draws one threshold per node at Reset, the textbook LT model.
	PerRun
	// LiveEdge lets every node keep at most one live in-edge, chosen with
	// probability equal to its weight, and activates along live edges.
	// It has the distribution of PerRun with thresholds uniform on [0,1),
	// ignores WithThresholdRange, and makes every fixed world a
	// reachability problem.
	LiveEdge
)

// String implements fmt.Stringer.
func (p ThresholdPolicy) String() string {
	switch p {
	case PerRound:
		return "per-round"
	case PerRun:
		return "per-run"
	case LiveEdge:
		return "live-edge"
	default:
		return fmt.Sprintf("ThresholdPolicy(%d)", int(p))
	}
}

// Round is one recorded step of a diffusion. Round 0 holds the seeds.
type Round struct {
	Index     int
	Activated []int
	Recovered []int
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	beta     float64
	hasBeta  bool
	gamma    float64
	hasGamma bool
	record   bool
	policy   ThresholdPolicy
	tLo, tHi float64

	err error
}

func defaultConfig() config {
	return config{policy: PerRound, tLo: 0, tHi: 1}
}

func (c *config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithSeed makes the engine deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source. The engine takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.fail("nil rand source")
			return
		}
		c.rng = r
	}
}

// WithBeta sets the SI/SIR infection probability.
func WithBeta(beta float64) Option {
	return func(c *config) {
		c.beta, c.hasBeta = beta, true
	}
}

// WithGamma sets the SIR recovery probability.
func WithGamma(gamma float64) Option {
	return func(c *config) {
		c.gamma, c.hasGamma = gamma, true
	}
}

// WithRecordStates keeps a per-round history, see Engine.History.
func WithRecordStates() Option {
	return func(c *config) {
		c.record = true
	}
}

// WithThresholdPolicy selects when LT thresholds are drawn.
func WithThresholdPolicy(p ThresholdPolicy) Option {
	return func(c *config) {
		if p < PerRound || p > LiveEdge {
			c.fail("unknown threshold policy %d", int(p))
			return
		}
		c.policy = p
	}
}

// WithThresholdRange draws LT thresholds uniformly from [lo, hi).
// Requires 0 <= lo < hi <= 1.
func WithThresholdRange(lo, hi float64) Option {
	return func(c *config) {
		if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi > 1 || lo >= hi {
			c.fail("threshold range [%g,%g)", lo, hi)
			return
		}
		c.tLo, c.tHi = lo, hi
	}
}

func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
