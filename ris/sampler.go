// SPDX-License-Identifier: MIT

package ris

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netim/bfs"
	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/network"
)

// Sampler draws RR sets from one view. It is not safe for concurrent use.
type Sampler struct {
	g     network.View
	n     int
	model diffusion.Model
	rng   *rand.Rand

	walker *bfs.Walker // IC
	mark   []int       // LT visit stamps
	gen    int
}

// NewSampler validates g and model and returns a sampler driven by rng.
//
// Errors: ErrNilGraph, ErrUnsupportedModel, network.ErrWeightOutOfRange.
func NewSampler(g network.View, model diffusion.Model, rng *rand.Rand) (*Sampler, error) {
	if err := checkInput(g, model); err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("NewSampler: nil rand source: %w", ErrOptionViolation)
	}

	return newSampler(g, model, rng)
}

func checkInput(g network.View, model diffusion.Model) error {
	if g == nil {
		return ErrNilGraph
	}
	if model != diffusion.IC && model != diffusion.LT {
		return fmt.Errorf("model %s: %w", model, ErrUnsupportedModel)
	}

	return network.CheckProbabilities(g)
}

// newSampler skips validation; g and model were checked by the caller.
func newSampler(g network.View, model diffusion.Model, rng *rand.Rand) (*Sampler, error) {
	s := &Sampler{g: g, n: g.NumberOfNodes(), model: model, rng: rng}
	if model == diffusion.LT {
		s.mark = make([]int, s.n)
		return s, nil
	}
	w, err := bfs.NewWalker(g,
		bfs.WithDirection(bfs.Reverse),
		bfs.WithFilterNeighbor(func(_, _ int, wt float64) bool {
			return s.rng.Float64() < wt
		}),
	)
	if err != nil {
		return nil, err
	}
	s.walker = w

	return s, nil
}

// Sample returns one RR set rooted at root, root first.
//
// Errors: bfs.ErrStartVertexNotFound when root is outside [0, n).
func (s *Sampler) Sample(root int) ([]int, error) {
	if s.model == diffusion.IC {
		return s.walker.Walk(root)
	}
	if root < 0 || root >= s.n {
		return nil, fmt.Errorf("root %d: %w", root, bfs.ErrStartVertexNotFound)
	}

	return s.sampleLT(root), nil
}

func (s *Sampler) sampleLT(root int) []int {
	s.gen++
	s.mark[root] = s.gen
	set := []int{root}
	for cur := root; ; {
		in := s.g.InNeighbors(cur)
		if len(in) == 0 {
			break
		}
		p := in[s.rng.Intn(len(in))]
		if s.mark[p] == s.gen {
			break
		}
		s.mark[p] = s.gen
		set = append(set, p)
		cur = p
	}

	return set
}

// Generate draws count RR sets with roots chosen uniformly at random.
func (s *Sampler) Generate(count int) ([][]int, error) {
	if s.n == 0 {
		return nil, nil
	}
	out := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		set, err := s.Sample(s.rng.Intn(s.n))
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}

	return out, nil
}
