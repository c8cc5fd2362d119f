// SPDX-License-Identifier: MIT

package ris

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/workpool"
	"github.com/katalvlaran/netim/network"
)

// Pool is a reproducible, growing stream of RR sets.
type Pool struct {
	g       network.View
	model   diffusion.Model
	seed    int64
	workers int
	sets    [][]int
	members int
}

// NewPool validates its input and returns an empty pool.
func NewPool(g network.View, model diffusion.Model, seed int64, workers int) (*Pool, error) {
	if err := checkInput(g, model); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	return &Pool{g: g, model: model, seed: seed, workers: workers}, nil
}

// Grow makes at least target sets available. Whole chunks are generated,
// chunk c from a source seeded with seed+c, in parallel when the pool has
// several workers.
func (p *Pool) Grow(ctx context.Context, target int) error {
	have := len(p.sets) / ChunkSize
	need := (target + ChunkSize - 1) / ChunkSize
	if need <= have {
		return nil
	}

	chunks := make([][][]int, need-have)
	tasks := make([]workpool.Task, len(chunks))
	for i := range chunks {
		i := i
		c := int64(have + i)
		tasks[i] = func(context.Context) error {
			s, err := newSampler(p.g, p.model, rand.New(rand.NewSource(p.seed+c)))
			if err != nil {
				return err
			}
			chunks[i], err = s.Generate(ChunkSize)
			return err
		}
	}
	if err := workpool.Run(ctx, p.workers, tasks...); err != nil {
		return err
	}
	for _, chunk := range chunks {
		for _, set := range chunk {
			p.members += len(set)
		}
		p.sets = append(p.sets, chunk...)
	}

	return nil
}

// Take returns the first m sets; m must not exceed Len.
func (p *Pool) Take(m int) [][]int { return p.sets[:m] }

// Len returns the number of generated sets.
func (p *Pool) Len() int { return len(p.sets) }

// Members returns the summed size of all generated sets.
func (p *Pool) Members() int { return p.members }
