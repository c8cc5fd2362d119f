// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/core"
	"github.com/katalvlaran/netim/network"
)

// buildNetwork generates the configured graph, assigns its weights and
// freezes it into a view. The stats describe the weighted graph.
func buildNetwork(gc GraphConfig, seed int64) (*network.Snapshot, *core.GraphStats, error) {
	var cons builder.Constructor
	switch gc.Kind {
	case "path":
		cons = builder.Path(gc.Nodes)
	case "cycle":
		cons = builder.Cycle(gc.Nodes)
	case "star":
		cons = builder.Star(gc.Nodes)
	case "complete":
		cons = builder.Complete(gc.Nodes)
	case "random":
		cons = builder.RandomSparse(gc.Nodes, gc.P)
	default:
		return nil, nil, errors.Errorf("unknown graph kind %q (path, cycle, star, complete, random)", gc.Kind)
	}
	scheme, err := builder.ParseScheme(gc.Weights)
	if err != nil {
		return nil, nil, errors.Wrap(err, "graph weights")
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(gc.Directed), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		cons,
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build graph")
	}

	wopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if scheme == builder.Constant {
		if gc.Weight < 0 {
			return nil, nil, errors.Wrapf(builder.ErrInvalidProbability, "graph weight %g", gc.Weight)
		}
		wopts = append(wopts, builder.WithConstantWeight(gc.Weight))
	}
	if err = builder.ApplyWeights(g, scheme, wopts...); err != nil {
		return nil, nil, errors.Wrap(err, "apply weights")
	}

	s, err := network.FromCore(g)
	if err != nil {
		return nil, nil, errors.Wrap(err, "freeze graph")
	}

	return s, g.Stats(), nil
}
