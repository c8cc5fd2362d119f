// Package netim estimates and maximizes influence spread on weighted
// networks.
//
// A network is generated with builder (path, cycle, star, complete or
// G(n,p) graphs with constant, trivalency or weighted-cascade weights) and
// frozen into a network.Snapshot, an immutable integer-indexed view with
// forward and reverse adjacency. On top of that view:
//
//	diffusion/  - step-wise IC, LT, SI and SIR engines with reproducible randomness
//	montecarlo/ - expected spread of a seed set over many independent runs
//	greedy/     - Greedy and CELF seed selection on Monte-Carlo estimates
//	ris/        - reverse-reachable set sampling, RIS and IMM seed selection
//	bfs/        - forward and reverse breadth-first walks used by the samplers
//
// The netim command (cmd/netim) wires these together behind a cobra CLI
// configured by flags, NETIM_* environment variables or a YAML file.
//
// Quick example:
//
//	g, _ := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomSparse(1000, 0.005),
//	)
//	_ = builder.ApplyWeights(g, builder.WeightedCascade)
//	s, _ := network.FromCore(g)
//	res, _ := ris.IMM(s, diffusion.IC, 10, ris.WithSeed(1))
//	spread, _ := montecarlo.Estimate(s, diffusion.IC, res.Seeds, 1000)
//
//	go install github.com/katalvlaran/netim/cmd/netim@latest
package netim
