// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netim/greedy"
	"github.com/katalvlaran/netim/montecarlo"
	"github.com/katalvlaran/netim/network"
	"github.com/katalvlaran/netim/ris"
)

func newSelectCmd(a *app) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select k seed nodes with Greedy, CELF, RIS or IMM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			model, err := a.model()
			if err != nil {
				return errors.Wrap(err, "select")
			}
			g, st, err := buildNetwork(cfg.Graph, cfg.Algorithm.Seed)
			if err != nil {
				return err
			}

			algo = strings.ToLower(strings.TrimSpace(algo))
			report := selectReport{
				Graph:     a.graphReport(st),
				Algorithm: algo,
				Model:     model.String(),
				K:         cfg.Algorithm.K,
			}
			start := time.Now()
			seeds, err := a.selectSeeds(algo, g, &report)
			if err != nil {
				return errors.Wrapf(err, "select %s", algo)
			}
			report.Elapsed = time.Since(start).Round(time.Millisecond).String()

			spread, err := montecarlo.Estimate(g, model, seeds, cfg.Algorithm.Rounds,
				montecarlo.WithSeed(cfg.Algorithm.Seed),
				montecarlo.WithWorkers(cfg.Algorithm.Workers),
				montecarlo.WithDiffusionOptions(a.diffusionOptions()...),
				montecarlo.WithContext(a.ctx),
			)
			if err != nil {
				return errors.Wrap(err, "estimate selected seeds")
			}
			report.Seeds = g.Labels(seeds)
			report.Spread = spread

			return render(cmd.OutOrStdout(), cfg.Output.Format, report)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&algo, "algo", "a", "imm", "algorithm: greedy, celf, ris, imm")
	f.Int("k", 5, "number of seeds")
	f.Int("rr-sets", 10000, "RR sets sampled by ris")
	f.Float64("epsilon", 0.5, "IMM approximation slack")
	f.Float64("ell", 1, "IMM confidence exponent")
	cobra.CheckErr(bindFlags(a.v, f, map[string]string{
		"algorithm.k":       "k",
		"algorithm.rr_sets": "rr-sets",
		"algorithm.epsilon": "epsilon",
		"algorithm.ell":     "ell",
	}))

	return cmd
}

// selectSeeds runs the chosen optimizer and fills the sampling fields of
// report for ris and imm.
func (a *app) selectSeeds(algo string, g *network.Snapshot, report *selectReport) ([]int, error) {
	ac := a.cfg.Algorithm
	model, err := a.model()
	if err != nil {
		return nil, err
	}

	switch algo {
	case "greedy", "celf":
		opts := []greedy.Option{
			greedy.WithSeed(ac.Seed),
			greedy.WithWorkers(ac.Workers),
			greedy.WithDiffusionOptions(a.diffusionOptions()...),
			greedy.WithEngineReuse(),
			greedy.WithContext(a.ctx),
			greedy.WithLogger(a.log),
			greedy.WithObserver(func(p greedy.Progress) {
				a.log.Info().
					Str("algorithm", p.Algorithm).
					Int("iteration", p.Iteration).
					Int("k", p.K).
					Int("node", p.Node).
					Float64("gain", p.Gain).
					Int("evaluations", p.Evaluations).
					Msg("seed selected")
			}),
		}
		if algo == "greedy" {
			return greedy.Greedy(g, model, ac.K, ac.Rounds, opts...)
		}
		return greedy.CELF(g, model, ac.K, ac.Rounds, opts...)

	case "ris", "imm":
		opts := []ris.Option{
			ris.WithSeed(ac.Seed),
			ris.WithWorkers(ac.Workers),
			ris.WithContext(a.ctx),
			ris.WithLogger(a.log),
			ris.WithEpsilon(ac.Epsilon),
			ris.WithEll(ac.Ell),
		}
		var res ris.Result
		if algo == "ris" {
			res, err = ris.RIS(g, model, ac.K, ac.RRSets, opts...)
		} else {
			res, err = ris.IMM(g, model, ac.K, opts...)
		}
		if err != nil {
			return nil, err
		}
		report.Coverage = res.Coverage
		report.Samples = res.Samples
		report.LowerBound = res.LowerBound
		report.Theta = res.Theta
		return res.Seeds, nil

	default:
		return nil, errors.Errorf("unknown algorithm %q (greedy, celf, ris, imm)", algo)
	}
}
