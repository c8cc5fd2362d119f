// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netim/montecarlo"
)

func newEstimateCmd(a *app) *cobra.Command {
	var seeds []int
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the expected spread of a seed set by Monte-Carlo simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			model, err := a.model()
			if err != nil {
				return errors.Wrap(err, "estimate")
			}
			g, st, err := buildNetwork(cfg.Graph, cfg.Algorithm.Seed)
			if err != nil {
				return err
			}
			a.log.Info().
				Int("nodes", st.VertexCount).
				Int("edges", st.EdgeCount).
				Float64("total_weight", st.TotalWeight).
				Msg("graph ready")

			s, err := montecarlo.Run(g, model, seeds, cfg.Algorithm.Rounds,
				montecarlo.WithSeed(cfg.Algorithm.Seed),
				montecarlo.WithWorkers(cfg.Algorithm.Workers),
				montecarlo.WithDiffusionOptions(a.diffusionOptions()...),
				montecarlo.WithContext(a.ctx),
				montecarlo.WithLogger(a.log),
			)
			if err != nil {
				return errors.Wrap(err, "estimate")
			}

			return render(cmd.OutOrStdout(), cfg.Output.Format, estimateReport{
				Graph:  a.graphReport(st),
				Model:  model.String(),
				Seeds:  g.Labels(seeds),
				Mean:   s.Mean,
				StdDev: s.StdDev,
				StdErr: s.StdErr,
				Trials: s.Trials,
			})
		},
	}
	cmd.Flags().IntSliceVar(&seeds, "seeds", []int{0}, "seed nodes, comma separated")

	return cmd
}
