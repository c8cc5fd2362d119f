// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netim/core"
	"github.com/katalvlaran/netim/diffusion"
)

// app carries state shared by all subcommands of one root command.
type app struct {
	ctx     context.Context
	v       *viper.Viper
	cfg     *Config
	log     zerolog.Logger
	cfgFile string
	envFile string
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	a := &app{ctx: ctx, v: newViper(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:               "netim",
		Short:             "Estimate and maximize influence spread on weighted networks",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file (default ./netim.yaml when present)")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file with NETIM_* variables")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.StringP("output", "o", "text", "output format: text, json, yaml")
	pf.String("graph", "random", "graph kind: path, cycle, star, complete, random")
	pf.Int("nodes", 100, "number of nodes")
	pf.Float64("p", 0.05, "edge probability of the random graph")
	pf.Bool("directed", true, "generate a directed graph")
	pf.String("weights", "wc", "weight scheme: constant, tv, wc")
	pf.Float64("weight", 0.1, "edge weight of the constant scheme")
	pf.StringP("model", "m", "IC", "diffusion model: IC, LT, SI, SIR")
	pf.Int64("seed", 1, "random seed")
	pf.Int("rounds", 1000, "Monte-Carlo trials per estimate")
	pf.Int("workers", 1, "parallel workers")
	pf.Float64("beta", unset, "SI/SIR infection probability (derived from degrees when unset)")
	pf.Float64("gamma", unset, "SIR recovery probability")
	cobra.CheckErr(bindFlags(a.v, pf, map[string]string{
		"logging.level":     "log-level",
		"output.format":     "output",
		"graph.kind":        "graph",
		"graph.nodes":       "nodes",
		"graph.p":           "p",
		"graph.directed":    "directed",
		"graph.weights":     "weights",
		"graph.weight":      "weight",
		"algorithm.model":   "model",
		"algorithm.seed":    "seed",
		"algorithm.rounds":  "rounds",
		"algorithm.workers": "workers",
		"algorithm.beta":    "beta",
		"algorithm.gamma":   "gamma",
	}))

	root.AddCommand(newEstimateCmd(a), newSelectCmd(a), newVersionCmd(version))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile, a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	a.log.Debug().Interface("config", cfg).Msg("configuration loaded")

	return nil
}

func (a *app) model() (diffusion.Model, error) {
	return diffusion.ParseModel(a.cfg.Algorithm.Model)
}

func (a *app) diffusionOptions() []diffusion.Option {
	var opts []diffusion.Option
	if b := a.cfg.Algorithm.Beta; b != unset {
		opts = append(opts, diffusion.WithBeta(b))
	}
	if g := a.cfg.Algorithm.Gamma; g != unset {
		opts = append(opts, diffusion.WithGamma(g))
	}

	return opts
}

func (a *app) graphReport(st *core.GraphStats) graphReport {
	return graphReport{
		Kind:        a.cfg.Graph.Kind,
		Nodes:       st.VertexCount,
		Edges:       st.EdgeCount,
		Directed:    st.Directed,
		Weights:     a.cfg.Graph.Weights,
		TotalWeight: st.TotalWeight,
	}
}
