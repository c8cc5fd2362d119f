// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type graphReport struct {
	Kind        string  `json:"kind" yaml:"kind"`
	Nodes       int     `json:"nodes" yaml:"nodes"`
	Edges       int     `json:"edges" yaml:"edges"`
	Directed    bool    `json:"directed" yaml:"directed"`
	Weights     string  `json:"weights" yaml:"weights"`
	TotalWeight float64 `json:"total_weight" yaml:"total_weight"`
}

type estimateReport struct {
	Graph  graphReport `json:"graph" yaml:"graph"`
	Model  string      `json:"model" yaml:"model"`
	Seeds  []string    `json:"seeds" yaml:"seeds"`
	Mean   float64     `json:"mean" yaml:"mean"`
	StdDev float64     `json:"stddev" yaml:"stddev"`
	StdErr float64     `json:"stderr" yaml:"stderr"`
	Trials int         `json:"trials" yaml:"trials"`
}

type selectReport struct {
	Graph      graphReport `json:"graph" yaml:"graph"`
	Algorithm  string      `json:"algorithm" yaml:"algorithm"`
	Model      string      `json:"model" yaml:"model"`
	K          int         `json:"k" yaml:"k"`
	Seeds      []string    `json:"seeds" yaml:"seeds"`
	Spread     float64     `json:"spread" yaml:"spread"`
	Coverage   float64     `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	Samples    int         `json:"samples,omitempty" yaml:"samples,omitempty"`
	LowerBound float64     `json:"lower_bound,omitempty" yaml:"lower_bound,omitempty"`
	Theta      float64     `json:"theta,omitempty" yaml:"theta,omitempty"`
	Elapsed    string      `json:"elapsed" yaml:"elapsed"`
}

func (r estimateReport) text() string {
	return fmt.Sprintf("model=%s seeds=[%s] spread=%.4f ± %.4f (trials=%d)\n",
		r.Model, strings.Join(r.Seeds, " "), r.Mean, r.StdErr, r.Trials)
}

func (r selectReport) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s k=%d seeds=[%s] spread=%.4f",
		r.Algorithm, r.Model, r.K, strings.Join(r.Seeds, " "), r.Spread)
	if r.Samples > 0 {
		fmt.Fprintf(&b, " coverage=%.4f rr_sets=%d", r.Coverage, r.Samples)
	}
	fmt.Fprintf(&b, " elapsed=%s\n", r.Elapsed)

	return b.String()
}

type texter interface {
	text() string
}

// render writes report in the requested format: text, json or yaml.
func render(w io.Writer, format string, report texter) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(w, report.text())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q (text, json, yaml)", format)
	}
}
