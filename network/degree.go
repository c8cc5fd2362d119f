// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DegreeStats returns the mean degree k̄ and the mean squared degree k̄².
// An empty view yields zeros.
// Complexity: O(n).
func DegreeStats(v View) (mean, meanSquare float64) {
	n := v.NumberOfNodes()
	if n == 0 {
		return 0, 0
	}
	deg := make([]float64, n)
	sq := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(v.Degree(i))
		deg[i] = d
		sq[i] = d * d
	}

	return stat.Mean(deg, nil), stat.Mean(sq, nil)
}

// InfectionThreshold returns the epidemic threshold k̄ / (k̄² − k̄) of the
// degree distribution. A non-positive denominator is a configuration error.
//
// Errors: ErrNilGraph, ErrDegenerateDegrees.
func InfectionThreshold(v View) (float64, error) {
	if v == nil {
		return 0, ErrNilGraph
	}
	k, k2 := DegreeStats(v)
	den := k2 - k
	if den <= 0 {
		return 0, fmt.Errorf("InfectionThreshold: k=%g k2=%g: %w", k, k2, ErrDegenerateDegrees)
	}

	return k / den, nil
}

// CheckProbabilities verifies every edge weight lies in [0,1].
//
// Errors: ErrNilGraph, ErrWeightOutOfRange (wrapping the offending edge).
// Complexity: O(m).
func CheckProbabilities(v View) error {
	if v == nil {
		return ErrNilGraph
	}
	for _, e := range v.Edges() {
		if math.IsNaN(e.Weight) || e.Weight < 0 || e.Weight > 1 {
			return fmt.Errorf("edge %d→%d weight=%g: %w", e.From, e.To, e.Weight, ErrWeightOutOfRange)
		}
	}

	return nil
}
