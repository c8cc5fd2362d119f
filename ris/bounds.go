// SPDX-License-Identifier: MIT

package ris

import "math"

// LogBinomial returns ln C(n, k) as a sum of logarithms, so it never forms
// the binomial coefficient itself. Arguments outside 0 <= k <= n yield -Inf.
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k > n-k {
		k = n - k
	}
	res := 0.0
	for i := n - k + 1; i <= n; i++ {
		res += math.Log(float64(i))
	}
	for i := 2; i <= k; i++ {
		res -= math.Log(float64(i))
	}

	return res
}

// AdjustedEll returns ℓ·(1 + ln 2 / ln n), which lifts IMM's success
// probability from 1 − 2n^(−ℓ) to 1 − n^(−ℓ). Requires n >= 2.
func AdjustedEll(ell float64, n int) float64 {
	return ell * (1 + math.Ln2/math.Log(float64(n)))
}

// LambdaPrime returns λ′ = (2 + 2ε′/3)·(ln C(n,k) + ℓ·ln n + ln log₂ n)·n / ε′²
// with ε′ = ε·√2.
func LambdaPrime(n, k int, eps, ell float64) float64 {
	epsP := eps * math.Sqrt2
	nf := float64(n)

	return (2 + 2*epsP/3) *
		(LogBinomial(n, k) + ell*math.Log(nf) + math.Log(math.Log2(nf))) *
		nf / (epsP * epsP)
}

// LambdaStar returns λ* = 2n·((1 − 1/e)·α + β)² / ε² with
// α = √(ℓ·ln n + ln 2) and β = √((1 − 1/e)·(ln C(n,k) + ℓ·ln n + ln 2)).
func LambdaStar(n, k int, eps, ell float64) float64 {
	nf := float64(n)
	c := 1 - 1/math.E
	alpha := math.Sqrt(ell*math.Log(nf) + math.Ln2)
	beta := math.Sqrt(c * (LogBinomial(n, k) + ell*math.Log(nf) + math.Ln2))
	s := c*alpha + beta

	return 2 * nf * s * s / (eps * eps)
}

// ThetaStar returns θ* = λ*/LB.
func ThetaStar(n, k int, eps, ell, lb float64) float64 {
	return LambdaStar(n, k, eps, ell) / lb
}
