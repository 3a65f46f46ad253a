// Package dimension illustrates the curse of dimensionality by Monte
// Carlo sampling of hyperspheres.
//
// The fraction of a d-dimensional cube [-1, 1]^d occupied by the
// inscribed unit sphere collapses towards zero as d grows, which is why
// distance-based methods degrade in high-dimensional feature spaces.
package dimension

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Result holds one Monte Carlo volume-fraction estimate.
type Result struct {
	Dim      int
	Samples  int
	Inside   int     // samples that landed inside the unit sphere
	Fraction float64 // Inside / Samples
	StdErr   float64 // binomial standard error of Fraction
	Exact    float64 // analytic volume fraction
}

// Estimate draws uniform samples from [-1, 1]^dim and counts how many
// fall inside the unit hypersphere.
func Estimate(dim, samples int, rng *rand.Rand) (Result, error) {
	if dim < 1 {
		return Result{}, fmt.Errorf("dimension: dim must be positive, got %d", dim)
	}
	if samples < 1 {
		return Result{}, fmt.Errorf("dimension: samples must be positive, got %d", samples)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	inside := 0
	for i := 0; i < samples; i++ {
		var sumSq float64
		for j := 0; j < dim; j++ {
			x := 2*rng.Float64() - 1
			sumSq += x * x
		}
		if sumSq <= 1 {
			inside++
		}
	}

	f := float64(inside) / float64(samples)
	return Result{
		Dim:      dim,
		Samples:  samples,
		Inside:   inside,
		Fraction: f,
		StdErr:   math.Sqrt(f * (1 - f) / float64(samples)),
		Exact:    Exact(dim),
	}, nil
}

// Exact returns the analytic volume fraction of the unit hypersphere
// inside [-1, 1]^dim: pi^(d/2) / (Gamma(d/2 + 1) * 2^d).
func Exact(dim int) float64 {
	d := float64(dim)
	return math.Pow(math.Pi, d/2) / (math.Gamma(d/2+1) * math.Pow(2, d))
}

// Sweep estimates the volume fraction for each dimension with a shared
// seeded generator, so runs are reproducible.
func Sweep(dims []int, samples int, seed uint64) ([]Result, error) {
	rng := rand.New(rand.NewPCG(seed, seed))

	results := make([]Result, 0, len(dims))
	for _, d := range dims {
		r, err := Estimate(d, samples, rng)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
