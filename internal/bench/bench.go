// Package bench provides benchmarking utilities for jet tagger evaluation.
package bench

// Config holds evaluation parameters.
type Config struct {
	Cut    float64 // fixed cut for single evaluations
	MinCut float64 // sweep lower bound (inclusive)
	MaxCut float64 // sweep upper bound (exclusive)
	Step   float64 // sweep step size
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Cut:    0.5,
		MinCut: 0.05,
		MaxCut: 1.0,
		Step:   0.05,
	}
}
