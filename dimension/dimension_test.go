package dimension

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestExact(t *testing.T) {
	tests := []struct {
		dim  int
		want float64
	}{
		{1, 1.0},           // the "sphere" [-1, 1] fills the cube
		{2, math.Pi / 4},   // circle in a square
		{3, math.Pi / 6},   // sphere in a cube
	}

	for _, tt := range tests {
		if got := Exact(tt.dim); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Exact(%d) = %v, want %v", tt.dim, got, tt.want)
		}
	}
}

func TestExact_Vanishes(t *testing.T) {
	// The fraction must fall monotonically and become negligible.
	prev := Exact(1)
	for d := 2; d <= 30; d++ {
		cur := Exact(d)
		if cur >= prev {
			t.Errorf("Exact(%d) = %v not below Exact(%d) = %v", d, cur, d-1, prev)
		}
		prev = cur
	}
	if Exact(30) > 1e-12 {
		t.Errorf("Exact(30) = %v, want effectively zero", Exact(30))
	}
}

func TestEstimate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for _, dim := range []int{1, 2, 3, 5} {
		r, err := Estimate(dim, 200000, rng)
		if err != nil {
			t.Fatalf("Estimate(%d) error = %v", dim, err)
		}

		if r.Dim != dim || r.Samples != 200000 {
			t.Errorf("Result = %+v, want dim %d with 200000 samples", r, dim)
		}
		if r.Inside < 0 || r.Inside > r.Samples {
			t.Errorf("Inside = %d out of range", r.Inside)
		}

		// Within five standard errors of the analytic value.
		tolerance := 5 * r.StdErr
		if tolerance < 1e-3 {
			tolerance = 1e-3
		}
		if math.Abs(r.Fraction-r.Exact) > tolerance {
			t.Errorf("dim %d: Fraction = %v, Exact = %v, tolerance %v",
				dim, r.Fraction, r.Exact, tolerance)
		}
	}
}

func TestEstimate_NilRNG(t *testing.T) {
	r, err := Estimate(2, 1000, nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if r.Samples != 1000 {
		t.Errorf("Samples = %d, want 1000", r.Samples)
	}
}

func TestEstimate_Errors(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	if _, err := Estimate(0, 100, rng); err == nil {
		t.Error("expected error for dim 0")
	}
	if _, err := Estimate(2, 0, rng); err == nil {
		t.Error("expected error for zero samples")
	}
}

func TestSweep(t *testing.T) {
	dims := []int{1, 2, 3}
	results, err := Sweep(dims, 10000, 7)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != len(dims) {
		t.Fatalf("got %d results, want %d", len(results), len(dims))
	}
	for i, r := range results {
		if r.Dim != dims[i] {
			t.Errorf("results[%d].Dim = %d, want %d", i, r.Dim, dims[i])
		}
	}
}

func TestSweep_Reproducible(t *testing.T) {
	a, err := Sweep([]int{2, 4}, 5000, 99)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	b, err := Sweep([]int{2, 4}, 5000, 99)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	for i := range a {
		if a[i].Inside != b[i].Inside {
			t.Errorf("run %d: Inside = %d vs %d, want identical for same seed",
				i, a[i].Inside, b[i].Inside)
		}
	}
}
