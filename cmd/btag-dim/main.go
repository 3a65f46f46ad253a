package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jamesainslie/go-btag/dimension"
	"github.com/jamesainslie/go-btag/plot"
)

func main() {
	var (
		minDim    = flag.Int("min-dim", 1, "Lowest dimension to sample")
		maxDim    = flag.Int("max-dim", 15, "Highest dimension to sample")
		samples   = flag.Int("samples", 100000, "Monte Carlo samples per dimension")
		seed      = flag.Uint64("seed", 1, "Random seed")
		chartPath = flag.String("chart", "", "Optional output PNG path")
	)
	flag.Parse()

	if *minDim < 1 || *maxDim < *minDim {
		fmt.Fprintf(os.Stderr, "error: invalid dimension range [%d, %d]\n", *minDim, *maxDim)
		os.Exit(1)
	}

	dims := make([]int, 0, *maxDim-*minDim+1)
	for d := *minDim; d <= *maxDim; d++ {
		dims = append(dims, d)
	}

	results, err := dimension.Sweep(dims, *samples, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Hypersphere volume fraction (%d samples per dimension)\n", *samples)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-6s %-12s %-12s %-12s\n", "Dim", "Estimate", "StdErr", "Exact")
	for _, r := range results {
		fmt.Printf("%-6d %-12.6f %-12.6f %-12.6f\n", r.Dim, r.Fraction, r.StdErr, r.Exact)
	}

	if *chartPath != "" {
		estimated := make([]float64, len(results))
		exact := make([]float64, len(results))
		for i, r := range results {
			estimated[i] = r.Fraction
			exact[i] = r.Exact
		}

		f, err := os.Create(*chartPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating chart file: %v\n", err)
			os.Exit(1)
		}
		if err := plot.WriteVolumeFractions(f, dims, estimated, exact); err != nil {
			_ = f.Close()
			fmt.Fprintf(os.Stderr, "error rendering chart: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing chart file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote %s\n", *chartPath)
	}
}
