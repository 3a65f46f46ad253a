package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	btag "github.com/jamesainslie/go-btag"
)

func main() {
	scoresVal := flag.String("scores", "", "Comma-separated continuous scores")
	truthVal := flag.String("truth", "", "Comma-separated binary truth labels")
	cut := flag.Float64("cut", 0.5, "Tagging cut")
	mode := flag.String("mode", "classify", "Mode: classify or evaluate")

	flag.Parse()

	if *scoresVal == "" {
		fmt.Fprintln(os.Stderr, "Usage: btag-cli -scores 0.1,0.5,0.9 [-truth 0,0,1] [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	scores, err := parseFloats(*scoresVal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scores: %v\n", err)
		os.Exit(1)
	}

	labels := btag.Threshold(scores, *cut)

	switch *mode {
	case "classify":
		fmt.Printf("Cut: %.3f\n", *cut)
		fmt.Printf("Labels (%d):\n", len(labels))
		for i, l := range labels {
			fmt.Printf("  %d: %.4f -> %d\n", i+1, scores[i], l)
		}

	case "evaluate":
		if *truthVal == "" {
			fmt.Fprintln(os.Stderr, "Error: -truth required for evaluate mode")
			os.Exit(1)
		}
		truth, err := parseLabels(*truthVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing truth: %v\n", err)
			os.Exit(1)
		}

		report, err := btag.Evaluate(labels, truth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Cut: %.3f  Samples: %d\n", *cut, report.Total())
		fmt.Printf("Accuracy: %.3f  Wrong: %.3f\n", report.Accuracy, report.FractionWrong)
		fmt.Printf("TN: %d  FN: %d  FP: %d  TP: %d\n",
			report.TrueNegatives, report.FalseNegatives,
			report.FalsePositives, report.TruePositives)

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseLabels(s string) (btag.Labels, error) {
	parts := strings.Split(s, ",")
	out := make(btag.Labels, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
