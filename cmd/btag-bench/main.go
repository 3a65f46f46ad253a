package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	btag "github.com/jamesainslie/go-btag"
	"github.com/jamesainslie/go-btag/dataset"
	"github.com/jamesainslie/go-btag/features"
	"github.com/jamesainslie/go-btag/internal/bench"
	"github.com/jamesainslie/go-btag/plot"
)

func main() {
	var (
		dataPath  = flag.String("data", "", "Path to delimited jet table (required)")
		truthCol  = flag.String("truth", "isb", "Truth label column")
		scoreCols = flag.String("scores", "prob_b,nnbjet", "Comma-separated score columns to evaluate")
		cut       = flag.Float64("cut", 0.5, "Tagging cut for single evaluation")
		sweep     = flag.Bool("sweep", false, "Run cut sweep per score column")
		compare   = flag.Bool("compare", false, "Print best-cut comparison across score columns")
		sweepMin  = flag.Float64("sweep-min", 0.05, "Sweep minimum cut")
		sweepMax  = flag.Float64("sweep-max", 1.0, "Sweep maximum cut")
		sweepStep = flag.Float64("sweep-step", 0.05, "Sweep step size")
		modelPath = flag.String("model", "", "Optional ONNX model to re-score jets")
		featCols  = flag.String("features", "energy,cTheta,phi", "Feature columns fed to the model")
		savePlots = flag.Bool("save-plots", false, "Persist histograms and ROC curves as PNG")
		plotsDir  = flag.String("plots", "plots", "Directory for persisted plots")
		bins      = flag.Int("bins", 40, "Histogram bins")
	)
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "error: -data required")
		flag.Usage()
		os.Exit(1)
	}

	table, err := dataset.Load(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d jets from %s\n\n", table.Len(), *dataPath)

	truth, err := table.BinaryColumn(*truthCol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading truth labels: %v\n", err)
		os.Exit(1)
	}

	columns := splitList(*scoreCols)
	scoresByCol := make(map[string][]float64, len(columns))
	for _, col := range columns {
		scores, err := table.Column(col)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading scores: %v\n", err)
			os.Exit(1)
		}
		scoresByCol[col] = scores
	}

	if *modelPath != "" {
		scores, err := rescore(*modelPath, table, splitList(*featCols))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error re-scoring with model: %v\n", err)
			os.Exit(1)
		}
		columns = append(columns, "model")
		scoresByCol["model"] = scores
	}

	cfg := bench.Config{
		Cut:    *cut,
		MinCut: *sweepMin,
		MaxCut: *sweepMax,
		Step:   *sweepStep,
	}

	if *compare {
		runCompare(table, *truthCol, splitList(*scoreCols), cfg)
		return
	}

	for _, col := range columns {
		scores := scoresByCol[col]

		if *sweep {
			runSweep(col, scores, truth, cfg)
		} else {
			runSingle(col, scores, truth, cfg.Cut)
		}

		if *savePlots {
			if err := writePlots(*plotsDir, col, scores, truth, *bins); err != nil {
				fmt.Fprintf(os.Stderr, "error writing plots for %s: %v\n", col, err)
				os.Exit(1)
			}
		}
		fmt.Println()
	}
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func runSingle(col string, scores []float64, truth btag.Labels, cut float64) {
	report, err := btag.Evaluate(btag.Threshold(scores, cut), truth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error evaluating %s: %v\n", col, err)
		os.Exit(1)
	}
	fmt.Printf("%s @ cut %.3f\n", col, cut)
	printReport(report)
}

func runSweep(col string, scores []float64, truth btag.Labels, cfg bench.Config) {
	cuts := bench.SweepCuts(cfg.MinCut, cfg.MaxCut, cfg.Step)
	results, err := bench.Sweep(scores, truth, cuts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error sweeping %s: %v\n", col, err)
		os.Exit(1)
	}

	fmt.Printf("Cut Sweep: %s\n", col)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s\n", "Cut", "Acc", "Wrong", "TPR", "FPR")

	// Print sorted by cut for readability
	for _, c := range cuts {
		for _, r := range results {
			if r.Cut == c {
				fmt.Printf("%-8.3f %-8.3f %-8.3f %-8.3f %-8.3f\n",
					r.Cut, r.Report.Accuracy, r.Report.FractionWrong,
					r.Report.TruePositiveRate(), r.Report.FalsePositiveRate())
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	best := results[0]
	fmt.Printf("Optimal: %.3f (Accuracy: %.3f)\n", best.Cut, best.Report.Accuracy)
}

func runCompare(table *dataset.Table, truthCol string, scoreCols []string, cfg bench.Config) {
	comparisons, err := bench.Compare(table, truthCol, scoreCols, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error comparing columns: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tagger Comparison (cuts %.2f to %.2f, step %.2f)\n", cfg.MinCut, cfg.MaxCut, cfg.Step)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-12s %-8s %-8s %-8s %-8s\n", "Column", "Cut", "Acc", "F1", "AUC")
	for _, c := range comparisons {
		fmt.Printf("%-12s %-8.3f %-8.3f %-8.3f %-8.3f\n",
			c.Column, c.BestCut, c.Report.Accuracy, c.Report.F1, c.Curve.AUC)
	}
}

func rescore(modelPath string, table *dataset.Table, featCols []string) ([]float64, error) {
	scaler, err := features.Fit(table, featCols...)
	if err != nil {
		return nil, err
	}
	rows, err := scaler.Transform(table)
	if err != nil {
		return nil, err
	}

	scorer, err := btag.NewScorer(modelPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = scorer.Close() }() // Cleanup error ignored in CLI

	return scorer.Score(context.Background(), rows)
}

func writePlots(dir, col string, scores []float64, truth btag.Labels, bins int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	sig, bkg, err := plot.Split(col, scores, truth, bins)
	if err != nil {
		return err
	}
	histPath := filepath.Join(dir, col+"_hist.png")
	if err := writeFile(histPath, func(f *os.File) error {
		return plot.WriteHistogram(f, col, sig, bkg)
	}); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", histPath)

	curve, err := btag.ROC(scores, truth)
	if err != nil {
		return err
	}
	rocPath := filepath.Join(dir, col+"_roc.png")
	if err := writeFile(rocPath, func(f *os.File) error {
		return plot.WriteROC(f, col, curve)
	}); err != nil {
		return err
	}
	fmt.Printf("wrote %s (AUC: %.3f)\n", rocPath, curve.AUC)

	return nil
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printReport(r btag.Report) {
	fmt.Printf("Accuracy: %.3f  Wrong: %.3f  Precision: %.3f  Recall: %.3f  F1: %.3f\n",
		r.Accuracy, r.FractionWrong, r.Precision, r.Recall, r.F1)
	fmt.Printf("(TN: %d, FN: %d, FP: %d, TP: %d)\n",
		r.TrueNegatives, r.FalseNegatives, r.FalsePositives, r.TruePositives)
}
