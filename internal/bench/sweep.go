package bench

import (
	"fmt"
	"sort"

	btag "github.com/jamesainslie/go-btag"
	"github.com/jamesainslie/go-btag/dataset"
)

// SweepResult holds the confusion report for one cut value.
type SweepResult struct {
	Cut    float64
	Report btag.Report
}

// SweepCuts generates cut values from min to max with given step.
func SweepCuts(min, max, step float64) []float64 {
	var cuts []float64
	for c := min; c < max; c += step {
		cuts = append(cuts, c)
	}
	return cuts
}

// Sweep evaluates every cut against the truth labels and returns results
// sorted by accuracy descending.
func Sweep(scores []float64, truth btag.Labels, cuts []float64) ([]SweepResult, error) {
	if len(cuts) == 0 {
		return nil, fmt.Errorf("no cuts to sweep")
	}

	var results []SweepResult

	for _, cut := range cuts {
		report, err := btag.Evaluate(btag.Threshold(scores, cut), truth)
		if err != nil {
			return nil, fmt.Errorf("evaluating cut %.3f: %w", cut, err)
		}
		results = append(results, SweepResult{Cut: cut, Report: report})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Report.Accuracy > results[j].Report.Accuracy
	})

	return results, nil
}

// Comparison holds the best operating point found for one score column.
type Comparison struct {
	Column  string
	BestCut float64
	Report  btag.Report
	Curve   btag.Curve
}

// Compare sweeps every score column of the table against the truth
// column and reports each column's best cut, best report and ROC curve.
// Column order is preserved.
func Compare(t *dataset.Table, truthCol string, scoreCols []string, cfg Config) ([]Comparison, error) {
	truth, err := t.BinaryColumn(truthCol)
	if err != nil {
		return nil, fmt.Errorf("loading truth labels: %w", err)
	}

	cuts := SweepCuts(cfg.MinCut, cfg.MaxCut, cfg.Step)

	var comparisons []Comparison
	for _, col := range scoreCols {
		scores, err := t.Column(col)
		if err != nil {
			return nil, fmt.Errorf("loading scores: %w", err)
		}

		results, err := Sweep(scores, truth, cuts)
		if err != nil {
			return nil, fmt.Errorf("sweeping %q: %w", col, err)
		}

		curve, err := btag.ROC(scores, truth)
		if err != nil {
			return nil, fmt.Errorf("roc for %q: %w", col, err)
		}

		comparisons = append(comparisons, Comparison{
			Column:  col,
			BestCut: results[0].Cut,
			Report:  results[0].Report,
			Curve:   curve,
		})
	}

	return comparisons, nil
}
