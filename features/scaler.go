// Package features prepares jet variables as model-ready feature rows.
package features

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jamesainslie/go-btag/dataset"
)

// Scaler standardizes feature columns to zero mean and unit variance.
// Fit it on one table, then Transform any table carrying the same
// columns; the statistics from the fit are reused, so training and
// evaluation data go through the same mapping.
type Scaler struct {
	cols []string
	mean []float64
	std  []float64
}

// Fit computes per-column statistics over the given table.
func Fit(t *dataset.Table, cols ...string) (*Scaler, error) {
	if len(cols) == 0 {
		return nil, errors.New("features: no columns to fit")
	}

	s := &Scaler{
		cols: append([]string(nil), cols...),
		mean: make([]float64, len(cols)),
		std:  make([]float64, len(cols)),
	}

	for j, name := range cols {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("fitting scaler: %w", err)
		}
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.StdDev(col, nil)
		if s.std[j] == 0 || math.IsNaN(s.std[j]) {
			// Constant or single-row column; leave values at zero after centering.
			s.std[j] = 1
		}
	}

	return s, nil
}

// Columns returns the column names the scaler was fitted on.
func (s *Scaler) Columns() []string {
	out := make([]string, len(s.cols))
	copy(out, s.cols)
	return out
}

// Transform standardizes the fitted columns of t into float32 feature
// rows, one per table row.
func (s *Scaler) Transform(t *dataset.Table) ([][]float32, error) {
	cols := make([][]float64, len(s.cols))
	for j, name := range s.cols {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("transforming: %w", err)
		}
		cols[j] = col
	}

	rows := make([][]float32, t.Len())
	for i := range rows {
		row := make([]float32, len(s.cols))
		for j := range s.cols {
			row[j] = float32((cols[j][i] - s.mean[j]) / s.std[j])
		}
		rows[i] = row
	}
	return rows, nil
}
