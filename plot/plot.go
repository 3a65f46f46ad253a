// Package plot renders histograms and ROC curves to PNG.
package plot

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	btag "github.com/jamesainslie/go-btag"
)

// Histogram holds binned counts of one value distribution. Edges has
// len(Counts)+1 entries; bin i covers [Edges[i], Edges[i+1]), with the
// last bin closed on the right.
type Histogram struct {
	Name   string
	Edges  []float64
	Counts []int
}

// NewHistogram bins values into the given number of equal-width bins
// spanning [min(values), max(values)].
func NewHistogram(name string, values []float64, bins int) (Histogram, error) {
	if bins <= 0 {
		return Histogram{}, fmt.Errorf("plot: bins must be positive, got %d", bins)
	}
	if len(values) == 0 {
		return Histogram{}, errors.New("plot: no values to bin")
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		// Degenerate range: widen so every value lands in one bin.
		lo, hi = lo-0.5, hi+0.5
	}
	return fill(name, values, bins, lo, hi), nil
}

// Split bins values twice over a shared range, separated by label:
// signal (label 1) and background (label 0). Shared edges keep the two
// histograms directly comparable.
func Split(name string, values []float64, labels btag.Labels, bins int) (sig, bkg Histogram, err error) {
	if len(values) != len(labels) {
		return Histogram{}, Histogram{}, fmt.Errorf("%w: values %d, labels %d",
			btag.ErrShapeMismatch, len(values), len(labels))
	}
	if len(values) == 0 {
		return Histogram{}, Histogram{}, errors.New("plot: no values to bin")
	}
	if bins <= 0 {
		return Histogram{}, Histogram{}, fmt.Errorf("plot: bins must be positive, got %d", bins)
	}

	var sigVals, bkgVals []float64
	for i, v := range values {
		switch labels[i] {
		case 0:
			bkgVals = append(bkgVals, v)
		case 1:
			sigVals = append(sigVals, v)
		default:
			return Histogram{}, Histogram{}, fmt.Errorf("%w: labels[%d] = %d",
				btag.ErrNotBinary, i, labels[i])
		}
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	sig = fill(name+" (signal)", sigVals, bins, lo, hi)
	bkg = fill(name+" (background)", bkgVals, bins, lo, hi)
	return sig, bkg, nil
}

func fill(name string, values []float64, bins int, lo, hi float64) Histogram {
	h := Histogram{
		Name:   name,
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}

	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		bin := int((v - lo) / width)
		if bin == bins { // v == hi lands in the last bin
			bin = bins - 1
		}
		h.Counts[bin]++
	}
	return h
}

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorOrange,
}

// WriteHistogram renders one or more histograms as a stepped PNG chart.
func WriteHistogram(w io.Writer, title string, hists ...Histogram) error {
	if len(hists) == 0 {
		return errors.New("plot: no histograms to render")
	}

	series := make([]chart.Series, 0, len(hists))
	for k, h := range hists {
		// Step outline: two points per bin edge.
		xs := make([]float64, 0, 2*len(h.Counts))
		ys := make([]float64, 0, 2*len(h.Counts))
		for i, c := range h.Counts {
			xs = append(xs, h.Edges[i], h.Edges[i+1])
			ys = append(ys, float64(c), float64(c))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    h.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: seriesColors[k%len(seriesColors)],
				StrokeWidth: 1.5,
			},
		})
	}

	ch := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 500,
		XAxis:  chart.XAxis{Name: title},
		YAxis:  chart.YAxis{Name: "jets / bin"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering histogram: %w", err)
	}
	return nil
}

// WriteROC renders a ROC curve with a random-classifier diagonal.
func WriteROC(w io.Writer, name string, curve btag.Curve) error {
	if len(curve.Points) == 0 {
		return errors.New("plot: empty ROC curve")
	}

	xs := make([]float64, len(curve.Points))
	ys := make([]float64, len(curve.Points))
	for i, p := range curve.Points {
		xs[i] = p.FalsePositiveRate
		ys[i] = p.TruePositiveRate
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("%s (AUC = %.3f)", name, curve.AUC),
		Width:  600,
		Height: 600,
		XAxis: chart.XAxis{
			Name:  "false positive rate",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxis: chart.YAxis{
			Name:  "true positive rate",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "random",
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering roc: %w", err)
	}
	return nil
}
