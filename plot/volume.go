package plot

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// WriteVolumeFractions renders estimated vs analytic hypersphere volume
// fractions against dimension.
func WriteVolumeFractions(w io.Writer, dims []int, estimated, exact []float64) error {
	if len(dims) == 0 {
		return errors.New("plot: no dimensions to render")
	}
	if len(estimated) != len(dims) || len(exact) != len(dims) {
		return fmt.Errorf("plot: got %d dims, %d estimates, %d exact values",
			len(dims), len(estimated), len(exact))
	}

	xs := make([]float64, len(dims))
	for i, d := range dims {
		xs[i] = float64(d)
	}

	ch := chart.Chart{
		Title:  "Unit hypersphere volume fraction of the enclosing cube",
		Width:  800,
		Height: 500,
		XAxis:  chart.XAxis{Name: "dimension"},
		YAxis:  chart.YAxis{Name: "volume fraction"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Monte Carlo",
				XValues: xs,
				YValues: estimated,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "analytic",
				XValues: xs,
				YValues: exact,
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering volume fractions: %w", err)
	}
	return nil
}
