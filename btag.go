package btag

import "fmt"

// Labels is an ordered sequence of binary class labels, one per sample.
// 1 marks signal (b-jet), 0 marks background. Treat as immutable once
// produced.
type Labels []int

// Threshold classifies continuous scores into labels using a strict
// greater-than cut: label[i] = 1 if scores[i] > cut, else 0.
func Threshold(scores []float64, cut float64) Labels {
	labels := make(Labels, len(scores))
	for i, s := range scores {
		if s > cut {
			labels[i] = 1
		}
	}
	return labels
}

// Report holds the confusion counts for one evaluation plus derived
// metrics. The four counts always sum to the number of samples evaluated,
// and Accuracy + FractionWrong == 1.
type Report struct {
	TrueNegatives  int // predicted 0, actual 0
	FalseNegatives int // predicted 0, actual 1
	FalsePositives int // predicted 1, actual 0
	TruePositives  int // predicted 1, actual 1

	FractionWrong float64
	Accuracy      float64
	Precision     float64
	Recall        float64
	F1            float64
}

// Total returns the number of samples the report covers.
func (r Report) Total() int {
	return r.TrueNegatives + r.FalseNegatives + r.FalsePositives + r.TruePositives
}

// TruePositiveRate returns TP / (TP + FN), the fraction of signal
// correctly tagged. Returns 0 when no signal samples exist.
func (r Report) TruePositiveRate() float64 {
	if r.TruePositives+r.FalseNegatives == 0 {
		return 0
	}
	return float64(r.TruePositives) / float64(r.TruePositives+r.FalseNegatives)
}

// FalsePositiveRate returns FP / (FP + TN), the fraction of background
// wrongly tagged as signal. Returns 0 when no background samples exist.
func (r Report) FalsePositiveRate() float64 {
	if r.FalsePositives+r.TrueNegatives == 0 {
		return 0
	}
	return float64(r.FalsePositives) / float64(r.FalsePositives+r.TrueNegatives)
}

// Evaluate compares predicted labels against actual labels and returns
// the confusion report. Both sequences must be the same non-zero length
// and contain only 0 or 1 values.
func Evaluate(predicted, actual Labels) (Report, error) {
	if len(predicted) != len(actual) {
		return Report{}, fmt.Errorf("%w: predicted %d, actual %d",
			ErrShapeMismatch, len(predicted), len(actual))
	}
	if len(predicted) == 0 {
		return Report{}, fmt.Errorf("%w: nothing to evaluate", ErrEmptyInput)
	}

	var r Report
	for i := range predicted {
		p, a := predicted[i], actual[i]
		if p != 0 && p != 1 {
			return Report{}, fmt.Errorf("%w: predicted[%d] = %d", ErrNotBinary, i, p)
		}
		if a != 0 && a != 1 {
			return Report{}, fmt.Errorf("%w: actual[%d] = %d", ErrNotBinary, i, a)
		}

		switch {
		case p == 0 && a == 0:
			r.TrueNegatives++
		case p == 0 && a == 1:
			r.FalseNegatives++
		case p == 1 && a == 0:
			r.FalsePositives++
		default:
			r.TruePositives++
		}
	}

	n := float64(len(predicted))
	r.FractionWrong = float64(r.FalseNegatives+r.FalsePositives) / n
	r.Accuracy = 1 - r.FractionWrong

	if r.TruePositives+r.FalsePositives > 0 {
		r.Precision = float64(r.TruePositives) / float64(r.TruePositives+r.FalsePositives)
	}
	if r.TruePositives+r.FalseNegatives > 0 {
		r.Recall = float64(r.TruePositives) / float64(r.TruePositives+r.FalseNegatives)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}

	return r, nil
}
