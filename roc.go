package btag

import (
	"fmt"
	"sort"
)

// ROCPoint is one operating point on a ROC curve: the true and false
// positive rates obtained by cutting at Cut.
type ROCPoint struct {
	Cut               float64
	TruePositiveRate  float64
	FalsePositiveRate float64
}

// Curve is a ROC curve with its area under the curve. Points run from
// (0, 0) at the tightest cut to (1, 1) at the loosest.
type Curve struct {
	Points []ROCPoint
	AUC    float64
}

// ROC sweeps a cut across every distinct score value and returns the
// resulting curve. The truth labels must contain both classes, since
// the rates are undefined otherwise.
func ROC(scores []float64, truth Labels) (Curve, error) {
	if len(scores) != len(truth) {
		return Curve{}, fmt.Errorf("%w: scores %d, truth %d",
			ErrShapeMismatch, len(scores), len(truth))
	}
	if len(scores) == 0 {
		return Curve{}, fmt.Errorf("%w: nothing to evaluate", ErrEmptyInput)
	}

	var pos, neg int
	for i, a := range truth {
		switch a {
		case 0:
			neg++
		case 1:
			pos++
		default:
			return Curve{}, fmt.Errorf("%w: truth[%d] = %d", ErrNotBinary, i, a)
		}
	}
	if pos == 0 || neg == 0 {
		return Curve{}, fmt.Errorf("%w: %d signal, %d background samples",
			ErrSingleClass, pos, neg)
	}

	// Walk samples from highest score down, loosening the cut one
	// distinct score value at a time.
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	curve := Curve{Points: []ROCPoint{{
		Cut:               scores[order[0]],
		TruePositiveRate:  0,
		FalsePositiveRate: 0,
	}}}

	var tp, fp int
	var auc float64
	prevTPR, prevFPR := 0.0, 0.0

	for k := 0; k < len(order); {
		cut := scores[order[k]]
		// Consume all samples tied at this score before emitting a point.
		for k < len(order) && scores[order[k]] == cut {
			if truth[order[k]] == 1 {
				tp++
			} else {
				fp++
			}
			k++
		}

		tpr := float64(tp) / float64(pos)
		fpr := float64(fp) / float64(neg)
		curve.Points = append(curve.Points, ROCPoint{
			Cut:               cut,
			TruePositiveRate:  tpr,
			FalsePositiveRate: fpr,
		})

		auc += (fpr - prevFPR) * (tpr + prevTPR) / 2
		prevTPR, prevFPR = tpr, fpr
	}

	curve.AUC = auc
	return curve, nil
}
