// Package btag provides evaluation tooling for binary jet taggers.
//
// # Quick Start
//
//	scores, _ := table.Column("nnbjet")
//	truth, _ := table.BinaryColumn("isb")
//
//	pred := btag.Threshold(scores, 0.5)
//	report, err := btag.Evaluate(pred, truth)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Accuracy: %.3f (wrong: %.3f)\n", report.Accuracy, report.FractionWrong)
//
// # Thread Safety
//
// Evaluate, Threshold and ROC are pure functions. Scorer is safe for
// concurrent use. It manages an internal pool of ONNX sessions,
// configurable via WithPoolSize.
//
// # Model Files
//
// Scorer expects an ONNX model with a single float32 input named
// "features" of shape [batch, nFeatures] and a single float32 output
// named "prob" of shape [batch].
package btag
