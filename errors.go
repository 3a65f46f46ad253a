package btag

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrShapeMismatch indicates the predicted and actual sequences differ in length.
	ErrShapeMismatch = errors.New("btag: label sequences differ in length")

	// ErrEmptyInput indicates a zero-length label sequence was passed to the evaluator.
	ErrEmptyInput = errors.New("btag: empty label sequence")

	// ErrNotBinary indicates a label value outside {0, 1}.
	ErrNotBinary = errors.New("btag: label is not binary")

	// ErrSingleClass indicates the truth labels contain only one class,
	// so true/false positive rates are undefined.
	ErrSingleClass = errors.New("btag: truth labels contain a single class")

	// ErrModelNotFound indicates the model file does not exist.
	ErrModelNotFound = errors.New("btag: model file not found")

	// ErrInvalidModel indicates the model file exists but is malformed.
	ErrInvalidModel = errors.New("btag: invalid model format")
)
