package btag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jamesainslie/go-btag/inference"
)

// Scorer assigns b-jet probabilities to feature rows using a serialized
// ONNX model. It is safe for concurrent use.
type Scorer struct {
	pool      *inference.Pool
	threshold float64
	logger    *slog.Logger
}

// NewScorer creates a Scorer from an ONNX model file.
func NewScorer(modelPath string, opts ...Option) (*Scorer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Check model file exists
	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	// Create session pool
	pool, err := inference.NewPool(modelPath, cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Scorer{
		pool:      pool,
		threshold: cfg.threshold,
		logger:    cfg.logger,
	}, nil
}

// Score runs the model over feature rows and returns one probability per
// row. All rows must have the same width.
func (s *Scorer) Score(ctx context.Context, rows [][]float32) ([]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	session, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Release(session)

	probs, err := session.Infer(ctx, rows)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(probs))
	for i, p := range probs {
		scores[i] = float64(p)
	}
	return scores, nil
}

// Tag scores feature rows and thresholds the result into labels.
func (s *Scorer) Tag(ctx context.Context, rows [][]float32) (Labels, error) {
	scores, err := s.Score(ctx, rows)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		return nil, nil
	}
	return Threshold(scores, s.threshold), nil
}

// Threshold returns the tagging threshold the Scorer applies in Tag.
func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Close releases all resources.
func (s *Scorer) Close() error {
	if s.pool != nil {
		return s.pool.Close()
	}
	return nil
}
