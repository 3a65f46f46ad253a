package btag

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
)

const testModelPath = "testdata/jettag.onnx"

// skipIfNoModel skips the test if the ONNX model is not available.
func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); err != nil {
		t.Skipf("Skipping: ONNX model not available at %s", testModelPath)
	}
}

func TestNewScorer_ModelNotFound(t *testing.T) {
	_, err := NewScorer("nonexistent/model.onnx")
	if err == nil {
		t.Fatal("expected error for nonexistent model")
	}
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got: %v", err)
	}
}

func TestNewScorer(t *testing.T) {
	skipIfNoModel(t)

	scorer, err := NewScorer(testModelPath)
	if err != nil {
		t.Fatalf("NewScorer() failed: %v", err)
	}
	defer func() { _ = scorer.Close() }()

	if scorer.pool == nil {
		t.Error("expected non-nil pool")
	}
}

func TestNewScorer_WithOptions(t *testing.T) {
	skipIfNoModel(t)

	scorer, err := NewScorer(testModelPath,
		WithThreshold(0.8),
		WithPoolSize(2),
		WithLogger(slog.Default()),
	)
	if err != nil {
		t.Fatalf("NewScorer() with options failed: %v", err)
	}
	defer func() { _ = scorer.Close() }()

	if scorer.Threshold() != 0.8 {
		t.Errorf("expected threshold 0.8, got %f", scorer.Threshold())
	}
}

func TestScorer_Score_Empty(t *testing.T) {
	skipIfNoModel(t)

	scorer, err := NewScorer(testModelPath)
	if err != nil {
		t.Fatalf("NewScorer() failed: %v", err)
	}
	defer func() { _ = scorer.Close() }()

	scores, err := scorer.Score(context.Background(), nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if scores != nil {
		t.Errorf("expected nil scores for empty input, got %v", scores)
	}
}

func TestScorer_Tag(t *testing.T) {
	skipIfNoModel(t)

	scorer, err := NewScorer(testModelPath, WithThreshold(0.5))
	if err != nil {
		t.Fatalf("NewScorer() failed: %v", err)
	}
	defer func() { _ = scorer.Close() }()

	rows := [][]float32{
		{30.2, -0.1, 3.1},
		{42.7, 0.5, 1.2},
	}
	labels, err := scorer.Tag(context.Background(), rows)
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	if len(labels) != len(rows) {
		t.Fatalf("got %d labels, want %d", len(labels), len(rows))
	}
	for i, l := range labels {
		if l != 0 && l != 1 {
			t.Errorf("labels[%d] = %d, want 0 or 1", i, l)
		}
	}
}
