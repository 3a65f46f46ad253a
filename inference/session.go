// Package inference provides ONNX Runtime integration for jet tagger models.
package inference

import (
	"context"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var (
	ortEnvOnce sync.Once
	ortEnvErr  error
)

// initORT initializes ONNX Runtime environment once.
func initORT() error {
	ortEnvOnce.Do(func() {
		ortEnvErr = ort.InitializeEnvironment()
	})
	return ortEnvErr
}

// Session wraps an ONNX Runtime session for tagger inference.
type Session struct {
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
	closed  bool
}

// NewSession creates a new ONNX session from a model file.
func NewSession(modelPath string) (*Session, error) {
	// Check file exists
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}

	if err := initORT(); err != nil {
		return nil, fmt.Errorf("initializing ONNX runtime: %w", err)
	}

	// Create session options
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("creating session options: %w", err)
	}
	defer func() { _ = options.Destroy() }() // Cleanup error doesn't affect success

	// Define input/output names (from model inspection)
	inputNames := []string{"features"}
	outputNames := []string{"prob"}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		inputNames,
		outputNames,
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{session: session}, nil
}

// Infer runs the model on feature rows, returns one probability per row.
// All rows must share the same width.
func (s *Session) Infer(ctx context.Context, rows [][]float32) ([]float32, error) {
	// Check context before expensive operation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if len(rows) == 0 {
		return nil, nil
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("empty feature row")
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged feature rows: row %d has %d values, want %d", i, len(row), width)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("session is closed")
	}

	batchSize := int64(len(rows))
	nFeatures := int64(width)

	flat := make([]float32, 0, len(rows)*width)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	// Create input tensor
	featuresTensor, err := ort.NewTensor(
		ort.NewShape(batchSize, nFeatures),
		flat,
	)
	if err != nil {
		return nil, fmt.Errorf("creating features tensor: %w", err)
	}
	defer func() { _ = featuresTensor.Destroy() }()

	// Prepare inputs as Value slice
	inputs := []ort.Value{featuresTensor}

	// Prepare output slice - nil entries will be allocated by Run
	outputs := []ort.Value{nil}

	// Run inference
	err = s.session.Run(inputs, outputs)
	if err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}

	// Extract probabilities from output
	if outputs[0] == nil {
		return nil, fmt.Errorf("no output produced")
	}
	defer func() { _ = outputs[0].Destroy() }()

	probTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output tensor type")
	}

	// Copy output data
	probs := make([]float32, batchSize)
	outputData := probTensor.GetData()
	if int64(len(outputData)) < batchSize {
		return nil, fmt.Errorf("output has %d values, want %d", len(outputData), batchSize)
	}
	copy(probs, outputData[:batchSize])

	return probs, nil
}

// Close releases ONNX resources.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}
