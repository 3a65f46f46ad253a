package inference

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPoolClosed indicates Acquire was called on a closed pool.
var ErrPoolClosed = errors.New("inference: pool closed")

// Pool manages a fixed set of ONNX sessions for concurrent inference.
// Sessions are created up front so Acquire never pays model-load cost.
type Pool struct {
	idle   chan *Session
	size   int
	mu     sync.Mutex
	closed bool
}

// NewPool creates a pool of size sessions for the given model.
// Sizes below 1 are clamped to 1.
func NewPool(modelPath string, size int) (*Pool, error) {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		idle: make(chan *Session, size),
		size: size,
	}

	for i := 0; i < size; i++ {
		session, err := NewSession(modelPath)
		if err != nil {
			_ = p.Close() // Best-effort cleanup; original error takes precedence
			return nil, fmt.Errorf("creating session %d: %w", i, err)
		}
		p.idle <- session
	}

	return p, nil
}

// Acquire gets a session, blocking until one is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	select {
	case session, ok := <-p.idle:
		if !ok {
			return nil, ErrPoolClosed
		}
		return session, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a session to the pool. Releasing into a closed or full
// pool closes the session instead.
func (p *Pool) Release(s *Session) {
	if s == nil {
		return
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		_ = s.Close()
		return
	}

	select {
	case p.idle <- s:
	default:
		_ = s.Close()
	}
}

// Close closes every session in the pool.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.idle)

	var errs []error
	for session := range p.idle {
		if err := session.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
