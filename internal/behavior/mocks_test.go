// internal/behavior/mocks_test.go
package behavior

import (
	"context"
	"sync"
	"time"
)

// constRNG always returns the same value, pinning every probabilistic branch.
type constRNG float64

func (r constRNG) Float64() float64 { return float64(r) }

// seqRNG replays a fixed sequence, cycling when exhausted.
type seqRNG struct {
	vals []float64
	i    int
}

func (r *seqRNG) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// recordingSleeper records requested pause durations instead of sleeping.
type recordingSleeper struct {
	mu        sync.Mutex
	durations []time.Duration

	// failOnCall, when positive, makes that Sleep call (1-based) return
	// returnErr without recording it.
	failOnCall int
	returnErr  error
	calls      int
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.failOnCall > 0 && s.calls >= s.failOnCall {
		return s.returnErr
	}
	s.durations = append(s.durations, d)
	return nil
}

func (s *recordingSleeper) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.durations))
	copy(out, s.durations)
	return out
}

func float64Ptr(v float64) *float64 { return &v }

// newTestEngine builds an engine with deterministic dependencies. The
// recording sleeper means no test ever waits on the wall clock.
func newTestEngine(cfg Config, rng RNG, sleeper Sleeper) *Engine {
	if rng == nil {
		rng = constRNG(0.5)
	}
	if sleeper == nil {
		sleeper = &recordingSleeper{}
	}
	return New(cfg, nil, WithRNG(rng), WithSleeper(sleeper))
}

// noopExecute stands in for the browser-automation callback.
func noopExecute(context.Context) error { return nil }
