// -- internal/behavior/engine.go --
// Package behavior wraps scripted playtest actions with human-plausible
// deliberation, slip-ups, and rest so that automated agents leave behavioral
// traces instead of mechanically perfect ones. It decides nothing about the
// game itself: the action is an opaque callback, and the caller reports
// outcomes back via RecordActionResult.
package behavior

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config controls one engine instance. It is read at construction and never
// mutated afterwards.
type Config struct {
	// TimingMultiplier scales every wall-clock pause. It never touches a
	// probability, so tests can set it near zero for instant runs without
	// changing behavior distribution.
	TimingMultiplier float64 `mapstructure:"timing_multiplier"`
	// EnableMistakes gates the simulated-slip-up path.
	EnableMistakes bool `mapstructure:"enable_mistakes"`
	// EnableBreaks gates the rest-pause path.
	EnableBreaks bool `mapstructure:"enable_breaks"`
	// MistakeMultiplier scales only the mistake trigger rate.
	MistakeMultiplier float64 `mapstructure:"mistake_multiplier"`
	// Verbose emits a debug log line per behavioral phase.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		TimingMultiplier:  1.0,
		EnableMistakes:    true,
		EnableBreaks:      true,
		MistakeMultiplier: 1.0,
		Verbose:           false,
	}
}

// Engine is the orchestrator. One engine belongs to exactly one agent and is
// not safe for concurrent use; independent agents each construct their own.
type Engine struct {
	id      uuid.UUID
	cfg     Config
	tracker *stateTracker
	rng     RNG
	sleeper Sleeper
	logger  *zap.Logger

	totalActions  int
	totalMistakes int
	totalBreaks   int
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRNG replaces the randomness source, turning every probabilistic branch
// deterministic for tests.
func WithRNG(rng RNG) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSleeper replaces the waiting side effect, letting tests record the
// delay sequence instead of sleeping.
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleeper = s }
}

// New creates an engine in the fully rested state. A nil logger is allowed;
// with Verbose off, logging is disabled regardless.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Engine {
	if cfg.TimingMultiplier < 0 {
		cfg.TimingMultiplier = 0
	}
	if cfg.MistakeMultiplier < 0 {
		cfg.MistakeMultiplier = 0
	}
	if logger == nil || !cfg.Verbose {
		logger = zap.NewNop()
	}

	e := &Engine{
		id:      uuid.New(),
		cfg:     cfg,
		tracker: newStateTracker(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleeper: timerSleeper{},
		logger:  logger.Named("behavior"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID identifies this engine instance in logs and traces.
func (e *Engine) ID() uuid.UUID { return e.id }

// PerformAction runs one full humanized action cycle: thinking pause,
// possible simulated mistake, execution with pre/post jitter, cognitive-state
// update, reading pause, and possibly a break. If execute fails, frustration
// rises by a fixed amount, all remaining phases are skipped, and the error is
// returned unchanged.
func (e *Engine) PerformAction(ctx context.Context, action GameAction, execute func(context.Context) error) error {
	think := thinkingDelay(e.tracker.state, action, e.rng)
	e.logger.Debug("thinking",
		zap.String("action", string(action.Type)),
		zap.Duration("delay", think))
	if err := e.pause(ctx, think); err != nil {
		return err
	}

	if e.cfg.EnableMistakes && e.rng.Float64() < mistakeRate(e.tracker.state, action, e.cfg.MistakeMultiplier) {
		if err := e.simulateMistake(ctx, pickMistake(action, e.rng)); err != nil {
			return err
		}
	}

	if err := e.pause(ctx, preExecutionDelay(e.rng)); err != nil {
		return err
	}
	if err := execute(ctx); err != nil {
		e.tracker.addFrustration(frustrationCallbackError)
		e.logger.Debug("action failed", zap.String("action", string(action.Type)), zap.Error(err))
		return err
	}
	if err := e.pause(ctx, postExecutionDelay(e.rng)); err != nil {
		return err
	}

	e.tracker.decayAttention()
	e.tracker.increaseFatigue(action.Complexity)
	e.tracker.updateBoredom(action.Type)
	e.totalActions++

	read := readingDelay(e.tracker.state, action, e.rng)
	e.logger.Debug("reading result", zap.Duration("delay", read))
	if err := e.pause(ctx, read); err != nil {
		return err
	}

	if e.cfg.EnableBreaks && shouldTakeBreak(e.tracker.state) {
		if err := e.takeBreak(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RecordActionResult feeds back the game outcome the caller determined on its
// own; the engine has no knowledge of game success semantics.
func (e *Engine) RecordActionResult(success, wasImportant bool) {
	e.tracker.recordResult(success, wasImportant)
	e.logger.Debug("recorded result",
		zap.Bool("success", success),
		zap.Bool("important", wasImportant),
		zap.Float64("frustration", e.tracker.state.Frustration))
}

// CognitiveState returns a copy of the current state.
func (e *Engine) CognitiveState() CognitiveState {
	return e.tracker.state
}

// Statistics returns a snapshot of the engine's counters and history window.
func (e *Engine) Statistics() Statistics {
	recent := e.tracker.history.snapshot()
	return Statistics{
		TotalActions:        e.totalActions,
		TotalMistakes:       e.totalMistakes,
		TotalBreaks:         e.totalBreaks,
		RecentActions:       recent,
		UniqueRecentActions: e.tracker.history.distinct(),
	}
}

// Reset restores the fully rested state and clears all counters and history.
func (e *Engine) Reset() {
	e.tracker.reset()
	e.totalActions = 0
	e.totalMistakes = 0
	e.totalBreaks = 0
}

// AdjustState applies a partial cognitive-state override, clamping each
// supplied field so out-of-range inputs can never corrupt the invariants.
func (e *Engine) AdjustState(adj StateAdjustment) {
	e.tracker.adjust(adj)
}

// simulateMistake plays out one slip-up: a beat before the human notices,
// then the recovery fumbling. Mistakes never fail the action; they only cost
// time and a little frustration.
func (e *Engine) simulateMistake(ctx context.Context, m Mistake) error {
	realization := millis(500 + e.rng.Float64()*1000)
	recovery := millis(m.recoveryMs * (0.8 + e.rng.Float64()*0.4))
	e.logger.Debug("simulating mistake",
		zap.String("kind", string(m.Kind)),
		zap.Duration("recovery", recovery))

	if err := e.pause(ctx, realization); err != nil {
		return err
	}
	if err := e.pause(ctx, recovery); err != nil {
		return err
	}
	e.tracker.addFrustration(frustrationPerMistake)
	e.totalMistakes++
	return nil
}

// takeBreak plans, waits out, and recovers from a rest pause.
func (e *Engine) takeBreak(ctx context.Context) error {
	tier, duration := planBreak(e.tracker.state, e.rng)
	e.logger.Debug("taking break",
		zap.String("tier", string(tier)),
		zap.Duration("duration", duration))

	if err := e.pause(ctx, duration); err != nil {
		return err
	}
	e.tracker.applyRecovery(tier)
	e.totalBreaks++
	return nil
}

// pause waits for d scaled by the timing multiplier. The multiplier applies
// here and only here, so probabilities are never affected by acceleration.
func (e *Engine) pause(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * e.cfg.TimingMultiplier)
	if d <= 0 {
		return ctx.Err()
	}
	return e.sleeper.Sleep(ctx, d)
}
