// -- internal/agent/agent.go --
// Package agent drives scripted playtest sessions through the behavior
// engine. Each agent owns exactly one engine instance; the engines never
// interact, so a fleet of agents is just independent goroutines.
package agent

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kc92/desperados-destiny-bots/internal/behavior"
)

// ExecuteFunc performs the actual game interaction for one action. The
// default implementation is a no-op; real deployments inject the browser
// automation hook here.
type ExecuteFunc func(ctx context.Context, action behavior.GameAction) error

// Options configures one agent.
type Options struct {
	Behavior behavior.Config
	Script   []behavior.GameAction
	Execute  ExecuteFunc
	Logger   *zap.Logger
	// Seed fixes the agent's private RNG; zero seeds from the clock.
	Seed int64
	// Limiter, when non-nil, paces action starts across the whole fleet.
	Limiter *rate.Limiter
	// SuccessRate is the probability a simulated action outcome is reported
	// as a success. The engine itself never judges outcomes.
	SuccessRate float64
}

// Agent replays one scripted session.
type Agent struct {
	engine      *behavior.Engine
	rng         *rand.Rand
	logger      *zap.Logger
	execute     ExecuteFunc
	limiter     *rate.Limiter
	script      []behavior.GameAction
	successRate float64
	multiplier  float64
}

// New builds an agent and its private engine.
func New(opts Options) *Agent {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	execute := opts.Execute
	if execute == nil {
		execute = func(context.Context, behavior.GameAction) error { return nil }
	}

	successRate := opts.SuccessRate
	if successRate <= 0 || successRate > 1 {
		successRate = 0.9
	}

	eng := behavior.New(opts.Behavior, logger, behavior.WithRNG(rng))
	return &Agent{
		engine:      eng,
		rng:         rng,
		logger:      logger.Named("agent").With(zap.String("agent_id", eng.ID().String())),
		execute:     execute,
		limiter:     opts.Limiter,
		script:      opts.Script,
		successRate: successRate,
		multiplier:  opts.Behavior.TimingMultiplier,
	}
}

// Engine exposes the agent's engine for inspection.
func (a *Agent) Engine() *behavior.Engine { return a.engine }

// Run replays the script to completion or context cancellation. A failed
// game action frustrates the agent but does not end the session; only
// cancellation does.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("session starting", zap.Int("actions", len(a.script)))

	for i, action := range a.script {
		if a.limiter != nil {
			if err := a.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		// An idle lapse between actions, outside the engine's own cycle.
		if behavior.ShouldZoneOut(a.engine.CognitiveState(), a.rng) {
			d := behavior.ZoneOutDuration(a.engine.CognitiveState(), a.rng)
			a.logger.Debug("zoning out", zap.Duration("duration", d))
			if err := a.sleep(ctx, d); err != nil {
				return err
			}
		}

		err := a.engine.PerformAction(ctx, action, func(ctx context.Context) error {
			return a.execute(ctx, action)
		})
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			a.logger.Warn("action failed",
				zap.Int("index", i),
				zap.String("type", string(action.Type)),
				zap.Error(err))
			a.engine.RecordActionResult(false, action.Important)
			continue
		}

		a.engine.RecordActionResult(a.rng.Float64() < a.successRate, action.Important)
	}

	stats := a.engine.Statistics()
	a.logger.Info("session complete",
		zap.Int("actions", stats.TotalActions),
		zap.Int("mistakes", stats.TotalMistakes),
		zap.Int("breaks", stats.TotalBreaks))
	return nil
}

// sleep waits for d scaled by the session's timing multiplier.
func (a *Agent) sleep(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * a.multiplier)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
