// internal/agent/runner.go
package agent

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/kc92/desperados-destiny-bots/internal/behavior"
	"github.com/kc92/desperados-destiny-bots/internal/config"
)

// Runner fans a fleet of independent agents out over goroutines. Engines are
// strictly per-agent; the only shared object is the optional rate limiter,
// which is safe for concurrent use.
type Runner struct {
	runnerCfg   config.RunnerConfig
	behaviorCfg behavior.Config
	execute     ExecuteFunc
	logger      *zap.Logger
}

// NewRunner builds a runner from configuration.
func NewRunner(cfg *config.Config, execute ExecuteFunc, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		runnerCfg:   cfg.Runner,
		behaviorCfg: cfg.Behavior,
		execute:     execute,
		logger:      logger.Named("runner"),
	}
}

// Run executes every agent's session and waits for the whole fleet. The first
// hard failure (cancellation or an execute hook giving up) stops the run.
func (r *Runner) Run(ctx context.Context) error {
	if r.runnerCfg.SessionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.runnerCfg.SessionTimeout)
		defer cancel()
	}

	var limiter *rate.Limiter
	if r.runnerCfg.ActionsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(r.runnerCfg.ActionsPerMinute)/60.0), 1)
	}

	seed := r.runnerCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scriptRNG := rand.New(rand.NewSource(seed))

	r.logger.Info("starting fleet",
		zap.Int("agents", r.runnerCfg.Agents),
		zap.Int("actions_per_agent", r.runnerCfg.ActionsPerAgent),
		zap.Int64("seed", seed))

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.runnerCfg.Agents; i++ {
		a := New(Options{
			Behavior: r.behaviorCfg,
			Script:   RandomScript(scriptRNG, r.runnerCfg.ActionsPerAgent),
			Execute:  r.execute,
			Logger:   r.logger,
			// Offset seeds keep agents distinct but the fleet reproducible.
			Seed:    seed + int64(i) + 1,
			Limiter: limiter,
		})
		g.Go(func() error {
			if err := a.Run(ctx); err != nil {
				return fmt.Errorf("agent %s: %w", a.Engine().ID(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
