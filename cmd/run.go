// -- cmd/run.go --
package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kc92/desperados-destiny-bots/internal/agent"
	"github.com/kc92/desperados-destiny-bots/internal/behavior"
	"github.com/kc92/desperados-destiny-bots/internal/observability"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fleet of scripted playtest agents with human-like pacing.",
	Long: `Run spins up the configured number of playtest agents, each owning its
own behavior engine, and replays randomly generated action scripts with
human-plausible thinking, mistakes, and breaks. The execute hook is a no-op
here; real deployments attach the browser automation layer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := observability.GetLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		runner := agent.NewRunner(cfg, func(ctx context.Context, action behavior.GameAction) error {
			// Stand-in for the game interaction. The engine has already
			// wrapped this call in its behavioral phases.
			logger.Debug("executing action",
				zap.String("type", string(action.Type)),
				zap.Float64("complexity", action.Complexity))
			return ctx.Err()
		}, logger)

		if err := runner.Run(ctx); err != nil {
			if ctx.Err() != nil {
				logger.Info("run interrupted", zap.Error(err))
				return nil
			}
			return err
		}
		logger.Info("all agent sessions complete")
		return nil
	},
}

func init() {
	runCmd.Flags().Int("agents", 0, "number of concurrent agents (overrides config)")
	runCmd.Flags().Int("actions", 0, "actions per agent session (overrides config)")
	runCmd.Flags().Float64("timing-multiplier", 0, "scale all delays; near 0 for dry runs (overrides config)")
	runCmd.Flags().Int64("seed", 0, "seed for reproducible sessions (overrides config)")

	bind := func(key, flag string) {
		if err := viper.BindPFlag(key, runCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	bind("runner.agents", "agents")
	bind("runner.actions_per_agent", "actions")
	bind("behavior.timing_multiplier", "timing-multiplier")
	bind("runner.seed", "seed")

	rootCmd.AddCommand(runCmd)
}
