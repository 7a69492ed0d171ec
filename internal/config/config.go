// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kc92/desperados-destiny-bots/internal/behavior"
)

// Config is the full application configuration: logging, the behavior engine
// defaults handed to every agent, and the runner that fans agents out.
type Config struct {
	Logger   LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Behavior behavior.Config `mapstructure:"behavior" yaml:"behavior"`
	Runner   RunnerConfig    `mapstructure:"runner" yaml:"runner"`
}

// LoggerConfig controls the zap/lumberjack logging stack.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// RunnerConfig controls the playtest runner.
type RunnerConfig struct {
	// Agents is how many independent agents (each with its own engine) run.
	Agents int `mapstructure:"agents" yaml:"agents"`
	// ActionsPerAgent is the scripted session length.
	ActionsPerAgent int `mapstructure:"actions_per_agent" yaml:"actions_per_agent"`
	// ActionsPerMinute caps the global action issue rate across all agents.
	// Zero means unpaced.
	ActionsPerMinute int `mapstructure:"actions_per_minute" yaml:"actions_per_minute"`
	// Seed makes every agent's script and RNG reproducible. Zero seeds from
	// the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// SessionTimeout bounds the whole run.
	SessionTimeout time.Duration `mapstructure:"session_timeout" yaml:"session_timeout"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "destinybot")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// Behavior engine
	v.SetDefault("behavior.timing_multiplier", 1.0)
	v.SetDefault("behavior.enable_mistakes", true)
	v.SetDefault("behavior.enable_breaks", true)
	v.SetDefault("behavior.mistake_multiplier", 1.0)
	v.SetDefault("behavior.verbose", false)

	// Runner
	v.SetDefault("runner.agents", 1)
	v.SetDefault("runner.actions_per_agent", 20)
	v.SetDefault("runner.actions_per_minute", 0)
	v.SetDefault("runner.seed", 0)
	v.SetDefault("runner.session_timeout", 4*time.Hour)
}

// NewDefaultConfig returns a Config populated purely from defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; this only fires on a programming error.
		panic(fmt.Sprintf("config: defaults failed to unmarshal: %v", err))
	}
	return &cfg
}

// Validate rejects configurations the runner cannot execute.
func (c *Config) Validate() error {
	if c.Runner.Agents < 1 {
		return fmt.Errorf("runner.agents must be at least 1, got %d", c.Runner.Agents)
	}
	if c.Runner.ActionsPerAgent < 1 {
		return fmt.Errorf("runner.actions_per_agent must be at least 1, got %d", c.Runner.ActionsPerAgent)
	}
	if c.Runner.ActionsPerMinute < 0 {
		return fmt.Errorf("runner.actions_per_minute must not be negative, got %d", c.Runner.ActionsPerMinute)
	}
	if c.Behavior.TimingMultiplier < 0 {
		return fmt.Errorf("behavior.timing_multiplier must not be negative, got %f", c.Behavior.TimingMultiplier)
	}
	return nil
}
