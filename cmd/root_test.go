// cmd/root_test.go
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"], "run subcommand registered")
	assert.Equal(t, "destinybot", rootCmd.Use)
}

func TestRunCommandFlags(t *testing.T) {
	for _, flag := range []string{"agents", "actions", "timing-multiplier", "seed"} {
		require.NotNil(t, runCmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
