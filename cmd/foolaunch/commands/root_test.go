package commands

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/foolaunch/internal/config"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "foolaunch", cmd.Use)
	assert.Equal(t, "Launch EC2 instances from configuration profiles", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"launch",
		"show",
		"profiles",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
}

func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Duration("poll-interval", config.DefaultPollInterval, "")
	cmd.Flags().String("catalog", "", "")
	cmd.Flags().BoolP("yes", "y", false, "")
	return cmd
}

func TestBindFlags(t *testing.T) {
	t.Run("flag defaults", func(t *testing.T) {
		cmd := newFlagCommand()
		v := config.NewViper()
		bindFlags(v, cmd, "poll-interval", "catalog", "yes")

		s := config.LoadSettings(v)
		assert.Equal(t, config.DefaultPollInterval, s.PollInterval)
		assert.Empty(t, s.Catalog)
		assert.False(t, s.AssumeYes)
	})

	t.Run("flags set", func(t *testing.T) {
		cmd := newFlagCommand()
		v := config.NewViper()
		bindFlags(v, cmd, "poll-interval", "catalog", "yes")
		require.NoError(t, cmd.Flags().Set("poll-interval", "2s"))
		require.NoError(t, cmd.Flags().Set("catalog", "s3://bucket/catalog.yaml"))
		require.NoError(t, cmd.Flags().Set("yes", "true"))

		s := config.LoadSettings(v)
		assert.Equal(t, 2*time.Second, s.PollInterval)
		assert.Equal(t, "s3://bucket/catalog.yaml", s.Catalog)
		assert.True(t, s.AssumeYes)
	})

	t.Run("environment when flag unset", func(t *testing.T) {
		t.Setenv("FOOLAUNCH_POLL_INTERVAL", "3s")
		cmd := newFlagCommand()
		v := config.NewViper()
		bindFlags(v, cmd, "poll-interval")

		assert.Equal(t, 3*time.Second, config.LoadSettings(v).PollInterval)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("FOOLAUNCH_POLL_INTERVAL", "3s")
		cmd := newFlagCommand()
		v := config.NewViper()
		bindFlags(v, cmd, "poll-interval")
		require.NoError(t, cmd.Flags().Set("poll-interval", "1s"))

		assert.Equal(t, time.Second, config.LoadSettings(v).PollInterval)
	})
}
