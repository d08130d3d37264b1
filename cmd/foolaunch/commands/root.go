// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imamik/foolaunch/cmd/foolaunch/handlers"
)

// Root returns the root command for the foolaunch CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foolaunch",
		Short:         "Launch EC2 instances from configuration profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Launch())
	cmd.AddCommand(Show())
	cmd.AddCommand(Profiles())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// addConfigFlag registers the repeatable --config flag.
func addConfigFlag(cmd *cobra.Command, paths *[]string) {
	cmd.Flags().StringArrayVarP(paths, "config", "c", nil,
		"Config file to try before ./.foolaunch, ~/.foolaunch and /etc/foolaunch (repeatable)")
}

// bindFlags binds the named flags to viper keys. Dashes in flag names map to
// underscores so FOOLAUNCH_POLL_INTERVAL and --poll-interval share a key.
func bindFlags(v *viper.Viper, cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), cmd.Flags().Lookup(name))
	}
}

// completeProfiles completes profile names from the config files the command
// would read.
func completeProfiles(configPaths *[]string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return handlers.ProfileNames(*configPaths), cobra.ShellCompDirectiveNoFileComp
	}
}
