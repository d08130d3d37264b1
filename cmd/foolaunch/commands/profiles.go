package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/foolaunch/cmd/foolaunch/handlers"
)

// Profiles returns the command that lists configured profiles.
func Profiles() *cobra.Command {
	var configPaths []string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles of the active config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Profiles(cmd.Context(), configPaths)
		},
	}

	addConfigFlag(cmd, &configPaths)

	return cmd
}
