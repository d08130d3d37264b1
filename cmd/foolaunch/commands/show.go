package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/foolaunch/cmd/foolaunch/handlers"
)

// Show returns the command that prints resolved options.
func Show() *cobra.Command {
	var configPaths []string

	cmd := &cobra.Command{
		Use:   "show [profile...]",
		Short: "Print the options a launch would use",
		Long: `Resolve the given profiles exactly as launch does and print the
resulting options as YAML. AWS is not contacted.`,
		ValidArgsFunction: completeProfiles(&configPaths),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Show(cmd.Context(), configPaths, args)
		},
	}

	addConfigFlag(cmd, &configPaths)

	return cmd
}
