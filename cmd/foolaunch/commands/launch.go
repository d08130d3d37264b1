package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/foolaunch/cmd/foolaunch/handlers"
	"github.com/imamik/foolaunch/internal/config"
)

// Launch returns the command that launches instances.
func Launch() *cobra.Command {
	var configPaths []string
	var dryRun bool
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "launch [profile...]",
		Short: "Launch instances from configuration profiles",
		Long: `Launch EC2 instances using the options of the given profiles.

The "default" profile is applied first, then each named profile in order.
Later profiles override earlier ones, and a profile's "*" list includes
other profiles before its own options.

Spot launches wait for every request to be fulfilled. Requests that end
in any other state are reported and skipped.

Settings can also be given as environment variables:
  FOOLAUNCH_CATALOG, FOOLAUNCH_POLL_INTERVAL, FOOLAUNCH_PUSHGATEWAY,
  FOOLAUNCH_YES, FOOLAUNCH_JSON_LOGS, and FOOLAUNCH_ACCESS_KEY_ID /
  FOOLAUNCH_SECRET_ACCESS_KEY / FOOLAUNCH_SESSION_TOKEN for static credentials.
`,
		Example: `  # Launch with the default profile only
  foolaunch launch

  # Compose profiles
  foolaunch launch web spot

  # Validate permissions and parameters without launching
  foolaunch launch web --dry-run`,
		ValidArgsFunction: completeProfiles(&configPaths),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Launch(cmd.Context(), handlers.LaunchRequest{
				ConfigPaths: configPaths,
				Profiles:    args,
				DryRun:      dryRun,
				Settings:    config.LoadSettings(v),
			})
		},
	}

	addConfigFlag(cmd, &configPaths)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Ask EC2 to validate the request without launching")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().String("catalog", "", "Instance catalog file or s3://bucket/key URL (default: built-in)")
	cmd.Flags().Duration("poll-interval", config.DefaultPollInterval, "Wait between spot request polls")
	cmd.Flags().String("pushgateway", "", "Prometheus Pushgateway URL for launch metrics")
	cmd.Flags().Bool("json-logs", false, "Emit progress as JSON log lines on stderr")
	bindFlags(v, cmd, "yes", "catalog", "poll-interval", "pushgateway", "json-logs")

	return cmd
}
