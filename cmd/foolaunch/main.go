// Package main is the entry point for the foolaunch CLI.
//
// foolaunch launches EC2 instances from named, composable configuration
// profiles. Profiles are read from the first usable of ./.foolaunch,
// ~/.foolaunch and /etc/foolaunch, and the "default" profile is applied
// before the profiles named on the command line.
//
// Commands: launch, show, profiles, version, completion.
//
// For detailed usage information, run:
//
//	foolaunch --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/foolaunch/cmd/foolaunch/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
