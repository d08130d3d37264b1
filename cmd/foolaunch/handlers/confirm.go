package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/foolaunch/internal/config"
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// confirmWithPrompt shows a yes/no prompt describing the launch.
func confirmWithPrompt(ctx context.Context, opts *config.Options) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(launchTitle(opts)).
				Description(fmt.Sprintf("image %s in %s", opts.Image, valueOr(opts.Region, "the default region"))).
				Affirmative("Launch").
				Negative("Cancel").
				Value(&ok),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

func launchTitle(opts *config.Options) string {
	mode := "on-demand"
	if opts.Spot {
		mode = "spot"
	}
	return fmt.Sprintf("Launch %d %s %s instance(s)?", opts.LaunchCount(), mode, opts.InstanceType)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
