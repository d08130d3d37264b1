package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	greenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	redStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// renderLaunchSummary produces the table of launched instances.
func renderLaunchSummary(opts *config.Options, region string, instances []aws.Instance) string {
	var b strings.Builder

	title := "  foolaunch: " + valueOr(opts.Name, opts.InstanceType)
	if opts.DryRun {
		title += " (dry run)"
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	mode := "on-demand"
	if opts.Spot {
		mode = "spot"
	}
	b.WriteString(fmt.Sprintf("    Region:  %s\n", region))
	b.WriteString(fmt.Sprintf("    Image:   %s\n", opts.Image))
	b.WriteString(fmt.Sprintf("    Type:    %s (%s)\n", opts.InstanceType, mode))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Instances"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")

	if len(instances) == 0 {
		if opts.DryRun {
			b.WriteString(greenStyle.Render("    Request validated, nothing launched"))
		} else {
			b.WriteString(redStyle.Render("    No instances were created"))
		}
		b.WriteString("\n")
		return b.String()
	}

	for _, inst := range instances {
		b.WriteString(fmt.Sprintf("    %-20s %-16s %s\n", inst.ID, valueOr(inst.PublicIP, "-"), renderState(inst.State)))
	}
	return b.String()
}

func renderState(state string) string {
	switch state {
	case "running", "pending":
		return greenStyle.Render(state)
	case "":
		return dimStyle.Render("unknown")
	default:
		return redStyle.Render(state)
	}
}

// renderProfiles lists profiles with their includes.
func renderProfiles(source string, profiles []ProfileInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  Profiles"))
	b.WriteString(dimStyle.Render("  " + source))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")

	for _, p := range profiles {
		name := p.Name
		if name == config.DefaultProfile {
			name += " (applied first)"
		}
		line := fmt.Sprintf("    %-28s %2d options", name, p.Options)
		if len(p.Includes) > 0 {
			line += dimStyle.Render("  includes " + strings.Join(p.Includes, ", "))
		}
		if p.Invalid {
			line += "  " + redStyle.Render("invalid")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
