// Package tui provides the Bubble Tea menu shown when loadout runs on a
// terminal: the task list with install badges and the selection input.
package tui

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// IsAccessible returns true when the environment requests accessible (no-color) output.
// Respects the NO_COLOR standard (https://no-color.org) and ACCESSIBLE=1.
func IsAccessible() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("ACCESSIBLE") == "1"
}

// Theme holds the lipgloss styles used by the menu.
type Theme struct {
	Primary color.Color
	Success color.Color
	Warning color.Color
	Error   color.Color
	Muted   color.Color

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	BadgeOK   lipgloss.Style
	BadgeMiss lipgloss.Style

	Banner lipgloss.Style
}

// DefaultTheme returns the standard loadout visual theme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#16A34A") // green
	success := lipgloss.Color("#10B981") // emerald
	warning := lipgloss.Color("#F59E0B") // amber
	errColor := lipgloss.Color("#EF4444")
	muted := lipgloss.Color("#6B7280") // gray

	return Theme{
		Primary: primary,
		Success: success,
		Warning: warning,
		Error:   errColor,
		Muted:   muted,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted),

		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		BadgeOK: lipgloss.NewStyle().
			Bold(true).
			Foreground(success),

		BadgeMiss: lipgloss.NewStyle().
			Foreground(muted),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2),
	}
}
