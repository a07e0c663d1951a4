// Package output provides styled terminal rendering helpers for repolist.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for completed operations.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for failures.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style
)

func init() {
	applyStyles(false)
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally by reassigning the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(disabled)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// ShouldColor reports whether styled output should be used given the user's
// preferences and whether f is a terminal.
func ShouldColor(f *os.File, enabled bool) bool {
	if !enabled || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func applyStyles(plain bool) {
	if plain {
		p := lipgloss.NewStyle()
		StyleHeader = p
		StyleSuccess = p
		StyleError = p
		StyleWarning = p
		StyleMuted = p
		StyleBold = p
		return
	}
	StyleHeader = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	StyleWarning = lipgloss.NewStyle().
		Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().
		Bold(true)
}
