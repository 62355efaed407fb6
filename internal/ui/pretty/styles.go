// Package pretty provides Lipgloss-based styled output for score reports.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Report components
	Title       lipgloss.Style
	Catalog     lipgloss.Style
	Criterion   lipgloss.Style
	Pass        lipgloss.Style
	Fail        lipgloss.Style
	Points      lipgloss.Style
	Measurement lipgloss.Style
	Suggestion  lipgloss.Style

	// Score components
	ScoreValue lipgloss.Style
	GradeGood  lipgloss.Style
	GradeBad   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// ColorEnabled reports whether this style set renders with color.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Catalog:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Criterion:   lipgloss.NewStyle(),
		Pass:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Fail:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Points:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Measurement: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		ScoreValue: lipgloss.NewStyle().Bold(true),
		GradeGood:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		GradeBad:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color or text attributes.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:       plain,
		Catalog:     plain,
		Criterion:   plain,
		Pass:        plain,
		Fail:        plain,
		Points:      plain,
		Measurement: plain,
		Suggestion:  plain,
		ScoreValue:  plain,
		GradeGood:   plain,
		GradeBad:    plain,
		Dim:         plain,
		Bold:        plain,

		colorEnabled: false,
	}
}

// ShouldColorize determines whether output should be colorized based on the
// color mode ("auto", "always", "never") and whether the writer is a TTY.
func ShouldColorize(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f == nil {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
