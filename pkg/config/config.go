// Package config defines core configuration types for readmecheck.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is supported.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for readmecheck.
type Config struct {
	// Format selects the report output format.
	Format OutputFormat `yaml:"format"`

	// Color controls colorized terminal output.
	Color ColorMode `yaml:"color"`

	// MinScore is the minimum passing score as a percentage (0 disables
	// the threshold; a score below it makes the run exit non-zero).
	MinScore float64 `yaml:"min_score"`

	// ShowSatisfied includes satisfied criteria in text output rather than
	// only the failing ones.
	ShowSatisfied bool `yaml:"show_satisfied"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Format:        FormatText,
		Color:         ColorAuto,
		MinScore:      0,
		ShowSatisfied: true,
	}
}
