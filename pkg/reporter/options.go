package reporter

import (
	"io"
	"os"
)

// Format identifies an output format.
type Format string

const (
	// FormatText is human-readable styled text.
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"
)

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.IsValid() {
		return "", &UnknownFormatError{Format: s}
	}
	return f, nil
}

// UnknownFormatError indicates an unrecognized output format string.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "unknown output format: " + e.Format
}

// Options configures a Reporter.
type Options struct {
	// Writer receives the formatted output. Defaults to stdout.
	Writer io.Writer

	// Format selects the output format. Defaults to text.
	Format Format

	// Color is the colorize mode for text output: auto, always, never.
	Color string

	// ShowSatisfied includes satisfied criteria in text output.
	ShowSatisfied bool
}

func (o Options) withDefaults() Options {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.Color == "" {
		o.Color = "auto"
	}
	return o
}
