// Package reporter renders score reports to a writer in the configured
// output format. The core engine exposes only the structured Report; all
// formatting for humans or machines lives here.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/readmecheck/pkg/score"
)

// FileReport pairs an analyzed document path with its report.
type FileReport struct {
	Path   string
	Report *score.Report
}

// Reporter formats and writes analysis reports.
type Reporter interface {
	// Report writes formatted output for the given file reports.
	Report(ctx context.Context, files []FileReport) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	opts = opts.withDefaults()

	format := opts.Format
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
