package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/readmecheck/internal/ui/pretty"
)

// TextReporter renders reports as styled human-readable text.
type TextReporter struct {
	opts     Options
	renderer *pretty.ReportRenderer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	out := stdoutFile(opts.Writer)
	styles := pretty.NewStyles(pretty.ShouldColorize(opts.Color, out))

	return &TextReporter{
		opts:     opts,
		renderer: pretty.NewReportRenderer(styles, opts.ShowSatisfied, out),
	}
}

// stdoutFile returns the writer as *os.File when it is one, for TTY
// detection. Non-file writers (buffers in tests) are never TTYs.
func stdoutFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, files []FileReport) error {
	for i, file := range files {
		if i > 0 {
			if _, err := fmt.Fprintln(r.opts.Writer); err != nil {
				return err
			}
		}
		if err := r.renderer.Render(r.opts.Writer, file.Path, file.Report); err != nil {
			return fmt.Errorf("render %s: %w", file.Path, err)
		}
	}
	return nil
}
