package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/readmecheck/pkg/score"
)

// jsonVersion is the JSON output schema version.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileReport `json:"files"`
}

// JSONFileReport represents a single document's report, extending the core
// Report with its path and the derived percentage and grade.
type JSONFileReport struct {
	Path    string  `json:"path"`
	Percent float64 `json:"percent"`
	Grade   string  `json:"grade"`
	*score.Report
}

// JSONReporter formats reports as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, files []FileReport) error {
	output := JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileReport, 0, len(files)),
	}

	for _, file := range files {
		output.Files = append(output.Files, JSONFileReport{
			Path:    file.Path,
			Percent: file.Report.Percent(),
			Grade:   file.Report.Grade(),
			Report:  file.Report,
		})
	}

	bw := bufio.NewWriter(r.opts.Writer)
	encoder := json.NewEncoder(bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return bw.Flush()
}
