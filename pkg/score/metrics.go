package score

import "github.com/yaklabco/readmecheck/pkg/document"

// Metric score buckets. Length and formatting are proxies for usability, not
// linear in document size, so thresholds avoid rewarding unbounded padding.
const (
	metricMax = 10

	minLines = 10
	maxLines = 200

	minHeadings   = 3
	minCodeBlocks = 1
)

// Metric names used in outcomes and rendering.
const (
	MetricLength     = "Length"
	MetricFormatting = "Formatting"
)

// LengthMetric buckets the document's line count into a score.
func LengthMetric(doc *document.Document) MetricOutcome {
	lines := doc.LineCount()

	outcome := MetricOutcome{
		Name: MetricLength,
		Measurements: []Measurement{
			{Label: "lines", Value: lines},
		},
		Max: metricMax,
	}

	switch {
	case lines < minLines:
		outcome.Points = 0
		outcome.Remediation = "README is too short. Add more details."
	case lines > maxLines:
		outcome.Points = 5
		outcome.Remediation = "README is very long. Consider splitting into sections or separate docs."
	default:
		outcome.Points = metricMax
	}
	return outcome
}

// FormattingMetric scores the document on heading and fenced-code-block
// counts. An unclosed trailing fence is ignored when counting blocks.
func FormattingMetric(doc *document.Document) MetricOutcome {
	headings := doc.HeadingCount()
	codeBlocks := doc.CodeBlockCount()

	outcome := MetricOutcome{
		Name: MetricFormatting,
		Measurements: []Measurement{
			{Label: "headings", Value: headings},
			{Label: "code_blocks", Value: codeBlocks},
		},
		Max: metricMax,
	}

	switch {
	case headings < minHeadings:
		outcome.Points = 0
		outcome.Remediation = "Add more headings to organize your README."
	case codeBlocks < minCodeBlocks:
		outcome.Points = 0
		outcome.Remediation = "Add code blocks for examples or usage instructions."
	default:
		outcome.Points = metricMax
	}
	return outcome
}
