package score

import "github.com/yaklabco/readmecheck/pkg/document"

// MaxScore is the constant maximum attainable score: both catalog weight
// sums plus the maximum of each structural metric.
func MaxScore() int {
	return Primary.MaxScore() + Extra.MaxScore() + 2*metricMax
}

// Analyze evaluates the full criterion battery against a document and folds
// the outcomes into a Report.
//
// Evaluation order is part of the output contract: the primary catalog, the
// length metric, the formatting metric, then the extra catalog. Suggestions
// are concatenated in that same order. Analyze is a stateless single-pass
// reduction; it always returns a complete report, even for an empty
// document.
func Analyze(doc *document.Document) *Report {
	report := &Report{
		Sections: make([]Outcome, 0, Primary.Len()),
		Extras:   make([]Outcome, 0, Extra.Len()),
		Max:      MaxScore(),
	}

	for _, criterion := range Primary.Criteria() {
		outcome := Evaluate(criterion, doc)
		report.Sections = append(report.Sections, outcome)
		report.Total += outcome.Points
		if outcome.Remediation != "" {
			report.Suggestions = append(report.Suggestions, outcome.Remediation)
		}
	}

	report.Length = LengthMetric(doc)
	report.Total += report.Length.Points
	if report.Length.Remediation != "" {
		report.Suggestions = append(report.Suggestions, report.Length.Remediation)
	}

	report.Formatting = FormattingMetric(doc)
	report.Total += report.Formatting.Points
	if report.Formatting.Remediation != "" {
		report.Suggestions = append(report.Suggestions, report.Formatting.Remediation)
	}

	for _, criterion := range Extra.Criteria() {
		outcome := Evaluate(criterion, doc)
		report.Extras = append(report.Extras, outcome)
		report.Total += outcome.Points
		if outcome.Remediation != "" {
			report.Suggestions = append(report.Suggestions, outcome.Remediation)
		}
	}

	return report
}
