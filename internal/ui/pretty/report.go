package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"

	"github.com/yaklabco/readmecheck/pkg/score"
)

const (
	markPass = "✓"
	markFail = "✗"

	defaultBarWidth = 40
	minBarWidth     = 10
)

// ReportRenderer renders an AnalysisReport as human-readable styled text.
type ReportRenderer struct {
	styles        *Styles
	showSatisfied bool
	barWidth      int
}

// NewReportRenderer creates a renderer with the given styles.
// showSatisfied controls whether passing criteria are listed too; out is the
// terminal the report will be written to, nil when output is not a terminal.
func NewReportRenderer(styles *Styles, showSatisfied bool, out *os.File) *ReportRenderer {
	return &ReportRenderer{
		styles:        styles,
		showSatisfied: showSatisfied,
		barWidth:      detectBarWidth(out),
	}
}

// detectBarWidth sizes the score bar to the output terminal, within bounds.
func detectBarWidth(out *os.File) int {
	if out == nil {
		return defaultBarWidth
	}
	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 {
		return defaultBarWidth
	}
	if width-20 < minBarWidth {
		return minBarWidth
	}
	if width-20 > defaultBarWidth {
		return defaultBarWidth
	}
	return width - 20
}

// Render writes the full report for one document.
func (r *ReportRenderer) Render(w io.Writer, path string, report *score.Report) error {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(path))
	b.WriteString("\n\n")

	r.renderOutcomes(&b, "Sections", report.Sections)
	r.renderMetric(&b, report.Length)
	r.renderMetric(&b, report.Formatting)
	r.renderOutcomes(&b, "Extras", report.Extras)
	r.renderSuggestions(&b, report.Suggestions)
	r.renderScore(&b, report)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *ReportRenderer) renderOutcomes(b *strings.Builder, catalog string, outcomes []score.Outcome) {
	b.WriteString(r.styles.Catalog.Render(catalog))
	b.WriteString("\n")

	for _, outcome := range outcomes {
		if outcome.Satisfied && !r.showSatisfied {
			continue
		}

		mark := r.styles.Pass.Render(markPass)
		if !outcome.Satisfied {
			mark = r.styles.Fail.Render(markFail)
		}

		fmt.Fprintf(b, "  %s %s %s\n",
			mark,
			r.styles.Criterion.Render(outcome.Name),
			r.styles.Points.Render(fmt.Sprintf("(%d/%d)", outcome.Points, outcome.Weight)),
		)
	}
	b.WriteString("\n")
}

func (r *ReportRenderer) renderMetric(b *strings.Builder, metric score.MetricOutcome) {
	mark := r.styles.Pass.Render(markPass)
	if metric.Remediation != "" {
		mark = r.styles.Fail.Render(markFail)
	}

	var measured []string
	for _, m := range metric.Measurements {
		measured = append(measured, fmt.Sprintf("%s=%d", m.Label, m.Value))
	}

	fmt.Fprintf(b, "%s\n  %s %s %s\n\n",
		r.styles.Catalog.Render(metric.Name),
		mark,
		r.styles.Measurement.Render(strings.Join(measured, ", ")),
		r.styles.Points.Render(fmt.Sprintf("(%d/%d)", metric.Points, metric.Max)),
	)
}

func (r *ReportRenderer) renderSuggestions(b *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	b.WriteString(r.styles.Catalog.Render("Suggestions"))
	b.WriteString("\n")
	for _, s := range suggestions {
		fmt.Fprintf(b, "  %s %s\n", r.styles.Dim.Render("-"), r.styles.Suggestion.Render(s))
	}
	b.WriteString("\n")
}

// renderScore writes the total, a progress bar for the percentage, and the
// letter grade.
func (r *ReportRenderer) renderScore(b *strings.Builder, report *score.Report) {
	pct := report.Percent()

	grade := r.styles.GradeGood.Render(report.Grade())
	if pct < 60 {
		grade = r.styles.GradeBad.Render(report.Grade())
	}

	fmt.Fprintf(b, "%s %s\n",
		r.styles.Catalog.Render("Score"),
		r.styles.ScoreValue.Render(fmt.Sprintf("%d/%d (%.1f%%) %s", report.Total, report.Max, pct, grade)),
	)
	fmt.Fprintf(b, "%s\n", r.scoreBar(pct))
}

// scoreBar renders the percentage as a bar: a lipgloss gradient bar from
// bubbles/progress when color is on, a plain ASCII bar otherwise.
func (r *ReportRenderer) scoreBar(pct float64) string {
	ratio := pct / 100

	if r.styles.ColorEnabled() {
		bar := progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(r.barWidth),
			progress.WithoutPercentage(),
		)
		return bar.ViewAs(ratio)
	}

	filled := int(ratio * float64(r.barWidth))
	if filled > r.barWidth {
		filled = r.barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", r.barWidth-filled) + "]"
}
