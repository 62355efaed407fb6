package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/readmecheck/pkg/document"
)

// nLines builds a document with exactly n lines.
func nLines(n int) *document.Document {
	return document.New(strings.TrimSuffix(strings.Repeat("line\n", n), "\n"))
}

func TestLengthMetric(t *testing.T) {
	tests := []struct {
		name            string
		lines           int
		wantPoints      int
		wantRemediation string
	}{
		{name: "single line", lines: 1, wantPoints: 0, wantRemediation: "README is too short. Add more details."},
		{name: "just below minimum", lines: 9, wantPoints: 0, wantRemediation: "README is too short. Add more details."},
		{name: "minimum is inclusive", lines: 10, wantPoints: 10},
		{name: "comfortable length", lines: 80, wantPoints: 10},
		{name: "maximum is inclusive", lines: 200, wantPoints: 10},
		{name: "just above maximum", lines: 201, wantPoints: 5,
			wantRemediation: "README is very long. Consider splitting into sections or separate docs."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := LengthMetric(nLines(tt.lines))

			assert.Equal(t, MetricLength, outcome.Name)
			assert.Equal(t, tt.wantPoints, outcome.Points)
			assert.Equal(t, 10, outcome.Max)
			assert.Equal(t, tt.wantRemediation, outcome.Remediation)
			assert.Equal(t, []Measurement{{Label: "lines", Value: tt.lines}}, outcome.Measurements)
		})
	}
}

func TestFormattingMetric(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		wantPoints      int
		wantRemediation string
	}{
		{
			name:            "no headings",
			content:         "plain text",
			wantPoints:      0,
			wantRemediation: "Add more headings to organize your README.",
		},
		{
			name:            "two headings are not enough",
			content:         "# A\n## B\n```\nx\n```",
			wantPoints:      0,
			wantRemediation: "Add more headings to organize your README.",
		},
		{
			name:            "headings but no code",
			content:         "# A\n## B\n## C",
			wantPoints:      0,
			wantRemediation: "Add code blocks for examples or usage instructions.",
		},
		{
			name:       "headings and code",
			content:    "# A\n## B\n## C\n```\nx\n```",
			wantPoints: 10,
		},
		{
			name:            "unclosed fence does not count",
			content:         "# A\n## B\n## C\n```",
			wantPoints:      0,
			wantRemediation: "Add code blocks for examples or usage instructions.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := FormattingMetric(document.New(tt.content))

			assert.Equal(t, MetricFormatting, outcome.Name)
			assert.Equal(t, tt.wantPoints, outcome.Points)
			assert.Equal(t, 10, outcome.Max)
			assert.Equal(t, tt.wantRemediation, outcome.Remediation)
		})
	}
}
