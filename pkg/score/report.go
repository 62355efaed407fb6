package score

// Outcome is the result of evaluating one criterion against a document.
// Produced once per criterion per run; never mutated.
type Outcome struct {
	// Name is the criterion name.
	Name string `json:"name"`

	// Satisfied reports whether the check passed.
	Satisfied bool `json:"satisfied"`

	// Points is the score awarded: Weight when satisfied, 0 otherwise.
	Points int `json:"points"`

	// Weight is the maximum attainable score for this criterion.
	Weight int `json:"weight"`

	// Remediation is the suggestion text; set only when not satisfied.
	Remediation string `json:"remediation,omitempty"`
}

// Measurement is one labeled quantity observed by a metric.
type Measurement struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// MetricOutcome is the result of one structural metric. Unlike an Outcome it
// carries measured quantities, and its score comes from threshold buckets
// rather than a 0-or-weight split.
type MetricOutcome struct {
	// Name identifies the metric.
	Name string `json:"name"`

	// Measurements are the observed quantities, in a fixed order per metric.
	Measurements []Measurement `json:"measurements"`

	// Points is the bucketed score.
	Points int `json:"points"`

	// Max is the maximum attainable score for this metric.
	Max int `json:"max"`

	// Remediation is the suggestion text; set only when points fall short.
	Remediation string `json:"remediation,omitempty"`
}

// Report is the complete, immutable output of one analysis run.
type Report struct {
	// Sections holds the primary catalog outcomes in catalog order.
	Sections []Outcome `json:"sections"`

	// Extras holds the extra catalog outcomes in catalog order.
	Extras []Outcome `json:"extras"`

	// Length is the line-count metric outcome.
	Length MetricOutcome `json:"length"`

	// Formatting is the heading/code-block metric outcome.
	Formatting MetricOutcome `json:"formatting"`

	// Total is the sum of points over all outcomes and metrics.
	Total int `json:"total"`

	// Max is the constant maximum attainable score.
	Max int `json:"max"`

	// Suggestions lists remediation text for every unsatisfied criterion and
	// metric, in evaluation order: sections, length, formatting, extras.
	Suggestions []string `json:"suggestions"`
}

// Section returns the primary outcome with the given name.
func (r *Report) Section(name string) (Outcome, bool) {
	return findOutcome(r.Sections, name)
}

// Extra returns the extra outcome with the given name.
func (r *Report) Extra(name string) (Outcome, bool) {
	return findOutcome(r.Extras, name)
}

func findOutcome(outcomes []Outcome, name string) (Outcome, bool) {
	for _, o := range outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Percent returns the total score as a percentage of the maximum.
func (r *Report) Percent() float64 {
	if r.Max == 0 {
		return 0
	}
	return float64(r.Total) * 100 / float64(r.Max)
}

// Grade converts the percentage into a letter grade.
func (r *Report) Grade() string {
	switch pct := r.Percent(); {
	case pct >= 90:
		return "A"
	case pct >= 75:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 40:
		return "D"
	default:
		return "F"
	}
}
