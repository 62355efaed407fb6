package score

import "github.com/yaklabco/readmecheck/pkg/document"

// Evaluate applies one criterion to a document and returns its outcome.
//
// A check that panics is treated as not satisfied: the fault is recovered
// here and never propagates, so one pathological check cannot abort the
// evaluation of the remaining catalog. Unparseable content degrades the
// score instead of crashing the run.
func Evaluate(c Criterion, doc *document.Document) (outcome Outcome) {
	outcome = Outcome{
		Name:        c.Name,
		Weight:      c.Weight,
		Remediation: c.Remediation,
	}

	defer func() {
		if recover() != nil {
			outcome.Satisfied = false
			outcome.Points = 0
			outcome.Remediation = c.Remediation
		}
	}()

	if c.Check(doc) {
		outcome.Satisfied = true
		outcome.Points = c.Weight
		outcome.Remediation = ""
	}
	return outcome
}
