// Package score implements the README completeness engine: the criterion
// catalogs, the fail-closed evaluator, the structural metrics, and the
// aggregation into an immutable Report.
package score

import (
	"fmt"

	"github.com/yaklabco/readmecheck/pkg/document"
)

// Criterion is one named, weighted check against a document.
type Criterion struct {
	// Name uniquely identifies the criterion within its catalog.
	Name string

	// Weight is the number of points awarded when the check passes.
	Weight int

	// Check reports whether the document satisfies the criterion.
	// Checks are pure functions of the document; a panicking check is
	// treated as not satisfied by the evaluator.
	Check func(doc *document.Document) bool

	// Remediation is the suggestion shown when the check fails.
	Remediation string
}

// Catalog is a static, ordered set of criteria. Catalogs are validated at
// construction and never mutated afterwards.
type Catalog struct {
	name     string
	criteria []Criterion
}

// NewCatalog validates and builds a catalog. It rejects duplicate criterion
// names, non-positive weights, and missing checks, so that misconfigured
// catalogs fail at startup rather than during analysis.
func NewCatalog(name string, criteria []Criterion) (*Catalog, error) {
	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if c.Name == "" {
			return nil, fmt.Errorf("catalog %q: criterion with empty name", name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("catalog %q: duplicate criterion %q", name, c.Name)
		}
		seen[c.Name] = true

		if c.Weight <= 0 {
			return nil, fmt.Errorf("catalog %q: criterion %q has non-positive weight %d", name, c.Name, c.Weight)
		}
		if c.Check == nil {
			return nil, fmt.Errorf("catalog %q: criterion %q has no check", name, c.Name)
		}
	}

	return &Catalog{name: name, criteria: criteria}, nil
}

// MustCatalog builds a catalog and panics on validation failure.
// Used for the built-in catalogs constructed at package init.
func MustCatalog(name string, criteria []Criterion) *Catalog {
	catalog, err := NewCatalog(name, criteria)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Criteria returns the criteria in catalog order.
// Callers must not modify the returned slice.
func (c *Catalog) Criteria() []Criterion {
	return c.criteria
}

// Len returns the number of criteria in the catalog.
func (c *Catalog) Len() int {
	return len(c.criteria)
}

// MaxScore returns the sum of all criterion weights.
func (c *Catalog) MaxScore() int {
	total := 0
	for _, criterion := range c.criteria {
		total += criterion.Weight
	}
	return total
}
