package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat   = "format"
	FieldColor    = "color"
	FieldMinScore = "min_score"
	FieldConfig   = "config"

	// Scoring fields.
	FieldCriterion   = "criterion"
	FieldCatalog     = "catalog"
	FieldScore       = "score"
	FieldMaxScore    = "max_score"
	FieldPercent     = "percent"
	FieldGrade       = "grade"
	FieldSuggestions = "suggestions"
	FieldLines       = "lines"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
