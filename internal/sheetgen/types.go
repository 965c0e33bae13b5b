// Package sheetgen renders declarative YAML stylesheet sources to CSS files
// with the cssbuild library, and generates Go identifier constants for the
// classes, custom properties and animations they declare.
package sheetgen

import "go.uber.org/zap"

// Config holds generator configuration
type Config struct {
	SourceDir     string      // "web/styles"
	OutputDir     string      // "web/static/css"
	PackageName   string      // "ui", package of the generated Go file
	Includes      []string    // ["**/*.css.yaml"]
	GoFile        string      // "styles_gen.go" under OutputDir; empty disables
	Bundle        string      // "app.css" merges every source; empty writes one file per source
	Verify        bool        // Parse rendered CSS and report syntax problems
	MaxSameIssues int         // 0 = unlimited
	Logger        *zap.Logger // nil logs nothing
}

// Result contains generation stats
type Result struct {
	SourcesFound      int
	SourcesSkipped    int // gitignored
	SourcesRendered   int
	RulesRendered     int
	KeyframesRendered int
	VariablesDefined  int
	ClassesGenerated  int
	OutputFiles       []string
	Issues            []Issue
	TruncatedIssues   int
	Stats             DeclarationStats
	Warnings          []string
	Errors            []error // per-source failures, also summarized in Warnings
}

// HasErrors reports whether any source failed or verification found errors.
func (r *Result) HasErrors() bool {
	if len(r.Errors) > 0 {
		return true
	}
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for organizing CSS properties
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryTokens     PropertyCategory = "Tokens"
	CategoryInternal   PropertyCategory = "Internal"
)

// DeclarationStats counts rendered declarations.
type DeclarationStats struct {
	Total          int
	ByCategory     map[PropertyCategory]int
	VarReferences  int // values using var(--...)
	CalcExpression int // values using calc(...)
}

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputSummary shows counts, output files and problems (default)
	OutputSummary OutputFormat = "summary"
	// OutputFull adds declaration statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
