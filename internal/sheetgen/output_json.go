package sheetgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Outputs   []string    `json:"outputs"`
	Issues    []JSONIssue `json:"issues"`
	Errors    []string    `json:"errors"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	SourcesFound     int `json:"sources_found"`
	SourcesSkipped   int `json:"sources_skipped"`
	SourcesRendered  int `json:"sources_rendered"`
	SourcesFailed    int `json:"sources_failed"`
	Rules            int `json:"rules"`
	Keyframes        int `json:"keyframes"`
	Variables        int `json:"variables"`
	ClassesGenerated int `json:"classes_generated"`
	TotalIssues      int `json:"total_issues"`
	TruncatedIssues  int `json:"truncated_issues"`
}

// JSONStats contains declaration statistics
type JSONStats struct {
	Declarations    int            `json:"declarations"`
	ByCategory      map[string]int `json:"by_category"`
	VarReferences   int            `json:"var_references"`
	CalcExpressions int            `json:"calc_expressions"`
}

// JSONIssue represents a single verification issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	errs := make([]string, len(result.Errors))
	for i, err := range result.Errors {
		errs[i] = err.Error()
	}

	byCategory := make(map[string]int, len(result.Stats.ByCategory))
	for cat, n := range result.Stats.ByCategory {
		byCategory[string(cat)] = n
	}

	outputs := result.OutputFiles
	if outputs == nil {
		outputs = []string{}
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			SourcesFound:     result.SourcesFound,
			SourcesSkipped:   result.SourcesSkipped,
			SourcesRendered:  result.SourcesRendered,
			SourcesFailed:    len(result.Errors),
			Rules:            result.RulesRendered,
			Keyframes:        result.KeyframesRendered,
			Variables:        result.VariablesDefined,
			ClassesGenerated: result.ClassesGenerated,
			TotalIssues:      len(result.Issues),
			TruncatedIssues:  result.TruncatedIssues,
		},
		Stats: JSONStats{
			Declarations:    result.Stats.Total,
			ByCategory:      byCategory,
			VarReferences:   result.Stats.VarReferences,
			CalcExpressions: result.Stats.CalcExpression,
		},
		Outputs:  outputs,
		Issues:   issues,
		Errors:   errs,
		Warnings: warnings,
	}
}
