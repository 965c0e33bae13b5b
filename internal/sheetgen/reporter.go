package sheetgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReportConfig controls report rendering
type ReportConfig struct {
	UseColors        bool // force colors; otherwise auto-detected
	PrintIssuedLines bool
	PrintLinterName  bool
}

// Reporter prints generation results in golangci-lint style
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config ReportConfig) bool {
	if config.UseColors {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs verification issues sorted by file, line and column
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: file:line:col: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(styleLocation, location, r.useColors),
		issue.Text,
		renderStyle(styleMuted, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(styleWarning, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs source counts, written files and failures
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintf(r.w, "%s from %s (%s, %s)\n",
		pluralizeCount(result.RulesRendered, "rule", "rules"),
		pluralizeCount(result.SourcesRendered, "source", "sources"),
		pluralizeCount(result.KeyframesRendered, "keyframes block", "keyframes blocks"),
		pluralizeCount(result.VariablesDefined, "variable", "variables"))

	if result.SourcesSkipped > 0 {
		fmt.Fprintf(r.w, "%s\n", renderStyle(styleMuted,
			fmt.Sprintf("skipped %s (gitignored)", pluralizeCount(result.SourcesSkipped, "source", "sources")), r.useColors))
	}

	for _, path := range result.OutputFiles {
		fmt.Fprintf(r.w, "%s %s\n", renderStyle(styleWritten, "wrote", r.useColors), path)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, renderStyle(styleFailure,
			fmt.Sprintf("%s failed:", pluralizeCount(len(result.Errors), "source", "sources")), r.useColors))
		for _, err := range result.Errors {
			fmt.Fprintf(r.w, "• %s\n", err)
		}
	}

	if len(result.Issues) > 0 {
		fmt.Fprintln(r.w, "")
		if result.TruncatedIssues > 0 {
			fmt.Fprintf(r.w, "%s (%s truncated)\n",
				pluralizeCount(len(result.Issues), "issue", "issues"),
				pluralizeCount(result.TruncatedIssues, "issue", "issues"))
		} else {
			fmt.Fprintf(r.w, "%s\n", pluralizeCount(len(result.Issues), "issue", "issues"))
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
