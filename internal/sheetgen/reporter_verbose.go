package sheetgen

import (
	"fmt"
	"io"
	"strings"
)

// categoryOrder fixes the order categories are printed in.
var categoryOrder = []PropertyCategory{
	CategoryTokens, CategoryLayout, CategoryVisual, CategoryTypography, CategoryEffects, CategoryInternal,
}

// VerboseReporter prints declaration statistics and warnings
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{w: w, useColors: useColors}
}

// PrintStatistics outputs declaration counts per category
func (r *VerboseReporter) PrintStatistics(result *Result) {
	stats := result.Stats

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, renderStyle(styleLocation, "Declaration Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------")
	fmt.Fprintf(r.w, "Total Declarations:  %d\n", stats.Total)
	fmt.Fprintf(r.w, "Variable References: %d\n", stats.VarReferences)
	fmt.Fprintf(r.w, "Calc Expressions:    %d\n", stats.CalcExpression)
	fmt.Fprintf(r.w, "Classes Generated:   %d\n", result.ClassesGenerated)

	if stats.Total == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	for _, cat := range categoryOrder {
		n := stats.ByCategory[cat]
		if n == 0 {
			continue
		}
		pct := float64(n) / float64(stats.Total) * 100
		fmt.Fprintf(r.w, "%-11s %s %3d\n", cat, progressBar(pct), n)
	}
}

// PrintWarnings shows generator warnings
func (r *VerboseReporter) PrintWarnings(result *Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, renderStyle(styleWarning, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// progressBar renders a 20-cell bar followed by the percentage.
func progressBar(percentage float64) string {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + fmt.Sprintf("] %5.1f%%", percentage)
}
