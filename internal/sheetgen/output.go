package sheetgen

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the report format. Unknown values fall
// back to the summary.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputFull:
		return OutputFull
	case OutputJSON:
		return OutputJSON
	default:
		return OutputSummary
	}
}

// WriteOutput writes the generation result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(result)
		verbose.PrintWarnings(result)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}
