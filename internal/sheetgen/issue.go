package sheetgen

// Issue is a problem found in rendered CSS, in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssverify"
	Text        string   `json:"Text"`        // "unexpected token in declaration"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of CSS with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/static/css/app.css"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 5 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

const verifyLinter = "cssverify"

// limitIssues applies the max-same-issues constraint and reports how many
// issues were dropped.
func limitIssues(issues []Issue, maxSame int) ([]Issue, int) {
	if maxSame <= 0 {
		return issues, 0
	}

	counts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if counts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			counts[issue.Text]++
		}
	}
	return filtered, len(issues) - len(filtered)
}
