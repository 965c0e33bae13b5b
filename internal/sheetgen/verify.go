package sheetgen

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// maxVerifyIssues bounds the issues reported for one file.
const maxVerifyIssues = 100

// Verify parses rendered CSS and returns an issue for every grammar error.
// Rendering trusts its input, so values taken verbatim from sources can
// still produce text a browser would reject.
func Verify(filename, text string) []Issue {
	lines := strings.Split(text, "\n")
	parser := css.NewParser(parse.NewInputString(text), false)

	var issues []Issue
	for {
		gt, _, _ := parser.Next()
		if gt != css.ErrorGrammar {
			continue
		}

		err := parser.Err()
		if err == nil || errors.Is(err, io.EOF) {
			return issues
		}
		issues = append(issues, newVerifyIssue(filename, err, lines))

		// A lexer error is not recoverable.
		var perr *parse.Error
		if !errors.As(err, &perr) || len(issues) >= maxVerifyIssues {
			return issues
		}
	}
}

func newVerifyIssue(filename string, err error, lines []string) Issue {
	issue := Issue{
		FromLinter: verifyLinter,
		Text:       err.Error(),
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: filename},
	}

	var perr *parse.Error
	if errors.As(err, &perr) {
		issue.Text = perr.Message
		issue.Pos.Line = perr.Line
		issue.Pos.Column = perr.Column
		if perr.Line >= 1 && perr.Line <= len(lines) {
			issue.SourceLines = []string{lines[perr.Line-1]}
		}
	}
	return issue
}
