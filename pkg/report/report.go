// Package report formats positioned error messages against source text.
//
// Every token carries an absolute byte offset; the reporter converts the
// offset back into a 1-based line number and a column, and renders the
// offending line with a caret:
//
//	Error at line 1:
//	x = 1 + ;
//	        ^
//	Expected IDENTIFIER, NUMBER, STRING, BOOLEAN, FLOAT, got SEMICOLON instead in position 8
//
// Lexical, syntactic, and runtime errors all go through this one format.
package report

import (
	"fmt"
	"strings"

	"github.com/culebra-lang/culebra/pkg/lexer"
)

// Reporter renders errors with source context. It must be constructed
// with the same text the lexer scanned, since token positions are byte
// offsets into that text.
type Reporter struct {
	source string
	lines  []string
}

// New creates a reporter for the given source text.
func New(source string) *Reporter {
	return &Reporter{
		source: source,
		lines:  strings.Split(source, "\n"),
	}
}

// Report formats an error at the token's position: a header with the
// 1-based line number, the full source line, a caret under the offending
// column, and the message.
func (r *Reporter) Report(tok lexer.Token, message string) string {
	line, column := r.locate(tok.Pos)

	errorLine := ""
	if line-1 < len(r.lines) {
		errorLine = r.lines[line-1]
	}
	if column > len(errorLine) {
		column = len(errorLine)
	}

	return fmt.Sprintf("Error at line %d:\n%s\n%s^\n%s",
		line, errorLine, strings.Repeat(" ", column), message)
}

// locate converts an absolute byte offset into a 1-based line number and
// a 0-based column within that line. Offsets at or past the end of the
// source land on the last line.
func (r *Reporter) locate(pos int) (int, int) {
	if pos > len(r.source) {
		pos = len(r.source)
	}

	line := 1
	column := pos
	for i := 0; i < pos && i < len(r.source); i++ {
		if r.source[i] == '\n' {
			line++
			column = pos - (i + 1)
		}
	}

	return line, column
}
