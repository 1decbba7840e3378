// Package errors formats compiler diagnostics with source context,
// line/column information, and a caret pointing at the offending
// column. It implements four error kinds: LexError, ParseError,
// ResolveError, TypeError.
package errors

import (
	"fmt"
	"strings"

	"github.com/n0varider/nvylang/internal/token"
)

// Kind names one of the four diagnostic categories. Kept as a string
// rather than an enum because it is purely cosmetic (it only ever feeds
// into formatted output).
type Kind string

const (
	KindLex     Kind = "LexError"
	KindParse   Kind = "ParseError"
	KindResolve Kind = "ResolveError"
	KindType    Kind = "TypeError"
)

// Diagnostic is the shared shape of every compiler error. The CLI driver
// is the sole text sink: it renders Diagnostics via Format and writes
// them to stderr.
type Diagnostic interface {
	error
	Kind() Kind
	Pos() token.Position
	Format(color bool) string
}

// CompilerError is the concrete Diagnostic implementation shared by all
// four kinds.
type CompilerError struct {
	kind    Kind
	message string
	source  string
	file    string
	pos     token.Position
}

func newError(kind Kind, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{kind: kind, pos: pos, message: message, source: source, file: file}
}

func NewLexError(pos token.Position, message, source, file string) *CompilerError {
	return newError(KindLex, pos, message, source, file)
}

func NewParseError(pos token.Position, message, source, file string) *CompilerError {
	return newError(KindParse, pos, message, source, file)
}

func NewResolveError(pos token.Position, message, source, file string) *CompilerError {
	return newError(KindResolve, pos, message, source, file)
}

func NewTypeError(pos token.Position, message, source, file string) *CompilerError {
	return newError(KindType, pos, message, source, file)
}

func (e *CompilerError) Kind() Kind          { return e.kind }
func (e *CompilerError) Pos() token.Position { return e.pos }

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context. If color is
// true, ANSI escapes highlight the message and caret.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.file != "" {
		sb.WriteString(fmt.Sprintf("%s: %s:%d:%d\n", e.kind, e.file, e.pos.Line, e.pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s: line %d:%d\n", e.kind, e.pos.Line, e.pos.Column))
	}

	if line := e.sourceLine(e.pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.source == "" {
		return ""
	}
	lines := strings.Split(e.source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple diagnostics, one after another.
func FormatErrors(diags []Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(diags)))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
