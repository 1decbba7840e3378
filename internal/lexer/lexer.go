// Package lexer converts lines of source text into a token graph
// headed by PROGRAM and terminated by ENDOFSTREAM. The lexer is a
// pure function of its input: a local mutable cursor only, no shared
// state.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/n0varider/nvylang/internal/errors"
	"github.com/n0varider/nvylang/internal/source"
	"github.com/n0varider/nvylang/internal/token"
)

// Lexer scans an ordered sequence of source lines into a token.Graph.
type Lexer struct {
	lines []string
	file  string
}

// New creates a Lexer over the lines supplied by r.
func New(r source.Reader, file string) (*Lexer, error) {
	lines, err := r.ReadLines()
	if err != nil {
		return nil, err
	}
	return &Lexer{lines: lines, file: file}, nil
}

// Lex scans every line and returns the resulting token graph. On the
// first invalid numeric literal or unterminated string it returns a
// *errors.CompilerError (Kind() == KindLex) and aborts immediately.
func (l *Lexer) Lex() (*token.Graph, error) {
	g := token.NewGraph()
	for lineNo, line := range l.lines {
		if err := l.scanLine(g, line, lineNo+1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (l *Lexer) err(line, col int, msg string) error {
	pos := token.Position{Line: line, Column: col, Offset: 0}
	src := strings.Join(l.lines, "\n")
	return errors.NewLexError(pos, msg, src, l.file)
}

func (l *Lexer) scanLine(g *token.Graph, line string, lineNo int) error {
	i := 0
	n := len(line)
	for i < n {
		c := line[i]

		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		col := i + 1

		switch {
		case c == '"':
			j := i + 1
			for j < n && line[j] != '"' {
				if line[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			if j >= n {
				return l.err(lineNo, col, "unterminated string literal")
			}
			lit := line[i : j+1]
			g.Append(token.STR, token.StringValue(lit), token.Position{Line: lineNo, Column: col})
			i = j + 1

		case c == '\'':
			j := i + 1
			for j < n && line[j] != '\'' {
				if line[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			if j >= n {
				return l.err(lineNo, col, "unterminated char literal")
			}
			lit := line[i : j+1]
			g.Append(token.CHAR, token.StringValue(lit), token.Position{Line: lineNo, Column: col})
			i = j + 1

		case isSymbolStart(c):
			typ, width := l.classifySymbol(line, i)
			g.Append(typ, token.NullValue(), token.Position{Line: lineNo, Column: col})
			i += width

		case isIdentStart(c) || isDigit(c):
			j := i
			for j < n && isIdentPart(line[j]) {
				j++
			}
			word := line[i:j]
			if typ, ok := keywords[word]; ok {
				pos := token.Position{Line: lineNo, Column: col}
				if typ == token.TYPE_SYMBOL {
					g.Append(token.TYPE_SYMBOL, token.TypeValue(typeSymbolKind[word]), pos)
				} else {
					g.Append(typ, token.NullValue(), pos)
				}
			} else if isNumericRun(word) {
				typ, v, perr := parseNumeric(word)
				if perr != nil {
					return l.err(lineNo, col, fmt.Sprintf("invalid number %q: %v", word, perr))
				}
				g.Append(typ, v, token.Position{Line: lineNo, Column: col})
			} else {
				g.Append(token.VARIABLE, token.StringValue(word), token.Position{Line: lineNo, Column: col})
			}
			i = j

		default:
			g.Append(token.VARIABLE, token.StringValue(string(c)), token.Position{Line: lineNo, Column: col})
			i++
		}
	}
	return nil
}

func isSymbolStart(c byte) bool {
	_, ok := symbols[c]
	return ok
}

// classifySymbol resolves multi-character operators (==, !=, <=, >=,
// &&, ||, <<, >>, >>>) that share a leading byte with a single-char
// symbol, returning the matched NodeType and the number of bytes
// consumed.
func (l *Lexer) classifySymbol(line string, i int) (token.NodeType, int) {
	c := line[i]
	next := byte(0)
	if i+1 < len(line) {
		next = line[i+1]
	}
	third := byte(0)
	if i+2 < len(line) {
		third = line[i+2]
	}

	switch c {
	case '=':
		if next == '=' {
			return token.EQ, 2
		}
	case '!':
		if next == '=' {
			return token.NEQ, 2
		}
	case '<':
		if next == '=' {
			return token.LTE, 2
		}
		if next == '<' {
			return token.ARITHLEFTSHIFT, 2
		}
	case '>':
		if next == '>' && third == '>' {
			return token.LOGICRIGHTSHIFT, 3
		}
		if next == '>' {
			return token.ARITHRIGHTSHIFT, 2
		}
		if next == '=' {
			return token.GTE, 2
		}
	case '&':
		if next == '&' {
			return token.LOGICAND, 2
		}
	case '|':
		if next == '|' {
			return token.LOGICOR, 2
		}
	case '^':
		if next == '^' {
			return token.LOGICXOR, 2
		}
	}
	return symbols[c], 1
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}

// isNumericRun reports whether word contains at least one digit and
// consists only of digit/float/suffix characters.
func isNumericRun(word string) bool {
	hasDigit := false
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case isDigit(c):
			hasDigit = true
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '_' ||
			c == 'F' || c == 'D' || c == 'L':
			// allowed separators/suffixes
		default:
			return false
		}
	}
	return hasDigit
}

// parseNumeric infers the literal's NodeType and parses its Value.
func parseNumeric(word string) (token.NodeType, token.Value, error) {
	clean := strings.ReplaceAll(word, "_", "")

	forceF32 := strings.HasSuffix(clean, "F")
	forceF64 := strings.HasSuffix(clean, "D")
	forceI64 := strings.HasSuffix(clean, "L")
	if forceF32 || forceF64 || forceI64 {
		clean = clean[:len(clean)-1]
	}

	isFloat := forceF32 || forceF64 ||
		strings.ContainsAny(clean, ".eE")

	if isFloat {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return token.INVALID, token.Value{}, err
		}
		if forceF32 {
			return token.FP32, token.Float32Value(float32(f)), nil
		}
		return token.FP64, token.Float64Value(f), nil
	}

	i, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return token.INVALID, token.Value{}, err
	}
	if forceI64 {
		return token.INT64, token.Int64Value(i), nil
	}
	if i >= -(1<<31) && i <= (1<<31)-1 {
		return token.INT32, token.Int32Value(int32(i)), nil
	}
	return token.INT64, token.Int64Value(i), nil
}
