// Package parser implements a recursive-descent / precedence-climbing
// parser: it consumes the token graph produced by the lexer and
// pre-parse rewriter and produces an ordered sequence of owned
// top-level AST nodes.
package parser

import (
	"fmt"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/errors"
	"github.com/n0varider/nvylang/internal/token"
)

// startSymbols is the set of NodeTypes that begin a top-level
// statement, used both for top-level dispatch and to terminate an
// un-enclosed expression slice.
var startSymbols = map[token.NodeType]struct{}{
	token.VARDEF:    {},
	token.FUNCTION:  {},
	token.IF:        {},
	token.ELSE:      {},
	token.FORLOOP:   {},
	token.WHILELOOP: {},
	token.NATIVE:    {},
	token.PUBLIC:    {},
	token.PRIVATE:   {},
	token.FINAL:     {},
	token.CONSTANT:  {},
	token.STRUCT:    {},
}

func isStartSymbol(t token.NodeType) bool {
	_, ok := startSymbols[t]
	return ok
}

// Parser walks the token graph by handle: every parse* function takes
// the handle to start from and returns the next handle to resume from,
// operating directly on the arena rather than a buffered token slice.
type Parser struct {
	g      *token.Graph
	file   string
	source string
}

func New(g *token.Graph, file, source string) *Parser {
	return &Parser{g: g, file: file, source: source}
}

func (p *Parser) tok(h int) token.Token { return p.g.At(h) }

func (p *Parser) errorf(h int, format string, args ...any) error {
	return errors.NewParseError(p.tok(h).Pos, fmt.Sprintf(format, args...), p.source, p.file)
}

// expect reports an error unless the token at h has type t. On success
// it returns the handle of the token after h; on error it returns h
// itself together with the error.
func (p *Parser) expect(h int, t token.NodeType) (int, error) {
	if p.tok(h).Type != t {
		return h, p.errorf(h, "expected %s, got %s", t, p.tok(h).Type)
	}
	return p.g.Next(h), nil
}

// Parse consumes the whole graph (from just after PROGRAM) and returns
// the ordered top-level AST nodes.
func (p *Parser) Parse() ([]*ast.Node, error) {
	var out []*ast.Node
	cur := p.g.Next(p.g.Head())
	for cur != p.g.Tail() {
		node, next, err := p.parseStatement(cur)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
		if next <= cur && next != p.g.Tail() {
			// Defensive: never allowed to stall: a statement parser must
			// always make forward progress.
			next = p.g.Next(cur)
		}
		cur = next
	}
	return out, nil
}
