package parser

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/token"
)

// synchronize advances from cur to the next safe resumption point: the
// token after an ENDOFLINE, or a top-level start symbol, whichever comes
// first. It never overshoots past the tail.
func (p *Parser) synchronize(cur int) int {
	for cur != p.g.Tail() {
		t := p.tok(cur).Type
		if t == token.ENDOFLINE {
			return p.g.Next(cur)
		}
		if isStartSymbol(t) {
			return cur
		}
		cur = p.g.Next(cur)
	}
	return cur
}

// ParseTolerant behaves like Parse but does not abort on the first
// malformed statement: it records the error and resynchronizes at the
// next statement boundary instead, so a single typo doesn't hide every
// other error in the unit. It exists for AST-inspection tooling only —
// nvylang build always uses Parse and stops on the first error, since a
// unit with any error cannot be emitted.
func (p *Parser) ParseTolerant() ([]*ast.Node, []error) {
	var out []*ast.Node
	var errs []error

	cur := p.g.Next(p.g.Head())
	for cur != p.g.Tail() {
		node, next, err := p.parseStatement(cur)
		if err != nil {
			errs = append(errs, err)
			next = p.synchronize(cur)
		}
		if node != nil {
			out = append(out, node)
		}
		if next <= cur && next != p.g.Tail() {
			next = p.g.Next(cur)
		}
		cur = next
	}
	return out, errs
}
