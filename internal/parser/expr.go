package parser

import (
	"strings"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/token"
)

// getExpression finds the boundary of an expression starting at h: if
// enclosed, the matching CLOSEPARENS (tracking nesting depth);
// otherwise the first ENDOFLINE or START symbol. Rather than copying
// the slice up front, parseExpression walks the live graph between h
// and the returned boundary directly.
func (p *Parser) getExpression(h int, enclosed bool) int {
	if enclosed {
		depth := 0
		cur := h
		for cur != p.g.Tail() {
			switch p.tok(cur).Type {
			case token.OPENPARENS:
				depth++
			case token.CLOSEPARENS:
				if depth == 0 {
					return cur
				}
				depth--
			}
			cur = p.g.Next(cur)
		}
		return cur
	}

	cur := h
	for cur != p.g.Tail() {
		t := p.tok(cur).Type
		if t == token.ENDOFLINE || isStartSymbol(t) {
			return cur
		}
		cur = p.g.Next(cur)
	}
	return cur
}

// exprParser holds the shunting-yard value/operator stacks for one
// parseExpression call.
type exprParser struct {
	values []*ast.Node
	ops    []token.NodeType
}

// parseExpression runs a precedence-climbing shunting-yard algorithm
// over the slice [h, stop), returning the single resulting AST
// expression node.
func (p *Parser) parseExpression(h, stop int) (*ast.Node, error) {
	ep := &exprParser{}
	expectUnary := true
	cur := h

	for cur != stop {
		t := p.tok(cur)

		switch {
		case t.Type == token.VARIABLE && strings.Contains(t.Value.AsString(), "."):
			ep.values = append(ep.values, buildMemberChain(t.Value.AsString(), t.Pos))
			expectUnary = false
			cur = p.g.Next(cur)

		case t.Type == token.FUNCTIONCALL:
			node, next, err := p.parseCall(cur)
			if err != nil {
				return nil, err
			}
			ep.values = append(ep.values, node)
			expectUnary = false
			cur = next

		case t.Type == token.ARRAY:
			node, next, err := p.parseArrayCreate(cur)
			if err != nil {
				return nil, err
			}
			ep.values = append(ep.values, node)
			expectUnary = false
			cur = next

		case t.Type == token.ARRAY_ACCESS:
			node, next, err := p.parseArrayAccess(cur)
			if err != nil {
				return nil, err
			}
			ep.values = append(ep.values, node)
			expectUnary = false
			cur = next

		case token.IsLiteral(t.Type) || t.Type == token.VARIABLE || t.Type == token.PTRDEREF || t.Type == token.FINDADDRESS:
			ep.values = append(ep.values, ast.New(t.Type, t.Value, t.Pos))
			expectUnary = false
			cur = p.g.Next(cur)

		case t.Type == token.OPENPARENS:
			ep.ops = append(ep.ops, token.OPENPARENS)
			expectUnary = true
			cur = p.g.Next(cur)

		case t.Type == token.CLOSEPARENS:
			if err := ep.foldUntilOpen(); err != nil {
				return nil, p.errorf(cur, "%v", err)
			}
			expectUnary = false
			cur = p.g.Next(cur)

		default:
			op := t.Type
			if expectUnary && token.IsPrefixCandidate(op) {
				op = token.RemapPrefix(op)
			}
			for len(ep.ops) > 0 {
				top := ep.ops[len(ep.ops)-1]
				if top == token.OPENPARENS || token.Precedence(top) < token.Precedence(op) {
					break
				}
				if err := ep.foldOne(t.Pos); err != nil {
					return nil, p.errorf(cur, "%v", err)
				}
			}
			ep.ops = append(ep.ops, op)
			expectUnary = true
			cur = p.g.Next(cur)
		}
	}

	for len(ep.ops) > 0 {
		if err := ep.foldOne(p.tok(h).Pos); err != nil {
			return nil, p.errorf(h, "%v", err)
		}
	}

	if len(ep.values) != 1 {
		return nil, p.errorf(h, "malformed expression")
	}
	return ep.values[0], nil
}

// foldUntilOpen pops and folds operators until the matching OPENPARENS
// is found, then discards it.
func (ep *exprParser) foldUntilOpen() error {
	for len(ep.ops) > 0 {
		top := ep.ops[len(ep.ops)-1]
		if top == token.OPENPARENS {
			ep.ops = ep.ops[:len(ep.ops)-1]
			return nil
		}
		if err := ep.foldOne(token.Position{}); err != nil {
			return err
		}
	}
	return nil
}

// unaryOps is the set of operators that consume exactly one operand.
var unaryOps = map[token.NodeType]bool{
	token.PTRDEREF:    true,
	token.FINDADDRESS: true,
	token.SWITCHSIGN:  true,
	token.NOT:         true,
	token.BITNEGATE:   true,
}

func (ep *exprParser) foldOne(pos token.Position) error {
	n := len(ep.ops)
	op := ep.ops[n-1]
	ep.ops = ep.ops[:n-1]

	if unaryOps[op] {
		if len(ep.values) < 1 {
			return &notEnoughOperands{op: op}
		}
		operand := ep.values[len(ep.values)-1]
		ep.values = ep.values[:len(ep.values)-1]
		node := ast.New(op, token.NullValue(), pos)
		node.AddChild(operand)
		ep.values = append(ep.values, node)
		return nil
	}

	if len(ep.values) < 2 {
		return &notEnoughOperands{op: op}
	}
	rhs := ep.values[len(ep.values)-1]
	lhs := ep.values[len(ep.values)-2]
	ep.values = ep.values[:len(ep.values)-2]
	node := ast.New(op, token.NullValue(), pos)
	node.AddChild(lhs)
	node.AddChild(rhs)
	ep.values = append(ep.values, node)
	return nil
}

type notEnoughOperands struct{ op token.NodeType }

func (e *notEnoughOperands) Error() string {
	return "not enough operands for " + e.op.String()
}

// buildMemberChain turns a dotted VARIABLE literal ("a.b.c") into a
// nested VARIABLE/MEMBER/MEMBER/... chain.
func buildMemberChain(text string, pos token.Position) *ast.Node {
	parts := strings.Split(text, ".")
	root := ast.New(token.VARIABLE, token.StringValue(parts[0]), pos)
	cur := root
	for _, part := range parts[1:] {
		member := ast.New(token.MEMBER, token.StringValue(part), pos)
		cur.AddChild(member)
		cur = member
	}
	return root
}

// parseArrayCreate parses the rewriter's collapsed array-creation pair
// (`ARRAY ARRAY_SIZE`, the token-graph form of `TYPE[ N ]`) into an
// ARRAY AST node whose size child holds the literal or variable naming
// the element count.
func (p *Parser) parseArrayCreate(h int) (*ast.Node, int, error) {
	t := p.tok(h)
	node := ast.NewArray(t.Value.AsType(), t.Pos)

	sizeH := p.g.Next(h)
	sizeTok := p.tok(sizeH)
	if sizeTok.Type != token.ARRAY_SIZE {
		return nil, sizeH, p.errorf(sizeH, "expected array size after %s", t.Type)
	}
	node.Child(0).AddChild(arrayOperandNode(sizeTok))
	return node, p.g.Next(sizeH), nil
}

// parseArrayAccess parses the rewriter's collapsed array-access pair
// (`ARRAY_ACCESS ARRAY_INDEX`, the token-graph form of `NAME[ i ]`)
// into an ARRAY_ACCESS AST node whose index child holds the literal or
// variable indexing the array.
func (p *Parser) parseArrayAccess(h int) (*ast.Node, int, error) {
	t := p.tok(h)
	node := ast.NewArrayAccess(t.Value.AsString(), t.Pos)

	idxH := p.g.Next(h)
	idxTok := p.tok(idxH)
	if idxTok.Type != token.ARRAY_INDEX {
		return nil, idxH, p.errorf(idxH, "expected array index after %s", t.Type)
	}
	node.Child(1).AddChild(arrayOperandNode(idxTok))
	return node, p.g.Next(idxH), nil
}

// arrayOperandNode rebuilds the literal/variable leaf an ARRAY_SIZE or
// ARRAY_INDEX token stands in for. The rewriter retags the token's
// Type in place but keeps its original Value, so the leaf's Type is
// recovered from the Value's own kind rather than the token's.
func arrayOperandNode(t token.Token) *ast.Node {
	if t.Value.IsString() {
		return ast.New(token.VARIABLE, t.Value, t.Pos)
	}
	return ast.New(token.INT32, t.Value, t.Pos)
}

// parseCall parses a FUNCTIONCALL head and its parenthesised,
// comma-separated argument list, returning a FUNCTIONCALL AST node
// whose children are the argument expressions.
func (p *Parser) parseCall(h int) (*ast.Node, int, error) {
	name := p.tok(h).Value.AsString()
	node := ast.New(token.FUNCTIONCALL, token.StringValue(name), p.tok(h).Pos)

	cur, err := p.expect(p.g.Next(h), token.OPENPARENS)
	if err != nil {
		return nil, h, err
	}
	for p.tok(cur).Type != token.CLOSEPARENS {
		argStop := findArgBoundary(p.g, cur, p.g.Tail())
		argNode, err := p.parseExpression(cur, argStop)
		if err != nil {
			return nil, h, err
		}
		node.AddChild(argNode)
		cur = argStop
		if p.tok(cur).Type == token.COMMADELIMIT {
			cur = p.g.Next(cur)
		}
	}
	cur = p.g.Next(cur) // consume CLOSEPARENS
	return node, cur, nil
}

// findArgBoundary scans forward from h to the next COMMADELIMIT or
// CLOSEPARENS at paren-depth 0, bounding a single call argument.
func findArgBoundary(g *token.Graph, h, limit int) int {
	depth := 0
	cur := h
	for cur != g.Tail() && cur != limit {
		t := g.At(cur).Type
		switch t {
		case token.OPENPARENS:
			depth++
		case token.CLOSEPARENS:
			if depth == 0 {
				return cur
			}
			depth--
		case token.COMMADELIMIT:
			if depth == 0 {
				return cur
			}
		}
		cur = g.Next(cur)
	}
	return cur
}
