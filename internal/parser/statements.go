package parser

import (
	"strings"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/token"
)

// parseStatement dispatches on the current token's type.
func (p *Parser) parseStatement(cur int) (*ast.Node, int, error) {
	t := p.tok(cur)

	switch t.Type {
	case token.NATIVE:
		next := p.g.Next(cur)
		if p.tok(next).Type != token.FUNCTION {
			return nil, next, p.errorf(next, "expected func after native")
		}
		return p.parseFunction(next, true)

	case token.PUBLIC, token.PRIVATE, token.FINAL, token.CONSTANT, token.STATIC:
		// Modifiers are transparent to this grammar: they annotate the
		// declaration that follows without changing its shape.
		return p.parseStatement(p.g.Next(cur))

	case token.FUNCTION:
		return p.parseFunction(cur, false)

	case token.STRUCT:
		return p.parseStruct(cur)

	case token.VARDEF:
		return p.parseVardef(cur)

	case token.IF:
		return p.parseIf(cur)

	case token.FORLOOP:
		return p.parseForLoop(cur)

	case token.WHILELOOP:
		return p.parseWhileLoop(cur)

	case token.RETURN:
		return p.parseReturn(cur)

	case token.FUNCTIONCALL:
		return p.parseExprStatement(cur)

	case token.VARIABLE, token.MUL:
		if deref, nameTok, assignTok, ok := p.detectAssignHead(cur); ok {
			return p.parseAssign(cur, deref, nameTok, assignTok)
		}
		return nil, cur, p.errorf(cur, "unknown statement kind: %s", t.Type)

	case token.ARRAY:
		return p.parseArrayCreateStatement(cur)

	case token.ARRAY_ACCESS:
		if idxH, assignH, ok := p.detectArrayAssignHead(cur); ok {
			return p.parseArrayElementAssign(cur, idxH, assignH)
		}
		return nil, cur, p.errorf(cur, "unknown statement kind: %s", t.Type)

	default:
		return nil, cur, p.errorf(cur, "unknown statement kind: %s", t.Type)
	}
}

// parseFunction parses `func NAME ( [TYPE NAME, ...] ) -> TYPE { body }`.
// native functions have no body: the declaration ends at the next
// ENDOFLINE instead.
func (p *Parser) parseFunction(cur int, native bool) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	nameH := p.g.Next(cur)
	nameTok := p.tok(nameH)
	if nameTok.Type != token.FUNCTIONCALL && nameTok.Type != token.VARIABLE {
		return nil, nameH, p.errorf(nameH, "expected function name")
	}
	fn := ast.NewFunction(nameTok.Value.AsString(), pos)

	cur2, err := p.expect(p.g.Next(nameH), token.OPENPARENS)
	if err != nil {
		return nil, cur2, err
	}

	for p.tok(cur2).Type != token.CLOSEPARENS {
		kind, data, next, err := p.parseTypeSpec(cur2)
		if err != nil {
			return nil, cur2, err
		}
		argTok := p.tok(next)
		if argTok.Type != token.VARIABLE {
			return nil, next, p.errorf(next, "expected parameter name")
		}
		param := ast.New(token.VARIABLE, token.StringValue(argTok.Value.AsString()), argTok.Pos)
		param.AddChild(ast.New(kind, data, argTok.Pos))
		fn.Child(0).AddChild(param)

		cur2 = p.g.Next(next)
		if p.tok(cur2).Type == token.COMMADELIMIT {
			cur2 = p.g.Next(cur2)
		}
	}
	cur2 = p.g.Next(cur2) // consume CLOSEPARENS

	// "->" lexes as SUB then GT: three hops from CLOSEPARENS land on
	// the return-type token.
	cur2 = p.g.Next(cur2)
	cur2 = p.g.Next(cur2)
	retKind, retData, next, err := p.parseTypeSpec(cur2)
	if err != nil {
		return nil, cur2, err
	}
	fn.Child(1).AddChild(ast.New(retKind, retData, p.tok(cur2).Pos))
	cur2 = next

	if native {
		if p.tok(cur2).Type == token.ENDOFLINE {
			cur2 = p.g.Next(cur2)
		}
		fn.Child(2).AddChild(ast.New(token.NATIVE, token.NullValue(), pos))
		return fn, cur2, nil
	}

	cur2, err = p.expect(cur2, token.OPENBRACE)
	if err != nil {
		return nil, cur2, err
	}
	bodyNext, err := p.parseBodyNodes(cur2, fn.Child(2))
	if err != nil {
		return nil, bodyNext, err
	}
	return fn, bodyNext, nil
}

// parseBodyNodes parses statements until the matching CLOSEBRACE,
// routing each into parent via ast.AddBodyNode, and returns the handle
// just after that CLOSEBRACE. Each sub-parser already balances any
// braces of its own construct (IF/FORLOOP/WHILELOOP recurse into this
// same function), so a single straight-line scan for CLOSEBRACE at
// this nesting level is equivalent to a brace-depth counter without
// needing to track depth explicitly here.
func (p *Parser) parseBodyNodes(start int, parent *ast.Node) (int, error) {
	cur := start
	for p.tok(cur).Type != token.CLOSEBRACE {
		if cur == p.g.Tail() {
			return cur, p.errorf(cur, "unterminated block")
		}
		if p.tok(cur).Type == token.ENDOFLINE {
			cur = p.g.Next(cur)
			continue
		}
		stmt, next, err := p.parseStatement(cur)
		if err != nil {
			return cur, err
		}
		if stmt != nil {
			ast.AddBodyNode(parent, stmt)
		}
		if next <= cur {
			next = p.g.Next(cur)
		}
		cur = next
	}
	return p.g.Next(cur), nil
}

// parseVardef parses `let NAME = <expr>;`.
func (p *Parser) parseVardef(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	nameH := p.g.Next(cur)
	nameTok := p.tok(nameH)
	if nameTok.Type != token.VARIABLE {
		return nil, nameH, p.errorf(nameH, "expected variable name after let")
	}
	eq, err := p.expect(p.g.Next(nameH), token.ASSIGN)
	if err != nil {
		return nil, eq, err
	}
	stop := p.getExpression(eq, false)
	rhs, err := p.parseExpression(eq, stop)
	if err != nil {
		return nil, stop, err
	}
	node := ast.NewVarDef(nameTok.Value.AsString(), pos)
	node.AddChild(rhs)

	next := stop
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// detectAssignHead reports whether cur begins an assignment target
// (`NAME = ...` or `*NAME = ...`), returning whether the target is a
// pointer dereference, the handle of the name token, and the handle of
// the ASSIGN token.
func (p *Parser) detectAssignHead(cur int) (deref bool, nameH int, assignH int, ok bool) {
	c := cur
	if p.tok(c).Type == token.MUL {
		deref = true
		c = p.g.Next(c)
	}
	if p.tok(c).Type != token.VARIABLE {
		return false, 0, 0, false
	}
	next := p.g.Next(c)
	if p.tok(next).Type != token.ASSIGN {
		return false, 0, 0, false
	}
	return deref, c, next, true
}

// parseAssign parses `NAME = <expr>;` (or `*NAME = <expr>;` /
// `a.b = <expr>;`), building a VARIABLE/PTRDEREF/MEMBER-chain head and
// an ASSIGN node with children [LHS, RHS].
func (p *Parser) parseAssign(cur int, deref bool, nameH, assignH int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	nameTok := p.tok(nameH)
	name := nameTok.Value.AsString()

	var lhs *ast.Node
	switch {
	case strings.Contains(name, "."):
		lhs = buildMemberChain(name, nameTok.Pos)
	case deref:
		lhs = ast.New(token.PTRDEREF, token.NullValue(), pos)
		lhs.AddChild(ast.New(token.VARIABLE, token.StringValue(name), nameTok.Pos))
	default:
		lhs = ast.New(token.VARIABLE, token.StringValue(name), nameTok.Pos)
	}

	rhsStart := p.g.Next(assignH)
	stop := p.getExpression(rhsStart, false)
	rhs, err := p.parseExpression(rhsStart, stop)
	if err != nil {
		return nil, stop, err
	}

	node := ast.New(token.ASSIGN, token.NullValue(), pos)
	node.AddChild(lhs)
	node.AddChild(rhs)

	next := stop
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// parseArrayCreateStatement parses a bare array-creation expression
// used as a statement (`int32[5];`), discarding the resulting value —
// mirroring parseExprStatement's treatment of a bare function call.
func (p *Parser) parseArrayCreateStatement(cur int) (*ast.Node, int, error) {
	node, next, err := p.parseArrayCreate(cur)
	if err != nil {
		return nil, next, err
	}
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// detectArrayAssignHead reports whether cur begins an array-element
// assignment (`NAME[i] = ...`), returning the handles of the
// ARRAY_INDEX token and the ASSIGN token that follow the ARRAY_ACCESS
// head at cur.
func (p *Parser) detectArrayAssignHead(cur int) (idxH, assignH int, ok bool) {
	idxH = p.g.Next(cur)
	if p.tok(idxH).Type != token.ARRAY_INDEX {
		return 0, 0, false
	}
	assignH = p.g.Next(idxH)
	if p.tok(assignH).Type != token.ASSIGN {
		return 0, 0, false
	}
	return idxH, assignH, true
}

// parseArrayElementAssign parses `NAME[i] = <expr>;`, building an
// ARRAY_ACCESS LHS and an ASSIGN node with children [LHS, RHS].
func (p *Parser) parseArrayElementAssign(cur, idxH, assignH int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	lhs := ast.NewArrayAccess(p.tok(cur).Value.AsString(), pos)
	lhs.Child(1).AddChild(arrayOperandNode(p.tok(idxH)))

	rhsStart := p.g.Next(assignH)
	stop := p.getExpression(rhsStart, false)
	rhs, err := p.parseExpression(rhsStart, stop)
	if err != nil {
		return nil, stop, err
	}

	node := ast.New(token.ASSIGN, token.NullValue(), pos)
	node.AddChild(lhs)
	node.AddChild(rhs)

	next := stop
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// parseReturn parses the tail of `return [<expr>];`, wrapping it in a
// RETURN node. A bare `return;` is a void return with no child.
func (p *Parser) parseReturn(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	rhsStart := p.g.Next(cur)
	stop := p.getExpression(rhsStart, false)

	node := ast.NewReturn(pos)
	if rhsStart != stop {
		rhs, err := p.parseExpression(rhsStart, stop)
		if err != nil {
			return nil, stop, err
		}
		node.AddChild(rhs)
	}

	next := stop
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// parseExprStatement parses a bare function-call statement
// (`foo(a, b);`), used for calls made for their side effects.
func (p *Parser) parseExprStatement(cur int) (*ast.Node, int, error) {
	node, next, err := p.parseCall(cur)
	if err != nil {
		return nil, next, err
	}
	if p.tok(next).Type == token.ENDOFLINE {
		next = p.g.Next(next)
	}
	return node, next, nil
}

// parseIf parses `if ( <cond> ) { body } [else ( if ... | { body } )]`.
func (p *Parser) parseIf(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	openH, err := p.expect(p.g.Next(cur), token.OPENPARENS)
	if err != nil {
		return nil, openH, err
	}
	condStop := p.getExpression(openH, true)
	cond, err := p.parseExpression(openH, condStop)
	if err != nil {
		return nil, condStop, err
	}
	afterParen := p.g.Next(condStop)

	ifNode := ast.NewIf(pos)
	ifNode.Child(0).AddChild(cond)

	bodyStart, err := p.expect(afterParen, token.OPENBRACE)
	if err != nil {
		return nil, bodyStart, err
	}
	next, err := p.parseBodyNodes(bodyStart, ifNode.Child(1))
	if err != nil {
		return nil, next, err
	}

	if p.tok(next).Type == token.ELSE {
		afterElse := p.g.Next(next)
		if p.tok(afterElse).Type == token.IF {
			elseIf, next2, err := p.parseIf(afterElse)
			if err != nil {
				return nil, next2, err
			}
			ifNode.Child(2).AddChild(elseIf)
			next = next2
		} else {
			elseBrace, err := p.expect(afterElse, token.OPENBRACE)
			if err != nil {
				return nil, elseBrace, err
			}
			next2, err := p.parseBodyNodes(elseBrace, ifNode.Child(2))
			if err != nil {
				return nil, next2, err
			}
			next = next2
		}
	}

	return ifNode, next, nil
}

// boundExprInParens scans forward from h to the first ENDOFLINE or
// CLOSEPARENS at paren-depth 0, whichever comes first. Used for the
// for-loop iteration clause, which may or may not carry a trailing
// ENDOFLINE before the closing parenthesis.
func (p *Parser) boundExprInParens(h int) int {
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
		case token.ENDOFLINE:
			if depth == 0 {
				return cur
			}
		}
		cur = p.g.Next(cur)
	}
	return cur
}

// parseForLoop parses `for ( <vardef> ; <cond> ; <iter> ) { body }`,
// splitting at the ENDOFLINE delimiters inside the parentheses.
func (p *Parser) parseForLoop(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	openH, err := p.expect(p.g.Next(cur), token.OPENPARENS)
	if err != nil {
		return nil, openH, err
	}

	forNode := ast.NewForLoop(pos)

	def, afterDef, err := p.parseVardef(openH)
	if err != nil {
		return nil, afterDef, err
	}
	forNode.Child(0).AddChild(def)

	condStop := p.boundExprInParens(afterDef)
	cond, err := p.parseExpression(afterDef, condStop)
	if err != nil {
		return nil, condStop, err
	}
	forNode.Child(1).AddChild(cond)
	afterCond := condStop
	if p.tok(afterCond).Type == token.ENDOFLINE {
		afterCond = p.g.Next(afterCond)
	}

	iterStop := p.boundExprInParens(afterCond)
	iter, err := p.parseExpression(afterCond, iterStop)
	if err != nil {
		return nil, iterStop, err
	}
	forNode.Child(2).AddChild(iter)
	afterIter := iterStop
	if p.tok(afterIter).Type == token.ENDOFLINE {
		afterIter = p.g.Next(afterIter)
	}
	afterIter, err = p.expect(afterIter, token.CLOSEPARENS)
	if err != nil {
		return nil, afterIter, err
	}

	bodyStart, err := p.expect(afterIter, token.OPENBRACE)
	if err != nil {
		return nil, bodyStart, err
	}
	bodyNext, err := p.parseBodyNodes(bodyStart, forNode.Child(3))
	if err != nil {
		return nil, bodyNext, err
	}
	return forNode, bodyNext, nil
}

// parseWhileLoop parses `while ( <cond> ) { body }`.
func (p *Parser) parseWhileLoop(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	openH, err := p.expect(p.g.Next(cur), token.OPENPARENS)
	if err != nil {
		return nil, openH, err
	}
	condStop := p.getExpression(openH, true)
	cond, err := p.parseExpression(openH, condStop)
	if err != nil {
		return nil, condStop, err
	}
	afterParen := p.g.Next(condStop)

	whileNode := ast.NewWhileLoop(pos)
	whileNode.Child(0).AddChild(cond)

	bodyStart, err := p.expect(afterParen, token.OPENBRACE)
	if err != nil {
		return nil, bodyStart, err
	}
	bodyNext, err := p.parseBodyNodes(bodyStart, whileNode.Child(1))
	if err != nil {
		return nil, bodyNext, err
	}
	return whileNode, bodyNext, nil
}

// parseStruct parses `struct NAME { TYPE field, ... }`. Fields are
// appended directly as children (no body wrapper), matching VARDEF's
// layout rule.
func (p *Parser) parseStruct(cur int) (*ast.Node, int, error) {
	pos := p.tok(cur).Pos
	nameH := p.g.Next(cur)
	nameTok := p.tok(nameH)
	if nameTok.Type != token.VARIABLE {
		return nil, nameH, p.errorf(nameH, "expected struct name")
	}
	node := ast.New(token.STRUCT, token.StringValue(nameTok.Value.AsString()), pos)

	braceStart, err := p.expect(p.g.Next(nameH), token.OPENBRACE)
	if err != nil {
		return nil, braceStart, err
	}

	cur2 := braceStart
	for p.tok(cur2).Type != token.CLOSEBRACE {
		kind, data, next, err := p.parseTypeSpec(cur2)
		if err != nil {
			return nil, next, err
		}
		fieldTok := p.tok(next)
		if fieldTok.Type != token.VARIABLE {
			return nil, next, p.errorf(next, "expected field name")
		}
		field := ast.New(token.VARIABLE, token.StringValue(fieldTok.Value.AsString()), fieldTok.Pos)
		field.AddChild(ast.New(kind, data, fieldTok.Pos))
		ast.AddBodyNode(node, field)

		cur2 = p.g.Next(next)
		if p.tok(cur2).Type == token.COMMADELIMIT {
			cur2 = p.g.Next(cur2)
		}
	}
	cur2 = p.g.Next(cur2)
	if p.tok(cur2).Type == token.ENDOFLINE {
		cur2 = p.g.Next(cur2)
	}
	return node, cur2, nil
}
