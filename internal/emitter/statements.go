package emitter

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/token"
)

// compileStatement dispatches one body-level AST node: VARDEF,
// ASSIGN, RETURN, IF, FORLOOP, WHILELOOP, or a bare FUNCTIONCALL
// statement.
func (e *Emitter) compileStatement(n *ast.Node) error {
	switch n.Type {
	case token.VARDEF:
		return e.compileVardef(n)
	case token.ASSIGN:
		return e.compileAssign(n)
	case token.RETURN:
		return e.compileReturn(n)
	case token.IF:
		return e.compileConditional(n)
	case token.FORLOOP:
		return e.compileForLoop(n)
	case token.WHILELOOP:
		return e.compileWhileLoop(n)
	case token.FUNCTIONCALL:
		_, err := e.compileExpression(n)
		return err
	case token.ARRAY:
		// A bare array-creation statement (`int32[5];`) allocates and
		// discards: its slot is never named, so nothing goes into
		// Symbol Storage for later code to reference.
		e.b.CreateVariable("", token.ARRAY_TYPE)
		return nil
	default:
		return e.resolveErr(n.Pos, "unexpected statement node: %s", n.Type)
	}
}

// compileVardef allocates storage for a new local: the declared type
// is always derived from the RHS's arithmeticPrecedence first, then
// the RHS value is compiled — a single path covers both the plain
// literal/VARIABLE case and the arithmetic/logical promotion case.
func (e *Emitter) compileVardef(n *ast.Node) error {
	name := n.Data.AsString()
	rhs := n.Child(0)

	if rhs.Type == token.ARRAY {
		return e.compileArrayVardef(name, n.Pos, rhs)
	}

	ty := e.arithmeticPrecedence(rhs)
	value, err := e.compileExpression(rhs)
	if err != nil {
		return err
	}

	slot := e.b.CreateVariable(name, ty)
	if !e.syms.StoreAlloca(name, slot) {
		return e.resolveErr(n.Pos, "redeclaration of %q", name)
	}
	e.syms.StoreVarType(name, ty)
	if structName := e.structNameOf(rhs); structName != "" {
		e.syms.StoreVarStruct(name, structName)
	}

	e.b.StoreToVariable(slot, value)
	return nil
}

// compileArrayVardef allocates storage for a fixed-size array
// declaration (`let arr = int32[5];`). The slot itself is typed
// ARRAY_TYPE; the element type is recorded separately in Symbol
// Storage so later arr[i] reads/writes can resolve an ElementAddress.
func (e *Emitter) compileArrayVardef(name string, pos token.Position, arr *ast.Node) error {
	elem := arr.Data.AsType()

	slot := e.b.CreateVariable(name, token.ARRAY_TYPE)
	if !e.syms.StoreAlloca(name, slot) {
		return e.resolveErr(pos, "redeclaration of %q", name)
	}
	e.syms.StoreVarType(name, token.ARRAY_TYPE)
	e.syms.StoreVarArrayElem(name, elem)
	return nil
}

// structNameOf reports the concrete struct name backing rhs's value,
// when rhs is itself a struct-typed variable reference, so a
// `let b = a;` vardef keeps b's member chain resolvable.
func (e *Emitter) structNameOf(rhs *ast.Node) string {
	if rhs.Type != token.VARIABLE {
		return ""
	}
	name, _ := e.rootVariableName(rhs)
	s, _ := e.syms.GetVarStruct(name)
	return s
}

// compileAssign compiles an LHS/RHS assignment pair: LHS may be a
// plain variable, a pointer dereference, or a member chain.
func (e *Emitter) compileAssign(n *ast.Node) error {
	lhs := n.Child(0)
	rhs := n.Child(1)

	value, err := e.compileExpression(rhs)
	if err != nil {
		return err
	}

	switch lhs.Type {
	case token.VARIABLE:
		addr, _, err := e.resolveMemberAddress(lhs)
		if err != nil {
			return err
		}
		e.b.StoreToVariable(addr, value)
		return nil
	case token.PTRDEREF:
		ptrVal, err := e.compileExpression(lhs.Child(0))
		if err != nil {
			return err
		}
		e.b.StoreToVariable(ptrVal, value)
		return nil
	case token.ARRAY_ACCESS:
		addr, _, err := e.resolveElementAddress(lhs)
		if err != nil {
			return err
		}
		e.b.StoreToVariable(addr, value)
		return nil
	default:
		return e.resolveErr(lhs.Pos, "invalid assignment target: %s", lhs.Type)
	}
}

// compileReturn compiles child 0 (if present) and emits ret; a RETURN
// with no child is a void return.
func (e *Emitter) compileReturn(n *ast.Node) error {
	if n.Child(0) == nil {
		e.b.CreateRet(nil)
		return nil
	}
	val, err := e.compileExpression(n.Child(0))
	if err != nil {
		return err
	}
	e.b.CreateRet(val)
	return nil
}
