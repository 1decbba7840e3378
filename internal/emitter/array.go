package emitter

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/token"
)

// resolveElementAddress resolves an ARRAY_ACCESS node's element
// address: the root variable's recorded element type and backend slot
// drive Builder.ElementAddress, the same way resolveMemberAddress
// drives FieldAddress for a struct member chain.
func (e *Emitter) resolveElementAddress(n *ast.Node) (backend.Value, token.NodeType, error) {
	name := n.Child(0).Data.AsString()

	slot, ok := e.syms.GetAlloca(name)
	if !ok {
		return nil, token.INVALID, e.resolveErr(n.Pos, "undefined variable %q", name)
	}
	elemType, ok := e.syms.GetVarArrayElem(name)
	if !ok {
		return nil, token.INVALID, e.resolveErr(n.Pos, "%q is not an array", name)
	}

	index, err := e.compileExpression(n.Child(1).Child(0))
	if err != nil {
		return nil, token.INVALID, err
	}

	return e.b.ElementAddress(slot, elemType, index), elemType, nil
}

// resolveElementType mirrors resolveElementAddress's element-type
// lookup without driving the backend, for arithmeticPrecedence's
// lookups (which must never emit IR of their own).
func (e *Emitter) resolveElementType(n *ast.Node) (token.NodeType, error) {
	name := n.Child(0).Data.AsString()
	elemType, ok := e.syms.GetVarArrayElem(name)
	if !ok {
		return token.INVALID, e.resolveErr(n.Pos, "%q is not an array", name)
	}
	return elemType, nil
}
