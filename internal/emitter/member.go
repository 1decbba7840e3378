package emitter

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/token"
)

// rootVariableName returns the name at the root of a VARIABLE node,
// whether or not it carries a MEMBER chain.
func (e *Emitter) rootVariableName(n *ast.Node) (string, error) {
	if n.Type != token.VARIABLE {
		return "", e.resolveErr(n.Pos, "expected a variable, got %s", n.Type)
	}
	return n.Data.AsString(), nil
}

// resolveMemberAddress walks a VARIABLE node's MEMBER chain, emitting
// a FieldAddress for every link, and returns the final address plus
// its declared type. For a bare VARIABLE (no chain), the "address" is
// just its alloca slot.
func (e *Emitter) resolveMemberAddress(n *ast.Node) (backend.Value, token.NodeType, error) {
	name, err := e.rootVariableName(n)
	if err != nil {
		return nil, token.INVALID, err
	}

	slot, ok := e.syms.GetAlloca(name)
	if !ok {
		return nil, token.INVALID, e.resolveErr(n.Pos, "undefined variable %q", name)
	}
	curType, _ := e.syms.GetVarType(name)
	curStruct, _ := e.syms.GetVarStruct(name)

	addr := slot
	for member := n.Child(0); member != nil; member = member.Child(0) {
		if curStruct == "" {
			return nil, token.INVALID, e.resolveErr(member.Pos, "member access on non-struct value")
		}
		layout, ok := e.syms.GetStruct(curStruct)
		if !ok {
			return nil, token.INVALID, e.resolveErr(member.Pos, "unknown struct %q", curStruct)
		}
		fieldName := member.Data.AsString()
		field, ok := layout.FieldByName(fieldName)
		if !ok {
			return nil, token.INVALID, e.resolveErr(member.Pos, "struct %q has no field %q", curStruct, fieldName)
		}
		addr = e.b.FieldAddress(addr, curStruct, fieldName)
		curType = field.Type
		curStruct = field.StructName
	}

	return addr, curType, nil
}

// resolveMemberType mirrors resolveMemberAddress's field-chasing logic
// without driving the backend, for arithmeticPrecedence's lookups
// (which must never emit IR of their own).
func (e *Emitter) resolveMemberType(n *ast.Node) (token.NodeType, error) {
	name, err := e.rootVariableName(n)
	if err != nil {
		return token.INVALID, err
	}
	curType, _ := e.syms.GetVarType(name)
	curStruct, _ := e.syms.GetVarStruct(name)

	for member := n.Child(0); member != nil; member = member.Child(0) {
		if curStruct == "" {
			return token.INVALID, e.resolveErr(member.Pos, "member access on non-struct value")
		}
		layout, ok := e.syms.GetStruct(curStruct)
		if !ok {
			return token.INVALID, e.resolveErr(member.Pos, "unknown struct %q", curStruct)
		}
		field, ok := layout.FieldByName(member.Data.AsString())
		if !ok {
			return token.INVALID, e.resolveErr(member.Pos, "struct %q has no field %q", curStruct, member.Data.AsString())
		}
		curType = field.Type
		curStruct = field.StructName
	}
	return curType, nil
}
