package emitter

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/symbols"
	"github.com/n0varider/nvylang/internal/token"
)

// declType reads the NodeType a type-node stands for, and (for
// USERTYPE_T) the struct name it names: a dedicated child carries the
// resolved type kind in its own Type field.
func declType(typeNode *ast.Node) (token.NodeType, string) {
	if typeNode == nil {
		return token.VOID_T, ""
	}
	structName := ""
	if typeNode.Type == token.USERTYPE_T {
		structName = typeNode.Data.AsString()
	}
	return typeNode.Type, structName
}

// compileFunction compiles a FUNCTION node: its data string is the
// symbol, child 1 child 0 the return type, child 0 the parameter
// list, child 2 the body. A native function is recognised by a single
// NATIVE sentinel node in its body slot and is declared without a
// block.
func (e *Emitter) compileFunction(n *ast.Node) error {
	name := n.Data.AsString()
	paramsNode := n.Child(0)
	retNode := n.Child(1)
	bodyNode := n.Child(2)

	argNames := make([]string, 0, len(paramsNode.Children))
	argTypes := make([]token.NodeType, 0, len(paramsNode.Children))
	for _, p := range paramsNode.Children {
		pname := p.Data.AsString()
		ptype, pstruct := declType(p.Child(0))
		argNames = append(argNames, pname)
		argTypes = append(argTypes, ptype)
		e.syms.StoreVarType(pname, ptype)
		if pstruct != "" {
			e.syms.StoreVarStruct(pname, pstruct)
		}
	}
	retType, _ := declType(retNode.Child(0))

	native := len(bodyNode.Children) == 1 && bodyNode.Child(0).Type == token.NATIVE

	if _, exists := e.syms.GetFunHandle(name); exists {
		return e.resolveErr(n.Pos, "redeclaration of function %q", name)
	}
	fn := e.b.MakeFunction(name, argNames, argTypes, retType, false)
	e.syms.StoreFunType(name, retType)
	e.syms.StoreFunHandle(name, fn)

	if native {
		return nil
	}

	prevFn := e.curFn
	e.curFn = fn
	defer func() { e.curFn = prevFn }()

	entry := e.b.CreateBlock(fn, "entry")
	e.b.SetInsertionPoint(entry)

	for i, p := range paramsNode.Children {
		pname := p.Data.AsString()
		slot := e.b.CreateVariable(pname, argTypes[i])
		if !e.syms.StoreAlloca(pname, slot) {
			return e.resolveErr(p.Pos, "redeclaration of parameter %q", pname)
		}
	}

	for _, stmt := range bodyNode.Children {
		if err := e.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// compileStruct registers a struct's ordered field layout in Symbol
// Storage.
func (e *Emitter) compileStruct(n *ast.Node) error {
	name := n.Data.AsString()
	layout := &symbols.StructLayout{Name: name}
	for i, f := range n.Children {
		ftype, fstruct := declType(f.Child(0))
		layout.Fields = append(layout.Fields, symbols.Field{
			Name:       f.Data.AsString(),
			Type:       ftype,
			Index:      i,
			StructName: fstruct,
		})
	}
	if !e.syms.StoreStruct(layout) {
		return e.resolveErr(n.Pos, "redeclaration of struct %q", name)
	}
	return nil
}
