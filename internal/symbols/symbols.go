// Package symbols implements per-module symbol storage: string-keyed
// maps recording variable slots, variable types, variable struct
// backing, function return types, and struct field layouts.
package symbols

import "github.com/n0varider/nvylang/internal/token"

// Alloca is the opaque backend handle for a stack-allocated variable
// slot, as returned by backend.Builder.CreateVariable.
type Alloca any

// Field is one member of a struct's field layout: its declared type and
// its position within the struct (used to compute a field address).
// StructName is set when Type is USERTYPE_T, naming the nested struct so
// member chains can keep resolving past this field.
type Field struct {
	Name       string
	Type       token.NodeType
	Index      int
	StructName string
}

// StructLayout is the ordered field list of a USERTYPE_T symbol.
type StructLayout struct {
	Name   string
	Fields []Field
}

func (s *StructLayout) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Table is one module's symbol storage. The alloca and struct maps are
// write-once per name: StoreAlloca and StoreStruct return false on
// redeclaration. The other maps are overwritten on each store.
type Table struct {
	allocas      map[string]Alloca
	varTypes     map[string]token.NodeType
	varStruct    map[string]string
	varArrayElem map[string]token.NodeType
	funTypes     map[string]token.NodeType
	funHandle    map[string]any
	structs      map[string]*StructLayout
}

func New() *Table {
	return &Table{
		allocas:      make(map[string]Alloca),
		varTypes:     make(map[string]token.NodeType),
		varStruct:    make(map[string]string),
		varArrayElem: make(map[string]token.NodeType),
		funTypes:     make(map[string]token.NodeType),
		funHandle:    make(map[string]any),
		structs:      make(map[string]*StructLayout),
	}
}

// GetAlloca looks up a variable's backend slot. A missing key returns
// (nil, false); callers emit a ResolveError on the false case.
func (t *Table) GetAlloca(name string) (Alloca, bool) {
	a, ok := t.allocas[name]
	return a, ok
}

// StoreAlloca records name's slot. Returns false if name is already
// declared in this table (redeclaration in the same scope).
func (t *Table) StoreAlloca(name string, a Alloca) bool {
	if _, exists := t.allocas[name]; exists {
		return false
	}
	t.allocas[name] = a
	return true
}

func (t *Table) GetVarType(name string) (token.NodeType, bool) {
	ty, ok := t.varTypes[name]
	if !ok {
		return token.INVALID, false
	}
	return ty, true
}

func (t *Table) StoreVarType(name string, ty token.NodeType) {
	t.varTypes[name] = ty
}

// GetVarStruct returns the concrete struct name backing a USERTYPE_T
// variable, or ("", false) if name isn't a struct-typed variable.
func (t *Table) GetVarStruct(name string) (string, bool) {
	s, ok := t.varStruct[name]
	return s, ok
}

func (t *Table) StoreVarStruct(name, structName string) {
	t.varStruct[name] = structName
}

// GetVarArrayElem returns the element type backing an array-typed
// variable, or (INVALID, false) if name isn't an array.
func (t *Table) GetVarArrayElem(name string) (token.NodeType, bool) {
	ty, ok := t.varArrayElem[name]
	if !ok {
		return token.INVALID, false
	}
	return ty, true
}

func (t *Table) StoreVarArrayElem(name string, elem token.NodeType) {
	t.varArrayElem[name] = elem
}

func (t *Table) GetFunType(name string) (token.NodeType, bool) {
	ty, ok := t.funTypes[name]
	if !ok {
		return token.INVALID, false
	}
	return ty, true
}

func (t *Table) StoreFunType(name string, ty token.NodeType) {
	t.funTypes[name] = ty
}

func (t *Table) GetFunHandle(name string) (any, bool) {
	h, ok := t.funHandle[name]
	return h, ok
}

func (t *Table) StoreFunHandle(name string, h any) {
	t.funHandle[name] = h
}

func (t *Table) GetStruct(name string) (*StructLayout, bool) {
	s, ok := t.structs[name]
	return s, ok
}

func (t *Table) StoreStruct(layout *StructLayout) bool {
	if _, exists := t.structs[layout.Name]; exists {
		return false
	}
	t.structs[layout.Name] = layout
	return true
}
