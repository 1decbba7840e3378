// Package backend declares the IR emitter's only dependency: an
// abstract module-builder interface. The concrete code-generation
// backend is an external collaborator; this package only fixes the
// contract the emitter drives, plus two struct/array addressing
// methods covering node kinds the grammar names but doesn't lower on
// its own.
package backend

import "github.com/n0varider/nvylang/internal/token"

// Mode selects which instruction family CreateBinOp/CreateComparison
// emit.
type Mode int

const (
	SignedInt Mode = iota
	UnsignedInt
	Float
)

// CastKind names one of the fixed numeric conversions in the
// cast-selection table.
type CastKind int

const (
	CastIdentity CastKind = iota
	CastI32ToI64
	CastIntToF32
	CastIntToF64
	CastFloatToI32
	CastFloatToI64
)

// Value is an opaque backend-side handle to an SSA value (a register, a
// constant, or a pointer returned by an alloca/address computation).
type Value any

// Function is an opaque backend-side handle to a declared function.
type Function any

// Block is an opaque backend-side handle to a basic block.
type Block any

// NativeType is an opaque backend-side handle to a primitive type
// (e.g. i32, f64, an opaque pointer).
type NativeType any

// Builder is the abstract module-builder interface the IR Emitter
// drives. A concrete implementation (a real code generator, or the
// in-module reference implementation in internal/backend/stub) need
// only satisfy this contract.
type Builder interface {
	// MakeFunction declares a function with the given signature and
	// returns its handle. Body-less when a native extern is declared:
	// no block is created for those.
	MakeFunction(name string, argNames []string, argTypes []token.NodeType, returnType token.NodeType, variadic bool) Function

	CreateBlock(fn Function, name string) Block
	SetInsertionPoint(b Block)

	// CreateVariable emits an alloca for a new stack slot of type typ
	// and returns that slot; the builder keeps no name lookup of its
	// own. Symbol Storage is the one that remembers the mapping from
	// name to the returned Value.
	CreateVariable(name string, typ token.NodeType) Value
	StoreToVariable(slot Value, value Value)
	CreateLoad(slot Value, typ token.NodeType) Value

	CreateBinOp(op token.NodeType, mode Mode, lhs, rhs Value) Value
	CreateComparison(op token.NodeType, mode Mode, lhs, rhs Value) Value
	CreateCast(kind CastKind, value Value) Value

	CreateRet(value Value)

	// CreateBr and CreateCondBr give IF/FORLOOP/WHILELOOP unconditional
	// and conditional jumps to lower to; without them the builder
	// contract only names straight-line ops.
	CreateBr(target Block)
	CreateCondBr(cond Value, thenBlock, elseBlock Block)

	// CreateCall emits a function call; FUNCTIONCALL is a dispatch-table
	// entry and arithmeticPrecedence reads a FUNCTIONCALL's recorded
	// return type, so the builder needs a call-emission operation too.
	CreateCall(fn Function, args []Value) Value

	ConstInt(typ token.NodeType, v int64) Value
	ConstFloat(typ token.NodeType, v float64) Value
	ConstString(s string) Value

	GetNativeType(typ token.NodeType) NativeType

	// FieldAddress computes the address of fieldName within the struct
	// value rooted at base.
	FieldAddress(base Value, structName, fieldName string) Value
	// ElementAddress computes the address of the index'th element of
	// elemType within the array value rooted at base.
	ElementAddress(base Value, elemType token.NodeType, index Value) Value
}
