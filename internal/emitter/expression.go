package emitter

import (
	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/token"
)

// comparisonOps is the set of binary operators CreateComparison (not
// CreateBinOp) handles.
var comparisonOps = map[token.NodeType]bool{
	token.LT: true, token.LTE: true, token.GT: true, token.GTE: true,
	token.EQ: true, token.NEQ: true,
}

// binaryOps is the set of node types compileExpression treats as a
// two-operand arithmetic/logical/bitwise operator (the ones left over
// after unary remapping in the parser: PTRDEREF, FINDADDRESS,
// SWITCHSIGN, NOT, BITNEGATE are unary even though some share a token
// with a binary operator before remapping).
var binaryOps = map[token.NodeType]bool{
	token.ADD: true, token.SUB: true, token.MUL: true, token.DIV: true, token.MODULO: true,
	token.BITAND: true, token.BITOR: true, token.BITXOR: true,
	token.ARITHLEFTSHIFT: true, token.ARITHRIGHTSHIFT: true, token.LOGICRIGHTSHIFT: true,
	token.LOGICAND: true, token.LOGICOR: true, token.LOGICXOR: true,
	token.LT: true, token.LTE: true, token.GT: true, token.GTE: true, token.EQ: true, token.NEQ: true,
}

// compileExpression recursively walks an expression subtree.
func (e *Emitter) compileExpression(n *ast.Node) (backend.Value, error) {
	switch {
	case token.IsLiteral(n.Type):
		return e.compileLiteral(n)

	case n.Type == token.VARIABLE:
		addr, ty, err := e.resolveMemberAddress(n)
		if err != nil {
			return nil, err
		}
		return e.b.CreateLoad(addr, ty), nil

	case n.Type == token.FUNCTIONCALL:
		return e.compileCall(n)

	case n.Type == token.ARRAY_ACCESS:
		addr, elemType, err := e.resolveElementAddress(n)
		if err != nil {
			return nil, err
		}
		return e.b.CreateLoad(addr, elemType), nil

	case n.Type == token.PTRDEREF:
		ptrVal, err := e.compileExpression(n.Child(0))
		if err != nil {
			return nil, err
		}
		elemType := e.arithmeticPrecedence(n.Child(0))
		return e.b.CreateLoad(ptrVal, elemType), nil

	case n.Type == token.FINDADDRESS:
		addr, _, err := e.resolveMemberAddress(n.Child(0))
		return addr, err

	case n.Type == token.SWITCHSIGN:
		return e.compileUnaryArith(n, token.SUB)

	case n.Type == token.NOT:
		operand, err := e.compileExpression(n.Child(0))
		if err != nil {
			return nil, err
		}
		zero := e.b.ConstInt(token.BOOL_T, 0)
		return e.b.CreateComparison(token.EQ, backend.SignedInt, operand, zero), nil

	case n.Type == token.BITNEGATE:
		operand, err := e.compileExpression(n.Child(0))
		if err != nil {
			return nil, err
		}
		ty := e.arithmeticPrecedence(n.Child(0))
		allOnes := e.b.ConstInt(ty, -1)
		return e.b.CreateBinOp(token.BITXOR, backend.SignedInt, operand, allOnes), nil

	case binaryOps[n.Type]:
		return e.compileBinary(n)

	default:
		return nil, e.resolveErr(n.Pos, "cannot emit node of type %s", n.Type)
	}
}

func (e *Emitter) compileLiteral(n *ast.Node) (backend.Value, error) {
	switch n.Type {
	case token.INT32:
		return e.b.ConstInt(token.INT32_T, n.Data.AsInt64Wide()), nil
	case token.INT64:
		return e.b.ConstInt(token.INT64_T, n.Data.AsInt64Wide()), nil
	case token.SHORT:
		return e.b.ConstInt(token.INT32_T, n.Data.AsInt64Wide()), nil
	case token.CHAR:
		return e.b.ConstInt(token.CHAR_T, n.Data.AsInt64Wide()), nil
	case token.FP32:
		return e.b.ConstFloat(token.FP32_T, float64(n.Data.AsFloat32())), nil
	case token.FP64:
		return e.b.ConstFloat(token.FP64_T, n.Data.AsFloat64()), nil
	case token.STR:
		return e.b.ConstString(n.Data.AsString()), nil
	default:
		return nil, e.resolveErr(n.Pos, "unknown literal kind %s", n.Type)
	}
}

// compileCall emits a direct call to a previously-compiled function,
// per the FUNCTIONCALL row the distilled dispatch table leaves
// otherwise unspecified (see backend.Builder.CreateCall's doc comment).
func (e *Emitter) compileCall(n *ast.Node) (backend.Value, error) {
	name := n.Data.AsString()
	handle, ok := e.syms.GetFunHandle(name)
	if !ok && e.ctx != nil {
		// Call sites keep the source name; declarations were mangled.
		if mangled, found := e.ctx.MangledName(name); found {
			handle, ok = e.syms.GetFunHandle(mangled)
		}
	}
	if !ok {
		return nil, e.resolveErr(n.Pos, "undefined function %q", name)
	}
	args := make([]backend.Value, 0, len(n.Children))
	for _, a := range n.Children {
		v, err := e.compileExpression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return e.b.CreateCall(handle, args), nil
}

func (e *Emitter) compileUnaryArith(n *ast.Node, op token.NodeType) (backend.Value, error) {
	operand, err := e.compileExpression(n.Child(0))
	if err != nil {
		return nil, err
	}
	ty := e.arithmeticPrecedence(n.Child(0))
	mode := modeOf(ty)
	zero := e.zeroOf(ty)
	return e.b.CreateBinOp(op, mode, zero, operand), nil
}

func (e *Emitter) zeroOf(ty token.NodeType) backend.Value {
	if ty == token.FP32_T || ty == token.FP64_T {
		return e.b.ConstFloat(ty, 0)
	}
	return e.b.ConstInt(ty, 0)
}

// compileBinary implements compileExpression's arithmetic/logical
// binary case: compile both operands, compute resultType via
// arithmeticPrecedence, cast each operand if needed, then emit the
// operation in the mode resultType dictates.
func (e *Emitter) compileBinary(n *ast.Node) (backend.Value, error) {
	lhsNode, rhsNode := n.Child(0), n.Child(1)

	lhsVal, err := e.compileExpression(lhsNode)
	if err != nil {
		return nil, err
	}
	rhsVal, err := e.compileExpression(rhsNode)
	if err != nil {
		return nil, err
	}

	resultType := e.arithmeticPrecedence(n)
	lhsType := e.arithmeticPrecedence(lhsNode)
	rhsType := e.arithmeticPrecedence(rhsNode)

	lhsVal = e.castIfNeeded(lhsVal, lhsType, resultType)
	rhsVal = e.castIfNeeded(rhsVal, rhsType, resultType)

	mode := modeOf(resultType)
	if comparisonOps[n.Type] {
		return e.b.CreateComparison(n.Type, mode, lhsVal, rhsVal), nil
	}
	return e.b.CreateBinOp(n.Type, mode, lhsVal, rhsVal), nil
}

func (e *Emitter) castIfNeeded(v backend.Value, from, to token.NodeType) backend.Value {
	kind := castKindFor(from, to)
	if kind == backend.CastIdentity {
		return v
	}
	return e.b.CreateCast(kind, v)
}

// castKindFor selects a numeric conversion for a promotion from one
// type to another. Any pairing outside the fixed table (e.g. CHAR_T
// promoted to INT32_T, or INT64_T to INT32_T) is treated as identity,
// so no conversion is emitted even where the native widths differ.
func castKindFor(from, to token.NodeType) backend.CastKind {
	if from == to {
		return backend.CastIdentity
	}
	switch {
	case from == token.INT32_T && to == token.INT64_T:
		return backend.CastI32ToI64
	case (from == token.INT32_T || from == token.INT64_T) && to == token.FP32_T:
		return backend.CastIntToF32
	case (from == token.INT32_T || from == token.INT64_T) && to == token.FP64_T:
		return backend.CastIntToF64
	case (from == token.FP32_T || from == token.FP64_T) && to == token.INT32_T:
		return backend.CastFloatToI32
	case (from == token.FP32_T || from == token.FP64_T) && to == token.INT64_T:
		return backend.CastFloatToI64
	default:
		return backend.CastIdentity
	}
}

// modeOf picks the backend.Mode an operation-selection row uses for a
// promoted type. The source language has no unsigned integer type kind,
// so Mode.UnsignedInt is never selected here — it remains part of the
// builder contract for backends that distinguish it themselves.
func modeOf(t token.NodeType) backend.Mode {
	if t == token.FP32_T || t == token.FP64_T {
		return backend.Float
	}
	return backend.SignedInt
}

// arithmeticPrecedence computes the promoted numeric type of an
// expression: a leaf literal's own type; a VARIABLE's recorded type; a
// FUNCTIONCALL's recorded return type; otherwise the numeric max (by
// rank) of every subnode's precedence, floored at INT32.
func (e *Emitter) arithmeticPrecedence(n *ast.Node) token.NodeType {
	switch {
	case token.IsLiteral(n.Type):
		if n.Type == token.STR {
			return token.STR_T
		}
		return token.HigherRank(n.Type, n.Type)

	case n.Type == token.VARIABLE:
		ty, err := e.resolveMemberType(n)
		if err != nil {
			return token.INT32_T
		}
		return ty

	case n.Type == token.FUNCTIONCALL:
		name := n.Data.AsString()
		ty, ok := e.syms.GetFunType(name)
		if !ok && e.ctx != nil {
			if mangled, found := e.ctx.MangledName(name); found {
				ty, ok = e.syms.GetFunType(mangled)
			}
		}
		if !ok {
			return token.INT32_T
		}
		return ty

	case n.Type == token.ARRAY:
		return token.ARRAY_TYPE

	case n.Type == token.ARRAY_ACCESS:
		ty, err := e.resolveElementType(n)
		if err != nil {
			return token.INT32_T
		}
		return ty

	case len(n.Children) == 0:
		return token.INT32_T

	default:
		result := token.NodeType(token.INT32_T)
		for _, c := range n.Children {
			result = token.HigherRank(result, e.arithmeticPrecedence(c))
		}
		return result
	}
}
