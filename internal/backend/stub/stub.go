// Package stub is a dependency-free reference implementation of
// backend.Builder. It exists purely to drive and verify the emitter
// contract: it prints a readable three-address SSA dump instead of
// talking to a real code generator, the same way a bytecode
// disassembler renders its own IR as text.
package stub

import (
	"fmt"
	"strings"

	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/token"
)

// nativeType maps a front-end type to its native representation:
// INT32/INT32_T→i32, INT64/INT64_T→i64, FP32/FP32_T→f32,
// FP64/FP64_T→f64, STR/STR_T→opaque pointer, CHAR→i8, BOOL→i1.
func nativeType(t token.NodeType) string {
	switch t {
	case token.INT32, token.INT32_T:
		return "i32"
	case token.INT64, token.INT64_T:
		return "i64"
	case token.FP32, token.FP32_T:
		return "f32"
	case token.FP64, token.FP64_T:
		return "f64"
	case token.STR, token.STR_T:
		return "ptr"
	case token.CHAR, token.CHAR_T:
		return "i8"
	case token.BOOL_T:
		return "i1"
	case token.VOID_T:
		return "void"
	case token.STAR, token.ARRAY_TYPE, token.USERTYPE_T:
		return "ptr"
	default:
		return "i32"
	}
}

type reg string

// function tracks one declared function's name and parameter layout so
// dumped blocks can print a readable signature.
type function struct {
	name       string
	argNames   []string
	argTypes   []token.NodeType
	returnType token.NodeType
	variadic   bool
	body       bool
	closed     bool
}

type block struct {
	fn    *function
	label string
}

// Builder is the reference backend.Builder implementation.
type Builder struct {
	moduleName string
	out        strings.Builder
	functions  []*function
	current    *block
	nextReg    int
}

func New(moduleName string) *Builder {
	return &Builder{moduleName: moduleName}
}

// String returns the accumulated textual IR dump.
func (b *Builder) String() string {
	b.closeCurrentFunction()
	return b.out.String()
}

// closeCurrentFunction emits the closing brace for the most recently
// opened function, if any block of it was ever created and it hasn't
// been closed yet. Functions may contain several blocks (one per
// IF/FORLOOP/WHILELOOP arm), so the brace can only be closed once the
// next function starts or the dump is read, not eagerly on every
// CreateRet.
func (b *Builder) closeCurrentFunction() {
	if b.current == nil {
		return
	}
	fn := b.current.fn
	if fn.body && !fn.closed {
		b.emit("}\n\n")
		fn.closed = true
	}
}

func (b *Builder) nextRegister() reg {
	r := reg(fmt.Sprintf("%%%d", b.nextReg))
	b.nextReg++
	return r
}

func (b *Builder) emit(format string, args ...any) {
	fmt.Fprintf(&b.out, format, args...)
}

func (b *Builder) MakeFunction(name string, argNames []string, argTypes []token.NodeType, returnType token.NodeType, variadic bool) backend.Function {
	b.closeCurrentFunction()
	fn := &function{name: name, argNames: argNames, argTypes: argTypes, returnType: returnType, variadic: variadic}
	b.functions = append(b.functions, fn)

	var params []string
	for i, n := range argNames {
		params = append(params, fmt.Sprintf("%s %s", nativeType(argTypes[i]), n))
	}
	variadicSuffix := ""
	if variadic {
		variadicSuffix = ", ..."
	}
	b.emit("func %s(%s%s) -> %s", name, strings.Join(params, ", "), variadicSuffix, nativeType(returnType))
	return fn
}

func (b *Builder) CreateBlock(fnHandle backend.Function, name string) backend.Block {
	fn := fnHandle.(*function)
	if !fn.body {
		b.emit(" {\n")
		fn.body = true
	}
	b.emit("%s:\n", name)
	return &block{fn: fn, label: name}
}

func (b *Builder) SetInsertionPoint(bl backend.Block) {
	b.current = bl.(*block)
}

func (b *Builder) CreateVariable(name string, typ token.NodeType) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = alloca %s ; %s\n", r, nativeType(typ), name)
	return r
}

func (b *Builder) StoreToVariable(slot backend.Value, value backend.Value) {
	b.emit("  store %s -> %s\n", value.(reg), slot.(reg))
}

func (b *Builder) CreateLoad(slot backend.Value, typ token.NodeType) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = load %s %s\n", r, nativeType(typ), slot.(reg))
	return r
}

var binOpMnemonic = map[token.NodeType]map[backend.Mode]string{
	token.ADD:    {backend.Float: "fadd", backend.SignedInt: "add", backend.UnsignedInt: "add"},
	token.SUB:    {backend.Float: "fsub", backend.SignedInt: "sub", backend.UnsignedInt: "sub"},
	token.MUL:    {backend.Float: "fmul", backend.SignedInt: "mul", backend.UnsignedInt: "mul"},
	token.DIV:    {backend.Float: "fdiv", backend.SignedInt: "sdiv", backend.UnsignedInt: "udiv"},
	token.MODULO: {backend.SignedInt: "srem", backend.UnsignedInt: "urem"},

	token.BITAND:          {backend.SignedInt: "and", backend.UnsignedInt: "and"},
	token.BITOR:           {backend.SignedInt: "or", backend.UnsignedInt: "or"},
	token.BITXOR:          {backend.SignedInt: "xor", backend.UnsignedInt: "xor"},
	token.ARITHLEFTSHIFT:  {backend.SignedInt: "shl", backend.UnsignedInt: "shl"},
	token.ARITHRIGHTSHIFT: {backend.SignedInt: "ashr", backend.UnsignedInt: "ashr"},
	token.LOGICRIGHTSHIFT: {backend.SignedInt: "lshr", backend.UnsignedInt: "lshr"},

	token.LOGICAND: {backend.SignedInt: "and", backend.UnsignedInt: "and"},
	token.LOGICOR:  {backend.SignedInt: "or", backend.UnsignedInt: "or"},
	token.LOGICXOR: {backend.SignedInt: "xor", backend.UnsignedInt: "xor"},
}

func (b *Builder) CreateBinOp(op token.NodeType, mode backend.Mode, lhs, rhs backend.Value) backend.Value {
	mnemonic := binOpMnemonic[op][mode]
	r := b.nextRegister()
	b.emit("  %s = %s %s, %s\n", r, mnemonic, lhs.(reg), rhs.(reg))
	return r
}

var cmpMnemonic = map[token.NodeType]map[backend.Mode]string{
	token.LT:  {backend.Float: "fcmp.olt", backend.SignedInt: "icmp.slt", backend.UnsignedInt: "icmp.ult"},
	token.LTE: {backend.Float: "fcmp.ole", backend.SignedInt: "icmp.sle", backend.UnsignedInt: "icmp.ule"},
	token.GT:  {backend.Float: "fcmp.ogt", backend.SignedInt: "icmp.sgt", backend.UnsignedInt: "icmp.ugt"},
	token.GTE: {backend.Float: "fcmp.oge", backend.SignedInt: "icmp.sge", backend.UnsignedInt: "icmp.uge"},
	token.EQ:  {backend.Float: "fcmp.oeq", backend.SignedInt: "icmp.eq", backend.UnsignedInt: "icmp.eq"},
	token.NEQ: {backend.Float: "fcmp.one", backend.SignedInt: "icmp.ne", backend.UnsignedInt: "icmp.ne"},
}

func (b *Builder) CreateComparison(op token.NodeType, mode backend.Mode, lhs, rhs backend.Value) backend.Value {
	mnemonic := cmpMnemonic[op][mode]
	r := b.nextRegister()
	b.emit("  %s = %s %s, %s\n", r, mnemonic, lhs.(reg), rhs.(reg))
	return r
}

var castMnemonic = map[backend.CastKind]string{
	backend.CastI32ToI64:   "sext",
	backend.CastIntToF32:   "sitofp32",
	backend.CastIntToF64:   "sitofp64",
	backend.CastFloatToI32: "fptosi32",
	backend.CastFloatToI64: "fptosi64",
}

func (b *Builder) CreateCast(kind backend.CastKind, value backend.Value) backend.Value {
	if kind == backend.CastIdentity {
		return value
	}
	r := b.nextRegister()
	b.emit("  %s = %s %s\n", r, castMnemonic[kind], value.(reg))
	return r
}

func (b *Builder) CreateRet(value backend.Value) {
	if value == nil {
		b.emit("  ret void\n")
		return
	}
	b.emit("  ret %s\n", value.(reg))
}

func (b *Builder) CreateBr(target backend.Block) {
	b.emit("  br %s\n", target.(*block).label)
}

func (b *Builder) CreateCondBr(cond backend.Value, thenBlock, elseBlock backend.Block) {
	b.emit("  br %s, %s, %s\n", cond.(reg), thenBlock.(*block).label, elseBlock.(*block).label)
}

func (b *Builder) CreateCall(fn backend.Function, args []backend.Value) backend.Value {
	argRegs := make([]string, len(args))
	for i, a := range args {
		argRegs[i] = string(a.(reg))
	}
	r := b.nextRegister()
	b.emit("  %s = call %s(%s)\n", r, fn.(*function).name, strings.Join(argRegs, ", "))
	return r
}

func (b *Builder) ConstInt(typ token.NodeType, v int64) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = const.%s %d\n", r, nativeType(typ), v)
	return r
}

func (b *Builder) ConstFloat(typ token.NodeType, v float64) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = const.%s %g\n", r, nativeType(typ), v)
	return r
}

func (b *Builder) ConstString(s string) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = const.ptr %q\n", r, s)
	return r
}

func (b *Builder) GetNativeType(typ token.NodeType) backend.NativeType {
	return nativeType(typ)
}

func (b *Builder) FieldAddress(base backend.Value, structName, fieldName string) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = field.addr %s, %s.%s\n", r, base.(reg), structName, fieldName)
	return r
}

func (b *Builder) ElementAddress(base backend.Value, elemType token.NodeType, index backend.Value) backend.Value {
	r := b.nextRegister()
	b.emit("  %s = elem.addr %s %s, [%s]\n", r, nativeType(elemType), base.(reg), index.(reg))
	return r
}

var _ backend.Builder = (*Builder)(nil)
