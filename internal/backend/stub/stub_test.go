package stub

import (
	"strings"
	"testing"

	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/token"
)

func TestMakeFunctionSignature(t *testing.T) {
	b := New("m")
	b.MakeFunction("add", []string{"a", "b"}, []token.NodeType{token.INT32, token.INT32}, token.INT32, false)
	bl := b.CreateBlock(b.functions[0], "entry")
	b.SetInsertionPoint(bl)
	b.CreateRet(nil)

	out := b.String()
	if !strings.Contains(out, "func add(i32 a, i32 b) -> i32") {
		t.Errorf("unexpected signature, got:\n%s", out)
	}
	if !strings.Contains(out, "entry:") {
		t.Errorf("expected entry label, got:\n%s", out)
	}
}

func TestVariadicSignature(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("printf", []string{"fmt"}, []token.NodeType{token.STR}, token.VOID_T,true)
	bl := b.CreateBlock(fn, "entry")
	b.SetInsertionPoint(bl)
	b.CreateRet(nil)

	out := b.String()
	if !strings.Contains(out, "func printf(ptr fmt, ...) -> void") {
		t.Errorf("unexpected variadic signature, got:\n%s", out)
	}
}

func TestAllocaStoreLoad(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("f", nil, nil, token.VOID_T, false)
	bl := b.CreateBlock(fn, "entry")
	b.SetInsertionPoint(bl)

	slot := b.CreateVariable("x", token.INT32)
	v := b.ConstInt(token.INT32, 42)
	b.StoreToVariable(slot, v)
	b.CreateLoad(slot, token.INT32)
	b.CreateRet(nil)

	out := b.String()
	for _, want := range []string{"alloca i32 ; x", "const.i32 42", "store", "load i32"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestBinOpAndComparisonMnemonics(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("f", nil, nil, token.VOID_T, false)
	bl := b.CreateBlock(fn, "entry")
	b.SetInsertionPoint(bl)

	lhs := b.ConstInt(token.INT32, 1)
	rhs := b.ConstInt(token.INT32, 2)
	b.CreateBinOp(token.ADD, backend.SignedInt, lhs, rhs)
	b.CreateBinOp(token.ADD, backend.Float, lhs, rhs)
	b.CreateComparison(token.LT, backend.SignedInt, lhs, rhs)
	b.CreateRet(nil)

	out := b.String()
	for _, want := range []string{"add %", "fadd %", "icmp.slt"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCastIdentityIsANoop(t *testing.T) {
	b := New("m")
	v := b.ConstInt(token.INT32, 1)
	out := b.CreateCast(backend.CastIdentity, v)
	if out != v {
		t.Fatalf("CastIdentity should return the input value unchanged")
	}
}

func TestCastMnemonics(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("f", nil, nil, token.VOID_T, false)
	bl := b.CreateBlock(fn, "entry")
	b.SetInsertionPoint(bl)

	v := b.ConstInt(token.INT32, 1)
	b.CreateCast(backend.CastI32ToI64, v)
	b.CreateCast(backend.CastIntToF64, v)
	b.CreateRet(nil)

	out := b.String()
	for _, want := range []string{"sext", "sitofp64"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestBranchesAndCall(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("f", nil, nil, token.VOID_T, false)
	entry := b.CreateBlock(fn, "entry")
	thenBlock := b.CreateBlock(fn, "then")
	elseBlock := b.CreateBlock(fn, "else")

	b.SetInsertionPoint(entry)
	cond := b.ConstInt(token.BOOL_T, 1)
	b.CreateCondBr(cond, thenBlock, elseBlock)

	b.SetInsertionPoint(thenBlock)
	b.CreateBr(elseBlock)

	b.SetInsertionPoint(elseBlock)
	b.CreateCall(fn, nil)
	b.CreateRet(nil)

	out := b.String()
	for _, want := range []string{"br %0, then, else", "br else", "call f()"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMultiFunctionDumpClosesEachFunctionOnce(t *testing.T) {
	b := New("m")
	f1 := b.MakeFunction("f1", nil, nil, token.VOID_T, false)
	bl1 := b.CreateBlock(f1, "entry")
	b.SetInsertionPoint(bl1)
	b.CreateRet(nil)

	f2 := b.MakeFunction("f2", nil, nil, token.VOID_T, false)
	bl2 := b.CreateBlock(f2, "entry")
	b.SetInsertionPoint(bl2)
	b.CreateRet(nil)

	out := b.String()
	if strings.Count(out, "}") != 2 {
		t.Errorf("expected exactly 2 closing braces, one per function, got:\n%s", out)
	}
	if strings.Count(out, "func ") != 2 {
		t.Errorf("expected exactly 2 function signatures, got:\n%s", out)
	}
}

func TestFieldAndElementAddress(t *testing.T) {
	b := New("m")
	fn := b.MakeFunction("f", nil, nil, token.VOID_T, false)
	bl := b.CreateBlock(fn, "entry")
	b.SetInsertionPoint(bl)

	base := b.CreateVariable("p", token.USERTYPE_T)
	b.FieldAddress(base, "Point", "x")
	b.ElementAddress(base, token.INT32, b.ConstInt(token.INT32, 0))
	b.CreateRet(nil)

	out := b.String()
	for _, want := range []string{"field.addr %", "Point.x", "elem.addr"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
