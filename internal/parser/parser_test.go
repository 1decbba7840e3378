package parser

import (
	"testing"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/lexer"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/n0varider/nvylang/internal/source"
	"github.com/n0varider/nvylang/internal/token"
)

func parseSource(t *testing.T, src string) []*ast.Node {
	t.Helper()
	l, err := lexer.New(source.NewStringReader(src), "<test>")
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	g, err := l.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	rewriter.ResolveSpecialSymbols(g)

	p := New(g, "<test>", src)
	decls, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return decls
}

func TestParseSimpleFunction(t *testing.T) {
	decls := parseSource(t, `
func add(int32 a, int32 b) -> int32 {
  return a + b;
}
`)
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	fn := decls[0]
	if fn.Type != token.FUNCTION || fn.Data.AsString() != "add" {
		t.Fatalf("decl = %s(%s), want FUNCTION(add)", fn.Type, fn.Data.AsString())
	}
	if len(fn.Child(0).Children) != 2 {
		t.Fatalf("param list has %d entries, want 2", len(fn.Child(0).Children))
	}
	body := fn.Child(2)
	if len(body.Children) != 1 || body.Child(0).Type != token.RETURN {
		t.Fatalf("expected a single RETURN statement in the body")
	}
}

func TestParseNativeFunctionBody(t *testing.T) {
	decls := parseSource(t, `native func puts(str s) -> void;`)
	fn := decls[0]
	body := fn.Child(2)
	if len(body.Children) != 1 || body.Child(0).Type != token.NATIVE {
		t.Fatalf("native function body should be a single NATIVE sentinel, got %+v", body.Children)
	}
}

func TestParseIfElseIf(t *testing.T) {
	decls := parseSource(t, `
func main() -> void {
  if (1 == 1) {
    return;
  } else if (2 == 2) {
    return;
  } else {
    return;
  }
}
`)
	body := decls[0].Child(2)
	ifNode := body.Child(0)
	if ifNode.Type != token.IF {
		t.Fatalf("expected IF, got %s", ifNode.Type)
	}
	elseIf := ifNode.Child(2).Child(0)
	if elseIf == nil || elseIf.Type != token.IF {
		t.Fatalf("expected a nested IF in the else slot")
	}
}

func TestParseForLoop(t *testing.T) {
	decls := parseSource(t, `
func main() -> void {
  for (let i = 0; i < 10; i + 1) {
    return;
  }
}
`)
	forNode := decls[0].Child(2).Child(0)
	if forNode.Type != token.FORLOOP {
		t.Fatalf("expected FORLOOP, got %s", forNode.Type)
	}
	if forNode.Child(0).Child(0).Type != token.VARDEF {
		t.Fatalf("expected LOOPDEF to hold a VARDEF")
	}
	if forNode.Child(1).Child(0).Type != token.LT {
		t.Fatalf("expected LOOPCOND to hold an LT comparison")
	}
}

func TestParseAssignAndDeref(t *testing.T) {
	decls := parseSource(t, `
func main() -> void {
  let x = 1;
  x = 2;
  *x = 3;
}
`)
	body := decls[0].Child(2)
	assign := body.Child(1)
	if assign.Type != token.ASSIGN || assign.Child(0).Type != token.VARIABLE {
		t.Fatalf("expected a plain-variable ASSIGN")
	}
	derefAssign := body.Child(2)
	if derefAssign.Type != token.ASSIGN || derefAssign.Child(0).Type != token.PTRDEREF {
		t.Fatalf("expected a pointer-dereference ASSIGN")
	}
}

func TestParseArrayCreateAndAccess(t *testing.T) {
	decls := parseSource(t, `
func main() -> void {
  let arr = int32[5];
  arr[0] = 1;
  let x = arr[0];
}
`)
	body := decls[0].Child(2)

	arr := body.Child(0).Child(0)
	if arr.Type != token.ARRAY || arr.Data.AsType() != token.INT32_T {
		t.Fatalf("expected ARRAY(INT32_T), got %s(%s)", arr.Type, arr.Data.String())
	}
	if arr.Child(0).Type != token.ARRAY_SIZE || len(arr.Child(0).Children) != 1 {
		t.Fatalf("expected a single ARRAY_SIZE operand, got %+v", arr.Child(0))
	}

	write := body.Child(1)
	if write.Type != token.ASSIGN || write.Child(0).Type != token.ARRAY_ACCESS {
		t.Fatalf("expected an ARRAY_ACCESS assignment target, got %s", write)
	}
	if write.Child(0).Child(0).Data.AsString() != "arr" {
		t.Fatalf("expected the assignment target to name arr, got %s", write.Child(0))
	}

	read := body.Child(2).Child(0)
	if read.Type != token.ARRAY_ACCESS || read.Child(0).Data.AsString() != "arr" {
		t.Fatalf("expected ARRAY_ACCESS(arr) as the vardef initialiser, got %s", read)
	}
}

func TestParseTolerantRecoversAndCollectsErrors(t *testing.T) {
	src := `
func a() -> void { return; }
1 + 2;
func b() -> void { return; }
`
	l, err := lexer.New(source.NewStringReader(src), "<test>")
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	g, err := l.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	rewriter.ResolveSpecialSymbols(g)

	p := New(g, "<test>", src)
	decls, errs := p.ParseTolerant()

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2 (recovery should skip only the bad statement)", len(decls))
	}
	if decls[0].Data.AsString() != "a" || decls[1].Data.AsString() != "b" {
		t.Fatalf("expected functions a and b to survive recovery, got %s, %s",
			decls[0].Data.AsString(), decls[1].Data.AsString())
	}
}

func TestParseStruct(t *testing.T) {
	decls := parseSource(t, `
struct Point {
  int32 x,
  int32 y
}
`)
	s := decls[0]
	if s.Type != token.STRUCT || s.Data.AsString() != "Point" {
		t.Fatalf("expected STRUCT(Point), got %s(%s)", s.Type, s.Data.AsString())
	}
	if len(s.Children) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(s.Children))
	}
}
