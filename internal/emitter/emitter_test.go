package emitter

import (
	"strings"
	"testing"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend/stub"
	"github.com/n0varider/nvylang/internal/lexer"
	"github.com/n0varider/nvylang/internal/parser"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/n0varider/nvylang/internal/source"
	"github.com/n0varider/nvylang/internal/symbols"
)

// compile runs the full lex/resolve/parse/emit pipeline over src and
// returns the stub backend's textual IR dump, mirroring how
// cmd/nvylang wires the same stages together.
func compile(t *testing.T, src string) (string, error) {
	t.Helper()
	ctx := rewriter.NewModuleContext("test")
	lines := rewriter.MangleFunctionNames(rewriter.StripComments(strings.Split(src, "\n")), ctx)
	rewritten := strings.Join(lines, "\n")

	l, err := lexer.New(source.NewStringReader(rewritten), "<test>")
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	g, err := l.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	rewriter.ResolveSpecialSymbols(g)

	decls, err := parser.New(g, "<test>", rewritten).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	b := stub.New("test")
	e := New(b, symbols.New(), ctx, rewritten, "<test>")
	if err := e.CompileUnit(decls); err != nil {
		return "", err
	}
	return b.String(), nil
}

func mustCompile(t *testing.T, src string) string {
	t.Helper()
	out, err := compile(t, src)
	if err != nil {
		t.Fatalf("compile(%q): unexpected error: %v", src, err)
	}
	return out
}

func TestCompileFunctionEmitsAllocaAddAndReturn(t *testing.T) {
	out := mustCompile(t, `
func add(int32 a, int32 b) -> int32 {
  return a + b;
}
`)
	for _, want := range []string{"func _nvylang_test_3add_4(", "alloca", "= add %", "ret"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestCompileVardefAndAssign(t *testing.T) {
	out := mustCompile(t, `
func main() -> void {
  let x = 1;
  x = 2;
}
`)
	if !strings.Contains(out, "alloca") || !strings.Contains(out, "store") {
		t.Errorf("expected alloca/store in output, got:\n%s", out)
	}
}

func TestCompileConditionalEmitsBranches(t *testing.T) {
	out := mustCompile(t, `
func main() -> void {
  if (1 == 1) {
    return;
  } else {
    return;
  }
}
`)
	if !strings.Contains(out, "br") {
		t.Errorf("expected a branch instruction in conditional output, got:\n%s", out)
	}
}

func TestCompileForLoopEmitsBranches(t *testing.T) {
	out := mustCompile(t, `
func main() -> void {
  for (let i = 0; i < 3; i + 1) {
  }
}
`)
	if !strings.Contains(out, "br") {
		t.Errorf("expected loop branching in output, got:\n%s", out)
	}
}

func TestCompileStructFieldAccess(t *testing.T) {
	out := mustCompile(t, `
struct Point {
  int32 x,
  int32 y
}
func sumCoords(Point p) -> int32 {
  return p.x + p.y;
}
`)
	if !strings.Contains(out, "field.addr") {
		t.Errorf("expected a field-address instruction for member access, got:\n%s", out)
	}
}

func TestCompileArrayReadAndWrite(t *testing.T) {
	out := mustCompile(t, `
func main() -> void {
  let arr = int32[5];
  arr[0] = 1;
  let x = arr[0];
}
`)
	if !strings.Contains(out, "elem.addr") {
		t.Errorf("expected an element-address instruction for array access, got:\n%s", out)
	}
}

func TestCompileArrayAccessOnNonArrayIsAResolveError(t *testing.T) {
	_, err := compile(t, `
func main() -> void {
  let x = 1;
  let y = x[0];
}
`)
	if err == nil {
		t.Fatalf("expected a resolve error indexing a non-array variable")
	}
}

func TestCompileUndefinedVariableIsAResolveError(t *testing.T) {
	_, err := compile(t, `
func main() -> void {
  x = 1;
}
`)
	if err == nil {
		t.Fatalf("expected a resolve error assigning to an undeclared variable")
	}
}

func TestArithmeticPromotionPicksWiderType(t *testing.T) {
	out := mustCompile(t, `
func add(int32 a, fp64 b) -> fp64 {
  return a + b;
}
`)
	if !strings.Contains(out, "cast") && !strings.Contains(out, "f64") {
		t.Errorf("expected a widening cast or f64 arithmetic in output, got:\n%s", out)
	}
}

func TestNewEmitterUsable(t *testing.T) {
	b := stub.New("m")
	e := New(b, symbols.New(), rewriter.NewModuleContext("m"), "", "<test>")
	if e == nil {
		t.Fatalf("New returned nil")
	}
	if err := e.CompileUnit([]*ast.Node{}); err != nil {
		t.Fatalf("CompileUnit(empty) returned an error: %v", err)
	}
}
