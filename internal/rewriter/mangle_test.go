package rewriter

import (
	"strings"
	"testing"
)

func TestMangleFunctionNamesRewritesDeclarations(t *testing.T) {
	ctx := NewModuleContext("prog")
	lines := []string{
		"func add(int32 a, int32 b) -> int32 {",
		"  return a + b;",
		"}",
	}
	out := MangleFunctionNames(lines, ctx)

	if !strings.HasPrefix(out[0], "func _nvylang_prog_3add_4(") {
		t.Fatalf("unexpected mangled declaration line: %q", out[0])
	}
	if out[1] != lines[1] || out[2] != lines[2] {
		t.Fatalf("non-declaration lines should be untouched")
	}

	mangled, ok := ctx.MangledName("add")
	if !ok || mangled != "_nvylang_prog_3add_4" {
		t.Fatalf("MangledName(add) = %q, %v, want _nvylang_prog_3add_4, true", mangled, ok)
	}
}

func TestMangleFunctionNamesExemptsMain(t *testing.T) {
	ctx := NewModuleContext("prog")
	out := MangleFunctionNames([]string{"func main() -> void {"}, ctx)
	if out[0] != "func main() -> void {" {
		t.Fatalf("main should never be mangled, got %q", out[0])
	}
}

func TestMangleFunctionNamesRecordsCollision(t *testing.T) {
	ctx := NewModuleContext("prog")
	lines := []string{
		"func dup() -> void {",
		"}",
		"func dup() -> void {",
		"}",
	}
	MangleFunctionNames(lines, ctx)
	if len(ctx.Collisions) != 1 {
		t.Fatalf("expected exactly one collision warning, got %d: %v", len(ctx.Collisions), ctx.Collisions)
	}
}
