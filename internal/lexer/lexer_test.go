package lexer

import (
	"testing"

	"github.com/n0varider/nvylang/internal/source"
	"github.com/n0varider/nvylang/internal/token"
)

func lexString(t *testing.T, src string) []token.Token {
	t.Helper()
	l, err := New(source.NewStringReader(src), "<test>")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := l.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var out []token.Token
	for cur := g.Next(g.Head()); cur != g.Tail(); cur = g.Next(cur) {
		out = append(out, g.At(cur))
	}
	return out
}

func TestLexNumericLiterals(t *testing.T) {
	tests := []struct {
		src      string
		wantType token.NodeType
	}{
		{"42", token.INT32},
		{"9999999999L", token.INT64},
		{"1.5", token.FP64},
		{"1.5F", token.FP32},
		{"1.5D", token.FP64},
	}
	for _, tt := range tests {
		toks := lexString(t, tt.src)
		if len(toks) != 1 || toks[0].Type != tt.wantType {
			t.Errorf("lexing %q: got %v, want a single %s", tt.src, toks, tt.wantType)
		}
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	tests := []struct {
		src      string
		wantType token.NodeType
	}{
		{"==", token.EQ},
		{"!=", token.NEQ},
		{"<=", token.LTE},
		{">=", token.GTE},
		{"&&", token.LOGICAND},
		{"||", token.LOGICOR},
		{"<<", token.ARITHLEFTSHIFT},
		{">>", token.ARITHRIGHTSHIFT},
		{">>>", token.LOGICRIGHTSHIFT},
	}
	for _, tt := range tests {
		toks := lexString(t, tt.src)
		if len(toks) != 1 || toks[0].Type != tt.wantType {
			t.Errorf("lexing %q: got %v, want a single %s", tt.src, toks, tt.wantType)
		}
	}
}

func TestLexStringAndCharLiterals(t *testing.T) {
	toks := lexString(t, `"hello" 'a'`)
	if len(toks) != 2 || toks[0].Type != token.STR || toks[1].Type != token.CHAR {
		t.Fatalf("got %v, want STR then CHAR", toks)
	}
}

func TestLexUnterminatedStringIsAnError(t *testing.T) {
	l, err := New(source.NewStringReader(`"oops`), "<test>")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := l.Lex(); err == nil {
		t.Fatalf("expected an error for an unterminated string literal")
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks := lexString(t, "func add(int32 a) -> int32 { return a; }")
	if toks[0].Type != token.FUNCTION {
		t.Fatalf("first token = %s, want FUNCTION", toks[0].Type)
	}
	if toks[1].Type != token.VARIABLE || toks[1].Value.AsString() != "add" {
		t.Fatalf("second token = %s(%s), want VARIABLE(add)", toks[1].Type, toks[1].Value.AsString())
	}
}
