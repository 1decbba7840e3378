package rewriter

import (
	"testing"

	"github.com/n0varider/nvylang/internal/token"
)

func graphTokens(g *token.Graph) []token.Token {
	var out []token.Token
	for cur := g.Next(g.Head()); cur != g.Tail(); cur = g.Next(cur) {
		out = append(out, g.At(cur))
	}
	return out
}

func TestResolveSpecialSymbolsCollapsesPointer(t *testing.T) {
	g := token.NewGraph()
	g.Append(token.TYPE_SYMBOL, token.TypeValue(token.INT32_T), token.Position{})
	g.Append(token.MUL, token.NullValue(), token.Position{})
	g.Append(token.VARIABLE, token.StringValue("p"), token.Position{})

	ResolveSpecialSymbols(g)

	toks := graphTokens(g)
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens after collapsing, got %d", len(toks))
	}
	if toks[0].Type != token.STAR || toks[0].Value.AsString() != "int32*" {
		t.Fatalf("expected STAR(int32*), got %s(%s)", toks[0].Type, toks[0].Value.AsString())
	}
}

func TestResolveSpecialSymbolsCollapsesArrayType(t *testing.T) {
	g := token.NewGraph()
	g.Append(token.TYPE_SYMBOL, token.TypeValue(token.INT32_T), token.Position{})
	g.Append(token.OPENBRKT, token.NullValue(), token.Position{})
	g.Append(token.CLOSEBRKT, token.NullValue(), token.Position{})
	g.Append(token.VARIABLE, token.StringValue("xs"), token.Position{})

	ResolveSpecialSymbols(g)

	toks := graphTokens(g)
	if toks[0].Type != token.ARRAY_TYPE || toks[0].Value.AsType() != token.INT32_T {
		t.Fatalf("expected ARRAY_TYPE(INT32_T), got %s", toks[0].Type)
	}
}

func TestResolveSpecialSymbolsRecognisesFunctionCall(t *testing.T) {
	g := token.NewGraph()
	g.Append(token.VARIABLE, token.StringValue("foo"), token.Position{})
	g.Append(token.OPENPARENS, token.NullValue(), token.Position{})
	g.Append(token.CLOSEPARENS, token.NullValue(), token.Position{})

	ResolveSpecialSymbols(g)

	toks := graphTokens(g)
	if toks[0].Type != token.FUNCTIONCALL || toks[0].Value.AsString() != "foo" {
		t.Fatalf("expected FUNCTIONCALL(foo), got %s(%s)", toks[0].Type, toks[0].Value.AsString())
	}
}
