package rewriter

import (
	"strings"

	"github.com/n0varider/nvylang/internal/token"
)

// typeSymbolText renders the keyword text of a resolved *_T kind, the
// inverse of the lexer's typeSymbolKind table, used to build the STAR
// token's textual value (e.g. "int32**").
var typeSymbolText = map[token.NodeType]string{
	token.INT32_T: "int32",
	token.INT64_T: "int64",
	token.FP32_T:  "fp32",
	token.FP64_T:  "fp64",
	token.STR_T:   "str",
	token.CHAR_T:  "char",
	token.BOOL_T:  "bool",
	token.VOID_T:  "void",
}

// ResolveSpecialSymbols runs three context-sensitive rewrites over the
// token graph in a single left-to-right pass: pointer-type collapsing,
// array-type/array-access/array-creation collapsing, and function-call
// recognition.
func ResolveSpecialSymbols(g *token.Graph) {
	cur := g.Next(g.Head())
	for cur != g.Tail() {
		tok := g.At(cur)

		switch tok.Type {
		case token.TYPE_SYMBOL:
			if next := g.Next(cur); g.At(next).Type == token.MUL {
				cur = collapsePointer(g, cur)
				continue
			}
			if rewritten, ok := tryCollapseArray(g, cur, true); ok {
				cur = rewritten
				continue
			}

		case token.VARIABLE:
			if next := g.Next(cur); g.At(next).Type == token.OPENPARENS {
				g.SetValue(cur, token.FUNCTIONCALL, token.StringValue(tok.Value.AsString()))
				cur = g.Next(cur)
				continue
			}
			if rewritten, ok := tryCollapseArray(g, cur, false); ok {
				cur = rewritten
				continue
			}
		}

		cur = g.Next(cur)
	}
}

// collapsePointer collapses a TYPE_SYMBOL followed by one or more MUL
// tokens into a single STAR token and returns the handle to resume
// scanning from.
func collapsePointer(g *token.Graph, head int) int {
	elem := g.At(head).Value.AsType()
	stars := 0
	cur := g.Next(head)
	for g.At(cur).Type == token.MUL {
		stars++
		drop := cur
		cur = g.Next(cur)
		g.Remove(drop)
	}
	text := typeSymbolText[elem] + strings.Repeat("*", stars)
	g.SetValue(head, token.STAR, token.StringValue(text))
	return head
}

// tryCollapseArray handles both the array-type annotation
// (`TYPE_SYMBOL [ ]`) and the array creation/access forms
// (`TYPE_SYMBOL|VARIABLE [ INT32|VARIABLE ]`). isType distinguishes a
// type-position head (array creation, ARRAY) from a value-position
// head (array access, ARRAY_ACCESS).
func tryCollapseArray(g *token.Graph, head int, isType bool) (int, bool) {
	open := g.Next(head)
	if g.At(open).Type != token.OPENBRKT {
		return 0, false
	}
	inner := g.Next(open)

	if isType && g.At(inner).Type == token.CLOSEBRKT {
		elem := g.At(head).Value.AsType()
		close_ := inner
		g.Remove(open)
		after := g.Remove(close_)
		g.SetValue(head, token.ARRAY_TYPE, token.TypeValue(elem))
		return after, true
	}

	if g.At(inner).Type != token.INT32 && g.At(inner).Type != token.VARIABLE {
		return 0, false
	}
	closeTok := g.Next(inner)
	if g.At(closeTok).Type != token.CLOSEBRKT {
		return 0, false
	}

	indexType := token.ARRAY_INDEX
	headType := token.ARRAY_ACCESS
	if isType {
		indexType = token.ARRAY_SIZE
		headType = token.ARRAY
	}

	name := g.At(head)
	g.Remove(open)
	after := g.Remove(closeTok)
	g.SetValue(inner, indexType, g.At(inner).Value)

	if isType {
		g.SetValue(head, headType, token.TypeValue(name.Value.AsType()))
	} else {
		g.SetValue(head, headType, token.StringValue(nameText(name)))
	}
	return after, true
}

func nameText(t token.Token) string {
	if !t.Value.IsNull() {
		return t.Value.String()
	}
	return t.Type.String()
}
