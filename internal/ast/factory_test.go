package ast

import (
	"testing"

	"github.com/n0varider/nvylang/internal/token"
)

func TestNewFunctionSlots(t *testing.T) {
	fn := NewFunction("foo", token.Position{})
	if len(fn.Children) != 3 {
		t.Fatalf("NewFunction has %d children, want 3", len(fn.Children))
	}
	if fn.Child(0).Type != token.FUNCTIONPARAM {
		t.Errorf("slot 0 = %s, want FUNCTIONPARAM", fn.Child(0).Type)
	}
	if fn.Child(1).Type != token.FUNCTIONRETURN {
		t.Errorf("slot 1 = %s, want FUNCTIONRETURN", fn.Child(1).Type)
	}
	if fn.Child(2).Type != token.FUNCTIONBODY {
		t.Errorf("slot 2 = %s, want FUNCTIONBODY", fn.Child(2).Type)
	}
}

func TestAddBodyNodeRouting(t *testing.T) {
	stmt := New(token.RETURN, token.NullValue(), token.Position{})

	fn := NewFunction("foo", token.Position{})
	AddBodyNode(fn, stmt)
	if len(fn.Child(2).Children) != 1 {
		t.Fatalf("FUNCTION body slot has %d children, want 1", len(fn.Child(2).Children))
	}

	ifNode := NewIf(token.Position{})
	AddBodyNode(ifNode, stmt)
	if len(ifNode.Child(1).Children) != 1 {
		t.Fatalf("IF body slot has %d children, want 1", len(ifNode.Child(1).Children))
	}

	forNode := NewForLoop(token.Position{})
	AddBodyNode(forNode, stmt)
	if len(forNode.Child(3).Children) != 1 {
		t.Fatalf("FORLOOP body slot has %d children, want 1", len(forNode.Child(3).Children))
	}

	whileNode := NewWhileLoop(token.Position{})
	AddBodyNode(whileNode, stmt)
	if len(whileNode.Child(1).Children) != 1 {
		t.Fatalf("WHILELOOP body slot has %d children, want 1", len(whileNode.Child(1).Children))
	}

	vardef := NewVarDef("x", token.Position{})
	AddBodyNode(vardef, stmt)
	if len(vardef.Children) != 1 || vardef.Child(0) != stmt {
		t.Fatalf("VARDEF should append stmt directly as a child")
	}

	strct := New(token.STRUCT, token.StringValue("S"), token.Position{})
	AddBodyNode(strct, stmt)
	if len(strct.Children) != 1 || strct.Child(0) != stmt {
		t.Fatalf("STRUCT should append stmt directly as a child")
	}
}

func TestChildOutOfBoundsIsNil(t *testing.T) {
	n := New(token.RETURN, token.NullValue(), token.Position{})
	if n.Child(0) != nil {
		t.Errorf("Child(0) on a childless node should be nil")
	}
}
