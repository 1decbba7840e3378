package ast

import "github.com/n0varider/nvylang/internal/token"

// Fixed child-index layouts for container nodes. The factory functions
// below guarantee every node they build has its body-bearing slots
// pre-populated as empty containers, so later passes can always index
// Children[N] rather than checking length first.

// NewFunction builds a FUNCTION node with slots
// [0]=FUNCTIONPARAM [1]=FUNCTIONRETURN [2]=FUNCTIONBODY.
func NewFunction(name string, pos token.Position) *Node {
	n := New(token.FUNCTION, token.StringValue(name), pos)
	n.AddChild(New(token.FUNCTIONPARAM, token.NullValue(), pos))
	n.AddChild(New(token.FUNCTIONRETURN, token.NullValue(), pos))
	n.AddChild(New(token.FUNCTIONBODY, token.NullValue(), pos))
	return n
}

// NewIf builds an IF node with slots
// [0]=CONDITION [1]=FUNCTIONBODY [2]=ELSE.
func NewIf(pos token.Position) *Node {
	n := New(token.IF, token.NullValue(), pos)
	n.AddChild(New(token.CONDITION, token.NullValue(), pos))
	n.AddChild(New(token.FUNCTIONBODY, token.NullValue(), pos))
	n.AddChild(New(token.ELSE, token.NullValue(), pos))
	return n
}

// NewForLoop builds a FORLOOP node with slots
// [0]=LOOPDEF [1]=LOOPCOND [2]=LOOPITERATION [3]=FUNCTIONBODY.
func NewForLoop(pos token.Position) *Node {
	n := New(token.FORLOOP, token.NullValue(), pos)
	n.AddChild(New(token.LOOPDEF, token.NullValue(), pos))
	n.AddChild(New(token.LOOPCOND, token.NullValue(), pos))
	n.AddChild(New(token.LOOPITERATION, token.NullValue(), pos))
	n.AddChild(New(token.FUNCTIONBODY, token.NullValue(), pos))
	return n
}

// NewWhileLoop builds a WHILELOOP node with slots
// [0]=LOOPCOND [1]=FUNCTIONBODY.
func NewWhileLoop(pos token.Position) *Node {
	n := New(token.WHILELOOP, token.NullValue(), pos)
	n.AddChild(New(token.LOOPCOND, token.NullValue(), pos))
	n.AddChild(New(token.FUNCTIONBODY, token.NullValue(), pos))
	return n
}

// NewVarDef builds a VARDEF node; the initialiser expression is
// attached as child 0 by the caller.
func NewVarDef(name string, pos token.Position) *Node {
	return New(token.VARDEF, token.StringValue(name), pos)
}

// NewReturn builds a RETURN node; the returned expression is attached
// as child 0 by the caller.
func NewReturn(pos token.Position) *Node {
	return New(token.RETURN, token.NullValue(), pos)
}

// NewCast builds a CAST node; child 0 holds either a type token's Value
// (target type) or a struct-name string.
func NewCast(pos token.Position) *Node {
	return New(token.CAST, token.NullValue(), pos)
}

// NewArray builds an ARRAY node; child 0 is ARRAY_SIZE.
func NewArray(elem token.NodeType, pos token.Position) *Node {
	n := New(token.ARRAY, token.TypeValue(elem), pos)
	n.AddChild(New(token.ARRAY_SIZE, token.NullValue(), pos))
	return n
}

// NewArrayAccess builds an ARRAY_ACCESS node with slots
// [0]=ARRAY name [1]=ARRAY_INDEX.
func NewArrayAccess(name string, pos token.Position) *Node {
	n := New(token.ARRAY_ACCESS, token.NullValue(), pos)
	n.AddChild(New(token.VARIABLE, token.StringValue(name), pos))
	n.AddChild(New(token.ARRAY_INDEX, token.NullValue(), pos))
	return n
}

// bodyIndex returns the child index of parent's body-bearing slot;
// every container kind returns its own slot explicitly rather than
// falling through to a shared default.
func bodyIndex(parentType token.NodeType) (int, bool) {
	switch parentType {
	case token.FUNCTION:
		return 2, true
	case token.IF:
		return 1, true
	case token.FORLOOP:
		return 3, true
	case token.WHILELOOP:
		return 1, true
	default:
		return 0, false
	}
}

// AddBodyNode appends stmt into parent's body slot, selected by
// parent.Type. VARDEF and STRUCT append stmt directly as a child
// instead of routing through a body wrapper.
func AddBodyNode(parent *Node, stmt *Node) {
	if parent.Type == token.VARDEF || parent.Type == token.STRUCT {
		parent.AddChild(stmt)
		return
	}
	if idx, ok := bodyIndex(parent.Type); ok {
		parent.Children[idx].AddChild(stmt)
		return
	}
	parent.AddChild(stmt)
}
