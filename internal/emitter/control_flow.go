package emitter

import "github.com/n0varider/nvylang/internal/ast"

// compileConditional compiles an IF node. CreateBr/CreateCondBr (see
// internal/backend.Builder) are the branch primitives needed to lower
// IF/FORLOOP/WHILELOOP at all, since the builder contract otherwise
// only names straight-line operations.
func (e *Emitter) compileConditional(n *ast.Node) error {
	condNode := n.Child(0).Child(0)
	thenNode := n.Child(1)
	elseNode := n.Child(2)

	cond, err := e.compileExpression(condNode)
	if err != nil {
		return err
	}

	thenBlock := e.b.CreateBlock(e.curFn, "if.then")
	elseBlock := e.b.CreateBlock(e.curFn, "if.else")
	mergeBlock := e.b.CreateBlock(e.curFn, "if.end")

	e.b.CreateCondBr(cond, thenBlock, elseBlock)

	e.b.SetInsertionPoint(thenBlock)
	for _, stmt := range thenNode.Children {
		if err := e.compileStatement(stmt); err != nil {
			return err
		}
	}
	e.b.CreateBr(mergeBlock)

	e.b.SetInsertionPoint(elseBlock)
	for _, stmt := range elseNode.Children {
		if err := e.compileStatement(stmt); err != nil {
			return err
		}
	}
	e.b.CreateBr(mergeBlock)

	e.b.SetInsertionPoint(mergeBlock)
	return nil
}

// compileForLoop compiles a FORLOOP node. The iteration clause is
// compiled purely for its value (`i + 1`, not `i = i + 1`): the
// language's expression grammar has no path for an assignment to
// appear inside the parenthesised for-clause, so the iteration slot
// can only ever be a plain expression.
func (e *Emitter) compileForLoop(n *ast.Node) error {
	defStmt := n.Child(0).Child(0)
	condNode := n.Child(1).Child(0)
	iterNode := n.Child(2).Child(0)
	bodyNode := n.Child(3)

	if err := e.compileStatement(defStmt); err != nil {
		return err
	}

	condBlock := e.b.CreateBlock(e.curFn, "for.cond")
	bodyBlock := e.b.CreateBlock(e.curFn, "for.body")
	afterBlock := e.b.CreateBlock(e.curFn, "for.end")

	e.b.CreateBr(condBlock)
	e.b.SetInsertionPoint(condBlock)
	cond, err := e.compileExpression(condNode)
	if err != nil {
		return err
	}
	e.b.CreateCondBr(cond, bodyBlock, afterBlock)

	e.b.SetInsertionPoint(bodyBlock)
	for _, stmt := range bodyNode.Children {
		if err := e.compileStatement(stmt); err != nil {
			return err
		}
	}
	if _, err := e.compileExpression(iterNode); err != nil {
		return err
	}
	e.b.CreateBr(condBlock)

	e.b.SetInsertionPoint(afterBlock)
	return nil
}

// compileWhileLoop implements WHILELOOP→compileWhileLoop.
func (e *Emitter) compileWhileLoop(n *ast.Node) error {
	condNode := n.Child(0).Child(0)
	bodyNode := n.Child(1)

	condBlock := e.b.CreateBlock(e.curFn, "while.cond")
	bodyBlock := e.b.CreateBlock(e.curFn, "while.body")
	afterBlock := e.b.CreateBlock(e.curFn, "while.end")

	e.b.CreateBr(condBlock)
	e.b.SetInsertionPoint(condBlock)
	cond, err := e.compileExpression(condNode)
	if err != nil {
		return err
	}
	e.b.CreateCondBr(cond, bodyBlock, afterBlock)

	e.b.SetInsertionPoint(bodyBlock)
	for _, stmt := range bodyNode.Children {
		if err := e.compileStatement(stmt); err != nil {
			return err
		}
	}
	e.b.CreateBr(condBlock)

	e.b.SetInsertionPoint(afterBlock)
	return nil
}
