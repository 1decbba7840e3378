// Package emitter implements the IR emitter: it walks the AST in
// source order, drives an internal/backend.Builder through
// internal/symbols.Table, and implements the numeric promotion
// lattice and operation-selection tables.
package emitter

import (
	"fmt"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend"
	"github.com/n0varider/nvylang/internal/errors"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/n0varider/nvylang/internal/symbols"
	"github.com/n0varider/nvylang/internal/token"
)

// Emitter holds the state threaded through one compilation unit: the
// backend being driven, that unit's Symbol Storage, and the module's
// mangled-name context (explicit, not global).
type Emitter struct {
	b       backend.Builder
	syms    *symbols.Table
	ctx     *rewriter.ModuleContext
	source  string
	file    string
	curFn   backend.Function
}

func New(b backend.Builder, syms *symbols.Table, ctx *rewriter.ModuleContext, source, file string) *Emitter {
	return &Emitter{b: b, syms: syms, ctx: ctx, source: source, file: file}
}

func (e *Emitter) resolveErr(pos token.Position, format string, args ...any) error {
	return errors.NewResolveError(pos, fmt.Sprintf(format, args...), e.source, e.file)
}

func (e *Emitter) typeErr(pos token.Position, format string, args ...any) error {
	return errors.NewTypeError(pos, fmt.Sprintf(format, args...), e.source, e.file)
}

// CompileUnit compiles every top-level declaration in source order.
func (e *Emitter) CompileUnit(decls []*ast.Node) error {
	for _, n := range decls {
		if err := e.compileTop(n); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) compileTop(n *ast.Node) error {
	switch n.Type {
	case token.FUNCTION:
		return e.compileFunction(n)
	case token.STRUCT:
		return e.compileStruct(n)
	default:
		return e.resolveErr(n.Pos, "unexpected top-level node: %s", n.Type)
	}
}
