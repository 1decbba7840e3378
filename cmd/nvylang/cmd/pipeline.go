package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/n0varider/nvylang/internal/ast"
	"github.com/n0varider/nvylang/internal/backend/stub"
	"github.com/n0varider/nvylang/internal/emitter"
	"github.com/n0varider/nvylang/internal/errors"
	"github.com/n0varider/nvylang/internal/lexer"
	"github.com/n0varider/nvylang/internal/parser"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/n0varider/nvylang/internal/source"
	"github.com/n0varider/nvylang/internal/symbols"
	"github.com/n0varider/nvylang/internal/token"
)

// lineReader adapts an already-materialized line slice to source.Reader,
// letting the rewritten (comment-stripped, name-mangled) lines feed the
// lexer the same way a fresh file read would.
type lineReader struct{ lines []string }

func (r lineReader) ReadLines() ([]string, error) { return r.lines, nil }

// moduleNameFor derives a compilation unit's module name from its file
// path: the base name without extension.
func moduleNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readSource loads a file through source.FileReader, or the --eval
// string under the pseudo-name "<eval>" when file is empty. Both paths
// go through the source.Reader interface so the CLI and the lexer agree
// on what "a line" means.
func readSource(file, evalExpr string) (string, string, error) {
	var reader source.Reader
	name := file
	switch {
	case evalExpr != "":
		reader = source.NewStringReader(evalExpr)
		name = "<eval>"
	case file == "":
		return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline code")
	default:
		reader = source.NewFileReader(file)
	}

	lines, err := reader.ReadLines()
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return strings.Join(lines, "\n"), name, nil
}

// rewriteLines runs the two line-level pre-parse passes: comment
// stripping, then function-name mangling.
func rewriteLines(raw string, ctx *rewriter.ModuleContext) []string {
	lines := strings.Split(raw, "\n")
	lines = rewriter.StripComments(lines)
	lines = rewriter.MangleFunctionNames(lines, ctx)
	return lines
}

// lexAndResolve runs the lexer, then the token-graph special-symbol
// resolution pass.
func lexAndResolve(lines []string, file string) (*token.Graph, error) {
	l, err := lexer.New(lineReader{lines: lines}, file)
	if err != nil {
		return nil, err
	}
	g, err := l.Lex()
	if err != nil {
		return nil, err
	}
	rewriter.ResolveSpecialSymbols(g)
	return g, nil
}

// parseUnit runs the parser over an already-lexed-and-resolved graph.
func parseUnit(g *token.Graph, file, source string) ([]*ast.Node, error) {
	p := parser.New(g, file, source)
	return p.Parse()
}

// compileUnit runs the full pipeline for one source unit and returns the
// rendered IR text from a fresh stub backend.
func compileUnit(file, evalExpr string) (string, error) {
	raw, name, err := readSource(file, evalExpr)
	if err != nil {
		return "", err
	}

	module := moduleNameFor(name)
	ctx := rewriter.NewModuleContext(module)
	lines := rewriteLines(raw, ctx)
	rewritten := strings.Join(lines, "\n")

	g, err := lexAndResolve(lines, name)
	if err != nil {
		return "", err
	}

	decls, err := parseUnit(g, name, rewritten)
	if err != nil {
		return "", err
	}

	b := stub.New(module)
	syms := symbols.New()
	em := emitter.New(b, syms, ctx, rewritten, name)
	if err := em.CompileUnit(decls); err != nil {
		return "", err
	}

	return b.String(), nil
}

// reportErr renders a pipeline error for the CLI: a *errors.CompilerError
// (or any errors.Diagnostic) goes through FormatErrors so every stage
// reports failures the same way; any other error (I/O, etc.) passes
// through unchanged.
func reportErr(err error, color bool) error {
	if err == nil {
		return nil
	}
	if diag, ok := err.(errors.Diagnostic); ok {
		return fmt.Errorf("%s", errors.FormatErrors([]errors.Diagnostic{diag}, color))
	}
	return err
}
