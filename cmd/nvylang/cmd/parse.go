package cmd

import (
	"fmt"
	"strings"

	"github.com/n0varider/nvylang/internal/errors"
	"github.com/n0varider/nvylang/internal/parser"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseRecover  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its AST",
	Long: `Run the full pre-parse and lexing pipeline, parse the result, and
print the resulting top-level AST nodes, one per declaration.

With --recover, a malformed statement doesn't stop the dump: the parser
resynchronizes at the next statement boundary and every error found
along the way is reported together. This is useful for inspecting the
AST of a unit with more than one mistake in it; nvylang build never
uses this mode, since a unit with any error can't be emitted anyway.

Examples:
  # Parse a source file
  nvylang parse prog.nvy

  # Parse inline code
  nvylang parse -e "func main() -> void { return; }"

  # Keep going past the first malformed statement
  nvylang parse --recover prog.nvy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseRecover, "recover", false, "keep parsing past the first error and report all of them")
}

func runParse(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}

	raw, name, err := readSource(file, parseEvalExpr)
	if err != nil {
		return err
	}

	module := moduleNameFor(name)
	ctx := rewriter.NewModuleContext(module)
	lines := rewriteLines(raw, ctx)
	rewritten := strings.Join(lines, "\n")

	g, err := lexAndResolve(lines, name)
	if err != nil {
		return reportErr(err, wantColor(cmd))
	}

	if parseRecover {
		p := parser.New(g, name, rewritten)
		decls, errs := p.ParseTolerant()
		for _, n := range decls {
			fmt.Println(n.String())
		}
		if len(errs) > 0 {
			diags := make([]errors.Diagnostic, 0, len(errs))
			for _, e := range errs {
				if diag, ok := e.(errors.Diagnostic); ok {
					diags = append(diags, diag)
				}
			}
			return fmt.Errorf("%s", errors.FormatErrors(diags, wantColor(cmd)))
		}
		return nil
	}

	decls, err := parseUnit(g, name, rewritten)
	if err != nil {
		return reportErr(err, wantColor(cmd))
	}

	for _, n := range decls {
		fmt.Println(n.String())
	}
	return nil
}
