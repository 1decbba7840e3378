package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/n0varider/nvylang/internal/lexer"
	"github.com/n0varider/nvylang/internal/rewriter"
	"github.com/n0varider/nvylang/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	lexRaw      bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Run the comment-stripping and name-mangling passes, tokenize the
result, and print the token graph.

By default the special-symbol resolution pass also runs, so pointer
types, array types/accesses, and function calls show up collapsed the
way the parser sees them. Pass --raw to see the lexer's direct output
instead.

Examples:
  # Tokenize a source file
  nvylang lex prog.nvy

  # Tokenize inline code
  nvylang lex -e "let x = 1 + 2;"

  # Show the lexer's raw output, before special-symbol resolution
  nvylang lex --raw prog.nvy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexRaw, "raw", false, "skip special-symbol resolution")
}

func runLex(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}

	raw, name, err := readSource(file, lexEvalExpr)
	if err != nil {
		return err
	}

	module := moduleNameFor(name)
	ctx := rewriter.NewModuleContext(module)
	lines := rewriteLines(raw, ctx)

	l, err := lexer.New(lineReader{lines}, name)
	if err != nil {
		return reportErr(err, wantColor(cmd))
	}
	g, err := l.Lex()
	if err != nil {
		return reportErr(err, wantColor(cmd))
	}
	if !lexRaw {
		rewriter.ResolveSpecialSymbols(g)
	}

	for cur := g.Next(g.Head()); cur != g.Tail(); cur = g.Next(cur) {
		printGraphToken(g.At(cur))
	}
	return nil
}

func printGraphToken(tok token.Token) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%-14s]", tok.Type)
	if !tok.Value.IsNull() {
		fmt.Fprintf(&sb, " %s", tok.Value.String())
	}
	fmt.Fprintf(&sb, " @%d:%d", tok.Pos.Line, tok.Pos.Column)
	fmt.Fprintln(os.Stdout, sb.String())
}
