package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	buildOutputFile string
	buildEvalExpr   string
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Run the full pipeline and emit IR",
	Long: `Run the nvylang pipeline end to end: comment stripping, function-name
mangling, lexing, special-symbol resolution, parsing, and IR emission.

Examples:
  # Build a source file, writing IR to prog.ir
  nvylang build prog.nvy

  # Build with custom output file
  nvylang build prog.nvy -o prog.ir

  # Build inline code instead of a file
  nvylang build -e "func main() -> void { return; }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "output file (default: <file>.ir, or stdout with -e)")
	buildCmd.Flags().StringVarP(&buildEvalExpr, "eval", "e", "", "build inline code instead of reading from file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Building %s...\n", unitLabel(file, buildEvalExpr))
	}

	ir, err := compileUnit(file, buildEvalExpr)
	if err != nil {
		return reportErr(err, wantColor(cmd))
	}

	if buildOutputFile == "" {
		if file == "" {
			fmt.Print(ir)
			return nil
		}
		ext := filepath.Ext(file)
		out := strings.TrimSuffix(file, ext) + ".ir"
		if err := os.WriteFile(out, []byte(ir), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", out, err)
		}
		fmt.Printf("Built %s -> %s\n", file, out)
		return nil
	}

	if err := os.WriteFile(buildOutputFile, []byte(ir), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", buildOutputFile, err)
	}
	fmt.Printf("Built %s -> %s\n", unitLabel(file, buildEvalExpr), buildOutputFile)
	return nil
}

func unitLabel(file, evalExpr string) string {
	if evalExpr != "" {
		return "<eval>"
	}
	return file
}
