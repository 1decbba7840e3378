package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nvylang",
	Short: "nvylang compiler front end",
	Long: `nvylang is a Go implementation of the nvylang compiler front end.

nvylang is a small statically-typed imperative language with:
  - Functions, structs, pointers and fixed-size arrays
  - Numeric promotion across int32/int64/fp32/fp64
  - A pre-parse rewrite stage for comment stripping, name mangling,
    and special-symbol resolution
  - A minimal IR emitter driven by a pluggable backend.Builder`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// wantColor reports whether diagnostics should be colorized: off when
// --no-color is set, when NO_COLOR is set in the environment (the
// widely-observed convention: https://no-color.org), or when stdout
// isn't a terminal.
func wantColor(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
