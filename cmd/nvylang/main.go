// Command nvylang drives the lexer/rewriter/parser/emitter pipeline
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/n0varider/nvylang/cmd/nvylang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
