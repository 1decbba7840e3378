// Package token defines the closed NodeType enumeration, the tagged Value
// union, and the token graph arena shared by the lexer, the pre-parse
// rewriter, and the parser.
package token

import "fmt"

// Position locates a token or AST node in the original source.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
