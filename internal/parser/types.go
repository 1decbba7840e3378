package parser

import "github.com/n0varider/nvylang/internal/token"

// parseTypeSpec reads one type reference (a bare TYPE_SYMBOL, a STAR
// pointer, an ARRAY_TYPE, or a VARIABLE naming a struct/USERTYPE_T) and
// returns the NodeType/Value pair an AST type-node should carry, plus
// the handle to resume from.
func (p *Parser) parseTypeSpec(h int) (kind token.NodeType, data token.Value, next int, err error) {
	t := p.tok(h)
	switch t.Type {
	case token.TYPE_SYMBOL:
		return t.Value.AsType(), token.NullValue(), p.g.Next(h), nil
	case token.STAR:
		return token.STAR, t.Value, p.g.Next(h), nil
	case token.ARRAY_TYPE:
		return token.ARRAY_TYPE, t.Value, p.g.Next(h), nil
	case token.VARIABLE:
		return token.USERTYPE_T, token.StringValue(t.Value.AsString()), p.g.Next(h), nil
	default:
		return token.INVALID, token.NullValue(), h, p.errorf(h, "expected a type, got %s", t.Type)
	}
}
