package lexer

import "github.com/n0varider/nvylang/internal/token"

// keywords is the fixed, case-sensitive keyword table. Anything not
// found here, and not a recognised symbol, numeric literal, or
// quoted literal, lexes as VARIABLE.
var keywords = map[string]token.NodeType{
	"let":      token.VARDEF,
	"true":     token.BOOL_T,
	"false":    token.BOOL_FA,
	"func":     token.FUNCTION,
	"if":       token.IF,
	"else":     token.ELSE,
	"return":   token.RETURN,
	"for":      token.FORLOOP,
	"while":    token.WHILELOOP,
	"struct":   token.STRUCT,
	"final":    token.FINAL,
	"static":   token.STATIC,
	"public":   token.PUBLIC,
	"private":  token.PRIVATE,
	"impl":     token.IMPL,
	"constant": token.CONSTANT,
	"native":   token.NATIVE,
	"ref":      token.REF,

	"int32": token.TYPE_SYMBOL,
	"int64": token.TYPE_SYMBOL,
	"fp32":  token.TYPE_SYMBOL,
	"fp64":  token.TYPE_SYMBOL,
	"str":   token.TYPE_SYMBOL,
	"char":  token.TYPE_SYMBOL,
	"short": token.TYPE_SYMBOL,
	"bool":  token.TYPE_SYMBOL,
	"void":  token.TYPE_SYMBOL,
}

// typeSymbolKind maps a type keyword's literal text to the concrete
// *_T kind it denotes; the lexer uses it when it emits a TYPE_SYMBOL
// token, to record that kind as the token's type value.
var typeSymbolKind = map[string]token.NodeType{
	"int32": token.INT32_T,
	"int64": token.INT64_T,
	"fp32":  token.FP32_T,
	"fp64":  token.FP64_T,
	"str":   token.STR_T,
	"char":  token.CHAR_T,
	"short": token.INT32_T,
	"bool":  token.BOOL_T,
	"void":  token.VOID_T,
}

// symbols is the fixed single-character symbol table.
var symbols = map[byte]token.NodeType{
	'(': token.OPENPARENS,
	')': token.CLOSEPARENS,
	'[': token.OPENBRKT,
	']': token.CLOSEBRKT,
	'{': token.OPENBRACE,
	'}': token.CLOSEBRACE,
	';': token.ENDOFLINE,
	',': token.COMMADELIMIT,
	'=': token.ASSIGN,
	'+': token.ADD,
	'-': token.SUB,
	'*': token.MUL,
	'/': token.DIV,
	'%': token.MODULO,
	'&': token.BITAND,
	'|': token.BITOR,
	'^': token.BITXOR,
	'~': token.BITNEGATE,
	'<': token.LT,
	'>': token.GT,
	'!': token.NOT,
}
