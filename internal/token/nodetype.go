package token

// NodeType tags every token and every AST node. The enumeration is closed:
// new kinds are never added at runtime, only read through the membership
// predicates below.
type NodeType int

const (
	INVALID NodeType = iota
	ENDOFSTREAM
	PROGRAM

	// Literal kinds
	INT32
	INT64
	FP32
	FP64
	STR
	CHAR
	SHORT

	// Type kinds
	INT32_T
	INT64_T
	FP32_T
	FP64_T
	STR_T
	CHAR_T
	BOOL_T
	VOID_T
	TYPE_T
	FUNCTION_T
	USERTYPE_T

	// Arithmetic ops
	ADD
	SUB
	MUL
	DIV
	MODULO

	// Bitwise ops
	BITAND
	BITOR
	BITXOR
	ARITHLEFTSHIFT
	ARITHRIGHTSHIFT
	LOGICRIGHTSHIFT
	BITNEGATE

	// Logical ops
	LT
	LTE
	GT
	GTE
	EQ
	NEQ
	LOGICAND
	LOGICOR
	LOGICXOR
	NOT

	// Memory ops
	PTRDEREF
	FINDADDRESS
	VARIABLE
	SWITCHSIGN

	// Structural
	FUNCTION
	FUNCTIONPARAM
	FUNCTIONRETURN
	FUNCTIONBODY
	FUNCTIONCALL
	VARDEF
	ASSIGN
	RETURN
	IF
	ELSE
	CONDITION
	FORLOOP
	WHILELOOP
	LOOPDEF
	LOOPCOND
	LOOPITERATION
	STRUCT
	MEMBER
	ARRAY
	ARRAY_TYPE
	ARRAY_ACCESS
	ARRAY_INDEX
	ARRAY_SIZE
	CAST
	STAR

	// Delimiters
	OPENPARENS
	CLOSEPARENS
	OPENBRKT
	CLOSEBRKT
	OPENBRACE
	CLOSEBRACE
	ENDOFLINE
	COMMADELIMIT
	DQUOTE
	SQUOTE

	// Modifiers / keywords that double as start symbols
	NATIVE
	PUBLIC
	PRIVATE
	FINAL
	CONSTANT
	STATIC
	IMPL
	REF
	BOOL_FA

	// Pseudo token carrying the raw textual identifier for a type name,
	// before it is resolved to a concrete *_T kind by the rewriter.
	TYPE_SYMBOL
)

var names = map[NodeType]string{
	INVALID: "INVALID", ENDOFSTREAM: "ENDOFSTREAM", PROGRAM: "PROGRAM",
	INT32: "INT32", INT64: "INT64", FP32: "FP32", FP64: "FP64", STR: "STR", CHAR: "CHAR", SHORT: "SHORT",
	INT32_T: "INT32_T", INT64_T: "INT64_T", FP32_T: "FP32_T", FP64_T: "FP64_T",
	STR_T: "STR_T", CHAR_T: "CHAR_T", BOOL_T: "BOOL_T", VOID_T: "VOID_T",
	TYPE_T: "TYPE_T", FUNCTION_T: "FUNCTION_T", USERTYPE_T: "USERTYPE_T",
	ADD: "ADD", SUB: "SUB", MUL: "MUL", DIV: "DIV", MODULO: "MODULO",
	BITAND: "BITAND", BITOR: "BITOR", BITXOR: "BITXOR",
	ARITHLEFTSHIFT: "ARITHLEFTSHIFT", ARITHRIGHTSHIFT: "ARITHRIGHTSHIFT",
	LOGICRIGHTSHIFT: "LOGICRIGHTSHIFT", BITNEGATE: "BITNEGATE",
	LT: "LT", LTE: "LTE", GT: "GT", GTE: "GTE", EQ: "EQ", NEQ: "NEQ",
	LOGICAND: "LOGICAND", LOGICOR: "LOGICOR", LOGICXOR: "LOGICXOR", NOT: "NOT",
	PTRDEREF: "PTRDEREF", FINDADDRESS: "FINDADDRESS", VARIABLE: "VARIABLE", SWITCHSIGN: "SWITCHSIGN",
	FUNCTION: "FUNCTION", FUNCTIONPARAM: "FUNCTIONPARAM", FUNCTIONRETURN: "FUNCTIONRETURN",
	FUNCTIONBODY: "FUNCTIONBODY", FUNCTIONCALL: "FUNCTIONCALL", VARDEF: "VARDEF", ASSIGN: "ASSIGN",
	RETURN: "RETURN", IF: "IF", ELSE: "ELSE", CONDITION: "CONDITION",
	FORLOOP: "FORLOOP", WHILELOOP: "WHILELOOP", LOOPDEF: "LOOPDEF", LOOPCOND: "LOOPCOND",
	LOOPITERATION: "LOOPITERATION", STRUCT: "STRUCT", MEMBER: "MEMBER",
	ARRAY: "ARRAY", ARRAY_TYPE: "ARRAY_TYPE", ARRAY_ACCESS: "ARRAY_ACCESS",
	ARRAY_INDEX: "ARRAY_INDEX", ARRAY_SIZE: "ARRAY_SIZE", CAST: "CAST", STAR: "STAR",
	OPENPARENS: "OPENPARENS", CLOSEPARENS: "CLOSEPARENS", OPENBRKT: "OPENBRKT", CLOSEBRKT: "CLOSEBRKT",
	OPENBRACE: "OPENBRACE", CLOSEBRACE: "CLOSEBRACE", ENDOFLINE: "ENDOFLINE",
	COMMADELIMIT: "COMMADELIMIT", DQUOTE: "DQUOTE", SQUOTE: "SQUOTE",
	NATIVE: "NATIVE", PUBLIC: "PUBLIC", PRIVATE: "PRIVATE", FINAL: "FINAL",
	CONSTANT: "CONSTANT", STATIC: "STATIC", IMPL: "IMPL", REF: "REF", BOOL_FA: "BOOL_FA",
	TYPE_SYMBOL: "TYPE_SYMBOL",
}

func (t NodeType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// literalKinds, typeKinds, ... back the membership predicates below. Using
// set lookups rather than range checks keeps the grouping correct even as
// new kinds are inserted into the iota block above.
var literalKinds = set(INT32, INT64, FP32, FP64, STR, CHAR, SHORT)
var typeKinds = set(INT32_T, INT64_T, FP32_T, FP64_T, STR_T, CHAR_T, BOOL_T, VOID_T, TYPE_T, FUNCTION_T, USERTYPE_T, ARRAY_TYPE, STAR)
var arithmeticOps = set(ADD, SUB, MUL, DIV, MODULO)
var bitwiseOps = set(BITAND, BITOR, BITXOR, ARITHLEFTSHIFT, ARITHRIGHTSHIFT, LOGICRIGHTSHIFT, BITNEGATE)
var logicalOps = set(LT, LTE, GT, GTE, EQ, NEQ, LOGICAND, LOGICOR, LOGICXOR, NOT)
var memoryOps = set(PTRDEREF, FINDADDRESS, VARIABLE)
var comparisonOps = set(LT, LTE, GT, GTE, EQ, NEQ)

func set(kinds ...NodeType) map[NodeType]struct{} {
	m := make(map[NodeType]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}

func IsLiteral(t NodeType) bool    { _, ok := literalKinds[t]; return ok }
func IsType(t NodeType) bool       { _, ok := typeKinds[t]; return ok }
func IsArithmetic(t NodeType) bool { _, ok := arithmeticOps[t]; return ok }
func IsBitwise(t NodeType) bool    { _, ok := bitwiseOps[t]; return ok }
func IsLogical(t NodeType) bool    { _, ok := logicalOps[t]; return ok }
func IsMemory(t NodeType) bool     { _, ok := memoryOps[t]; return ok }
func IsComparison(t NodeType) bool { _, ok := comparisonOps[t]; return ok }

// IsNumeric reports whether t is a literal or type kind that participates
// in the arithmetic promotion lattice.
func IsNumeric(t NodeType) bool {
	switch t {
	case INT32, INT64, FP32, FP64, CHAR, SHORT,
		INT32_T, INT64_T, FP32_T, FP64_T, CHAR_T:
		return true
	default:
		return false
	}
}
