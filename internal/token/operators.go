package token

// Precedence returns the binding power of an operator NodeType, per the
// immutable, process-wide table in the data model. Higher binds tighter.
// ATTRIB (member access, `.`) binds tightest of all.
var precedence = map[NodeType]int{
	LOGICOR:  3,
	LOGICAND: 4,
	BITOR:    5,
	BITXOR:   6,
	BITAND:   7,
	EQ:       8,
	NEQ:      8,
	LT:       9,
	LTE:      9,
	GT:       9,
	GTE:      9,

	ARITHLEFTSHIFT:  10,
	ARITHRIGHTSHIFT: 10,
	LOGICRIGHTSHIFT: 10,

	ADD: 11,
	SUB: 11,

	MUL:    12,
	DIV:    12,
	MODULO: 12,

	BITNEGATE: 13,
	NOT:       13,

	MEMBER: 14,
}

func Precedence(t NodeType) int {
	if p, ok := precedence[t]; ok {
		return p
	}
	return 0
}

// prefixOperators is the set of binary-looking operator tokens that the
// shunting-yard expression parser remaps to a unary meaning when they
// appear where a value is expected (expectUnary == true).
var prefixOperators = set(MUL, BITAND, SUB, NOT)

// prefixRemap gives the unary NodeType substituted for each member of
// prefixOperators.
var prefixRemap = map[NodeType]NodeType{
	MUL:    PTRDEREF,
	BITAND: FINDADDRESS,
	SUB:    SWITCHSIGN,
	NOT:    NOT,
}

func IsPrefixCandidate(t NodeType) bool {
	_, ok := prefixOperators[t]
	return ok
}

func RemapPrefix(t NodeType) NodeType {
	if r, ok := prefixRemap[t]; ok {
		return r
	}
	return t
}

// numericRank is the process-wide ordering used by arithmeticPrecedence
// to pick the promotion target of a mixed-type expression. Higher ranks
// win.
var numericRank = map[NodeType]int{
	CHAR:    -1,
	CHAR_T:  -1,
	SHORT:   0,
	INT32:   1,
	INT32_T: 1,
	INT64:   2,
	INT64_T: 2,
	FP32:    3,
	FP32_T:  3,
	FP64:    4,
	FP64_T:  4,
}

// NumericRank returns the rank of t in the promotion lattice, or
// (0, false) if t never participates in arithmetic promotion.
func NumericRank(t NodeType) (int, bool) {
	r, ok := numericRank[t]
	return r, ok
}

// HigherRank returns the *_T type kind of whichever of a, b has the
// larger numeric rank (a literal kind such as INT64 maps to INT64_T),
// defaulting to INT32_T (the lattice floor) when neither is numeric.
func HigherRank(a, b NodeType) NodeType {
	ra, aok := NumericRank(a)
	rb, bok := NumericRank(b)
	switch {
	case aok && bok:
		if ra >= rb {
			return literalToType(a)
		}
		return literalToType(b)
	case aok:
		return literalToType(a)
	case bok:
		return literalToType(b)
	default:
		return INT32_T
	}
}

// literalToType normalises a literal kind (INT32, FP64, ...) to its
// corresponding type kind (INT32_T, FP64_T, ...) so that
// arithmeticPrecedence always yields a *_T result usable as a declared
// variable type.
func literalToType(t NodeType) NodeType {
	switch t {
	case INT32:
		return INT32_T
	case INT64:
		return INT64_T
	case FP32:
		return FP32_T
	case FP64:
		return FP64_T
	case CHAR:
		return CHAR_T
	case SHORT:
		return INT32_T
	default:
		return t
	}
}
