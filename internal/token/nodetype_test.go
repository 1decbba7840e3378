package token

import "testing"

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{ADD, "ADD"},
		{VARIABLE, "VARIABLE"},
		{NodeType(9999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("NodeType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestGroupPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(NodeType) bool
		yes  []NodeType
		no   []NodeType
	}{
		{"IsLiteral", IsLiteral, []NodeType{INT32, FP64, STR}, []NodeType{VARIABLE, ADD}},
		{"IsType", IsType, []NodeType{INT32_T, STAR, ARRAY_TYPE}, []NodeType{INT32, ADD}},
		{"IsArithmetic", IsArithmetic, []NodeType{ADD, SUB, MODULO}, []NodeType{BITAND, LT}},
		{"IsBitwise", IsBitwise, []NodeType{BITAND, BITXOR, BITNEGATE}, []NodeType{ADD, LOGICAND}},
		{"IsLogical", IsLogical, []NodeType{LT, EQ, NOT}, []NodeType{ADD, BITAND}},
		{"IsMemory", IsMemory, []NodeType{PTRDEREF, FINDADDRESS, VARIABLE}, []NodeType{ADD}},
		{"IsComparison", IsComparison, []NodeType{LT, EQ, NEQ}, []NodeType{LOGICAND, ADD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.yes {
				if !tt.pred(k) {
					t.Errorf("%s(%s) = false, want true", tt.name, k)
				}
			}
			for _, k := range tt.no {
				if tt.pred(k) {
					t.Errorf("%s(%s) = true, want false", tt.name, k)
				}
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	for _, k := range []NodeType{INT32, INT64, FP32, FP64, CHAR, SHORT, INT32_T, FP64_T} {
		if !IsNumeric(k) {
			t.Errorf("IsNumeric(%s) = false, want true", k)
		}
	}
	for _, k := range []NodeType{VARIABLE, STR, STR_T, ADD} {
		if IsNumeric(k) {
			t.Errorf("IsNumeric(%s) = true, want false", k)
		}
	}
}
