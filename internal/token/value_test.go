package token

import "testing"

func TestValueConstructorsAndAccessors(t *testing.T) {
	if v := Int32Value(42); v.AsInt32() != 42 || v.AsInt64Wide() != 42 {
		t.Errorf("Int32Value(42) accessors = %d/%d, want 42/42", v.AsInt32(), v.AsInt64Wide())
	}
	if v := Int64Value(1 << 40); v.AsInt64Wide() != 1<<40 {
		t.Errorf("Int64Value wide accessor mismatch")
	}
	if v := Float32Value(1.5); v.AsFloat32() != 1.5 {
		t.Errorf("Float32Value accessor mismatch")
	}
	if v := StringValue("hi"); v.AsString() != "hi" {
		t.Errorf("StringValue accessor mismatch")
	}
	if v := TypeValue(INT32_T); v.AsType() != INT32_T {
		t.Errorf("TypeValue accessor mismatch")
	}
	if !NullValue().IsNull() {
		t.Errorf("NullValue().IsNull() = false, want true")
	}
	if Int32Value(1).IsNull() {
		t.Errorf("Int32Value(1).IsNull() = true, want false")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NullValue(), ""},
		{Int32Value(7), "7"},
		{Int64Value(-9), "-9"},
		{Float64Value(3.5), "3.5"},
		{StringValue("abc"), "abc"},
		{TypeValue(INT32_T), "INT32_T"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Value.String() = %q, want %q", got, tt.want)
		}
	}
}
