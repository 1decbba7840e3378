package token

import "strconv"

// valueKind discriminates the Value union. Unexported: callers switch on
// the accessor methods, not the tag, matching the sealed-sum-type guidance
// in the design notes this package implements.
type valueKind int

const (
	vkNull valueKind = iota
	vkInt8
	vkInt32
	vkInt64
	vkFloat32
	vkFloat64
	vkString
	vkType
)

// Value is the tagged union carried by every Token and AST node. Exactly
// one field is meaningful, selected by kind; NullValue() is the sentinel
// for nodes whose payload carries no information.
type Value struct {
	kind    valueKind
	i8      int8
	i32     int32
	i64     int64
	f32     float32
	f64     float64
	str     string
	typeRef NodeType
}

// NullValue is the sentinel for structural nodes that carry no payload.
func NullValue() Value { return Value{kind: vkNull} }

func Int8Value(v int8) Value     { return Value{kind: vkInt8, i8: v} }
func Int32Value(v int32) Value   { return Value{kind: vkInt32, i32: v} }
func Int64Value(v int64) Value   { return Value{kind: vkInt64, i64: v} }
func Float32Value(v float32) Value { return Value{kind: vkFloat32, f32: v} }
func Float64Value(v float64) Value { return Value{kind: vkFloat64, f64: v} }
func StringValue(v string) Value { return Value{kind: vkString, str: v} }
func TypeValue(v NodeType) Value { return Value{kind: vkType, typeRef: v} }

func (v Value) IsNull() bool { return v.kind == vkNull }

// IsString reports whether v holds a string payload, distinguishing a
// retagged ARRAY_SIZE/ARRAY_INDEX token naming a variable from one
// carrying an integer literal.
func (v Value) IsString() bool { return v.kind == vkString }

func (v Value) AsInt8() int8     { return v.i8 }
func (v Value) AsInt32() int32   { return v.i32 }
func (v Value) AsInt64() int64   { return v.i64 }
func (v Value) AsFloat32() float32 { return v.f32 }
func (v Value) AsFloat64() float64 { return v.f64 }
func (v Value) AsString() string { return v.str }
func (v Value) AsType() NodeType { return v.typeRef }

// AsInt64Wide widens any integer payload to int64, for code that only
// needs a plain numeric value regardless of declared width.
func (v Value) AsInt64Wide() int64 {
	switch v.kind {
	case vkInt8:
		return int64(v.i8)
	case vkInt32:
		return int64(v.i32)
	case vkInt64:
		return v.i64
	default:
		return 0
	}
}

// String renders the Value the way the source literal would have looked,
// used by the AST pretty-printer and error messages.
func (v Value) String() string {
	switch v.kind {
	case vkNull:
		return ""
	case vkInt8:
		return strconv.FormatInt(int64(v.i8), 10)
	case vkInt32:
		return strconv.FormatInt(int64(v.i32), 10)
	case vkInt64:
		return strconv.FormatInt(v.i64, 10)
	case vkFloat32:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case vkFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case vkString:
		return v.str
	case vkType:
		return v.typeRef.String()
	default:
		return ""
	}
}
