package value

import (
	"strconv"

	"github.com/gopherlang/schemer/internal/core"
)

// IntegerValue is a signed 64-bit integer.
type IntegerValue int64

func (i IntegerValue) Type() core.ValueType { return TInteger }
func (i IntegerValue) String() string       { return strconv.FormatInt(int64(i), 10) }
func (i IntegerValue) Equals(other core.Value) bool {
	o, ok := other.(IntegerValue)
	return ok && i == o
}

// Int constructs an Integer value.
func Int(i int64) core.Value { return IntegerValue(i) }

// AsInteger extracts the int64 payload if v is an Integer.
func AsInteger(v core.Value) (int64, bool) {
	i, ok := v.(IntegerValue)
	return int64(i), ok
}

// StringValue is an immutable sequence of UTF-8 bytes.
type StringValue string

func (s StringValue) Type() core.ValueType { return TString }
func (s StringValue) String() string       { return `"` + string(s) + `"` }
func (s StringValue) Equals(other core.Value) bool {
	o, ok := other.(StringValue)
	return ok && s == o
}

// Str constructs a String value.
func Str(s string) core.Value { return StringValue(s) }

// AsString extracts the Go string payload if v is a String.
func AsString(v core.Value) (string, bool) {
	s, ok := v.(StringValue)
	return string(s), ok
}

// SymbolValue is an identifier; equality is byte-equality of its text.
type SymbolValue string

func (s SymbolValue) Type() core.ValueType { return TSymbol }
func (s SymbolValue) String() string       { return string(s) }
func (s SymbolValue) Equals(other core.Value) bool {
	o, ok := other.(SymbolValue)
	return ok && s == o
}

// Sym constructs a Symbol value.
func Sym(name string) core.Value { return SymbolValue(name) }

// AsSymbol extracts the Go string payload if v is a Symbol.
func AsSymbol(v core.Value) (string, bool) {
	s, ok := v.(SymbolValue)
	return string(s), ok
}

// BooleanValue is one of the two literal texts #t / #f.
type BooleanValue bool

func (b BooleanValue) Type() core.ValueType { return TBoolean }
func (b BooleanValue) String() string {
	if b {
		return "#t"
	}
	return "#f"
}
func (b BooleanValue) Equals(other core.Value) bool {
	o, ok := other.(BooleanValue)
	return ok && b == o
}

// Bool constructs a Boolean value.
func Bool(b bool) core.Value { return BooleanValue(b) }

// AsBoolean extracts the bool payload if v is a Boolean.
func AsBoolean(v core.Value) (bool, bool) {
	b, ok := v.(BooleanValue)
	return bool(b), ok
}

// IsFalse reports whether v is Scheme-false: exactly the Boolean #f.
// Every other value, including 0, "", and Null, is truthy.
func IsFalse(v core.Value) bool {
	b, ok := v.(BooleanValue)
	return ok && !bool(b)
}

// NullValue represents the empty list ().
type NullValue struct{}

func (NullValue) Type() core.ValueType { return TNull }
func (NullValue) String() string       { return "()" }
func (NullValue) Equals(other core.Value) bool {
	_, ok := other.(NullValue)
	return ok
}

// Null is the single canonical empty-list value.
var Null core.Value = NullValue{}

// IsNull reports whether v is the empty list.
func IsNull(v core.Value) bool {
	_, ok := v.(NullValue)
	return ok
}

// VoidValue is the "no useful value" result of define, set!, and similar forms.
type VoidValue struct{}

func (VoidValue) Type() core.ValueType { return TVoid }
func (VoidValue) String() string       { return "" }
func (VoidValue) Equals(other core.Value) bool {
	_, ok := other.(VoidValue)
	return ok
}

// Void is the single canonical void value.
var Void core.Value = VoidValue{}

// IsVoid reports whether v is Void.
func IsVoid(v core.Value) bool {
	_, ok := v.(VoidValue)
	return ok
}
