// Package value implements the ten closed Scheme value variants: Integer,
// Double, String, Symbol, Boolean, Null, Void, Cons, Closure, and Primitive.
// Each variant is a distinct Go type implementing core.Value directly, so the
// evaluator's dispatch is an ordinary Go type switch with no hidden cases.
//
// Parser-internal "open"/"close" markers are deliberately not part of this
// sum (see internal/parse): they never reach the evaluator, so they live in
// a private type local to the parser's shift-reduce stack instead.
package value

import "github.com/gopherlang/schemer/internal/core"

// Type constants, one per Scheme value variant.
const (
	TInteger core.ValueType = iota
	TDouble
	TString
	TSymbol
	TBoolean
	TNull
	TVoid
	TCons
	TClosure
	TPrimitive
)

// TypeName returns a human-readable name for a ValueType, used in error
// messages (e.g. "car: expected pair, got integer").
func TypeName(t core.ValueType) string {
	switch t {
	case TInteger:
		return "integer"
	case TDouble:
		return "double"
	case TString:
		return "string"
	case TSymbol:
		return "symbol"
	case TBoolean:
		return "boolean"
	case TNull:
		return "null"
	case TVoid:
		return "void"
	case TCons:
		return "pair"
	case TClosure:
		return "closure"
	case TPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}
