// Type predicates and the two equality primitives. Grounded on the
// teacher's internal/native/types.go, which implements one predicate per
// Value variant by a type switch over the already-evaluated argument.
package native

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
)

func init() {
	add("null?", isNull)
	add("pair?", isPair)
	add("number?", isNumber)
	add("integer?", isInteger)
	add("string?", isString)
	add("symbol?", isSymbol)
	add("boolean?", isBoolean)
	add("procedure?", isProcedure)
	add("not", notPrim)
	add("eq?", eqPrim)
	add("equal?", equalPrim)
}

func unaryPredicate(name string, args []core.Value, test func(core.Value) bool) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError(name, 1, len(args))
	}
	return value.Bool(test(args[0])), nil
}

func isNull(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("null?", args, value.IsNull)
}

func isPair(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("pair?", args, func(v core.Value) bool {
		_, ok := value.AsCons(v)
		return ok
	})
}

func isNumber(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("number?", args, func(v core.Value) bool {
		return v.Type() == value.TInteger || v.Type() == value.TDouble
	})
}

func isInteger(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("integer?", args, func(v core.Value) bool {
		return v.Type() == value.TInteger
	})
}

func isString(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("string?", args, func(v core.Value) bool {
		return v.Type() == value.TString
	})
}

func isSymbol(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("symbol?", args, func(v core.Value) bool {
		return v.Type() == value.TSymbol
	})
}

func isBoolean(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("boolean?", args, func(v core.Value) bool {
		return v.Type() == value.TBoolean
	})
}

func isProcedure(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return unaryPredicate("procedure?", args, func(v core.Value) bool {
		return v.Type() == value.TClosure || v.Type() == value.TPrimitive
	})
}

func notPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("not", 1, len(args))
	}
	return value.Bool(value.IsFalse(args[0])), nil
}

// eqPrim implements eq?: pointer/interface identity for Cons, Closure, and
// Primitive, structural equality for every atomic variant (value.Eq).
func eqPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return nil, arityError("eq?", 2, len(args))
	}
	return value.Bool(value.Eq(args[0], args[1])), nil
}

// equalPrim implements equal?: structural equality, recursing through
// pairs rather than comparing their identity. Scheme subsets that expose
// both eq? and equal? draw exactly this distinction.
func equalPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return nil, arityError("equal?", 2, len(args))
	}
	return value.Bool(deepEqual(args[0], args[1])), nil
}

func deepEqual(a, b core.Value) bool {
	consA, aIsCons := value.AsCons(a)
	consB, bIsCons := value.AsCons(b)
	if aIsCons != bIsCons {
		return false
	}
	if aIsCons {
		return deepEqual(consA.Car, consB.Car) && deepEqual(consA.Cdr, consB.Cdr)
	}
	return value.Eq(a, b)
}
