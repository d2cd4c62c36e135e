// Arithmetic and comparison primitives. Grounded on the teacher's
// internal/native/math.go: type-checked extraction of each argument, with
// integer/Double promotion the moment any argument is a Double (mirroring
// math.go's "if either argument is decimal, promote" rule, generalized
// from its fixed two-argument natives to this spec's variadic ones).
package native

import (
	"math"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

func init() {
	add("+", Add)
	add("-", Subtract)
	add("*", Multiply)
	add("/", Divide)
	add("<=", lessEqual)
	add("<", lessThan)
	add(">", greaterThan)
	add(">=", greaterEqual)
	add("=", numericEqual)
}

// numeric extracts a float64 view of v and reports whether v was a Double.
// Used only by the comparison chain, where every operand is converted to a
// common float64 scale for ordering anyway (SPEC_FULL.md doesn't promise
// exact-integer comparisons beyond float64's range).
func numeric(v core.Value) (f float64, isDouble, ok bool) {
	if i, ok := value.AsInteger(v); ok {
		return float64(i), false, true
	}
	if d, ok := value.AsDouble(v); ok {
		return d, true, true
	}
	return 0, false, false
}

// addInt64 adds a and b, reporting overflow rather than wrapping. Mirrors
// the teacher's math.go Add overflow check.
func addInt64(a, b int64) (int64, bool) {
	if a > 0 && b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

// subInt64 subtracts b from a, reporting overflow rather than wrapping.
// Mirrors the teacher's math.go Subtract overflow check.
func subInt64(a, b int64) (int64, bool) {
	if a > 0 && b < 0 && a > math.MaxInt64+b {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	return a - b, true
}

// mulInt64 multiplies a and b, reporting overflow rather than wrapping.
// Mirrors the teacher's math.go Multiply division-based overflow check.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	result := a * b
	if result/b != a {
		return 0, false
	}
	return result, true
}

// Add implements `+`: zero or more numbers, Integer unless any Double.
// Operands are accumulated as int64 until a Double appears, so integers
// within int64 range are never lossily round-tripped through float64.
func Add(args []core.Value, ev core.Evaluator) (core.Value, error) {
	intSum := int64(0)
	dblSum := float64(0)
	anyDouble := false
	for _, a := range args {
		if i, ok := value.AsInteger(a); ok {
			if anyDouble {
				dblSum += float64(i)
				continue
			}
			sum, ok := addInt64(intSum, i)
			if !ok {
				return nil, overflowError("+")
			}
			intSum = sum
			continue
		}
		d, ok := value.AsDouble(a)
		if !ok {
			return nil, numericTypeError("+")
		}
		if !anyDouble {
			anyDouble = true
			dblSum = float64(intSum)
		}
		dblSum += d
	}
	if anyDouble {
		return value.Dbl(dblSum), nil
	}
	return value.Int(intSum), nil
}

// Multiply implements `*`: zero or more numbers, Integer unless any Double.
// Operands are accumulated as int64 until a Double appears, so integers
// within int64 range are never lossily round-tripped through float64.
func Multiply(args []core.Value, ev core.Evaluator) (core.Value, error) {
	intProduct := int64(1)
	dblProduct := float64(1)
	anyDouble := false
	for _, a := range args {
		if i, ok := value.AsInteger(a); ok {
			if anyDouble {
				dblProduct *= float64(i)
				continue
			}
			product, ok := mulInt64(intProduct, i)
			if !ok {
				return nil, overflowError("*")
			}
			intProduct = product
			continue
		}
		d, ok := value.AsDouble(a)
		if !ok {
			return nil, numericTypeError("*")
		}
		if !anyDouble {
			anyDouble = true
			dblProduct = float64(intProduct)
		}
		dblProduct *= d
	}
	if anyDouble {
		return value.Dbl(dblProduct), nil
	}
	return value.Int(intProduct), nil
}

// Subtract implements `-`: one arg negates, more left-fold subtracts.
// Operands are accumulated as int64 until a Double appears, so integers
// within int64 range are never lossily round-tripped through float64.
func Subtract(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) == 0 {
		return nil, arityErrorAtLeast("-", 1, 0)
	}
	if i, ok := value.AsInteger(args[0]); ok {
		if len(args) == 1 {
			if i == math.MinInt64 {
				return nil, overflowError("-")
			}
			return value.Int(-i), nil
		}
		return subtractRest(i, args[1:])
	}
	first, ok := value.AsDouble(args[0])
	if !ok {
		return nil, numericTypeError("-")
	}
	if len(args) == 1 {
		return value.Dbl(-first), nil
	}
	dblResult := first
	for _, a := range args[1:] {
		f, _, ok := numeric(a)
		if !ok {
			return nil, numericTypeError("-")
		}
		dblResult -= f
	}
	return value.Dbl(dblResult), nil
}

// subtractRest left-folds the remaining operands of `-` into intFirst,
// switching to float64 accumulation the moment a Double appears.
func subtractRest(intFirst int64, rest []core.Value) (core.Value, error) {
	intResult := intFirst
	dblResult := float64(intFirst)
	anyDouble := false
	for _, a := range rest {
		if i, ok := value.AsInteger(a); ok {
			if anyDouble {
				dblResult -= float64(i)
				continue
			}
			result, ok := subInt64(intResult, i)
			if !ok {
				return nil, overflowError("-")
			}
			intResult = result
			continue
		}
		d, ok := value.AsDouble(a)
		if !ok {
			return nil, numericTypeError("-")
		}
		if !anyDouble {
			anyDouble = true
			dblResult = float64(intResult)
		}
		dblResult -= d
	}
	if anyDouble {
		return value.Dbl(dblResult), nil
	}
	return value.Int(intResult), nil
}

// Divide implements `/`: one arg reciprocates (as a Double - see
// SPEC_FULL.md §9's resolved open question, diverging intentionally from
// the reference's integer-truncating reciprocal bug), more left-fold
// divides. Any zero divisor is an error; an all-integer chain that divides
// evenly stays Integer.
func Divide(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) == 0 {
		return nil, arityErrorAtLeast("/", 1, 0)
	}
	first, _, ok := numeric(args[0])
	if !ok {
		return nil, numericTypeError("/")
	}
	if len(args) == 1 {
		if first == 0 {
			return nil, divideByZero()
		}
		return value.Dbl(1 / first), nil
	}

	intOnly := args[0].Type() == value.TInteger
	result := first
	for _, a := range args[1:] {
		f, isD, ok := numeric(a)
		if !ok {
			return nil, numericTypeError("/")
		}
		if f == 0 {
			return nil, divideByZero()
		}
		if isD {
			intOnly = false
		}
		result /= f
	}
	if intOnly && result == math.Trunc(result) {
		return value.Int(int64(result)), nil
	}
	return value.Dbl(result), nil
}

func divideByZero() error {
	return verror.NewArithmeticError(verror.ErrIDDivideByZero, [3]string{})
}

func overflowError(op string) error {
	return verror.NewArithmeticError(verror.ErrIDIntegerOverflow, [3]string{op, "", ""})
}

func compareChain(name string, args []core.Value, ev core.Evaluator, ok func(a, b float64) bool) (core.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorAtLeast(name, 2, len(args))
	}
	prev, _, valid := numeric(args[0])
	if !valid {
		return nil, numericTypeError(name)
	}
	for _, a := range args[1:] {
		cur, _, valid := numeric(a)
		if !valid {
			return nil, numericTypeError(name)
		}
		if !ok(prev, cur) {
			return value.Bool(false), nil
		}
		prev = cur
	}
	return value.Bool(true), nil
}

func lessEqual(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return compareChain("<=", args, ev, func(a, b float64) bool { return a <= b })
}

func lessThan(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return compareChain("<", args, ev, func(a, b float64) bool { return a < b })
}

func greaterThan(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return compareChain(">", args, ev, func(a, b float64) bool { return a > b })
}

func greaterEqual(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return compareChain(">=", args, ev, func(a, b float64) bool { return a >= b })
}

func numericEqual(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return compareChain("=", args, ev, func(a, b float64) bool { return a == b })
}
