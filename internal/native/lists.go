// Pair and list primitives. Grounded on the teacher's
// internal/native/series.go pattern of a shared typeError for the
// not-a-pair case, adapted from REBOL series access to Scheme pairs.
package native

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

func init() {
	add("cons", consPrim)
	add("car", carPrim)
	add("cdr", cdrPrim)
	add("list", listPrim)
	add("length", lengthPrim)
	add("reverse", reversePrim)
}

func consPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return nil, arityError("cons", 2, len(args))
	}
	return value.Cons(args[0], args[1]), nil
}

func carPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("car", 1, len(args))
	}
	if value.IsNull(args[0]) {
		return nil, emptyListError("car")
	}
	car, ok := value.Car(args[0])
	if !ok {
		return nil, typeError("car", "pair", args[0])
	}
	return car, nil
}

func cdrPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("cdr", 1, len(args))
	}
	if value.IsNull(args[0]) {
		return nil, emptyListError("cdr")
	}
	cdr, ok := value.Cdr(args[0])
	if !ok {
		return nil, typeError("cdr", "pair", args[0])
	}
	return cdr, nil
}

// emptyListError reports car/cdr called on the empty list, per SPEC_FULL.md
// §4.6: car or cdr of the empty list fails with "expected non-empty list".
func emptyListError(name string) *verror.Error {
	return verror.NewTypeError(verror.ErrIDEmptyList, [3]string{name, "", ""})
}

func listPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return value.FromSlice(args), nil
}

func lengthPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("length", 1, len(args))
	}
	n, ok := value.Length(args[0])
	if !ok {
		return nil, typeError("length", "proper list", args[0])
	}
	return value.Int(int64(n)), nil
}

func reversePrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("reverse", 1, len(args))
	}
	rev, ok := value.Reverse(args[0])
	if !ok {
		return nil, typeError("reverse", "proper list", args[0])
	}
	return rev, nil
}
