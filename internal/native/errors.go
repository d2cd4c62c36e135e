package native

import (
	"strconv"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

// arityError reports a primitive called with the wrong number of arguments.
func arityError(name string, expected, actual int) *verror.Error {
	return verror.NewArityError(verror.ErrIDWrongArgCount, [3]string{name, strconv.Itoa(expected), strconv.Itoa(actual)})
}

// arityErrorAtLeast reports a primitive called with fewer than the minimum
// number of arguments it requires.
func arityErrorAtLeast(name string, min, actual int) *verror.Error {
	return verror.NewArityError(verror.ErrIDWrongArgCount, [3]string{name, "at least " + strconv.Itoa(min), strconv.Itoa(actual)})
}

// typeError reports a primitive argument of the wrong Value variant.
func typeError(name, expectedType string, actual core.Value) *verror.Error {
	return verror.NewTypeError(verror.ErrIDWrongType, [3]string{name, expectedType, value.TypeName(actual.Type())})
}

// numericTypeError reports a non-numeric argument to an arithmetic primitive.
func numericTypeError(name string) *verror.Error {
	return verror.NewTypeError(verror.ErrIDExpectedNumber, [3]string{name, "", ""})
}
