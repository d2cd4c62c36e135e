package verror

import (
	"strings"
	"testing"
)

func TestErrorMessageInterpolation(t *testing.T) {
	err := NewTypeError(ErrIDWrongType, [3]string{"car", "pair", "integer"})
	want := "car: expected pair, got integer"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestErrorStringIncludesCategory(t *testing.T) {
	err := NewLookupError(ErrIDUnboundSymbol, [3]string{"foo", "", ""})
	if !strings.HasPrefix(err.Error(), "lookup error:") {
		t.Errorf("Error() = %q, want a \"lookup error:\" prefix", err.Error())
	}
}

func TestSetNearAppendsContext(t *testing.T) {
	err := NewSyntaxError(ErrIDUnbalancedParens, [3]string{}).SetNear("(+ 1")
	if !strings.Contains(err.Error(), "(near: (+ 1)") {
		t.Errorf("Error() = %q, want it to include the Near snippet", err.Error())
	}
}

func TestToExitCodeMapping(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		want     int
	}{
		{CategorySyntax, 2},
		{CategoryIO, 3},
		{CategoryResource, 70},
		{CategoryType, 1},
		{CategoryArity, 1},
	}
	for _, tc := range tests {
		if got := ToExitCode(tc.category); got != tc.want {
			t.Errorf("ToExitCode(%v) = %d, want %d", tc.category, got, tc.want)
		}
	}
}

func TestUnknownIDFallsBackToRawArgs(t *testing.T) {
	err := NewError(CategoryForm, "not-a-real-id", [3]string{"a", "b", "c"})
	if err.Message != "a b c" {
		t.Errorf("Message = %q, want the raw args joined", err.Message)
	}
}
