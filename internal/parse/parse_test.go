package parse

import (
	"testing"

	"github.com/gopherlang/schemer/internal/value"
)

func TestParse_Atom(t *testing.T) {
	forms, err := Parse("42")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(forms) != 1 || forms[0].String() != "42" {
		t.Fatalf("got %v", forms)
	}
}

func TestParse_NestedList(t *testing.T) {
	forms, err := Parse("(+ 1 (* 2 3))")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(forms))
	}
	if got, want := forms[0].String(), "(+ 1 (* 2 3))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_MultipleTopLevelForms(t *testing.T) {
	forms, err := Parse("1 2 3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
}

func TestParse_UnbalancedOpen(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected an unbalanced-parens error")
	}
}

func TestParse_UnbalancedClose(t *testing.T) {
	_, err := Parse("1)")
	if err == nil {
		t.Fatal("expected an unbalanced-parens error")
	}
}

func TestParse_EmptyList(t *testing.T) {
	forms, err := Parse("()")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !value.IsNull(forms[0]) {
		t.Errorf("got %v, want the empty list", forms[0])
	}
}
