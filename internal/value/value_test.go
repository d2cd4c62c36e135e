package value

import "testing"

func TestIntegerEquals(t *testing.T) {
	if !Int(3).Equals(Int(3)) {
		t.Error("Int(3) should equal Int(3)")
	}
	if Int(3).Equals(Int(4)) {
		t.Error("Int(3) should not equal Int(4)")
	}
}

func TestConsIdentity(t *testing.T) {
	a := Cons(Int(1), Null)
	b := Cons(Int(1), Null)
	if Eq(a, a) != true {
		t.Error("a pair should be eq? to itself")
	}
	if Eq(a, b) {
		t.Error("two distinct pairs with equal contents should not be eq?")
	}
}

func TestConsString(t *testing.T) {
	proper := Cons(Int(1), Cons(Int(2), Null))
	if got, want := proper.String(), "(1 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	dotted := Cons(Int(1), Int(2))
	if got, want := dotted.String(), "(1 . 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDoubleScalePreserved(t *testing.T) {
	d, ok := ParseDouble("1.20")
	if !ok {
		t.Fatal("ParseDouble(\"1.20\") failed")
	}
	if got, want := d.String(), "1.20"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDoubleNoScaleAppendsPoint(t *testing.T) {
	d := Dbl(2)
	if got, want := d.String(), "2.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToSliceRejectsImproperList(t *testing.T) {
	_, ok := ToSlice(Cons(Int(1), Int(2)))
	if ok {
		t.Error("ToSlice should reject an improper (dotted) list")
	}
}

func TestIsFalseOnlyBooleanFalse(t *testing.T) {
	if IsFalse(Int(0)) {
		t.Error("0 is truthy in this Scheme, not false")
	}
	if IsFalse(Str("")) {
		t.Error(`"" is truthy, not false`)
	}
	if !IsFalse(Bool(false)) {
		t.Error("#f must be false")
	}
}
