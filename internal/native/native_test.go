package native

import (
	"math"
	"testing"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/frame"
	"github.com/gopherlang/schemer/internal/value"
)

func TestRegisterInstallsEveryPrimitive(t *testing.T) {
	top := frame.New(frame.NoParent)
	Register(top)
	for name := range registry {
		if !top.HasLocal(name) {
			t.Errorf("Register did not bind %q", name)
		}
	}
}

func TestAddIntegerStaysInteger(t *testing.T) {
	result, err := Add([]core.Value{value.Int(1), value.Int(2)}, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if result.Type() != value.TInteger || result.String() != "3" {
		t.Errorf("got %v", result)
	}
}

func TestAddPromotesToDouble(t *testing.T) {
	result, err := Add([]core.Value{value.Int(1), value.Dbl(2.5)}, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if result.Type() != value.TDouble {
		t.Errorf("expected a Double result, got %v", result)
	}
}

func TestAddLargeIntegersStayExact(t *testing.T) {
	// 2^53 + 1 would be lossily rounded if routed through float64.
	result, err := Add([]core.Value{value.Int(9007199254740993), value.Int(1)}, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if result.String() != "9007199254740994" {
		t.Errorf("Add(9007199254740993, 1) = %v, want 9007199254740994", result)
	}
}

func TestAddOverflowIsError(t *testing.T) {
	if _, err := Add([]core.Value{value.Int(math.MaxInt64), value.Int(1)}, nil); err == nil {
		t.Error("expected an overflow error for MaxInt64 + 1")
	}
}

func TestSubtractOverflowIsError(t *testing.T) {
	if _, err := Subtract([]core.Value{value.Int(math.MinInt64), value.Int(1)}, nil); err == nil {
		t.Error("expected an overflow error for MinInt64 - 1")
	}
}

func TestMultiplyOverflowIsError(t *testing.T) {
	if _, err := Multiply([]core.Value{value.Int(math.MaxInt64), value.Int(2)}, nil); err == nil {
		t.Error("expected an overflow error for MaxInt64 * 2")
	}
}

func TestMultiplyLargeIntegersStayExact(t *testing.T) {
	result, err := Multiply([]core.Value{value.Int(4503599627370497), value.Int(2)}, nil)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	if result.String() != "9007199254740994" {
		t.Errorf("Multiply(4503599627370497, 2) = %v, want 9007199254740994", result)
	}
}

func TestDivideSingleArgReciprocatesAsDouble(t *testing.T) {
	result, err := Divide([]core.Value{value.Int(4)}, nil)
	if err != nil {
		t.Fatalf("Divide() error = %v", err)
	}
	if result.Type() != value.TDouble || result.String() != "0.25" {
		t.Errorf("got %v, want Double 0.25", result)
	}
}

func TestDivideEvenIntegersStayInteger(t *testing.T) {
	result, err := Divide([]core.Value{value.Int(10), value.Int(2)}, nil)
	if err != nil {
		t.Fatalf("Divide() error = %v", err)
	}
	if result.Type() != value.TInteger || result.String() != "5" {
		t.Errorf("got %v, want Integer 5", result)
	}
}

func TestDivideByZeroIsError(t *testing.T) {
	if _, err := Divide([]core.Value{value.Int(1), value.Int(0)}, nil); err == nil {
		t.Error("expected a divide-by-zero error")
	}
}

func TestComparisonChainRequiresTwoArgs(t *testing.T) {
	if _, err := lessThan([]core.Value{value.Int(1)}, nil); err == nil {
		t.Error("expected an arity error for < with one argument")
	}
}

func TestComparisonChain(t *testing.T) {
	result, err := lessThan([]core.Value{value.Int(1), value.Int(2), value.Int(3)}, nil)
	if err != nil {
		t.Fatalf("< error = %v", err)
	}
	if b, _ := value.AsBoolean(result); !b {
		t.Error("1 < 2 < 3 should be #t")
	}
}

func TestEqIdentityVsStructural(t *testing.T) {
	a := value.Cons(value.Int(1), value.Null)
	b := value.Cons(value.Int(1), value.Null)
	result, _ := eqPrim([]core.Value{a, a}, nil)
	if ok, _ := value.AsBoolean(result); !ok {
		t.Error("a pair should be eq? to itself")
	}
	result, _ = eqPrim([]core.Value{a, b}, nil)
	if ok, _ := value.AsBoolean(result); ok {
		t.Error("two distinct pairs should not be eq?")
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := value.Cons(value.Int(1), value.Null)
	b := value.Cons(value.Int(1), value.Null)
	result, _ := equalPrim([]core.Value{a, b}, nil)
	if ok, _ := value.AsBoolean(result); !ok {
		t.Error("two pairs with equal contents should be equal?")
	}
}

func TestCarCdrOnPair(t *testing.T) {
	pair := value.Cons(value.Int(1), value.Int(2))
	car, err := carPrim([]core.Value{pair}, nil)
	if err != nil || car.String() != "1" {
		t.Errorf("car = %v, %v", car, err)
	}
	cdr, err := cdrPrim([]core.Value{pair}, nil)
	if err != nil || cdr.String() != "2" {
		t.Errorf("cdr = %v, %v", cdr, err)
	}
}

func TestCarOnNonPairIsTypeError(t *testing.T) {
	if _, err := carPrim([]core.Value{value.Int(1)}, nil); err == nil {
		t.Error("expected a type error for (car 1)")
	}
}

func TestCarOnEmptyListReportsEmptyListNotWrongType(t *testing.T) {
	_, err := carPrim([]core.Value{value.Null}, nil)
	if err == nil {
		t.Fatal("expected an error for (car '())")
	}
	if err.Error() != "type error: car: expected non-empty list" {
		t.Errorf("got %q, want the empty-list message", err.Error())
	}
}

func TestCdrOnEmptyListReportsEmptyListNotWrongType(t *testing.T) {
	_, err := cdrPrim([]core.Value{value.Null}, nil)
	if err == nil {
		t.Fatal("expected an error for (cdr '())")
	}
	if err.Error() != "type error: cdr: expected non-empty list" {
		t.Errorf("got %q, want the empty-list message", err.Error())
	}
}

func TestListLengthReverse(t *testing.T) {
	lst, err := listPrim([]core.Value{value.Int(1), value.Int(2), value.Int(3)}, nil)
	if err != nil {
		t.Fatalf("list() error = %v", err)
	}
	n, err := lengthPrim([]core.Value{lst}, nil)
	if err != nil || n.String() != "3" {
		t.Errorf("length = %v, %v", n, err)
	}
	rev, err := reversePrim([]core.Value{lst}, nil)
	if err != nil || rev.String() != "(3 2 1)" {
		t.Errorf("reverse = %v, %v", rev, err)
	}
}
