package eval

import (
	"testing"

	"github.com/gopherlang/schemer/internal/native"
	"github.com/gopherlang/schemer/internal/parse"
)

func newTestEvaluator() *Evaluator {
	e := New()
	native.Register(e.GetFrame(e.TopFrameIndex()))
	return e
}

func evalString(t *testing.T, source string) interface {
	String() string
} {
	t.Helper()
	e := newTestEvaluator()
	forms, perr := parse.Parse(source)
	if perr != nil {
		t.Fatalf("Parse(%q) error = %v", source, perr)
	}
	var result interface {
		String() string
	}
	top := e.TopFrameIndex()
	for _, form := range forms {
		v, err := e.Eval(form, top)
		if err != nil {
			t.Fatalf("Eval(%q) error = %v", source, err)
		}
		result = v
	}
	return result
}

func TestSelfEvaluating(t *testing.T) {
	if got := evalString(t, "42").String(); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
}

func TestArithmeticDispatch(t *testing.T) {
	if got := evalString(t, "(+ 1 2 3)").String(); got != "6" {
		t.Errorf("got %q, want 6", got)
	}
}

func TestIfBranches(t *testing.T) {
	if got := evalString(t, "(if (> 2 1) 10 20)").String(); got != "10" {
		t.Errorf("got %q, want 10", got)
	}
	if got := evalString(t, "(if (> 1 2) 10 20)").String(); got != "20" {
		t.Errorf("got %q, want 20", got)
	}
}

func TestDefineAndLookup(t *testing.T) {
	if got := evalString(t, "(define x 5) (+ x 1)").String(); got != "6" {
		t.Errorf("got %q, want 6", got)
	}
}

func TestLambdaAndApply(t *testing.T) {
	src := "(define add2 (lambda (a b) (+ a b))) (add2 3 4)"
	if got := evalString(t, src).String(); got != "7" {
		t.Errorf("got %q, want 7", got)
	}
}

func TestLambdaRestArgs(t *testing.T) {
	src := "(define f (lambda xs (length xs))) (f 1 2 3)"
	if got := evalString(t, src).String(); got != "3" {
		t.Errorf("got %q, want 3", got)
	}
}

func TestLetBindsInNewFrame(t *testing.T) {
	src := "(define x 1) (let ((x 2) (y 3)) (+ x y))"
	if got := evalString(t, src).String(); got != "5" {
		t.Errorf("got %q, want 5", got)
	}
}

func TestLetStarSeesEarlierBindings(t *testing.T) {
	src := "(let* ((x 2) (y (* x 3))) y)"
	if got := evalString(t, src).String(); got != "6" {
		t.Errorf("got %q, want 6", got)
	}
}

func TestLetrecSupportsMutualRecursion(t *testing.T) {
	src := `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	                 (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	          (even? 10))`
	if got := evalString(t, src).String(); got != "#t" {
		t.Errorf("got %q, want #t", got)
	}
}

func TestSetMutatesEnclosingBinding(t *testing.T) {
	src := "(define x 1) (let () (set! x 2)) x"
	if got := evalString(t, src).String(); got != "2" {
		t.Errorf("got %q, want 2", got)
	}
}

func TestSetOnUnboundIsError(t *testing.T) {
	e := newTestEvaluator()
	forms, perr := parse.Parse("(set! never-defined 1)")
	if perr != nil {
		t.Fatalf("Parse() error = %v", perr)
	}
	if _, err := e.Eval(forms[0], e.TopFrameIndex()); err == nil {
		t.Error("expected an unbound-symbol error from set! on an unbound name")
	}
}

func TestCondElseMustBeLast(t *testing.T) {
	e := newTestEvaluator()
	forms, perr := parse.Parse("(cond (else 1) (#t 2))")
	if perr != nil {
		t.Fatalf("Parse() error = %v", perr)
	}
	if _, err := e.Eval(forms[0], e.TopFrameIndex()); err == nil {
		t.Error("expected an error: else clause must be last")
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	if got := evalString(t, "(and 1 #f (/ 1 0))").String(); got != "#f" {
		t.Errorf("got %q, want #f (division should never run)", got)
	}
	if got := evalString(t, "(or #f 5 (/ 1 0))").String(); got != "5" {
		t.Errorf("got %q, want 5 (division should never run)", got)
	}
}

func TestClosureSeesCurrentBindingNotASnapshot(t *testing.T) {
	src := `(define n 5)
	        (define adder (lambda (x) (+ x n)))
	        (define n 100)
	        (adder 1)`
	if got := evalString(t, src).String(); got != "101" {
		t.Errorf("got %q, want 101 (closures see the current binding, not a snapshot)", got)
	}
}
