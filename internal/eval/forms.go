package eval

import (
	"strconv"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/frame"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

// formHandler implements one special form. args are the unevaluated
// operands (the special form decides, per-form, which to evaluate and in
// which frame), and frameIdx is the frame the form was invoked in.
//
// One handler function per form mirrors the teacher's native/control.go
// shape (If, When, Loop as standalone functions taking (args, eval)).
type formHandler func(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error)

var specialForms = map[string]formHandler{
	"quote":  formQuote,
	"if":     formIf,
	"and":    formAnd,
	"or":     formOr,
	"begin":  formBegin,
	"cond":   formCond,
	"let":    formLet,
	"let*":   formLetStar,
	"letrec": formLetrec,
	"define": formDefine,
	"set!":   formSet,
	"lambda": formLambda,
}

func formQuote(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	if len(args) != 1 {
		return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"quote", "1", strconv.Itoa(len(args))})
	}
	return args[0], nil
}

func formIf(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"if", "2 or 3", strconv.Itoa(len(args))})
	}
	test, err := e.Eval(args[0], frameIdx)
	if err != nil {
		return nil, err
	}
	if value.IsFalse(test) {
		if len(args) == 3 {
			return e.Eval(args[2], frameIdx)
		}
		return value.Void, nil
	}
	return e.Eval(args[1], frameIdx)
}

func formAnd(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	var result core.Value = value.Bool(true)
	for _, a := range args {
		v, err := e.Eval(a, frameIdx)
		if err != nil {
			return nil, err
		}
		if value.IsFalse(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func formOr(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	var result core.Value = value.Bool(false)
	for _, a := range args {
		v, err := e.Eval(a, frameIdx)
		if err != nil {
			return nil, err
		}
		if !value.IsFalse(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func formBegin(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	return e.evalBody(args, frameIdx)
}

func formCond(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	for i, clauseVal := range args {
		clause, ok := value.ToSlice(clauseVal)
		if !ok || len(clause) == 0 {
			return nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{"cond", "clause must be (test body...)", ""})
		}
		test := clause[0]
		if sym, ok := value.AsSymbol(test); ok && sym == "else" {
			if i != len(args)-1 {
				return nil, verror.NewFormError(verror.ErrIDElseNotLast, [3]string{})
			}
			return e.evalBody(clause[1:], frameIdx)
		}

		testVal, err := e.Eval(test, frameIdx)
		if err != nil {
			return nil, err
		}
		if !value.IsFalse(testVal) {
			if len(clause) == 1 {
				return testVal, nil
			}
			return e.evalBody(clause[1:], frameIdx)
		}
	}
	return value.Void, nil
}

// bindingPair parses and validates a single (var expr) entry from a
// let/let*/letrec bindings list.
func bindingPair(form string, entry core.Value) (name string, expr core.Value, err error) {
	pair, ok := value.ToSlice(entry)
	if !ok || len(pair) != 2 {
		return "", nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{form, "binding must be (var expr)", ""})
	}
	name, ok = value.AsSymbol(pair[0])
	if !ok {
		return "", nil, verror.NewFormError(verror.ErrIDNotASymbol, [3]string{form, pair[0].String(), ""})
	}
	return name, pair[1], nil
}

func letHead(form string, args []core.Value) ([]core.Value, []core.Value, error) {
	if len(args) < 1 {
		return nil, nil, verror.NewArityError(verror.ErrIDArity, [3]string{form, "at least 1", "0"})
	}
	bindings, ok := value.ToSlice(args[0])
	if !ok {
		return nil, nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{form, "bindings must be a proper list", ""})
	}
	return bindings, args[1:], nil
}

func formLet(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	bindings, body, err := letHead("let", args)
	if err != nil {
		return nil, err
	}
	newFrame := frame.NewWithCapacity(frameIdx, len(bindings))
	for _, b := range bindings {
		name, expr, err := bindingPair("let", b)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(expr, frameIdx) // enclosing frame, per spec
		if err != nil {
			return nil, err
		}
		if err := newFrame.BindNew(name, val); err != nil {
			return nil, err
		}
	}
	newIdx := e.RegisterFrame(newFrame)
	return e.evalBody(body, newIdx)
}

func formLetStar(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	bindings, body, err := letHead("let*", args)
	if err != nil {
		return nil, err
	}
	current := frameIdx
	for _, b := range bindings {
		name, expr, err := bindingPair("let*", b)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(expr, current) // sees earlier bindings
		if err != nil {
			return nil, err
		}
		nf := frame.NewWithCapacity(current, 1)
		if err := nf.BindNew(name, val); err != nil {
			return nil, err
		}
		current = e.RegisterFrame(nf)
	}
	return e.evalBody(body, current)
}

func formLetrec(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	bindings, body, err := letHead("letrec", args)
	if err != nil {
		return nil, err
	}
	newFrame := frame.NewWithCapacity(frameIdx, len(bindings))
	newIdx := e.RegisterFrame(newFrame)

	names := make([]string, len(bindings))
	exprs := make([]core.Value, len(bindings))
	for i, b := range bindings {
		name, expr, err := bindingPair("letrec", b)
		if err != nil {
			return nil, err
		}
		names[i], exprs[i] = name, expr
		if err := newFrame.BindNew(name, value.Void); err != nil {
			return nil, err
		}
	}
	for i := range bindings {
		val, err := e.Eval(exprs[i], newIdx) // new frame, so mutual recursion resolves
		if err != nil {
			return nil, err
		}
		newFrame.Set(names[i], val)
	}
	return e.evalBody(body, newIdx)
}

func formDefine(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	if len(args) != 2 {
		return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"define", "2", strconv.Itoa(len(args))})
	}
	current := e.GetFrame(frameIdx)
	if current.Parent() != frame.NoParent {
		return nil, verror.NewFormError(verror.ErrIDDefineScope, [3]string{})
	}
	name, ok := value.AsSymbol(args[0])
	if !ok {
		return nil, verror.NewFormError(verror.ErrIDNotASymbol, [3]string{"define", args[0].String(), ""})
	}
	val, err := e.Eval(args[1], frameIdx)
	if err != nil {
		return nil, err
	}
	if closure, ok := value.AsClosure(val); ok && closure.Name == "" {
		closure.Name = name
	}
	current.Define(name, val)
	return value.Void, nil
}

func formSet(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	if len(args) != 2 {
		return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"set!", "2", strconv.Itoa(len(args))})
	}
	name, ok := value.AsSymbol(args[0])
	if !ok {
		return nil, verror.NewFormError(verror.ErrIDNotASymbol, [3]string{"set!", args[0].String(), ""})
	}
	val, err := e.Eval(args[1], frameIdx)
	if err != nil {
		return nil, err
	}
	if err := e.setExisting(frameIdx, name, val); err != nil {
		return nil, err
	}
	return value.Void, nil
}

func formLambda(e *Evaluator, args []core.Value, frameIdx int) (core.Value, error) {
	if len(args) < 2 {
		return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"lambda", "at least 2", strconv.Itoa(len(args))})
	}
	formals := args[0]
	if err := validateFormals(formals); err != nil {
		return nil, err
	}
	return value.NewClosure(formals, args[1:], frameIdx), nil
}

func validateFormals(formals core.Value) error {
	if _, ok := value.AsSymbol(formals); ok {
		return nil // rest-arg form
	}
	elems, ok := value.ToSlice(formals)
	if !ok {
		return verror.NewFormError(verror.ErrIDMalformedForm, [3]string{"lambda", "formals must be a proper list or a symbol", ""})
	}
	seen := make(map[string]bool, len(elems))
	for _, el := range elems {
		name, ok := value.AsSymbol(el)
		if !ok {
			return verror.NewFormError(verror.ErrIDNotASymbol, [3]string{"lambda", el.String(), ""})
		}
		if seen[name] {
			return verror.NewFormError(verror.ErrIDDuplicateBind, [3]string{"lambda", name, ""})
		}
		seen[name] = true
	}
	return nil
}
