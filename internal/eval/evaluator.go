// Package eval implements the recursive Scheme evaluator: Eval dispatches
// on an expression's variant and, for pairs whose head names a special
// form, to one handler function per form; Apply invokes a Primitive or
// Closure with already-evaluated arguments.
//
// The frame chain is index-based rather than pointer-based: the Evaluator
// owns a registry of every Frame created during a run, and a Frame's
// parent is a registry index. This is the same design the teacher's
// internal/eval.Evaluator uses (RegisterFrame / GetFrameByIndex /
// CurrentFrameIndex), and for the same reason noted in SPEC_FULL.md §3.2:
// it lets multiple Closures share a captured frame without reference
// counting. The registry keeps every frame it has been given for as long
// as the Evaluator itself is reachable; frames are never removed from it.
package eval

import (
	"io"
	"os"
	"strconv"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/frame"
	"github.com/gopherlang/schemer/internal/trace"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

// Evaluator holds the frame registry and the current dynamic depth.
type Evaluator struct {
	frames []core.Frame
	depth  int
	Trace  *trace.Session // optional; nil disables tracing entirely
	loader Loader         // set by the driver to support the `load` primitive
	out    io.Writer      // destination for `display` and `newline`
}

// Loader reads the contents of a source file for the `load` primitive.
// Abstracted so eval does no file access itself (kept testable without a
// filesystem) and so the driver can sandbox file access if it chooses to.
type Loader interface {
	ReadFile(path string) (string, error)
}

// New creates an Evaluator with a fresh top-level frame (index 0, no parent),
// with `display`/`newline` writing to os.Stdout until SetOutput overrides it.
func New() *Evaluator {
	e := &Evaluator{out: os.Stdout}
	top := frame.New(frame.NoParent)
	e.frames = append(e.frames, top)
	return e
}

// SetLoader installs the collaborator used by the `load` primitive.
func (e *Evaluator) SetLoader(l Loader) { e.loader = l }

// SetOutput redirects `display` and `newline`, e.g. so tests can capture
// interpreter output instead of writing to the process's stdout.
func (e *Evaluator) SetOutput(w io.Writer) { e.out = w }

// Output returns the current `display`/`newline` destination. Exported so
// internal/native's display primitives can reach it through the
// core.Evaluator interface without importing this package's concrete type.
func (e *Evaluator) Output() io.Writer { return e.out }

// ReadSource reads the contents of path via the installed Loader. Exported
// so internal/native's `load` primitive can reach the driver's file-access
// collaborator through the core.Evaluator it is handed, without importing
// internal/eval's concrete type anywhere but here.
func (e *Evaluator) ReadSource(path string) (string, error) {
	if e.loader == nil {
		return "", verror.NewIOError(verror.ErrIDFileNotFound, [3]string{path, "", ""})
	}
	return e.loader.ReadFile(path)
}

// LoadAndRun tokenizes, parses, and evaluates every top-level form in
// source against the top-level frame, in order. Used by the `load`
// primitive.
func (e *Evaluator) LoadAndRun(source string) ([]core.Value, error) {
	return e.runTopLevelForms(source, e.TopFrameIndex())
}

// TopFrameIndex returns the registry index of the top-level frame (always 0).
func (e *Evaluator) TopFrameIndex() int { return 0 }

// RegisterFrame adds f to the registry and returns its new index.
func (e *Evaluator) RegisterFrame(f core.Frame) int {
	e.frames = append(e.frames, f)
	return len(e.frames) - 1
}

// GetFrame returns the frame at idx.
func (e *Evaluator) GetFrame(idx int) core.Frame {
	return e.frames[idx]
}

// Lookup walks the frame chain starting at frameIdx, returning the first
// binding found for symbol.
func (e *Evaluator) Lookup(frameIdx int, symbol string) (core.Value, bool) {
	for idx := frameIdx; idx != frame.NoParent; {
		f := e.frames[idx]
		if v, ok := f.Get(symbol); ok {
			return v, true
		}
		idx = f.Parent()
	}
	return nil, false
}

// setExisting finds the nearest enclosing frame (starting at frameIdx) that
// locally binds symbol and mutates it there. Returns an error if absent.
func (e *Evaluator) setExisting(frameIdx int, symbol string, v core.Value) error {
	for idx := frameIdx; idx != frame.NoParent; {
		f := e.frames[idx]
		if f.Set(symbol, v) {
			return nil
		}
		idx = f.Parent()
	}
	return verror.NewLookupError(verror.ErrIDUnboundSymbol, [3]string{symbol, "", ""})
}

// Eval evaluates expr in the scope of the frame at frameIdx.
func (e *Evaluator) Eval(expr core.Value, frameIdx int) (core.Value, error) {
	e.depth++
	defer func() { e.depth-- }()

	switch v := expr.(type) {
	case *value.ConsValue:
		return e.evalCons(v, frameIdx)
	case value.SymbolValue:
		result, ok := e.Lookup(frameIdx, string(v))
		if !ok {
			return nil, verror.NewLookupError(verror.ErrIDUnboundSymbol, [3]string{string(v), "", ""})
		}
		return result, nil
	default:
		// Integer, Double, String, Boolean, Null, Void, Closure, Primitive
		// are all self-evaluating.
		return expr, nil
	}
}

func (e *Evaluator) evalCons(pair *value.ConsValue, frameIdx int) (core.Value, error) {
	if head, ok := value.AsSymbol(pair.Car); ok {
		if handler, isForm := specialForms[head]; isForm {
			args, ok := value.ToSlice(pair.Cdr)
			if !ok {
				return nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{head, "improper argument list", ""})
			}
			e.traceForm(head, frameIdx)
			return handler(e, args, frameIdx)
		}
	}

	callee, err := e.Eval(pair.Car, frameIdx)
	if err != nil {
		return nil, err
	}
	argExprs, ok := value.ToSlice(pair.Cdr)
	if !ok {
		return nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{"apply", "improper argument list", ""})
	}
	args := make([]core.Value, len(argExprs))
	for i, a := range argExprs {
		av, err := e.Eval(a, frameIdx)
		if err != nil {
			return nil, err
		}
		args[i] = av
	}
	return e.Apply(callee, args, frameIdx)
}

// Apply invokes callee (a Primitive or Closure) with already-evaluated args.
func (e *Evaluator) Apply(callee core.Value, args []core.Value, frameIdx int) (core.Value, error) {
	switch fn := callee.(type) {
	case *value.PrimitiveValue:
		e.traceCall(fn.Name, frameIdx)
		return fn.Fn(args, e)

	case *value.ClosureValue:
		e.traceCall("#procedure", frameIdx)
		return e.applyClosure(fn, args)

	default:
		return nil, verror.NewTypeError(verror.ErrIDNotAProcedure, [3]string{callee.String(), "", ""})
	}
}

func (e *Evaluator) applyClosure(fn *value.ClosureValue, args []core.Value) (core.Value, error) {
	newFrame := frame.NewWithCapacity(fn.CapturedFrame, len(args))

	if restName, ok := value.AsSymbol(fn.Formal); ok {
		newFrame.Define(restName, value.FromSlice(args))
	} else {
		formals, ok := value.ToSlice(fn.Formal)
		if !ok {
			return nil, verror.NewFormError(verror.ErrIDMalformedForm, [3]string{"lambda", "formals must be a proper list or a symbol", ""})
		}
		if len(formals) != len(args) {
			return nil, verror.NewArityError(verror.ErrIDArity, [3]string{"closure", strconv.Itoa(len(formals)), strconv.Itoa(len(args))})
		}
		for i, f := range formals {
			name, ok := value.AsSymbol(f)
			if !ok {
				return nil, verror.NewFormError(verror.ErrIDNotASymbol, [3]string{"lambda", f.String(), ""})
			}
			if err := newFrame.BindNew(name, args[i]); err != nil {
				return nil, err
			}
		}
	}

	newIdx := e.RegisterFrame(newFrame)
	return e.evalBody(fn.Body, newIdx)
}

// evalBody evaluates a sequence of forms in order, returning the value of
// the last (or Void if the sequence is empty).
func (e *Evaluator) evalBody(body []core.Value, frameIdx int) (core.Value, error) {
	var result core.Value = value.Void
	for _, form := range body {
		v, err := e.Eval(form, frameIdx)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) traceForm(name string, frameIdx int) {
	if e.Trace != nil {
		e.Trace.Step(name, e.depth, frameIdx)
	}
}

func (e *Evaluator) traceCall(name string, frameIdx int) {
	if e.Trace != nil {
		e.Trace.Step(name, e.depth, frameIdx)
	}
}
