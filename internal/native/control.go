// Primitives that call back into the evaluator or the driver's I/O:
// apply, load, display, newline. Grounded on the teacher's
// internal/native/eval.go (Apply/Do dispatch back into the Evaluator
// passed to every native) and internal/native/io.go (console output).
package native

import (
	"io"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/display"
	"github.com/gopherlang/schemer/internal/value"
)

func init() {
	add("apply", applyPrim)
	add("load", loadPrim)
	add("display", displayPrim)
	add("newline", newlinePrim)
}

// applyPrim implements apply: call proc with args..., then the elements of
// the final list argument spread in. The current frame is irrelevant to a
// call made this way, so the callee's own captured frame governs.
func applyPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorAtLeast("apply", 2, len(args))
	}
	proc := args[0]
	spread, ok := value.ToSlice(args[len(args)-1])
	if !ok {
		return nil, typeError("apply", "proper list", args[len(args)-1])
	}
	callArgs := make([]core.Value, 0, len(args)-2+len(spread))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, spread...)
	return ev.Apply(proc, callArgs, ev.TopFrameIndex())
}

// loadPrim implements load: read the named file and evaluate every
// top-level form in it against the top-level frame, in order. Returns Void.
func loadPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("load", 1, len(args))
	}
	path, ok := value.AsString(args[0])
	if !ok {
		return nil, typeError("load", "string", args[0])
	}
	source, err := ev.ReadSource(path)
	if err != nil {
		return nil, err
	}
	if _, err := ev.LoadAndRun(source); err != nil {
		return nil, err
	}
	return value.Void, nil
}

func displayPrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, arityError("display", 1, len(args))
	}
	display.Write(ev.Output(), args[0])
	return value.Void, nil
}

func newlinePrim(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 0 {
		return nil, arityError("newline", 0, len(args))
	}
	io.WriteString(ev.Output(), "\n")
	return value.Void, nil
}
