// Package frame implements lexically scoped environments. A Frame is an
// ordered symbol-to-value mapping plus a parent link, stored as a registry
// index rather than a pointer so that closures can share a captured frame
// and the evaluator can grow the registry without invalidating references
// held by earlier frames (see SPEC_FULL.md §3.2 and the teacher's
// internal/frame/frame.go, whose parallel-array + index-parent design this
// mirrors).
package frame

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/verror"
)

// NoParent marks the top-level frame, which has no parent.
const NoParent = -1

// Frame is a single lexical scope.
type Frame struct {
	Words  []string
	Values []core.Value
	parent int
}

// New creates an empty frame with the given parent registry index
// (frame.NoParent for the top-level frame).
func New(parent int) *Frame {
	return &Frame{parent: parent}
}

// NewWithCapacity creates an empty frame pre-sized for capacity bindings,
// useful when a closure application already knows its formal-parameter count.
func NewWithCapacity(parent, capacity int) *Frame {
	return &Frame{
		Words:  make([]string, 0, capacity),
		Values: make([]core.Value, 0, capacity),
		parent: parent,
	}
}

// Parent returns the registry index of this frame's parent, or NoParent.
func (f *Frame) Parent() int { return f.parent }

// HasLocal reports whether symbol is bound in this frame (not its ancestors).
func (f *Frame) HasLocal(symbol string) bool {
	for _, w := range f.Words {
		if w == symbol {
			return true
		}
	}
	return false
}

// Get looks up symbol in this frame only. The evaluator is responsible for
// walking the parent chain via the frame registry.
func (f *Frame) Get(symbol string) (core.Value, bool) {
	for i, w := range f.Words {
		if w == symbol {
			return f.Values[i], true
		}
	}
	return nil, false
}

// Set mutates an existing local binding. Returns false if symbol is not
// locally bound (it does not create one - use BindNew or Define for that).
func (f *Frame) Set(symbol string, v core.Value) bool {
	for i, w := range f.Words {
		if w == symbol {
			f.Values[i] = v
			return true
		}
	}
	return false
}

// BindNew appends a new local binding. It is an error to rebind a symbol
// already locally bound - this is what makes duplicate `let` bindings and
// duplicate `lambda` formals a reported error rather than silent shadowing.
func (f *Frame) BindNew(symbol string, v core.Value) error {
	if f.HasLocal(symbol) {
		return verror.NewFormError(verror.ErrIDDuplicateBind, [3]string{"let", symbol, ""})
	}
	f.Words = append(f.Words, symbol)
	f.Values = append(f.Values, v)
	return nil
}

// Define installs or overwrites a local binding. Unlike BindNew, redefining
// an existing symbol is allowed - this is the semantics `define` needs at
// the top level.
func (f *Frame) Define(symbol string, v core.Value) {
	for i, w := range f.Words {
		if w == symbol {
			f.Values[i] = v
			return
		}
	}
	f.Words = append(f.Words, symbol)
	f.Values = append(f.Values, v)
}
