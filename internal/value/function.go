package value

import "github.com/gopherlang/schemer/internal/core"

// ClosureValue is a user-defined procedure created by `lambda`. Formal is
// either a proper list of Symbols (fixed arity) or a single Symbol
// (rest-arg form, binds the whole actual-argument list). CapturedFrame is
// a frame-registry index, not a pointer, mirroring the teacher's
// index-based frame design so multiple closures can share a captured
// frame without the evaluator needing reference counting.
type ClosureValue struct {
	Formal        core.Value
	Body          []core.Value
	CapturedFrame int
	Name          string // set by `define` for nicer #procedure diagnostics; may be empty
}

func (c *ClosureValue) Type() core.ValueType { return TClosure }
func (c *ClosureValue) String() string       { return "#procedure" }
func (c *ClosureValue) Equals(other core.Value) bool {
	o, ok := other.(*ClosureValue)
	return ok && c == o
}

// NewClosure constructs a Closure value.
func NewClosure(formal core.Value, body []core.Value, capturedFrame int) core.Value {
	return &ClosureValue{Formal: formal, Body: body, CapturedFrame: capturedFrame}
}

// AsClosure extracts the *ClosureValue if v is a Closure.
func AsClosure(v core.Value) (*ClosureValue, bool) {
	c, ok := v.(*ClosureValue)
	return c, ok
}

// PrimitiveValue is a built-in procedure implemented in Go.
type PrimitiveValue struct {
	Name string
	Fn   core.NativeFunc
}

func (p *PrimitiveValue) Type() core.ValueType { return TPrimitive }
func (p *PrimitiveValue) String() string       { return "#procedure" }
func (p *PrimitiveValue) Equals(other core.Value) bool {
	o, ok := other.(*PrimitiveValue)
	return ok && p == o
}

// NewPrimitive constructs a Primitive value.
func NewPrimitive(name string, fn core.NativeFunc) core.Value {
	return &PrimitiveValue{Name: name, Fn: fn}
}

// AsPrimitive extracts the *PrimitiveValue if v is a Primitive.
func AsPrimitive(v core.Value) (*PrimitiveValue, bool) {
	p, ok := v.(*PrimitiveValue)
	return p, ok
}
