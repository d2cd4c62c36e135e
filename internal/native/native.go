// Package native implements the primitive procedures bound into the
// top-level frame before user code runs (SPEC_FULL.md §4.6). Primitives
// are ordinary Primitive values installed via Register - there is no
// separate primitive registry consulted at call time, which keeps eq?,
// shadowing, and apply uniform with user-defined procedures (§9).
//
// Grounded on the teacher's internal/native package: one Go function per
// primitive, a name->function registry populated in init(), and shared
// arityError/typeError helpers (internal/native/errors.go).
package native

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
)

// Register installs every primitive procedure as a binding in top.
func Register(top core.Frame) {
	for name, fn := range registry {
		top.Define(name, value.NewPrimitive(name, fn))
	}
}

// registry maps primitive name to implementation. Populated by the
// init() functions in arithmetic.go, predicates.go, lists.go, control.go.
var registry = make(map[string]core.NativeFunc)

func add(name string, fn core.NativeFunc) {
	registry[name] = fn
}
