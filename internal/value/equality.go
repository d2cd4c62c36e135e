package value

import "github.com/gopherlang/schemer/internal/core"

// Eq implements Scheme `eq?`: structural equality for atoms (Integer,
// Double, String, Symbol, Boolean, Null), identity for Cons, Closure, and
// Primitive. Every concrete type's Equals method already implements the
// right rule (Cons/Closure/Primitive compare the underlying pointer), so
// Eq is just type-checked dispatch to Equals.
func Eq(a, b core.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	return a.Equals(b)
}
