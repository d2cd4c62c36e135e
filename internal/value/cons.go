package value

import (
	"strings"

	"github.com/gopherlang/schemer/internal/core"
)

// ConsValue is the building block for both lists and parse trees. It is a
// pointer type so that `eq?` identity on pairs falls out of ordinary Go
// interface comparison: two core.Value holding *ConsValue are == iff they
// point at the same cell, exactly the identity semantics §3.1 requires.
type ConsValue struct {
	Car core.Value
	Cdr core.Value
}

func (c *ConsValue) Type() core.ValueType { return TCons }

func (c *ConsValue) Equals(other core.Value) bool {
	o, ok := other.(*ConsValue)
	return ok && c == o
}

func (c *ConsValue) String() string {
	if IsProperList(c) {
		var sb strings.Builder
		sb.WriteByte('(')
		first := true
		cur := core.Value(c)
		for {
			cell, ok := cur.(*ConsValue)
			if !ok {
				break
			}
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(cell.Car.String())
			cur = cell.Cdr
		}
		sb.WriteByte(')')
		return sb.String()
	}
	return "(" + c.Car.String() + " . " + c.Cdr.String() + ")"
}

// Cons constructs a new pair.
func Cons(car, cdr core.Value) core.Value {
	return &ConsValue{Car: car, Cdr: cdr}
}

// AsCons extracts the *ConsValue if v is a pair.
func AsCons(v core.Value) (*ConsValue, bool) {
	c, ok := v.(*ConsValue)
	return c, ok
}

// Car returns the car of a pair value, or false if v is not a pair.
func Car(v core.Value) (core.Value, bool) {
	c, ok := v.(*ConsValue)
	if !ok {
		return nil, false
	}
	return c.Car, true
}

// Cdr returns the cdr of a pair value, or false if v is not a pair.
func Cdr(v core.Value) (core.Value, bool) {
	c, ok := v.(*ConsValue)
	if !ok {
		return nil, false
	}
	return c.Cdr, true
}

// IsProperList reports whether v is Null, or a Cons whose cdr is a proper list.
func IsProperList(v core.Value) bool {
	for {
		if IsNull(v) {
			return true
		}
		c, ok := v.(*ConsValue)
		if !ok {
			return false
		}
		v = c.Cdr
	}
}

// Length returns the number of elements in a proper list. The second
// return value is false if v is not a proper list.
func Length(v core.Value) (int, bool) {
	n := 0
	for {
		if IsNull(v) {
			return n, true
		}
		c, ok := v.(*ConsValue)
		if !ok {
			return 0, false
		}
		n++
		v = c.Cdr
	}
}

// ToSlice converts a proper list into a Go slice, in order. The second
// return value is false if v is not a proper list.
func ToSlice(v core.Value) ([]core.Value, bool) {
	var out []core.Value
	for {
		if IsNull(v) {
			return out, true
		}
		c, ok := v.(*ConsValue)
		if !ok {
			return nil, false
		}
		out = append(out, c.Car)
		v = c.Cdr
	}
}

// FromSlice builds a proper list from a Go slice, right to left.
func FromSlice(elems []core.Value) core.Value {
	var result core.Value = Null
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// Reverse returns a new proper list with elements in reverse order. The
// second return value is false if v is not a proper list.
func Reverse(v core.Value) (core.Value, bool) {
	elems, ok := ToSlice(v)
	if !ok {
		return nil, false
	}
	reversed := make([]core.Value, len(elems))
	for i, e := range elems {
		reversed[len(elems)-1-i] = e
	}
	return FromSlice(reversed), true
}
