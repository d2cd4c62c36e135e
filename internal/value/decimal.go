package value

import (
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
	"github.com/gopherlang/schemer/internal/core"
)

// DoubleValue is an IEEE-754 64-bit float. Scale records how many digits
// followed the decimal point in the literal this value was parsed from
// (-1 if the value has no such literal, e.g. it is the result of
// arithmetic), so printing a value parsed from "1.20" reproduces "1.20"
// instead of collapsing the trailing zero to "1.2". This mirrors the
// teacher's DecimalValue.Mold technique of keeping an explicit Scale
// alongside the numeric magnitude.
type DoubleValue struct {
	F     float64
	Scale int
}

func (d DoubleValue) Type() core.ValueType { return TDouble }

func (d DoubleValue) String() string {
	if d.Scale >= 0 {
		return strconv.FormatFloat(d.F, 'f', d.Scale, 64)
	}
	s := strconv.FormatFloat(d.F, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (d DoubleValue) Equals(other core.Value) bool {
	o, ok := other.(DoubleValue)
	return ok && d.F == o.F
}

// Dbl constructs a Double value with no preserved literal scale.
func Dbl(f float64) core.Value { return DoubleValue{F: f, Scale: -1} }

// AsDouble extracts the float64 payload if v is a Double.
func AsDouble(v core.Value) (float64, bool) {
	d, ok := v.(DoubleValue)
	return d.F, ok
}

// ParseDouble parses a decimal-literal token (e.g. "-3.140") into a Double
// value, preserving its written scale for round-tripping through String().
// Uses ericlagergren/decimal instead of strconv so multi-digit exponents
// and arbitrary-precision literals parse exactly before narrowing to
// float64, the same boundary the teacher's decimal-handling code draws
// between parsing and the eventual float64/ DecimalValue payload.
func ParseDouble(text string) (core.Value, bool) {
	big, ok := new(decimal.Big).SetString(text)
	if !ok {
		return nil, false
	}
	f, ok := big.Float64()
	if !ok {
		return nil, false
	}
	scale := 0
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		scale = len(text) - dot - 1
	}
	return DoubleValue{F: f, Scale: scale}, true
}
