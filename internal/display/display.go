// Package display renders Values the way `display` and the REPL print
// results: each Value's own String() method supplies the text (quoted
// strings, #t/#f, dotted-pair notation, "#procedure" for callables), and
// this package only adds the newline/no-newline and Void-suppression
// rules layered on top (SPEC_FULL.md §4.7).
//
// Grounded on the teacher's internal/repl REPL-echo path, which applies
// the same "don't print anything for a statement that yields no useful
// value" rule before writing a result to the console.
package display

import (
	"fmt"
	"io"

	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/value"
)

// Print writes v's textual form to w, followed by a newline, unless v is
// Void (define, set!, and similar forms produce no visible output).
func Print(w io.Writer, v core.Value) {
	if value.IsVoid(v) {
		return
	}
	fmt.Fprintln(w, v.String())
}

// Write writes v's textual form to w with no trailing newline; used by the
// `display` primitive. Like Print, it writes nothing at all for Void.
func Write(w io.Writer, v core.Value) {
	if value.IsVoid(v) {
		return
	}
	io.WriteString(w, rawText(v))
}

// rawText is like v.String() but strips the quoting `display` omits:
// a String value prints its raw bytes, not `"..."`.
func rawText(v core.Value) string {
	if s, ok := value.AsString(v); ok {
		return s
	}
	return v.String()
}
