// Package parse converts a token stream into a nested list structure: a
// proper Go slice of top-level S-expressions, each an atom or a Cons tree.
//
// The algorithm is a shift-reduce walk over an explicit stack (SPEC_FULL.md
// §4.2), grounded on the teacher's internal/parse/parse.go (Parse entry
// point, syntax-error-with-snippet helper). Per the design note in §9 of
// the spec, the parser's own "open paren" marker never becomes a
// core.Value - it is a private stackEntry flag local to this package, so
// the evaluator's type switch never has to reject it.
package parse

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/tokenize"
	"github.com/gopherlang/schemer/internal/value"
	"github.com/gopherlang/schemer/internal/verror"
)

// stackEntry is either a parsed Value or the open-paren marker.
type stackEntry struct {
	val    core.Value
	isOpen bool
}

// Parse tokenizes and parses source text into a proper list of top-level
// S-expressions.
func Parse(source string) ([]core.Value, *verror.Error) {
	tokens, err := tokenize.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, source)
}

// ParseTokens runs the shift-reduce algorithm over an already-tokenized
// stream. source is used only to render Near snippets in error messages
// and may be "".
func ParseTokens(tokens []tokenize.Token, source string) ([]core.Value, *verror.Error) {
	var stack []stackEntry
	depth := 0

	for _, tok := range tokens {
		switch tok.Type {
		case tokenize.TokenEOF:
			if depth != 0 {
				return nil, unbalanced(source, tok)
			}
			return reduceTop(stack), nil

		case tokenize.TokenOpenParen:
			stack = append(stack, stackEntry{isOpen: true})
			depth++

		case tokenize.TokenCloseParen:
			if depth == 0 {
				return nil, unbalanced(source, tok)
			}
			depth--
			stack = popList(&stack)

		case tokenize.TokenInteger:
			n, ok := parseInt(tok.Text)
			if !ok {
				return nil, verror.NewSyntaxError(verror.ErrIDInvalidToken, [3]string{tok.Text, "", ""})
			}
			stack = append(stack, stackEntry{val: value.Int(n)})

		case tokenize.TokenDouble:
			d, ok := value.ParseDouble(tok.Text)
			if !ok {
				return nil, verror.NewSyntaxError(verror.ErrIDInvalidToken, [3]string{tok.Text, "", ""})
			}
			stack = append(stack, stackEntry{val: d})

		case tokenize.TokenString:
			stack = append(stack, stackEntry{val: value.Str(tok.Text)})

		case tokenize.TokenBoolean:
			stack = append(stack, stackEntry{val: value.Bool(tok.Text == "#t")})

		case tokenize.TokenSymbol:
			stack = append(stack, stackEntry{val: value.Sym(tok.Text)})
		}
	}

	if depth != 0 {
		return nil, verror.NewSyntaxError(verror.ErrIDUnbalancedParens, [3]string{})
	}
	return reduceTop(stack), nil
}

// popList pops entries back to (and including) the nearest open marker,
// folds them into a proper list in original left-to-right order, and
// pushes that list back onto the stack.
func popList(stack *[]stackEntry) []stackEntry {
	s := *stack
	i := len(s) - 1
	for i >= 0 && !s[i].isOpen {
		i--
	}
	elems := make([]core.Value, 0, len(s)-i-1)
	for j := i + 1; j < len(s); j++ {
		elems = append(elems, s[j].val)
	}
	s = s[:i]
	s = append(s, stackEntry{val: value.FromSlice(elems)})
	return s
}

func reduceTop(stack []stackEntry) []core.Value {
	out := make([]core.Value, len(stack))
	for i, e := range stack {
		out[i] = e.val
	}
	return out
}

func unbalanced(source string, tok tokenize.Token) *verror.Error {
	err := verror.NewSyntaxError(verror.ErrIDUnbalancedParens, [3]string{})
	if source != "" {
		err.SetNear(verror.Snippet(source, tok.Column))
	}
	return err
}

func parseInt(text string) (int64, bool) {
	neg := false
	i := 0
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		neg = text[0] == '-'
		i++
	}
	if i >= len(text) {
		return 0, false
	}
	var n int64
	for ; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
		n = n*10 + int64(text[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
