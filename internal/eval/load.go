package eval

import (
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/parse"
)

// runTopLevelForms parses source into top-level S-expressions and
// evaluates each in turn against the frame at frameIdx, returning every
// result in order. Called by LoadAndRun (the `load` primitive).
func (e *Evaluator) runTopLevelForms(source string, frameIdx int) ([]core.Value, error) {
	forms, perr := parse.Parse(source)
	if perr != nil {
		return nil, perr
	}
	results := make([]core.Value, 0, len(forms))
	for _, form := range forms {
		v, err := e.Eval(form, frameIdx)
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}
