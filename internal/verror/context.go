package verror

// Snippet returns a short window of source text centered on pos, for
// attaching to an Error's Near field. Grounded on the teacher's
// snippetAround helper used by its parser's syntax-error path.
func Snippet(source string, pos int) string {
	if source == "" {
		return ""
	}
	runes := []rune(source)
	if len(runes) == 0 {
		return ""
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		pos = len(runes) - 1
	}
	const window = 12
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + window + 1
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
