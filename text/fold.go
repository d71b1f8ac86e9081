package text

import (
	"strings"
	"unicode"
)

// Lower lowercases s rune by rune. Unlike strings.ToLower with special
// casing, the result always has as many runes as s.
func Lower(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}

// Normalize prepares s for substring matching: lowercased rune by rune and,
// when stripDiacritics is set, with diacritics removed. The result has as
// many runes as s, so match offsets line up with the input.
func Normalize(s string, stripDiacritics bool) string {
	if stripDiacritics {
		s = RemoveDiacritics(s)
	}
	return Lower(s)
}

// Tokens splits s on whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
