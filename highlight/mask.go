package highlight

import (
	"regexp"

	"github.com/hupe1980/reclist/text"
)

// Mask returns one flag per rune of flat telling whether the rune is part of
// a match of any whitespace separated token of query.
//
// Once at least one token is searched, literal spaces are flagged as well so
// that adjacent matched words join into a single run. Runs made of a single
// space are never wrapped (see Inject).
func Mask(flat, query string, stripDiacritics bool) []bool {
	subject := text.Normalize(flat, stripDiacritics)
	mask := make([]bool, len([]rune(subject)))

	tokens := text.Tokens(text.Normalize(query, stripDiacritics))
	if len(tokens) == 0 {
		return mask
	}

	// byte offset -> rune index
	runeAt := make(map[int]int, len(mask)+1)
	i := 0
	for off := range subject {
		runeAt[off] = i
		i++
	}
	runeAt[len(subject)] = i

	for _, tok := range tokens {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(tok))
		for _, loc := range re.FindAllStringIndex(subject, -1) {
			for r := runeAt[loc[0]]; r < runeAt[loc[1]]; r++ {
				mask[r] = true
			}
		}
	}

	i = 0
	for _, r := range subject {
		if r == ' ' {
			mask[i] = true
		}
		i++
	}
	return mask
}

// hasMatch reports whether mask flags anything besides spaces in flat.
func hasMatch(flat []rune, mask []bool) bool {
	for i, m := range mask {
		if m && i < len(flat) && flat[i] != ' ' {
			return true
		}
	}
	return false
}
