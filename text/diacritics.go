package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacritic pairs a base character with the characters that match it.
type diacritic struct {
	base  rune
	chars string
}

// diacritics lists characters that canonical decomposition does not reduce
// to their base letter (stroked, barred and ligature-like forms) together
// with the common precomposed ones, so that lookups stay cheap.
var diacritics = []diacritic{
	{'a', "àáâãäåāăąǎǟǡǻȁȃȧᶏḁẚạảấầẩẫậắằẳẵặⱥ"},
	{'A', "ÀÁÂÃÄÅĀĂĄǍǞǠǺȀȂȦȺḀẠẢẤẦẨẪẬẮẰẲẴẶ"},
	{'b', "ƀɓḃḅḇ"},
	{'B', "ƁɃḂḄḆ"},
	{'c', "çćĉċčƈȼḉ"},
	{'C', "ÇĆĈĊČƇȻḈ"},
	{'d', "ďđɖɗḋḍḏḑḓ"},
	{'D', "ĎĐƉƊḊḌḎḐḒ"},
	{'e', "èéêëēĕėęěȅȇȩɇḕḗḙḛḝẹẻẽếềểễệ"},
	{'E', "ÈÉÊËĒĔĖĘĚȄȆȨɆḔḖḘḚḜẸẺẼẾỀỂỄỆ"},
	{'g', "ĝğġģǥǧǵɠḡ"},
	{'G', "ĜĞĠĢǤǦǴƓḠ"},
	{'h', "ĥħȟḣḥḧḩḫẖ"},
	{'H', "ĤĦȞḢḤḦḨḪ"},
	{'i', "ìíîïĩīĭįıǐȉȋɨḭḯỉị"},
	{'I', "ÌÍÎÏĨĪĬĮİǏȈȊƗḬḮỈỊ"},
	{'j', "ĵǰɉ"},
	{'J', "ĴɈ"},
	{'k', "ķƙǩḱḳḵ"},
	{'K', "ĶƘǨḰḲḴ"},
	{'l', "ĺļľŀłƚḷḹḻḽ"},
	{'L', "ĹĻĽĿŁȽḶḸḺḼ"},
	{'n', "ñńņňǹɲṅṇṉṋ"},
	{'N', "ÑŃŅŇǸƝṄṆṈṊ"},
	{'o', "òóôõöøōŏőơǒǫǭǿȍȏȫȭȯȱṍṏṑṓọỏốồổỗộớờởỡợ"},
	{'O', "ÒÓÔÕÖØŌŎŐƠǑǪǬǾȌȎȪȬȮȰṌṎṐṒỌỎỐỒỔỖỘỚỜỞỠỢ"},
	{'r', "ŕŗřȑȓɍṙṛṝṟ"},
	{'R', "ŔŖŘȐȒɌṘṚṜṞ"},
	{'s', "śŝşšșṡṣṥṧṩ"},
	{'S', "ŚŜŞŠȘṠṢṤṦṨ"},
	{'t', "ţťŧțƫƭʈṫṭṯṱẗ"},
	{'T', "ŢŤŦȚƬƮṪṬṮṰ"},
	{'u', "ùúûüũūŭůűųưǔǖǘǚǜȕȗʉṳṵṷṹṻụủứừửữự"},
	{'U', "ÙÚÛÜŨŪŬŮŰŲƯǓǕǗǙǛȔȖɄṲṴṶṸṺỤỦỨỪỬỮỰ"},
	{'w', "ŵẁẃẅẇẉẘ"},
	{'W', "ŴẀẂẄẆẈ"},
	{'y', "ýÿŷƴȳɏẏẙỳỵỷỹ"},
	{'Y', "ÝŶŸƳȲɎẎỲỴỶỸ"},
	{'z', "źżžƶȥɀẑẓẕ"},
	{'Z', "ŹŻŽƵȤẐẒẔ"},
}

var baseOf = func() map[rune]rune {
	m := make(map[rune]rune, 512)
	for _, d := range diacritics {
		for _, r := range d.chars {
			m[r] = d.base
		}
	}
	return m
}()

// newStripper returns a transformer that removes combining marks.
// Transformers carry state, so each call site gets its own.
func newStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// RemoveDiacritics replaces every character carrying a diacritic with its
// base character. Characters that have no single-rune base form are kept.
func RemoveDiacritics(s string) string {
	var t transform.Transformer
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			out = append(out, r)
			continue
		}
		if b, ok := baseOf[r]; ok {
			out = append(out, b)
			continue
		}
		if t == nil {
			t = newStripper()
		}
		out = append(out, stripRune(t, r))
	}
	return string(out)
}

func stripRune(t transform.Transformer, r rune) rune {
	res, _, err := transform.String(t, string(r))
	if err != nil {
		return r
	}
	rs := []rune(res)
	if len(rs) != 1 {
		return r
	}
	return rs[0]
}
