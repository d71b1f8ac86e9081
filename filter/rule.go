package filter

import (
	"strings"

	"github.com/hupe1980/reclist/markup"
	"github.com/hupe1980/reclist/record"
	"github.com/hupe1980/reclist/text"
)

// Rule represents a single filter condition.
type Rule struct {
	Field    string
	Operator Operator
	Value    record.Value
	// Priority is assigned by Set from the operator precedence.
	Priority int
	// NormalizeDiacritics makes like rules match base letters against
	// accented ones on both sides.
	NormalizeDiacritics bool
}

// Eq returns an equal rule. value is converted with record.FromAny; values
// that cannot be converted become null and the rule is dropped as blank.
func Eq(field string, value any) Rule { return newRule(field, OpEqual, value) }

// Neq returns a not-equal rule.
func Neq(field string, value any) Rule { return newRule(field, OpNotEqual, value) }

// Gt returns a greater rule.
func Gt(field string, value any) Rule { return newRule(field, OpGreater, value) }

// Gte returns a greater-or-equal rule.
func Gte(field string, value any) Rule { return newRule(field, OpGreaterEqual, value) }

// Lt returns a less rule.
func Lt(field string, value any) Rule { return newRule(field, OpLess, value) }

// Lte returns a less-or-equal rule.
func Lte(field string, value any) Rule { return newRule(field, OpLessEqual, value) }

// Between returns a between rule over the inclusive range [lo, hi].
func Between(field string, lo, hi any) Rule {
	return newRule(field, OpBetween, []any{lo, hi})
}

// In returns an in rule over the given set of values.
func In(field string, values ...any) Rule { return newRule(field, OpIn, values) }

// NotIn returns a not-in rule over the given set of values.
func NotIn(field string, values ...any) Rule { return newRule(field, OpNotIn, values) }

// Like returns a like rule.
func Like(field, query string) Rule { return newRule(field, OpLike, query) }

func newRule(field string, op Operator, value any) Rule {
	v, err := record.FromAny(value)
	if err != nil {
		v = record.Null()
	}
	return Rule{Field: field, Operator: op, Value: v, Priority: op.Priority()}
}

// Blank reports whether the rule value renders as empty or whitespace only.
// Array values are sets and never blank.
func (r Rule) Blank() bool {
	if r.Value.Kind == record.KindArray {
		return false
	}
	return text.IsBlank(r.Value.String())
}

// MatchesDocument checks a plain document, usually a record's search
// document so that shadow values take precedence over canonical ones.
func (r Rule) MatchesDocument(doc record.Document) bool {
	v, ok := doc[r.Field]
	return r.matchValue(v, ok)
}

func (r Rule) matchValue(v record.Value, exists bool) bool {
	switch r.Operator {
	case OpIn:
		return compareIn(v, r.Value)
	case OpNotIn:
		if r.Value.Kind != record.KindArray {
			return false
		}
		return !compareIn(v, r.Value)
	}

	if !exists || v.IsNull() {
		return false
	}

	switch r.Operator {
	case OpEqual:
		return record.Equal(v, r.Value)
	case OpNotEqual:
		return !record.Equal(v, r.Value)
	case OpGreater:
		res, ok := record.Compare(v, r.Value)
		return ok && res > 0
	case OpGreaterEqual:
		res, ok := record.Compare(v, r.Value)
		return ok && res >= 0
	case OpLess:
		res, ok := record.Compare(v, r.Value)
		return ok && res < 0
	case OpLessEqual:
		res, ok := record.Compare(v, r.Value)
		return ok && res <= 0
	case OpBetween:
		in, ok := compareBetween(v, r.Value)
		return ok && in
	case OpNotBetween:
		in, ok := compareBetween(v, r.Value)
		return ok && !in
	case OpLike:
		return compareLike(v, r.Value, r.NormalizeDiacritics)
	default:
		return false
	}
}

// compareIn tests membership of v in the set value. Missing values are
// tested as null.
func compareIn(v, set record.Value) bool {
	items, ok := set.AsArray()
	if !ok {
		return false
	}
	if v.Kind == record.KindInvalid {
		v = record.Null()
	}
	for _, item := range items {
		if record.Equal(v, item) {
			return true
		}
	}
	return false
}

// compareBetween reports whether lo <= v <= hi. ok is false when bounds is
// not a two element array or the values are not ordered against each other.
func compareBetween(v, bounds record.Value) (in bool, ok bool) {
	arr, isArr := bounds.AsArray()
	if !isArr || len(arr) != 2 {
		return false, false
	}
	lo, okLo := record.Compare(v, arr[0])
	hi, okHi := record.Compare(v, arr[1])
	if !okLo || !okHi {
		return false, false
	}
	return lo >= 0 && hi <= 0, true
}

// compareLike checks that the plain text of v contains every token of query.
// An array matches when one of its elements does.
func compareLike(v, query record.Value, stripDiacritics bool) bool {
	if elems, ok := v.AsArray(); ok {
		for _, e := range elems {
			if !e.IsNull() && compareLike(e, query, stripDiacritics) {
				return true
			}
		}
		return false
	}
	haystack := text.Normalize(markup.StripTags(v.String()), stripDiacritics)
	tokens := text.Tokens(text.Normalize(query.String(), stripDiacritics))
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}
