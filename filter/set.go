package filter

import (
	"slices"

	"github.com/hupe1980/reclist/record"
)

// Set represents the active rules of a list. All rules must match (AND).
//
// The zero Set has no rules and matches everything. Sets are values: the
// mutating helpers return a new Set and never touch the receiver.
type Set struct {
	rules []Rule
}

// NewSet creates a set from rules, dropping blank ones, assigning each kept
// rule its operator priority and ordering the rules by priority. Rules of
// equal priority keep their given order.
func NewSet(rules ...Rule) Set {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Blank() {
			continue
		}
		r.Priority = r.Operator.Priority()
		kept = append(kept, r)
	}
	slices.SortStableFunc(kept, func(a, b Rule) int {
		return a.Priority - b.Priority
	})
	return Set{rules: kept}
}

// Rules returns a copy of the rules in evaluation order.
func (s Set) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Len returns the number of active rules.
func (s Set) Len() int { return len(s.rules) }

// IsEmpty reports whether the set has no rules.
func (s Set) IsEmpty() bool { return len(s.rules) == 0 }

// Get returns the first rule for field.
func (s Set) Get(field string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Field == field {
			return r, true
		}
	}
	return Rule{}, false
}

// With returns a set where every rule for r.Field is replaced by r. A blank
// r only removes the existing rules.
func (s Set) With(r Rule) Set {
	return NewSet(append(s.without([]string{r.Field}), r)...)
}

// Without returns a set without any rule for the given fields.
func (s Set) Without(fields ...string) Set {
	return NewSet(s.without(fields)...)
}

func (s Set) without(fields []string) []Rule {
	out := make([]Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if !slices.Contains(fields, r.Field) {
			out = append(out, r)
		}
	}
	return out
}

// LikeRules returns the like rules of the set.
func (s Set) LikeRules() []Rule {
	var out []Rule
	for _, r := range s.rules {
		if r.Operator == OpLike {
			out = append(out, r)
		}
	}
	return out
}

// MatchesDocument checks whether doc passes every rule of the set.
func (s Set) MatchesDocument(doc record.Document) bool {
	for _, r := range s.rules {
		if !r.MatchesDocument(doc) {
			return false
		}
	}
	return true
}
