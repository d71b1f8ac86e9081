// Package order computes the sort order of records from a list of
// (field, direction) rules.
package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hupe1980/reclist/record"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("unknown sort direction")

// Direction is the direction of a single ordering rule.
type Direction uint8

const (
	// Ascending sorts smaller values first.
	Ascending Direction = iota
	// Descending sorts larger values first.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseDirection parses "ascending"/"asc" and "descending"/"desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Rule orders records by one field.
type Rule struct {
	Field     string
	Direction Direction
}

// Asc returns an ascending rule for field.
func Asc(field string) Rule { return Rule{Field: field, Direction: Ascending} }

// Desc returns a descending rule for field.
func Desc(field string) Rule { return Rule{Field: field, Direction: Descending} }

// Comparator compares records rule by rule. The first rule that tells two
// records apart decides; records equal under every rule compare as equal.
//
// Text is compared lowercased (shadow value first) with a collator for the
// configured locale. A Comparator is not safe for concurrent use.
type Comparator struct {
	rules    []Rule
	collator *collate.Collator
	lower    cases.Caser
}

// NewComparator creates a comparator for rules in the given locale.
func NewComparator(rules []Rule, tag language.Tag) *Comparator {
	return &Comparator{
		rules:    slices.Clone(rules),
		collator: collate.New(tag),
		lower:    cases.Lower(tag),
	}
}

// Rules returns a copy of the comparator rules.
func (c *Comparator) Rules() []Rule {
	return slices.Clone(c.rules)
}

// Compare returns -1, 0 or +1.
func (c *Comparator) Compare(a, b record.Record) int {
	return c.compareKeys(c.keys(a), c.keys(b))
}

// Sort returns ids ordered by the comparator rules. The sort is stable, so
// ids that tie under every rule keep their relative input order. Ids that
// lookup does not know are dropped.
func (c *Comparator) Sort(ids []string, lookup func(id string) (record.Record, bool)) []string {
	type entry struct {
		id   string
		keys []record.Value
	}

	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		rec, ok := lookup(id)
		if !ok {
			continue
		}
		entries = append(entries, entry{id: id, keys: c.keys(rec)})
	}

	if len(c.rules) > 0 {
		slices.SortStableFunc(entries, func(a, b entry) int {
			return c.compareKeys(a.keys, b.keys)
		})
	}

	out := make([]string, len(entries))
	for i := range entries {
		out[i] = entries[i].id
	}
	return out
}

// keys extracts one sort key per rule.
func (c *Comparator) keys(rec record.Record) []record.Value {
	keys := make([]record.Value, len(c.rules))
	for i, r := range c.rules {
		v, ok := rec.Lookup(r.Field)
		if !ok {
			keys[i] = record.Null()
			continue
		}
		if s, ok := v.AsString(); ok {
			v = record.String(c.lower.String(s))
		}
		keys[i] = v
	}
	return keys
}

func (c *Comparator) compareKeys(a, b []record.Value) int {
	for i, r := range c.rules {
		res := c.compareValues(a[i], b[i])
		if res == 0 {
			continue
		}
		if r.Direction == Descending {
			return -res
		}
		return res
	}
	return 0
}

// compareValues orders null first, then by kind rank when the kinds are not
// mutually comparable.
func (c *Comparator) compareValues(a, b record.Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}

	as, aok := a.AsString()
	bs, bok := b.AsString()
	if aok && bok {
		return c.collator.CompareString(as, bs)
	}

	if res, ok := record.Compare(a, b); ok {
		return res
	}

	if ra, rb := kindRank(a), kindRank(b); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	return c.collator.CompareString(a.String(), b.String())
}

func kindRank(v record.Value) int {
	switch v.Kind {
	case record.KindBool:
		return 1
	case record.KindInt, record.KindFloat:
		return 2
	case record.KindString:
		return 3
	case record.KindArray:
		return 4
	default:
		return 0
	}
}
