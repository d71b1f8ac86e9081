// Package filter implements the predicate interpreter used to narrow a list.
//
// A Rule tests one field with one operator. A Set holds the active rules,
// drops rules with a blank value, and keeps the rest ordered by operator
// priority so that cheap exact comparisons run before set membership and
// substring matching:
//
//	equal, not-equal, greater, less, greater-or-equal, less-or-equal,
//	between, not-between, in, not-in, like
//
// A record passes a Set when it passes every rule (AND semantics).
//
// Example:
//
//	fs := filter.NewSet(
//	    filter.Like("name", "zur"),
//	    filter.Gte("pop", 100000),
//	)
//	ok := fs.MatchesDocument(rec.SearchDocument())
package filter
