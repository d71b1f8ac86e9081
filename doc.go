// Package reclist provides an in-memory record list engine.
//
// A List holds a collection of uniquely identified records and keeps four
// derived views over it consistent: a sort order, a filtered subset, a page
// of that subset and a selection. Visible records matched by a like filter
// come back with the matches highlighted inside their markup.
//
// # Quick Start
//
//	l, _ := reclist.New(reclist.WithPageSize(2))
//	l.Load([]record.Record{
//	    {ID: "1", Fields: record.Document{"name": record.String("Alpha")}},
//	    {ID: "2", Fields: record.Document{"name": record.String("Beta")}},
//	    {ID: "3", Fields: record.Document{"name": record.String("Gamma")}},
//	})
//	l.VisibleIDs() // [1 2]
//
//	l.SetOrder(order.Desc("name"))
//	l.SetFilters(filter.Like("name", "a"))
//	l.SetPage(2)
//
// # Derived views
//
// Writes flow one way: records, then order, then filter, then page. After
// every operation the following holds:
//
//   - FilteredIDs is the subsequence of OrderedIDs passing every filter rule
//   - EnabledIDs is FilteredIDs without disabled records
//   - SelectedIDs is a subset of FilteredIDs; ids filtered out are unselected
//   - the pivot is empty or selected
//   - VisibleIDs is the window of FilteredIDs for the current page
//
// # Shadow values
//
// Records may carry shadow values (record.Record.Shadow) holding a
// search-optimized copy of a field. Ordering and filtering read the shadow
// value when present; highlighting always works on the canonical value.
//
// # Errors
//
// The engine degrades silently: records without an id are skipped, blank
// filter rules are dropped, out of range pages are ignored and lookups of
// unknown ids return nothing. Only the loose-map loader and New return errors.
//
// # Concurrency
//
// A List is not safe for concurrent use. Every operation runs to completion
// synchronously; hosts sharing a List between goroutines must serialize
// access themselves. Returned slices and records are copies.
package reclist
