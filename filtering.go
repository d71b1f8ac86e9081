package reclist

import (
	"slices"
	"time"

	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/internal/idset"
	"github.com/hupe1980/reclist/record"
)

// SetFilters replaces the filter rules. Rules with a blank value are
// dropped; the rest are ordered by operator priority.
func (l *List) SetFilters(rules ...filter.Rule) Stats {
	l.filters = filter.NewSet(rules...)
	l.refilter()
	return l.Stats()
}

// SetFilter replaces the rules for field with a single rule. A blank value
// removes the rules for field instead. value is converted with
// record.FromAny; unsupported values count as blank.
func (l *List) SetFilter(field string, value any, op filter.Operator, normalizeDiacritics ...bool) Stats {
	v, err := record.FromAny(value)
	if err != nil {
		v = record.Null()
	}
	r := filter.Rule{
		Field:               field,
		Operator:            op,
		Value:               v,
		NormalizeDiacritics: len(normalizeDiacritics) > 0 && normalizeDiacritics[0],
	}
	l.filters = l.filters.With(r)
	l.refilter()
	return l.Stats()
}

// RemoveFilter removes the rules for field.
func (l *List) RemoveFilter(field string) Stats {
	return l.RemoveFilters(field)
}

// RemoveFilters removes the rules for the given fields.
func (l *List) RemoveFilters(fields ...string) Stats {
	l.filters = l.filters.Without(fields...)
	l.refilter()
	return l.Stats()
}

// Filter returns the first rule for field.
func (l *List) Filter(field string) (filter.Rule, bool) {
	return l.filters.Get(field)
}

// Filters returns a copy of the active rules in evaluation order.
func (l *List) Filters() []filter.Rule {
	return l.filters.Rules()
}

// ClearFilters removes every rule. The selection is kept as it was before
// the call.
func (l *List) ClearFilters() Stats {
	selected, pivot := slices.Clone(l.selected), l.pivot

	l.filters = filter.Set{}
	l.refilter()

	l.selected = l.selected[:0]
	l.selectedSet.Clear()
	for _, id := range selected {
		if row, ok := l.rows[id]; ok && l.filteredSet.Contains(row) {
			l.selected = append(l.selected, id)
			l.selectedSet.Add(row)
		}
	}
	l.pivot = pivot
	l.fixPivot()
	l.updateVisible()
	return l.Stats()
}

// refilter recomputes the filtered and enabled sequences, prunes the
// selection and recomputes the visible window.
func (l *List) refilter() {
	start := time.Now()

	if l.filters.IsEmpty() {
		l.filtered = slices.Clone(l.ordered)
	} else {
		l.filtered = make([]string, 0, len(l.ordered))
		for _, id := range l.ordered {
			if l.filters.MatchesDocument(l.shadow[l.rows[id]]) {
				l.filtered = append(l.filtered, id)
			}
		}
	}

	l.filteredPos = positions(l.filtered)
	l.filteredSet = idset.New()
	l.enabled = make([]string, 0, len(l.filtered))
	for _, id := range l.filtered {
		row := l.rows[id]
		l.filteredSet.Add(row)
		if !l.disabledSet.Contains(row) {
			l.enabled = append(l.enabled, id)
		}
	}

	l.opts.logger.LogFilter(l.filters.Len(), len(l.filtered), len(l.ordered))
	l.opts.metricsCollector.RecordFilter(l.filters.Len(), len(l.filtered), time.Since(start))

	l.pruneSelection()
	l.updateVisible()
}

// pruneSelection drops selected ids that are no longer filtered.
func (l *List) pruneSelection() {
	if l.selectedSet.IsEmpty() {
		return
	}
	remaining := l.selectedSet.Clone()
	remaining.And(l.filteredSet)
	if remaining.Len() == l.selectedSet.Len() {
		return
	}
	kept := l.selected[:0]
	for _, id := range l.selected {
		if remaining.Contains(l.rows[id]) {
			kept = append(kept, id)
		}
	}
	l.selected = kept
	l.selectedSet = remaining
	l.fixPivot()
	l.selectionChanged("prune")
}
