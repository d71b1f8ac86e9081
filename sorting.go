package reclist

import (
	"time"

	"github.com/hupe1980/reclist/order"
	"github.com/hupe1980/reclist/record"
)

// SetOrder replaces the ordering rules and re-sorts the list. Records that
// tie under every rule keep their arrival order. Calling SetOrder without
// rules restores arrival order.
func (l *List) SetOrder(rules ...order.Rule) Stats {
	l.comparator = order.NewComparator(rules, l.tag)
	l.reorder()
	return l.Stats()
}

// Order returns a copy of the ordering rules.
func (l *List) Order() []order.Rule {
	return l.comparator.Rules()
}

// reorder sorts the arrival sequence with the current comparator and runs
// the re-filter pass.
func (l *List) reorder() {
	start := time.Now()
	l.ordered = l.comparator.Sort(l.arrival, func(id string) (record.Record, bool) {
		row, ok := l.rows[id]
		if !ok {
			return record.Record{}, false
		}
		return l.records[row], true
	})
	l.orderedPos = positions(l.ordered)

	rules := len(l.comparator.Rules())
	l.opts.logger.LogOrder(rules, len(l.ordered))
	l.opts.metricsCollector.RecordOrder(rules, len(l.ordered), time.Since(start))

	l.refilter()
}
