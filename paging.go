package reclist

import (
	"math"
	"slices"

	"github.com/hupe1980/reclist/highlight"
	"github.com/hupe1980/reclist/record"
)

// PageSize returns the page size.
func (l *List) PageSize() int { return l.pageSize }

// SetPageSize sets the page size, rounded to the nearest integer, and
// recomputes the visible window. Sizes that do not round to at least one
// are ignored and false is returned.
func (l *List) SetPageSize(size float64) bool {
	if math.IsNaN(size) || size <= 0 {
		return false
	}
	rounded := math.Round(size)
	if rounded < 1 || rounded > math.MaxInt32 {
		return false
	}
	l.pageSize = int(rounded)
	l.updateVisible()
	return true
}

// Page returns the current page: 1-based, or 0 when there are no pages.
func (l *List) Page() int { return l.page }

// NumPages returns the number of pages of the filtered sequence.
func (l *List) NumPages() int {
	if len(l.filtered) == 0 {
		return 0
	}
	return (len(l.filtered) + l.pageSize - 1) / l.pageSize
}

// SetPage moves to page and returns true. Pages outside [1, NumPages] are
// ignored and false is returned.
func (l *List) SetPage(page int) bool {
	if page < 1 || page > l.NumPages() {
		return false
	}
	l.setWindow(page)
	return true
}

// NextPage moves to the following page, if any.
func (l *List) NextPage() bool { return l.SetPage(l.page + 1) }

// PrevPage moves to the preceding page, if any.
func (l *List) PrevPage() bool { return l.SetPage(l.page - 1) }

// FirstPage moves to the first page, if any.
func (l *List) FirstPage() bool { return l.SetPage(1) }

// LastPage moves to the last page, if any.
func (l *List) LastPage() bool { return l.SetPage(l.NumPages()) }

// PageOf returns the page holding the filtered record with the given id,
// or 0 when the id is not filtered.
func (l *List) PageOf(id string) int {
	pos, ok := l.filteredPos[id]
	if !ok {
		return 0
	}
	return pos/l.pageSize + 1
}

// updateVisible picks the page without an explicit request: the page of the
// active record when something is selected, else the first page.
func (l *List) updateVisible() {
	page := 0
	if active := l.ActiveID(); active != "" {
		page = l.PageOf(active)
	}
	if page == 0 && len(l.filtered) > 0 {
		page = 1
	}
	l.setWindow(page)
}

func (l *List) setWindow(page int) {
	l.page = page
	if page == 0 {
		l.visible = nil
	} else {
		lo := (page - 1) * l.pageSize
		hi := min(lo+l.pageSize, len(l.filtered))
		l.visible = slices.Clone(l.filtered[lo:hi])
	}
	l.opts.logger.LogPage(l.page, l.NumPages(), len(l.visible))
}

// VisibleIDs returns the ids on the current page.
func (l *List) VisibleIDs() []string { return slices.Clone(l.visible) }

// VisibleItems returns copies of the records on the current page. Text
// fields targeted by a like filter have their matches highlighted; the
// stored records are never modified.
// Highlighting always ignores diacritics, so a match against a shadow value
// is marked on the canonical one.
func (l *List) VisibleItems() []record.Record {
	items := l.GetMany(l.visible)
	likes := l.filters.LikeRules()
	if len(likes) == 0 {
		return items
	}
	opts := l.opts.highlight
	opts.StripDiacritics = true
	for i := range items {
		for _, r := range likes {
			s, ok := items[i].Fields[r.Field].AsString()
			if !ok {
				continue
			}
			items[i].Fields[r.Field] = record.String(highlight.Highlight(s, r.Value.String(), opts))
		}
	}
	return items
}
