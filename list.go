package reclist

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/internal/idset"
	"github.com/hupe1980/reclist/order"
	"github.com/hupe1980/reclist/record"
)

// List is the record list engine.
type List struct {
	opts       options
	tag        language.Tag
	comparator *order.Comparator
	filters    filter.Set

	// canonical and shadow tables, indexed by row (arrival position)
	records []record.Record
	shadow  []record.Document
	rows    map[string]uint32
	arrival []string

	ordered    []string
	orderedPos map[string]int

	filtered    []string
	filteredPos map[string]int
	filteredSet *idset.Set
	enabled     []string
	disabledSet *idset.Set

	mode        SelectionMode
	selected    []string
	selectedSet *idset.Set
	pivot       string

	pageSize int
	page     int
	visible  []string
}

// Stats is a snapshot of the derived counts of a List.
type Stats struct {
	NumItems         int    `json:"numItems"`
	NumFilteredItems int    `json:"numFilteredItems"`
	NumEnabledItems  int    `json:"numEnabledItems"`
	NumSelectedItems int    `json:"numSelectedItems"`
	NumVisibleItems  int    `json:"numVisibleItems"`
	Page             int    `json:"page"`
	NumPages         int    `json:"numPages"`
	PageSize         int    `json:"pageSize"`
	ActiveID         string `json:"activeId"`
	// ActiveIndex is the position of ActiveID in OrderedIDs, or -1.
	ActiveIndex int `json:"activeIndex"`
}

// New creates an empty List.
func New(optFns ...Option) (*List, error) {
	o := applyOptions(optFns)

	if o.pageSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, o.pageSize)
	}
	tag, err := language.Parse(o.locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, o.locale, err)
	}

	l := &List{
		opts:       o,
		tag:        tag,
		comparator: order.NewComparator(nil, tag),
		mode:       o.selectionMode,
		pageSize:   o.pageSize,
	}
	l.reset()
	return l, nil
}

func (l *List) reset() {
	l.records = nil
	l.shadow = nil
	l.rows = make(map[string]uint32)
	l.arrival = nil
	l.ordered = nil
	l.orderedPos = make(map[string]int)
	l.filtered = nil
	l.filteredPos = make(map[string]int)
	l.filteredSet = idset.New()
	l.enabled = nil
	l.disabledSet = idset.New()
	l.selected = nil
	l.selectedSet = idset.New()
	l.pivot = ""
	l.page = 0
	l.visible = nil
}

// Load replaces all records. Records with an empty id are skipped; a
// repeated id replaces the earlier record but keeps its arrival position.
//
// Selection and pagination are reset. The stored order and filter rules
// are kept and re-applied to the new records.
func (l *List) Load(records []record.Record) Stats {
	start := time.Now()
	l.reset()

	skipped := 0
	for _, in := range records {
		if in.ID == "" {
			skipped++
			continue
		}
		rec := in.Clone()
		if row, ok := l.rows[rec.ID]; ok {
			l.records[row] = rec
			l.shadow[row] = rec.SearchDocument()
			continue
		}
		row := uint32(len(l.records))
		l.rows[rec.ID] = row
		l.records = append(l.records, rec)
		l.shadow = append(l.shadow, rec.SearchDocument())
		l.arrival = append(l.arrival, rec.ID)
	}
	for row, rec := range l.records {
		if rec.Disabled {
			l.disabledSet.Add(uint32(row))
		}
	}

	l.opts.logger.LogLoad(len(l.records), skipped)
	l.opts.metricsCollector.RecordLoad(len(l.records), skipped, time.Since(start))

	l.reorder()
	return l.Stats()
}

// LoadMaps converts loosely typed records (see record.FromMap) and loads
// them. The list is left untouched when a value cannot be converted.
func (l *List) LoadMaps(maps []map[string]any) (Stats, error) {
	records := make([]record.Record, 0, len(maps))
	for i, m := range maps {
		rec, err := record.FromMap(m)
		if err != nil {
			ive := &ErrInvalidValue{Index: i, cause: err}
			var fe *record.FieldError
			if errors.As(err, &fe) {
				ive.Field = fe.Field
			}
			return l.Stats(), ive
		}
		records = append(records, rec)
	}
	return l.Load(records), nil
}

// Clear removes all records. Equivalent to Load(nil).
func (l *List) Clear() Stats {
	return l.Load(nil)
}

// Get returns a copy of the record with the given id.
func (l *List) Get(id string) (record.Record, bool) {
	row, ok := l.rows[id]
	if !ok {
		return record.Record{}, false
	}
	return l.records[row].Clone(), true
}

// GetMany returns copies of the records with the given ids, skipping
// unknown ids.
func (l *List) GetMany(ids []string) []record.Record {
	out := make([]record.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := l.Get(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Has reports whether a record with the given id is loaded.
func (l *List) Has(id string) bool {
	_, ok := l.rows[id]
	return ok
}

// IsDisabled reports whether the record with the given id is disabled.
func (l *List) IsDisabled(id string) bool {
	row, ok := l.rows[id]
	return ok && l.disabledSet.Contains(row)
}

// Stats returns the current derived counts.
func (l *List) Stats() Stats {
	return Stats{
		NumItems:         len(l.records),
		NumFilteredItems: len(l.filtered),
		NumEnabledItems:  len(l.enabled),
		NumSelectedItems: len(l.selected),
		NumVisibleItems:  len(l.visible),
		Page:             l.page,
		NumPages:         l.NumPages(),
		PageSize:         l.pageSize,
		ActiveID:         l.ActiveID(),
		ActiveIndex:      l.ActiveIndex(),
	}
}

// NumItems returns the number of loaded records.
func (l *List) NumItems() int { return len(l.records) }

// NumFilteredItems returns the number of records passing the filters.
func (l *List) NumFilteredItems() int { return len(l.filtered) }

// NumEnabledItems returns the number of filtered records that are not disabled.
func (l *List) NumEnabledItems() int { return len(l.enabled) }

// NumSelectedItems returns the number of selected records.
func (l *List) NumSelectedItems() int { return len(l.selected) }

// NumVisibleItems returns the number of records on the current page.
func (l *List) NumVisibleItems() int { return len(l.visible) }

// IDs returns all ids in arrival order.
func (l *List) IDs() []string { return slices.Clone(l.arrival) }

// OrderedIDs returns all ids in sort order.
func (l *List) OrderedIDs() []string { return slices.Clone(l.ordered) }

// FilteredIDs returns the ids passing the filters, in sort order.
func (l *List) FilteredIDs() []string { return slices.Clone(l.filtered) }

// EnabledIDs returns the filtered ids that are not disabled.
func (l *List) EnabledIDs() []string { return slices.Clone(l.enabled) }

// SelectedIDs returns the selected ids in selection order.
func (l *List) SelectedIDs() []string { return slices.Clone(l.selected) }

// Items returns copies of all records in arrival order.
func (l *List) Items() []record.Record { return l.GetMany(l.arrival) }

// OrderedItems returns copies of all records in sort order.
func (l *List) OrderedItems() []record.Record { return l.GetMany(l.ordered) }

// FilteredItems returns copies of the filtered records.
func (l *List) FilteredItems() []record.Record { return l.GetMany(l.filtered) }

// EnabledItems returns copies of the enabled filtered records.
func (l *List) EnabledItems() []record.Record { return l.GetMany(l.enabled) }

// SelectedItems returns copies of the selected records in selection order.
func (l *List) SelectedItems() []record.Record { return l.GetMany(l.selected) }

func positions(ids []string) map[string]int {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return pos
}
