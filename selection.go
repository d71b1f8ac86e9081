package reclist

import "slices"

// SelectionMode controls how Toggle behaves.
type SelectionMode uint8

const (
	// SingleSelect makes Toggle replace the selection.
	SingleSelect SelectionMode = iota
	// MultiSelect makes Toggle flip membership.
	MultiSelect
)

func (m SelectionMode) String() string {
	if m == MultiSelect {
		return "multi"
	}
	return "single"
}

// SelectionMode returns the selection mode.
func (l *List) SelectionMode() SelectionMode { return l.mode }

// SetSelectionMode changes the selection mode. Switching to SingleSelect
// keeps only the active record selected.
func (l *List) SetSelectionMode(mode SelectionMode) Stats {
	l.mode = mode
	if mode == SingleSelect && len(l.selected) > 1 {
		active := l.ActiveID()
		l.clearSelection()
		l.add(active)
		l.pivot = active
		l.selectionChanged("mode")
	}
	return l.Stats()
}

// ActiveID returns the most recently selected id, or "".
func (l *List) ActiveID() string {
	if len(l.selected) == 0 {
		return ""
	}
	return l.selected[len(l.selected)-1]
}

// ActiveIndex returns the position of the active id in OrderedIDs, or -1.
func (l *List) ActiveIndex() int {
	if pos, ok := l.orderedPos[l.ActiveID()]; ok {
		return pos
	}
	return -1
}

// Pivot returns the anchor of range selections, or "".
func (l *List) Pivot() string { return l.pivot }

// IsSelected reports whether id is selected.
func (l *List) IsSelected(id string) bool {
	row, ok := l.rows[id]
	return ok && l.selectedSet.Contains(row)
}

// IsActive reports whether id is the active id.
func (l *List) IsActive(id string) bool {
	return id != "" && id == l.ActiveID()
}

// Toggle flips the selection of id.
//
// In MultiSelect mode a newly selected id becomes the pivot; when the pivot
// itself is unselected, the new active id takes over. In SingleSelect mode
// toggling the active id clears the selection and toggling any other
// selectable id selects just that id.
func (l *List) Toggle(id string) Stats {
	if l.mode == SingleSelect {
		if l.IsActive(id) {
			return l.UnselectAll()
		}
		if !l.enabledID(id) {
			return l.Stats()
		}
		l.clearSelection()
		l.add(id)
		l.pivot = id
		l.selectionChanged("toggle")
		return l.Stats()
	}

	if l.IsSelected(id) {
		l.remove(id)
		l.fixPivot()
	} else if l.add(id) {
		l.pivot = id
	}
	l.selectionChanged("toggle")
	return l.Stats()
}

// Add selects id. Ids that are not filtered, already selected or disabled
// are ignored.
func (l *List) Add(id string) Stats {
	if l.add(id) {
		l.pivot = id
		l.selectionChanged("add")
	}
	return l.Stats()
}

// AddMany selects every selectable id, in the given order.
func (l *List) AddMany(ids []string) Stats {
	added := false
	for _, id := range ids {
		if l.add(id) {
			added = true
		}
	}
	if added {
		l.pivot = l.ActiveID()
		l.selectionChanged("add")
	}
	return l.Stats()
}

// SelectByIndex replaces the selection with the filtered record at index i.
func (l *List) SelectByIndex(i int) Stats {
	return l.SelectByIndexes([]int{i})
}

// SelectByIndexes replaces the selection with the filtered records at the
// given indexes. Out of range indexes are skipped.
func (l *List) SelectByIndexes(indexes []int) Stats {
	ids := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(l.filtered) {
			ids = append(ids, l.filtered[i])
		}
	}
	return l.SelectByIDs(ids)
}

// SelectByID replaces the selection with id.
func (l *List) SelectByID(id string) Stats {
	return l.SelectByIDs([]string{id})
}

// SelectByIDs replaces the selection with the given ids.
func (l *List) SelectByIDs(ids []string) Stats {
	l.clearSelection()
	for _, id := range ids {
		l.add(id)
	}
	l.pivot = l.ActiveID()
	l.selectionChanged("select")
	return l.Stats()
}

// SelectAll selects every enabled filtered record. Already selected ids
// keep their position in the selection order.
func (l *List) SelectAll() Stats {
	for _, id := range l.enabled {
		l.add(id)
	}
	l.fixPivot()
	if l.pivot == "" {
		l.pivot = l.ActiveID()
	}
	l.selectionChanged("select_all")
	return l.Stats()
}

// Remove unselects id. If id was the pivot, the new active id takes over.
func (l *List) Remove(id string) Stats {
	return l.RemoveMany([]string{id})
}

// RemoveMany unselects the given ids.
func (l *List) RemoveMany(ids []string) Stats {
	removed := false
	for _, id := range ids {
		if l.remove(id) {
			removed = true
		}
	}
	if removed {
		l.fixPivot()
		l.selectionChanged("remove")
	}
	return l.Stats()
}

// UnselectAll clears the selection and the pivot.
func (l *List) UnselectAll() Stats {
	l.clearSelection()
	l.selectionChanged("unselect_all")
	return l.Stats()
}

// SelectRangeFromPivotTo selects the contiguous run of filtered records
// between the pivot and id.
//
// Everything selected after the pivot is unselected first. Then the records
// from just past the pivot up to and including id are (re)selected in walk
// order, skipping disabled ones. The pivot stays in place so that repeated
// calls move the far end of the range. Without a pivot, the active id is
// used; without either, id is simply added.
func (l *List) SelectRangeFromPivotTo(id string) Stats {
	if len(l.filtered) == 0 {
		return l.Stats()
	}
	target, ok := l.filteredPos[id]
	if !ok {
		return l.Stats()
	}

	pivot := l.pivot
	if pivot == "" {
		pivot = l.ActiveID()
	}
	from, ok := l.filteredPos[pivot]
	if !ok || !l.IsSelected(pivot) {
		return l.Add(id)
	}

	if i := slices.Index(l.selected, pivot); i >= 0 {
		for _, dropped := range l.selected[i+1:] {
			l.selectedSet.Remove(l.rows[dropped])
		}
		l.selected = l.selected[:i+1]
	}

	step := 1
	if target < from {
		step = -1
	}
	for p := from; p != target; {
		p += step
		rid := l.filtered[p]
		l.remove(rid)
		l.add(rid)
	}

	l.pivot = pivot
	l.selectionChanged("range")
	return l.Stats()
}

// enabledID reports whether id is filtered and not disabled.
func (l *List) enabledID(id string) bool {
	row, ok := l.rows[id]
	return ok && l.filteredSet.Contains(row) && !l.disabledSet.Contains(row)
}

// selectable reports whether id may be added to the selection.
func (l *List) selectable(id string) bool {
	return l.enabledID(id) && !l.selectedSet.Contains(l.rows[id])
}

func (l *List) add(id string) bool {
	if !l.selectable(id) {
		return false
	}
	l.selected = append(l.selected, id)
	l.selectedSet.Add(l.rows[id])
	return true
}

func (l *List) remove(id string) bool {
	row, ok := l.rows[id]
	if !ok || !l.selectedSet.Contains(row) {
		return false
	}
	l.selectedSet.Remove(row)
	if i := slices.Index(l.selected, id); i >= 0 {
		l.selected = slices.Delete(l.selected, i, i+1)
	}
	return true
}

func (l *List) clearSelection() {
	l.selected = nil
	l.selectedSet.Clear()
	l.pivot = ""
}

// fixPivot falls back to the active id when the pivot is no longer selected.
func (l *List) fixPivot() {
	if l.pivot != "" && l.IsSelected(l.pivot) {
		return
	}
	l.pivot = l.ActiveID()
}

func (l *List) selectionChanged(op string) {
	l.opts.logger.LogSelection(op, len(l.selected), l.ActiveID())
	l.opts.metricsCollector.RecordSelection(len(l.selected))
}
