package reclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/order"
)

func TestToggleSingle(t *testing.T) {
	l := newList(t)
	l.Load(named("A", "B", "C"))

	l.Toggle("1")
	assert.Equal(t, []string{"1"}, l.SelectedIDs())
	assert.Equal(t, "1", l.ActiveID())
	assert.True(t, l.IsActive("1"))

	l.Toggle("2")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())

	l.Toggle("2")
	assert.Empty(t, l.SelectedIDs())
	assert.Empty(t, l.ActiveID())
	assert.Empty(t, l.Pivot())

	l.Toggle("nope")
	assert.Empty(t, l.SelectedIDs())
}

func TestToggleSingleIgnoresDisabled(t *testing.T) {
	l := newList(t)
	recs := named("A", "B")
	recs[1].Disabled = true
	l.Load(recs)
	l.Toggle("1")

	l.Toggle("2")

	assert.Equal(t, []string{"1"}, l.SelectedIDs())
}

func TestToggleSingleNarrowsMultiSelection(t *testing.T) {
	l := newList(t)
	l.Load(named("Alpha", "Beta", "Gamma"))

	l.AddMany([]string{"1", "2"})
	require.Equal(t, []string{"1", "2"}, l.SelectedIDs())
	require.Equal(t, "2", l.ActiveID())

	stats := l.Toggle("1")
	assert.Equal(t, []string{"1"}, l.SelectedIDs())
	assert.Equal(t, "1", stats.ActiveID)
	assert.Equal(t, "1", l.Pivot())

	l.SelectAll()
	require.Equal(t, []string{"1", "2", "3"}, l.SelectedIDs())
	l.Toggle("2")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())
}

func TestToggleMulti(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C"))

	l.Toggle("1")
	l.Toggle("3")
	assert.Equal(t, []string{"1", "3"}, l.SelectedIDs())
	assert.Equal(t, "3", l.Pivot())

	l.Toggle("1")
	assert.Equal(t, []string{"3"}, l.SelectedIDs())
	assert.Equal(t, "3", l.Pivot())

	l.Toggle("2")
	l.Toggle("2")
	assert.Equal(t, []string{"3"}, l.SelectedIDs())
	assert.Equal(t, "3", l.Pivot(), "pivot falls back to the active id")
}

func TestAdd(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	recs := named("A", "B", "C")
	recs[2].Disabled = true
	l.Load(recs)
	l.SetFilters(filter.Neq("name", "A"))

	l.Add("1") // filtered out
	l.Add("3") // disabled
	l.Add("nope")
	assert.Empty(t, l.SelectedIDs())

	l.Add("2")
	l.Add("2")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())
	assert.Equal(t, "2", l.Pivot())
}

func TestAddManyRemoveMany(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C", "D"))

	l.AddMany([]string{"3", "1", "4"})
	assert.Equal(t, []string{"3", "1", "4"}, l.SelectedIDs())
	assert.Equal(t, "4", l.ActiveID())
	assert.Equal(t, "4", l.Pivot())
	assert.Equal(t, 3, l.ActiveIndex())

	l.RemoveMany([]string{"4", "nope"})
	assert.Equal(t, []string{"3", "1"}, l.SelectedIDs())
	assert.Equal(t, "1", l.Pivot())

	l.Remove("3")
	assert.Equal(t, []string{"1"}, l.SelectedIDs())

	l.UnselectAll()
	assert.Empty(t, l.SelectedIDs())
	assert.Empty(t, l.Pivot())
	assert.Equal(t, -1, l.ActiveIndex())
}

func TestSelectByIndex(t *testing.T) {
	l := newList(t)
	l.Load(named("A", "B", "C"))
	l.SetOrder(order.Desc("name"))

	l.SelectByIndex(0)
	assert.Equal(t, []string{"3"}, l.SelectedIDs())

	l.SelectByIndexes([]int{2, 7, -1, 1})
	assert.Equal(t, []string{"1", "2"}, l.SelectedIDs())
	assert.Equal(t, "2", l.Pivot())

	l.SelectByIndex(9)
	assert.Empty(t, l.SelectedIDs())
}

func TestSelectByIDs(t *testing.T) {
	l := newList(t)
	recs := named("A", "B", "C")
	recs[0].Disabled = true
	l.Load(recs)

	l.SelectByIDs([]string{"1", "3", "2", "3"})
	assert.Equal(t, []string{"3", "2"}, l.SelectedIDs())
	assert.Equal(t, "2", l.ActiveID())

	l.SelectByID("3")
	assert.Equal(t, []string{"3"}, l.SelectedIDs())
}

func TestSelectAll(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	recs := named("A", "B", "C", "D")
	recs[1].Disabled = true
	l.Load(recs)
	l.SetFilters(filter.Neq("name", "D"))
	l.Add("3")

	l.SelectAll()

	assert.Equal(t, []string{"3", "1"}, l.SelectedIDs())
	assert.Equal(t, "3", l.Pivot())
}

func TestSelectRangeFromPivotTo(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C", "D"))
	l.Add("1")

	l.SelectRangeFromPivotTo("3")
	assert.Equal(t, []string{"1", "2", "3"}, l.SelectedIDs())
	assert.Equal(t, "1", l.Pivot())
	assert.Equal(t, "3", l.ActiveID())

	// moving the far end shrinks the range
	l.SelectRangeFromPivotTo("2")
	assert.Equal(t, []string{"1", "2"}, l.SelectedIDs())

	l.SelectRangeFromPivotTo("4")
	assert.Equal(t, []string{"1", "2", "3", "4"}, l.SelectedIDs())
}

func TestSelectRangeSkipsDisabled(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	recs := named("A", "B", "C", "D")
	recs[1].Disabled = true
	l.Load(recs)
	l.Add("1")

	l.SelectRangeFromPivotTo("3")

	assert.Equal(t, []string{"1", "3"}, l.SelectedIDs())
}

func TestSelectRangeBackwards(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C", "D"))
	l.Add("4")

	l.SelectRangeFromPivotTo("2")

	assert.Equal(t, []string{"4", "3", "2"}, l.SelectedIDs())
	assert.Equal(t, "4", l.Pivot())
}

func TestSelectRangeKeepsSelectionBeforePivot(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C", "D", "E"))
	l.AddMany([]string{"5", "1"})

	l.SelectRangeFromPivotTo("3")

	assert.Equal(t, []string{"5", "1", "2", "3"}, l.SelectedIDs())
}

func TestSelectRangeEdgeCases(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C"))

	// no pivot: plain add
	l.SelectRangeFromPivotTo("2")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())
	assert.Equal(t, "2", l.Pivot())

	// unknown target
	l.SelectRangeFromPivotTo("nope")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())

	// range onto the pivot itself
	l.SelectRangeFromPivotTo("2")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())

	// target filtered out
	l.SetFilters(filter.Neq("name", "C"))
	l.SelectRangeFromPivotTo("3")
	assert.Equal(t, []string{"2"}, l.SelectedIDs())

	// empty filtered sequence
	l.SetFilters(filter.Eq("name", "Z"))
	l.SelectRangeFromPivotTo("1")
	assert.Empty(t, l.SelectedIDs())
}

func TestSetSelectionMode(t *testing.T) {
	l := newList(t, WithSelectionMode(MultiSelect))
	l.Load(named("A", "B", "C"))
	l.AddMany([]string{"1", "3", "2"})

	l.SetSelectionMode(SingleSelect)

	assert.Equal(t, SingleSelect, l.SelectionMode())
	assert.Equal(t, []string{"2"}, l.SelectedIDs())
	assert.Equal(t, "2", l.Pivot())
	assert.Equal(t, "single", SingleSelect.String())
	assert.Equal(t, "multi", MultiSelect.String())

	l.SetSelectionMode(MultiSelect)
	l.Toggle("1")
	require.Equal(t, []string{"2", "1"}, l.SelectedIDs())
}
