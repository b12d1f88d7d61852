package board_test

import (
	"testing"

	"github.com/plus3/mergerow/board"
	"github.com/stretchr/testify/assert"
)

func TestGroupTrackerRecordKeepsPlacementOrder(t *testing.T) {
	tracker := board.NewGroupTracker()

	first := board.NewItem(1, 5)
	second := board.NewItem(2, 5)

	g := tracker.Record(first)
	assert.Equal(t, board.TypeKey(5), g.Key())
	assert.Equal(t, 1, g.Size())

	tracker.Record(second)
	assert.Equal(t, 2, g.Size())
	assert.Same(t, first, g.Members()[0])
	assert.Same(t, second, g.Members()[1])
}

func TestGroupTrackerHasAndLen(t *testing.T) {
	tracker := board.NewGroupTracker()
	assert.False(t, tracker.Has(1))
	assert.Equal(t, 0, tracker.Len())

	tracker.Record(board.NewItem(1, 1))
	tracker.Record(board.NewItem(2, 2))

	assert.True(t, tracker.Has(1))
	assert.True(t, tracker.Has(2))
	assert.Equal(t, 2, tracker.Len())
	assert.Equal(t, []board.TypeKey{1, 2}, tracker.Keys())
}

func TestGroupTrackerGroupPanicsWhenAbsent(t *testing.T) {
	tracker := board.NewGroupTracker()
	assert.Panics(t, func() {
		tracker.Group(3)
	})
}

func TestGroupTrackerRemoveGroup(t *testing.T) {
	tracker := board.NewGroupTracker()
	tracker.Record(board.NewItem(1, 1))
	tracker.Record(board.NewItem(2, 2))

	tracker.RemoveGroup(1)

	assert.False(t, tracker.Has(1))
	assert.True(t, tracker.Has(2))
	assert.Equal(t, []board.TypeKey{2}, tracker.Keys())

	// Removing an absent group is a no-op.
	tracker.RemoveGroup(1)
	assert.Equal(t, 1, tracker.Len())
}

func TestGroupTrackerMergeReadiness(t *testing.T) {
	tracker := board.NewGroupTracker()

	g := tracker.Record(board.NewItem(1, 1))
	tracker.Record(board.NewItem(2, 1))
	assert.False(t, g.ReadyToMerge())

	tracker.Record(board.NewItem(3, 1))
	assert.True(t, g.ReadyToMerge())
}

func TestIdealSlotRightOfRightmostMember(t *testing.T) {
	b := board.NewSlotBoard(9)
	tracker := board.NewGroupTracker()

	first := board.NewItem(1, 1)
	assert.NoError(t, b.Occupy(0, first))
	tracker.Record(first)

	ideal, ok := tracker.IdealSlot(1, b)
	assert.True(t, ok)
	assert.Equal(t, 1, ideal)

	// A second member further right moves the ideal slot with it.
	second := board.NewItem(2, 1)
	assert.NoError(t, b.Occupy(4, second))
	tracker.Record(second)

	ideal, ok = tracker.IdealSlot(1, b)
	assert.True(t, ok)
	assert.Equal(t, 5, ideal)
}

func TestIdealSlotPastBoardEnd(t *testing.T) {
	b := board.NewSlotBoard(3)
	tracker := board.NewGroupTracker()

	it := board.NewItem(1, 1)
	assert.NoError(t, b.Occupy(2, it))
	tracker.Record(it)

	_, ok := tracker.IdealSlot(1, b)
	assert.False(t, ok)
}

func TestIdealSlotSkipsUnplacedMembers(t *testing.T) {
	b := board.NewSlotBoard(5)
	tracker := board.NewGroupTracker()

	placed := board.NewItem(1, 1)
	assert.NoError(t, b.Occupy(1, placed))
	tracker.Record(placed)
	tracker.Record(board.NewItem(2, 1)) // pending, no slot yet

	ideal, ok := tracker.IdealSlot(1, b)
	assert.True(t, ok)
	assert.Equal(t, 2, ideal)
}

func TestIdealSlotNoPlacedMembers(t *testing.T) {
	b := board.NewSlotBoard(5)
	tracker := board.NewGroupTracker()
	tracker.Record(board.NewItem(1, 1))

	_, ok := tracker.IdealSlot(1, b)
	assert.False(t, ok)
}

func TestGroupTrackerClear(t *testing.T) {
	tracker := board.NewGroupTracker()
	tracker.Record(board.NewItem(1, 1))
	tracker.Record(board.NewItem(2, 2))

	tracker.Clear()

	assert.Equal(t, 0, tracker.Len())
	assert.False(t, tracker.Has(1))
	assert.False(t, tracker.Has(2))
}
