package board

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// MergeThreshold is the group size at which a merge fires.
const MergeThreshold = 3

// TypeGroup is the ordered set of currently-placed, unmerged items sharing a
// type. Member order is placement order. A group exists from the first
// sighting of its type until the merge that consumes it.
type TypeGroup struct {
	key     TypeKey
	members []*Item
}

// Key returns the group's type key.
func (g *TypeGroup) Key() TypeKey {
	return g.key
}

// Size returns the number of members.
func (g *TypeGroup) Size() int {
	return len(g.members)
}

// Members returns the member items in placement order.
func (g *TypeGroup) Members() []*Item {
	return g.members
}

// ReadyToMerge reports whether the group has reached the merge threshold.
func (g *TypeGroup) ReadyToMerge() bool {
	return len(g.members) >= MergeThreshold
}

// GroupTracker maps an item type to its live group. Like the board, it is
// single-goroutine state.
type GroupTracker struct {
	groups *intmap.Map[TypeKey, *TypeGroup]
	keys   []TypeKey // first-sighting order, for deterministic iteration
}

// NewGroupTracker creates an empty tracker.
func NewGroupTracker() *GroupTracker {
	return &GroupTracker{
		groups: intmap.New[TypeKey, *TypeGroup](16),
	}
}

// Has reports whether a group exists for the given type.
func (t *GroupTracker) Has(key TypeKey) bool {
	_, ok := t.groups.Get(key)
	return ok
}

// Group returns the group for the given type. Callers must check Has first;
// asking for an absent group is API misuse and panics.
func (t *GroupTracker) Group(key TypeKey) *TypeGroup {
	g, ok := t.groups.Get(key)
	if !ok {
		panic(fmt.Sprintf("no group tracked for type %d", key))
	}
	return g
}

// Record adds an item to its type's group, creating a singleton group if the
// type is unseen. Returns the group the item now belongs to.
func (t *GroupTracker) Record(it *Item) *TypeGroup {
	g, ok := t.groups.Get(it.typ)
	if !ok {
		g = &TypeGroup{key: it.typ}
		t.groups.Put(it.typ, g)
		t.keys = append(t.keys, it.typ)
	}
	g.members = append(g.members, it)
	return g
}

// RemoveGroup drops the group for the given type. Merged members are never
// kept around.
func (t *GroupTracker) RemoveGroup(key TypeKey) {
	if _, ok := t.groups.Get(key); !ok {
		return
	}
	t.groups.Del(key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of tracked groups.
func (t *GroupTracker) Len() int {
	return len(t.keys)
}

// Keys returns the tracked type keys in first-sighting order.
func (t *GroupTracker) Keys() []TypeKey {
	return t.keys
}

// Clear drops every tracked group.
func (t *GroupTracker) Clear() {
	t.groups.Clear()
	t.keys = t.keys[:0]
}

// IdealSlot computes the slot immediately right of the group's right-most
// placed member. ok is false when that index falls past the end of the board
// (the right-most member already sits in the last slot) or the group has no
// placed members; the caller picks the fallback policy.
func (t *GroupTracker) IdealSlot(key TypeKey, b *SlotBoard) (index int, ok bool) {
	g := t.Group(key)

	// Right-most member wins, so same-type items cluster into a contiguous
	// ascending run. Members with a zero ref are mid-move and skipped.
	rightmost := -1
	for _, it := range g.members {
		ref := it.ref
		if ref == 0 {
			continue
		}
		if idx := ref.Index(); idx > rightmost {
			rightmost = idx
		}
	}

	if rightmost < 0 {
		return 0, false
	}
	ideal := rightmost + 1
	if ideal >= b.Len() {
		return ideal, false
	}
	return ideal, true
}
