package board

// TypeKey identifies one of the finite item types.
type TypeKey int32

// ItemID is an opaque handle chosen by the caller when the item is created.
type ItemID uint64

// SlotRef encodes both the slot index (upper 32 bits) and the slot generation
// (lower 32 bits) of an item's current placement. The zero value means the
// item is not placed.
type SlotRef uint64

// NewSlotRef creates a SlotRef from a slot index and a slot generation.
func NewSlotRef(index uint32, gen uint32) SlotRef {
	return SlotRef(uint64(index)<<32 | uint64(gen))
}

// Index extracts the slot index from the ref.
func (r SlotRef) Index() int {
	return int(r >> 32)
}

// Generation extracts the slot generation from the ref.
func (r SlotRef) Generation() uint32 {
	return uint32(r & 0xFFFFFFFF)
}

// Item is a placeable token of a given type. Items are created by the host;
// the board owns their placement, the host owns their lifetime.
type Item struct {
	id  ItemID
	typ TypeKey
	ref SlotRef
}

// NewItem creates an unplaced item with the given handle and type.
func NewItem(id ItemID, typ TypeKey) *Item {
	return &Item{id: id, typ: typ}
}

// ID returns the item's handle.
func (it *Item) ID() ItemID {
	return it.id
}

// Type returns the item's type key.
func (it *Item) Type() TypeKey {
	return it.typ
}

// Ref returns the item's current slot ref, or zero if the item is not placed.
// The ref goes stale (its generation stops matching) the moment the slot is
// cleared, so a held ref never dangles.
func (it *Item) Ref() SlotRef {
	return it.ref
}

// Placed reports whether the item currently occupies a slot.
func (it *Item) Placed() bool {
	return it.ref != 0
}
