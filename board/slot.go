package board

// Slot is a single placement position. It holds at most one item and knows
// only its own index and occupancy.
type Slot struct {
	index    int
	gen      uint32
	resident *Item
}

// Index returns the slot's position in board order.
func (s *Slot) Index() int {
	return s.index
}

// Generation returns the slot's current generation. It is bumped every time
// the slot is cleared, invalidating refs into the previous occupancy.
func (s *Slot) Generation() uint32 {
	return s.gen
}

// Occupied reports whether an item currently resides in the slot.
func (s *Slot) Occupied() bool {
	return s.resident != nil
}

// Resident returns the item residing in the slot, or nil if the slot is free.
func (s *Slot) Resident() *Item {
	return s.resident
}
