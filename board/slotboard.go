package board

import "fmt"

// SlotBoard is an ordered, fixed-length sequence of slots. It is the
// exclusive owner of slot occupancy. The board is not safe for concurrent
// use; all calls must come from the host's update goroutine.
type SlotBoard struct {
	slots []Slot
}

// NewSlotBoard creates a board with n slots, indices dense 0..n-1.
// Generations start at 1 so the zero SlotRef is never valid.
func NewSlotBoard(n int) *SlotBoard {
	if n <= 0 {
		panic("slot board must have at least one slot")
	}

	b := &SlotBoard{slots: make([]Slot, n)}
	for i := range b.slots {
		b.slots[i].index = i
		b.slots[i].gen = 1
	}
	return b
}

// Len returns the number of slots. N is fixed for the board's lifetime.
func (b *SlotBoard) Len() int {
	return len(b.slots)
}

// At returns the slot at index i.
func (b *SlotBoard) At(i int) *Slot {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("slot index %d out of range [0,%d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// FirstFree returns the lowest-index unoccupied slot. The scan is a
// deterministic left-to-right pass; ok is false if the board is full.
func (b *SlotBoard) FirstFree() (index int, ok bool) {
	for i := range b.slots {
		if b.slots[i].resident == nil {
			return i, true
		}
	}
	return 0, false
}

// AnyFree reports whether at least one slot is unoccupied.
func (b *SlotBoard) AnyFree() bool {
	_, ok := b.FirstFree()
	return ok
}

// OccupiedCount returns the number of occupied slots.
func (b *SlotBoard) OccupiedCount() int {
	count := 0
	for i := range b.slots {
		if b.slots[i].resident != nil {
			count++
		}
	}
	return count
}

// Occupy places an item into slot i and stamps the item's slot ref.
// Returns ErrSlotOccupied if the slot already holds an item; callers are
// expected to check occupancy first. Placing an already-placed item is
// API misuse and panics.
func (b *SlotBoard) Occupy(i int, it *Item) error {
	slot := b.At(i)
	if slot.resident != nil {
		return fmt.Errorf("occupy slot %d: %w", i, ErrSlotOccupied)
	}
	if it.ref != 0 {
		panic(fmt.Sprintf("item %d is already placed at slot %d", it.id, it.ref.Index()))
	}

	slot.resident = it
	it.ref = NewSlotRef(uint32(i), slot.gen)
	return nil
}

// Clear vacates slot i and returns the item that resided there, or nil if
// the slot was already free. The slot's generation is bumped so any held
// refs into the old occupancy go stale.
func (b *SlotBoard) Clear(i int) *Item {
	slot := b.At(i)
	it := slot.resident
	if it == nil {
		return nil
	}

	slot.resident = nil
	slot.gen++
	it.ref = 0
	return it
}

// Resolve returns the item a ref points at, or nil if the ref is zero,
// out of range, or stale (the slot has been cleared since the ref was taken).
func (b *SlotBoard) Resolve(ref SlotRef) *Item {
	if ref == 0 {
		return nil
	}
	i := ref.Index()
	if i < 0 || i >= len(b.slots) {
		return nil
	}
	slot := &b.slots[i]
	if slot.gen != ref.Generation() {
		return nil
	}
	return slot.resident
}

// CheckInvariants verifies the bijection between occupied slots and placed
// items: every resident's ref must point back at its slot with the current
// generation. Returns nil if the board is consistent.
func (b *SlotBoard) CheckInvariants() error {
	for i := range b.slots {
		slot := &b.slots[i]
		if slot.resident == nil {
			continue
		}

		ref := slot.resident.ref
		if ref == 0 {
			return fmt.Errorf("slot %d: resident item %d has no slot ref", i, slot.resident.id)
		}
		if ref.Index() != i {
			return fmt.Errorf("slot %d: resident item %d refs slot %d", i, slot.resident.id, ref.Index())
		}
		if ref.Generation() != slot.gen {
			return fmt.Errorf("slot %d: resident item %d holds stale generation %d (slot at %d)",
				i, slot.resident.id, ref.Generation(), slot.gen)
		}
	}
	return nil
}
