package board

// place decides where the selected item goes and issues the placement batch.
// Runs under the controller's lock.
//
// A tracked type seeks the slot immediately right of its right-most member,
// vacating it with a right shift if needed. If that ideal index falls past
// the end of the board the item falls back to the first free slot; the
// selection was capacity-checked, so one exists. An unseen type goes straight
// to the first free slot.
func (c *Controller) place(it *Item) {
	var target int

	if c.groups.Has(it.Type()) {
		ideal, ok := c.groups.IdealSlot(it.Type(), c.board)
		if !ok {
			ideal, ok = c.board.FirstFree()
			if !ok {
				c.fail(&InvariantError{Op: "place", Slot: -1, Err: ErrNoFreeSlot})
				return
			}
		}

		// The tracker reflects the item before its move resolves, so the
		// pending placement already counts toward future ideal slots.
		c.groups.Record(it)
		c.beginBatch(func() { c.settle(it) })

		if c.board.At(ideal).Occupied() {
			if !c.shiftRight(ideal) {
				return
			}
		}
		target = ideal
	} else {
		free, ok := c.board.FirstFree()
		if !ok {
			// Capacity was checked on acceptance; reaching here means the
			// board mutated underneath the operation.
			c.fail(&InvariantError{Op: "place", Slot: -1, Err: ErrNoFreeSlot})
			return
		}

		c.groups.Record(it)
		c.beginBatch(func() { c.settle(it) })
		target = free
	}

	if err := c.board.Occupy(target, it); err != nil {
		c.fail(&InvariantError{Op: "place", Slot: target, Err: err})
		return
	}
	c.stats.placements++

	c.presenter.DisableShadow(it)
	c.presenter.DisablePhysics(it)
	c.beginTransition(it, target)

	c.closeBatch()
}

// shiftRight vacates the ideal slot by moving every occupied slot in
// [ideal, last] one position right. The scan runs descending so no resident
// is clobbered by a not-yet-moved neighbor. Each move requires an empty
// destination; a violated precondition aborts the whole operation.
// Shifted items settle inside the current batch without a merge check.
func (c *Controller) shiftRight(ideal int) bool {
	for i := c.board.Len() - 1; i >= ideal; i-- {
		if !c.board.At(i).Occupied() {
			continue
		}

		if i+1 >= c.board.Len() {
			c.fail(&InvariantError{Op: "shift", Slot: i + 1, Err: ErrOutOfRange})
			return false
		}
		if c.board.At(i + 1).Occupied() {
			c.fail(&InvariantError{Op: "shift", Slot: i + 1, Err: ErrSlotOccupied})
			return false
		}

		moved := c.board.Clear(i)
		if err := c.board.Occupy(i+1, moved); err != nil {
			c.fail(&InvariantError{Op: "shift", Slot: i + 1, Err: err})
			return false
		}

		c.stats.shifts++
		c.beginTransition(moved, i+1)
	}
	return true
}
