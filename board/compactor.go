package board

// compact closes the gap a merge left behind: every occupied slot right of
// the freed run shifts left by the run's width. The shift is general-position
// rather than a fixed offset from slot zero, so a merge on a non-left-most
// run stays correct; on a left-most run the two are identical.
//
// Shifted items settle with merge evaluation suppressed. The lock is
// released once the last shift's transition completes; a merge just freed
// slots, so no board-full check is needed here.
func (c *Controller) compact(gapStart, width int) {
	c.stats.compactions++
	c.beginBatch(c.finishOp)

	for i := gapStart + width; i < c.board.Len(); i++ {
		if !c.board.At(i).Occupied() {
			continue
		}

		dst := i - width
		if c.board.At(dst).Occupied() {
			c.fail(&InvariantError{Op: "compact", Slot: dst, Err: ErrSlotOccupied})
			return
		}

		moved := c.board.Clear(i)
		if err := c.board.Occupy(dst, moved); err != nil {
			c.fail(&InvariantError{Op: "compact", Slot: dst, Err: err})
			return
		}

		c.stats.shifts++
		c.beginTransition(moved, dst)
	}

	c.closeBatch()
}
