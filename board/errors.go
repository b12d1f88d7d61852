package board

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotOccupied reports a placement into a slot that already holds an item.
	ErrSlotOccupied = errors.New("slot already occupied")

	// ErrOutOfRange reports a computed move target past the end of the board.
	ErrOutOfRange = errors.New("slot index out of range")

	// ErrNoFreeSlot reports a placement attempt on a board with no free slot
	// after capacity was already checked.
	ErrNoFreeSlot = errors.New("no free slot")
)

// InvariantError reports a board invariant broken in the middle of an
// operation. It is fatal to the in-flight operation: the controller
// force-releases its lock and leaves the board in whatever partially-shifted
// state it reached. Use errors.Is against the sentinel causes to classify it.
type InvariantError struct {
	Op   string // "place", "shift" or "compact"
	Slot int    // the offending target slot, -1 if not slot-specific
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board invariant violated during %s at slot %d: %v", e.Op, e.Slot, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
