package board

import (
	"fmt"
	"time"
)

// State identifies the controller's position in its operation cycle.
type State int

const (
	// StateIdle accepts the next selection.
	StateIdle State = iota
	// StateBusy means an operation's transition chain is still in flight;
	// new selections are dropped, not queued.
	StateBusy
	// StateBoardFull is terminal until Reset: the board has no free slot and
	// the lock is retained.
	StateBoardFull
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateBusy:
		return "Busy"
	case StateBoardFull:
		return "BoardFull"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller is the slot-board state machine. It owns the single-operation
// lock and sequences placement, right-shift insertion, merge detection and
// compaction, driving the Presenter for every visual transition.
//
// The controller runs no goroutines of its own. Every call, including the
// done callbacks handed to the Presenter, must come from the host's update
// goroutine; within that discipline no two board mutations ever overlap.
type Controller struct {
	board     *SlotBoard
	groups    *GroupTracker
	presenter Presenter
	layout    Layout

	state State
	fault error

	// op is bumped when an operation starts, aborts or is reset, so done
	// callbacks from an earlier batch become no-ops instead of driving a
	// continuation they no longer belong to.
	op         uint64
	pending    int
	afterBatch func()

	opStart time.Time
	stats   controllerStatsInternal
}

// NewController builds a controller with a board sized from the layout.
func NewController(layout Layout, presenter Presenter) *Controller {
	return &Controller{
		board:     NewSlotBoard(layout.Len()),
		groups:    NewGroupTracker(),
		presenter: presenter,
		layout:    layout,
		stats:     newControllerStatsInternal(),
	}
}

// Board returns the controller's slot board.
func (c *Controller) Board() *SlotBoard {
	return c.board
}

// Groups returns the controller's group tracker.
func (c *Controller) Groups() *GroupTracker {
	return c.groups
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether the controller holds its operation lock.
func (c *Controller) Busy() bool {
	return c.state != StateIdle
}

// Full reports whether the controller is in the terminal board-full state.
func (c *Controller) Full() bool {
	return c.state == StateBoardFull
}

// Fault returns the invariant violation that aborted the most recent
// operation, or nil. It is sticky until Reset.
func (c *Controller) Fault() error {
	return c.fault
}

// OnItemSelected is the single entry point, invoked once a complete selection
// gesture on an item is recognized. A selection arriving while an operation
// is in flight, or with no free slot, is dropped; both are expected control
// flow, not errors.
func (c *Controller) OnItemSelected(it *Item) {
	if c.state != StateIdle {
		c.stats.droppedBusy++
		return
	}
	if !c.board.AnyFree() {
		c.stats.droppedNoCapacity++
		return
	}

	c.state = StateBusy
	c.op++
	c.opStart = time.Now()
	c.stats.selections++

	c.place(it)
}

// Reset clears the board, the tracker and any terminal or fault state,
// returning the controller to Idle. This is the external reset that leaves
// BoardFull.
func (c *Controller) Reset() {
	for i := 0; i < c.board.Len(); i++ {
		c.board.Clear(i)
	}
	c.groups.Clear()

	c.op++
	c.pending = 0
	c.afterBatch = nil
	c.fault = nil
	c.state = StateIdle
}

// CheckInvariants verifies the board's slot/item bijection and that every
// tracked group member is resolvable through its ref. Call it only between
// operations; members of an in-flight placement are legitimately unplaced.
func (c *Controller) CheckInvariants() error {
	if err := c.board.CheckInvariants(); err != nil {
		return err
	}

	for _, key := range c.groups.Keys() {
		g := c.groups.Group(key)
		for _, it := range g.Members() {
			if c.board.Resolve(it.Ref()) != it {
				return fmt.Errorf("group %d: member item %d is not resolvable on the board", key, it.ID())
			}
		}
	}
	return nil
}

// beginBatch opens a transition batch whose continuation runs once every
// transition issued into it has reported completion. The batch holds one
// guard token so the continuation cannot fire while transitions are still
// being issued; closeBatch releases it.
func (c *Controller) beginBatch(after func()) {
	c.pending = 1
	c.afterBatch = after
}

func (c *Controller) closeBatch() {
	c.batchDone(c.op)
}

func (c *Controller) batchDone(op uint64) {
	if op != c.op {
		// Completion from an aborted or reset operation.
		return
	}

	c.pending--
	if c.pending > 0 {
		return
	}

	after := c.afterBatch
	c.afterBatch = nil
	if after != nil {
		after()
	}
}

// beginTransition issues the visual transition that settles an item into a
// slot and enrolls its completion in the current batch.
func (c *Controller) beginTransition(it *Item, slot int) {
	c.pending++
	op := c.op
	c.presenter.BeginTransition(it, c.layout.SlotTransform(slot), func() {
		c.batchDone(op)
	})
}

// settle runs once every transition of a fresh placement has completed.
// Shifted items settled in the same batch never reach here; rearrangement
// skips merge evaluation.
func (c *Controller) settle(it *Item) {
	g := c.groups.Group(it.Type())
	if !g.ReadyToMerge() {
		c.finishOp()
		return
	}
	c.merge(g)
}

// merge commits a ready group: the tracker forgets it, every member's slot is
// cleared, and the members are handed to the presenter for removal. If other
// groups remain on the board the freed gap is compacted away before the lock
// is released.
func (c *Controller) merge(g *TypeGroup) {
	members := g.Members()
	c.groups.RemoveGroup(g.Key())

	gapStart := c.board.Len()
	for _, it := range members {
		idx := it.Ref().Index()
		if idx < gapStart {
			gapStart = idx
		}
		c.board.Clear(idx)
	}

	c.stats.merges++
	c.presenter.MergeStarted(members)

	if c.groups.Len() == 0 {
		c.unlock()
		return
	}
	c.compact(gapStart, len(members))
}

// finishOp is the board-full check after a placement that did not merge.
func (c *Controller) finishOp() {
	if !c.board.AnyFree() {
		c.state = StateBoardFull
		c.recordOp()
		return
	}
	c.unlock()
}

func (c *Controller) unlock() {
	c.state = StateIdle
	c.recordOp()
}

// fail aborts the in-flight operation. The lock is force-released and the
// board is left in whatever partially-shifted state it reached; there is no
// rollback. Completions still owed by the presenter are disowned via the
// operation sequence number.
func (c *Controller) fail(err error) {
	c.fault = err
	c.stats.faults++

	c.op++
	c.pending = 0
	c.afterBatch = nil
	c.state = StateIdle
	c.recordOp()
}

func (c *Controller) recordOp() {
	c.stats.recordOp(time.Since(c.opStart))
}
