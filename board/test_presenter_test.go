package board_test

import (
	"github.com/plus3/mergerow/board"
)

// recorderPresenter captures every presenter call. With hold set, done
// callbacks are collected instead of invoked immediately, so tests can keep
// the controller busy and release transitions in any order. Releasing a
// completion may cause the controller to issue further transitions (merge
// removal, compaction); those land in held again when hold is still set.
type recorderPresenter struct {
	hold bool

	transitions []transition
	held        []func()
	merges      [][]*board.Item
	shadows     []board.ItemID
	physics     []board.ItemID
}

type transition struct {
	item   *board.Item
	target board.Transform
}

func (p *recorderPresenter) BeginTransition(it *board.Item, target board.Transform, done func()) {
	p.transitions = append(p.transitions, transition{item: it, target: target})
	if p.hold {
		p.held = append(p.held, done)
		return
	}
	done()
}

func (p *recorderPresenter) DisableShadow(it *board.Item) {
	p.shadows = append(p.shadows, it.ID())
}

func (p *recorderPresenter) DisablePhysics(it *board.Item) {
	p.physics = append(p.physics, it.ID())
}

func (p *recorderPresenter) MergeStarted(items []*board.Item) {
	p.merges = append(p.merges, items)
}

// release invokes and clears the currently held completions.
func (p *recorderPresenter) release() {
	held := p.held
	p.held = nil
	for _, done := range held {
		done()
	}
}

func testLayout(n int) board.SliceLayout {
	l := make(board.SliceLayout, n)
	for i := range l {
		l[i] = board.Transform{
			Position: board.Vec3{X: float32(i * 10)},
			Scale:    board.Vec3{X: 1, Y: 1, Z: 1},
		}
	}
	return l
}

// residentIDs flattens the board into item ids by slot, 0 for free slots.
func residentIDs(b *board.SlotBoard) []board.ItemID {
	ids := make([]board.ItemID, b.Len())
	for i := 0; i < b.Len(); i++ {
		if it := b.At(i).Resident(); it != nil {
			ids[i] = it.ID()
		}
	}
	return ids
}
