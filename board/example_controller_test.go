package board_test

import (
	"fmt"

	"github.com/plus3/mergerow/board"
)

// announcer is a presentation collaborator that settles every transition
// immediately and prints the merges it is handed.
type announcer struct{}

func (announcer) BeginTransition(_ *board.Item, _ board.Transform, done func()) { done() }

func (announcer) DisableShadow(*board.Item) {}

func (announcer) DisablePhysics(*board.Item) {}

func (announcer) MergeStarted(items []*board.Item) {
	ids := make([]board.ItemID, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	fmt.Printf("merged items %v\n", ids)
}

// ExampleController walks a 9-slot board through five selections. The third
// item of the tracked type slots in next to its group, the run of three
// merges, and the survivors compact left to close the gap.
func ExampleController() {
	layout := make(board.SliceLayout, 9)
	for i := range layout {
		layout[i] = board.Transform{
			Position: board.Vec3{X: float32(i) * 1.5},
			Scale:    board.Vec3{X: 1, Y: 1, Z: 1},
		}
	}

	ctrl := board.NewController(layout, announcer{})

	const (
		apple  board.TypeKey = 1
		banana board.TypeKey = 2
		cherry board.TypeKey = 3
	)

	ctrl.OnItemSelected(board.NewItem(1, apple))
	ctrl.OnItemSelected(board.NewItem(2, banana))
	ctrl.OnItemSelected(board.NewItem(3, apple))
	ctrl.OnItemSelected(board.NewItem(4, cherry))
	ctrl.OnItemSelected(board.NewItem(5, apple))

	b := ctrl.Board()
	for i := 0; i < b.Len(); i++ {
		if it := b.At(i).Resident(); it != nil {
			fmt.Printf("slot %d: item %d (type %d)\n", i, it.ID(), it.Type())
		}
	}
	fmt.Printf("occupied: %d, state: %s\n", b.OccupiedCount(), ctrl.State())

	// Output:
	// merged items [1 3 5]
	// slot 0: item 2 (type 2)
	// slot 1: item 4 (type 3)
	// occupied: 2, state: Idle
}
