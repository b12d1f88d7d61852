package board_test

import (
	"testing"

	"github.com/plus3/mergerow/board"
)

func BenchmarkControllerSelectionCycle(b *testing.B) {
	ctrl := board.NewController(testLayout(9), board.NopPresenter{})

	// Three types cycled in turn; every ninth selection completes a merge
	// and exercises the shift and compaction paths.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctrl.OnItemSelected(board.NewItem(board.ItemID(i+1), board.TypeKey(i%3)))
		if ctrl.Full() {
			ctrl.Reset()
		}
	}
}

func BenchmarkSlotBoardFirstFree(b *testing.B) {
	sb := board.NewSlotBoard(64)
	for i := 0; i < 63; i++ {
		if err := sb.Occupy(i, board.NewItem(board.ItemID(i+1), 1)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sb.FirstFree()
	}
}
