package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergerow/board"
)

// BoardPanel shows the slot row: per-slot occupancy, generations and the
// controller's state line.
type BoardPanel struct {
	selectedSlot *int
}

func (bp *BoardPanel) Render(ctrl *board.Controller) {
	if !imgui.BeginV("Slot Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := ctrl.Board()

	stateLine := ctrl.State().String()
	if err := ctrl.Fault(); err != nil {
		stateLine += " (fault: " + err.Error() + ")"
	}
	imgui.Text(fmt.Sprintf("State: %s", stateLine))
	imgui.Text(fmt.Sprintf("Occupied: %d / %d", b.OccupiedCount(), b.Len()))

	if free, ok := b.FirstFree(); ok {
		imgui.Text(fmt.Sprintf("First free slot: %d", free))
	} else {
		imgui.Text("First free slot: none")
	}

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SlotTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Item")
		imgui.TableSetupColumn("Type")
		imgui.TableHeadersRow()

		for i := 0; i < b.Len(); i++ {
			slot := b.At(i)

			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := bp.selectedSlot != nil && *bp.selectedSlot == i
			if imgui.SelectableBoolV(fmt.Sprintf("%d", i), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				slotCopy := i
				bp.selectedSlot = &slotCopy
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", slot.Generation()))

			imgui.TableNextColumn()
			if it := slot.Resident(); it != nil {
				imgui.Text(fmt.Sprintf("%d", it.ID()))
			} else {
				imgui.Text("-")
			}

			imgui.TableNextColumn()
			if it := slot.Resident(); it != nil {
				imgui.Text(fmt.Sprintf("%d", it.Type()))
			} else {
				imgui.Text("-")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
