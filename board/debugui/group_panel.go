package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergerow/board"
)

// GroupPanel shows the tracked type groups: member items in placement order
// and each group's ideal-slot preview.
type GroupPanel struct{}

func (gp *GroupPanel) Render(ctrl *board.Controller) {
	if !imgui.BeginV("Type Groups", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	tracker := ctrl.Groups()
	imgui.Text(fmt.Sprintf("Tracked groups: %d", tracker.Len()))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("GroupTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Members (slot:item)")
		imgui.TableSetupColumn("Ideal Slot")
		imgui.TableHeadersRow()

		for _, key := range tracker.Keys() {
			g := tracker.Group(key)

			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", g.Key()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", g.Size(), board.MergeThreshold))

			imgui.TableNextColumn()
			members := make([]string, 0, g.Size())
			for _, it := range g.Members() {
				if it.Placed() {
					members = append(members, fmt.Sprintf("%d:%d", it.Ref().Index(), it.ID()))
				} else {
					members = append(members, fmt.Sprintf("-:%d", it.ID()))
				}
			}
			imgui.Text(strings.Join(members, ", "))

			imgui.TableNextColumn()
			if ideal, ok := tracker.IdealSlot(key, ctrl.Board()); ok {
				imgui.Text(fmt.Sprintf("%d", ideal))
			} else {
				imgui.Text("first free")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
