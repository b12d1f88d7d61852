package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergerow/board"
)

// StatsPanel shows the controller's counters and a rolling plot of operation
// times, one sample per completed operation.
type StatsPanel struct {
	historyOps int
	opHistory  []float32
	opIndex    int
	lastCount  int64
}

func NewStatsPanel(historyOps int) StatsPanel {
	return StatsPanel{
		historyOps: historyOps,
		opHistory:  make([]float32, historyOps),
	}
}

func (sp *StatsPanel) Render(ctrl *board.Controller) {
	if !imgui.BeginV("Controller Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ctrl.Stats()

	if stats.OpCount > sp.lastCount {
		sp.opHistory[sp.opIndex] = float32(stats.LastOpTime.Microseconds()) / 1000.0
		sp.opIndex = (sp.opIndex + 1) % sp.historyOps
		sp.lastCount = stats.OpCount
	}

	imgui.Text(fmt.Sprintf("Selections: %d (busy drops: %d, capacity drops: %d)",
		stats.Selections, stats.DroppedBusy, stats.DroppedNoCapacity))
	imgui.Text(fmt.Sprintf("Placements: %d", stats.Placements))
	imgui.Text(fmt.Sprintf("Shifts: %d", stats.Shifts))
	imgui.Text(fmt.Sprintf("Merges: %d", stats.Merges))
	imgui.Text(fmt.Sprintf("Compactions: %d", stats.Compactions))
	imgui.Text(fmt.Sprintf("Faults: %d", stats.Faults))

	imgui.Separator()

	if stats.OpCount > 0 {
		imgui.Text(fmt.Sprintf("Operations: %d", stats.OpCount))
		imgui.Text(fmt.Sprintf("Op Time: avg %s, min %s, max %s, last %s",
			stats.AvgOpTime, stats.MinOpTime, stats.MaxOpTime, stats.LastOpTime))

		imgui.Text("Operation Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##optime", &sp.opHistory[0], int32(len(sp.opHistory)))
	} else {
		imgui.Text("No operations yet")
	}

	imgui.End()
}
