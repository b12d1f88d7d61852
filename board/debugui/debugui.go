// Package debugui provides immediate-mode inspector panels for a live slot
// board using Dear ImGui. Call Inspector.Render from inside an ImGui frame,
// on the same goroutine that drives the controller.
package debugui

import (
	"github.com/plus3/mergerow/board"
)

// Inspector bundles the board, group and stats panels over one controller.
type Inspector struct {
	ctrl *board.Controller

	boardPanel BoardPanel
	groupPanel GroupPanel
	statsPanel StatsPanel
}

// NewInspector creates an inspector for the given controller.
func NewInspector(ctrl *board.Controller) *Inspector {
	return &Inspector{
		ctrl:       ctrl,
		statsPanel: NewStatsPanel(120),
	}
}

// Render draws all panels.
func (in *Inspector) Render() {
	in.boardPanel.Render(in.ctrl)
	in.groupPanel.Render(in.ctrl)
	in.statsPanel.Render(in.ctrl)
}
