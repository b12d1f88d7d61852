package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/mergerow/board"
)

func main() {
	selections := flag.Int("selections", 100000, "The number of selections to drive through the controller.")
	slots := flag.Int("slots", 9, "The number of slots on the board.")
	types := flag.Int("types", 5, "The number of distinct item types to draw from.")
	seed := flag.Int64("seed", 1, "The seed for the selection sequence.")
	flag.Parse()

	log.Println("Starting slot-board stress test...")

	// 1. Setup layout, presenter and controller
	layout := make(board.SliceLayout, *slots)
	for i := range layout {
		layout[i] = board.Transform{
			Position: board.Vec3{X: float32(i)},
			Scale:    board.Vec3{X: 1, Y: 1, Z: 1},
		}
	}

	// The nop presenter completes every transition inline, so each selection's
	// whole chain (placement, shifts, merge, compaction) resolves before
	// OnItemSelected returns and invariants can be checked between operations.
	ctrl := board.NewController(layout, board.NopPresenter{})

	rng := rand.New(rand.NewSource(*seed))

	report := &Report{
		Selections: *selections,
		Slots:      *slots,
		Types:      *types,
		Seed:       *seed,
		OpTime: Stats{
			Samples: make([]time.Duration, 0, *selections),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Drive the selection sequence
	log.Printf("Driving %d selections across %d types...\n", *selections, *types)
	startTime := time.Now()

	for i := 0; i < *selections; i++ {
		it := board.NewItem(board.ItemID(i+1), board.TypeKey(rng.Intn(*types)))

		opStart := time.Now()
		ctrl.OnItemSelected(it)
		report.OpTime.Samples = append(report.OpTime.Samples, time.Since(opStart))

		// A fault mid-operation also leaves the board/group bookkeeping out of
		// step, so check it first to name the root cause.
		if err := ctrl.Fault(); err != nil {
			log.Fatalf("Controller faulted after selection %d: %v", i, err)
		}
		if err := ctrl.CheckInvariants(); err != nil {
			log.Fatalf("Invariant broken after selection %d: %v", i, err)
		}

		if ctrl.Full() {
			report.Resets++
			ctrl.Reset()
		}
	}

	report.TotalTime = time.Since(startTime)
	report.ControllerStats = ctrl.Stats()
	report.OpTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Selection sequence finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
