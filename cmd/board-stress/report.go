package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/mergerow/board"
)

type Report struct {
	// Configuration
	Selections int
	Slots      int
	Types      int
	Seed       int64

	// Results
	TotalTime       time.Duration
	Resets          int64
	OpTime          Stats
	ControllerStats board.ControllerStats
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Slot-Board Stress Test Report

## Test Configuration
- **Selections:** {{.Selections}}
- **Slots:** {{.Slots}}
- **Item Types:** {{.Types}}
- **Seed:** {{.Seed}}

## Controller Results
- **Total Test Time:** {{.TotalTime}}
- **Accepted Operations:** {{.ControllerStats.Selections}}
- **Placements:** {{.ControllerStats.Placements}}
- **Shifts:** {{.ControllerStats.Shifts}}
- **Merges:** {{.ControllerStats.Merges}}
- **Compactions:** {{.ControllerStats.Compactions}}
- **Busy Drops:** {{.ControllerStats.DroppedBusy}}
- **Capacity Drops:** {{.ControllerStats.DroppedNoCapacity}}
- **Board-Full Resets:** {{.Resets}}
- **Selection Time:**
  - **Avg:** {{.OpTime.Avg}}
  - **Min:** {{.OpTime.Min}}
  - **Max:** {{.OpTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
