package board

import "time"

// ControllerStats provides counters and operation timing for a controller.
// An operation spans from selection acceptance to the release of the lock.
type ControllerStats struct {
	Selections        int64
	Placements        int64
	Shifts            int64
	Merges            int64
	Compactions       int64
	DroppedBusy       int64
	DroppedNoCapacity int64
	Faults            int64

	OpCount     int64
	MinOpTime   time.Duration
	MaxOpTime   time.Duration
	AvgOpTime   time.Duration
	LastOpTime  time.Duration
	TotalOpTime time.Duration
}

type controllerStatsInternal struct {
	selections        int64
	placements        int64
	shifts            int64
	merges            int64
	compactions       int64
	droppedBusy       int64
	droppedNoCapacity int64
	faults            int64

	opCount     int64
	minOpTime   time.Duration
	maxOpTime   time.Duration
	lastOpTime  time.Duration
	totalOpTime time.Duration
}

func newControllerStatsInternal() controllerStatsInternal {
	return controllerStatsInternal{
		minOpTime: time.Duration(1<<63 - 1),
	}
}

func (s *controllerStatsInternal) recordOp(d time.Duration) {
	s.opCount++
	s.lastOpTime = d
	s.totalOpTime += d

	if d < s.minOpTime {
		s.minOpTime = d
	}
	if d > s.maxOpTime {
		s.maxOpTime = d
	}
}

// Stats returns a snapshot of the controller's counters and timings.
func (c *Controller) Stats() ControllerStats {
	avg := time.Duration(0)
	min := c.stats.minOpTime
	if c.stats.opCount > 0 {
		avg = c.stats.totalOpTime / time.Duration(c.stats.opCount)
	} else {
		min = 0
	}

	return ControllerStats{
		Selections:        c.stats.selections,
		Placements:        c.stats.placements,
		Shifts:            c.stats.shifts,
		Merges:            c.stats.merges,
		Compactions:       c.stats.compactions,
		DroppedBusy:       c.stats.droppedBusy,
		DroppedNoCapacity: c.stats.droppedNoCapacity,
		Faults:            c.stats.faults,

		OpCount:     c.stats.opCount,
		MinOpTime:   min,
		MaxOpTime:   c.stats.maxOpTime,
		AvgOpTime:   avg,
		LastOpTime:  c.stats.lastOpTime,
		TotalOpTime: c.stats.totalOpTime,
	}
}
