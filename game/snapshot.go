package game

import (
	"github.com/golangdaddy/laneracer/pickup"
	"github.com/golangdaddy/laneracer/road"
	"github.com/golangdaddy/laneracer/traffic"
)

// Snapshot is the read-only world state handed to renderers after a tick.
// Its slices are copies; hosts may keep or modify them.
type Snapshot struct {
	RunID    string
	Tick     uint64
	Phase    Phase
	Forward  float64 // distance travelled this run
	Lateral  float64
	Tilt     float64
	Lane     int
	Speed    float64
	Score    int
	Traffic  []traffic.Car
	Pickups  []pickup.Coin // uncollected coins only
	Segments road.SegmentRange
	Events   []Event // what happened during this tick
}

// Has reports whether an event of the given kind happened this tick
func (s Snapshot) Has(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Result is the latched outcome of a finished run
type Result struct {
	RunID    string
	Score    int
	Distance float64
	Ticks    uint64
	CarID    int // the car that ended the run
}
