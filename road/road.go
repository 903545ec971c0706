package road

import (
	"math"

	"github.com/golangdaddy/laneracer/config"
)

// Layout is the lateral shape of the road: lane centers and the span the
// player car may occupy. Negative lateral values are the oncoming side.
type Layout struct {
	Lanes      []float64 // lane center X, left to right
	Width      float64   // total road width
	maxLateral float64
}

// NewLayout builds a layout from road tuning
func NewLayout(r config.Road) Layout {
	lanes := make([]float64, len(r.Lanes))
	copy(lanes, r.Lanes)
	return Layout{
		Lanes:      lanes,
		Width:      r.Width,
		maxLateral: r.MaxLateral(),
	}
}

// NumLanes returns the number of lanes
func (l Layout) NumLanes() int {
	return len(l.Lanes)
}

// ClampLane pulls a lane index into the valid range
func (l Layout) ClampLane(lane int) int {
	if lane < 0 {
		return 0
	}
	if lane > len(l.Lanes)-1 {
		return len(l.Lanes) - 1
	}
	return lane
}

// LaneCenter returns the center X of a lane; out of range indexes clamp
func (l Layout) LaneCenter(lane int) float64 {
	if len(l.Lanes) == 0 {
		return 0
	}
	return l.Lanes[l.ClampLane(lane)]
}

// MaxLateral is the furthest the player car may sit from the center line
func (l Layout) MaxLateral() float64 {
	return l.maxLateral
}

// ClampLateral keeps x inside [-MaxLateral, MaxLateral]
func (l Layout) ClampLateral(x float64) float64 {
	return math.Max(-l.maxLateral, math.Min(l.maxLateral, x))
}

// OncomingLanes returns lane centers left of the center line
func (l Layout) OncomingLanes() []float64 {
	var out []float64
	for _, x := range l.Lanes {
		if x < 0 {
			out = append(out, x)
		}
	}
	return out
}

// SameDirectionLanes returns lane centers on or right of the center line
func (l Layout) SameDirectionLanes() []float64 {
	var out []float64
	for _, x := range l.Lanes {
		if x >= 0 {
			out = append(out, x)
		}
	}
	return out
}

// SegmentRange is the contiguous set of segment indexes a renderer needs
type SegmentRange struct {
	Current int
	First   int
	Last    int // inclusive
}

// Len returns the number of segments in the range
func (r SegmentRange) Len() int {
	return r.Last - r.First + 1
}

// Contains reports whether index falls inside the range
func (r SegmentRange) Contains(index int) bool {
	return index >= r.First && index <= r.Last
}

// SegmentIndex returns the segment holding a forward coordinate
func SegmentIndex(forward, length float64) int {
	if length <= 0 || math.IsNaN(forward) || math.IsInf(forward, 0) {
		return 0
	}
	return int(math.Floor(forward / length))
}

// Window returns the segments around forward that should exist in the scene
func Window(forward, length float64, behind, ahead int) SegmentRange {
	current := SegmentIndex(forward, length)
	if behind < 0 {
		behind = 0
	}
	if ahead < 0 {
		ahead = 0
	}
	return SegmentRange{
		Current: current,
		First:   current - behind,
		Last:    current + ahead,
	}
}

// SegmentStart returns the forward coordinate where a segment begins
func SegmentStart(index int, length float64) float64 {
	return float64(index) * length
}
