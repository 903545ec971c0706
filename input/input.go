// Package input turns raw pointer and key data into player control signals.
// It has no windowing dependencies so every host can share it.
package input

import (
	"math"

	"github.com/golangdaddy/laneracer/car"
)

// SwipeThreshold is how far, in pixels, a drag must travel sideways to
// count as a lane change
const SwipeThreshold = 30.0

// Swipe tracks one pointer drag at a time
type Swipe struct {
	Threshold float64
	active    bool
	startX    float64
}

// NewSwipe returns a tracker using SwipeThreshold
func NewSwipe() *Swipe {
	return &Swipe{Threshold: SwipeThreshold}
}

// Press starts a drag at x
func (s *Swipe) Press(x float64) {
	s.active = true
	s.startX = x
}

// Active reports whether a drag is in progress
func (s *Swipe) Active() bool {
	return s.active
}

// Release ends the drag at x. It returns -1 or +1 for a lane change, or 0
// for a tap or a drag shorter than the threshold.
func (s *Swipe) Release(x float64) int {
	if !s.active {
		return 0
	}
	s.active = false
	dx := x - s.startX
	switch {
	case dx > s.Threshold:
		return 1
	case dx < -s.Threshold:
		return -1
	}
	return 0
}

// Cancel drops an unfinished drag
func (s *Swipe) Cancel() {
	s.active = false
}

// Steer maps a cursor x inside a surface of the given width to [-1, 1]
func Steer(x, width float64) float64 {
	if width <= 0 || math.IsNaN(x) {
		return 0
	}
	v := (x/width)*2 - 1
	return math.Max(-1, math.Min(1, v))
}

// Keys is the directional state a host read this frame
type Keys struct {
	Left, Right bool // pressed this frame
	Lane        int  // 1-based lane hotkey, 0 for none
}

// Signal picks the control signal for a frame. Lane hotkeys win over
// arrow keys, arrow keys over a swipe.
func Signal(k Keys, swipe int) car.Signal {
	switch {
	case k.Lane > 0:
		return car.LaneSignal(k.Lane - 1)
	case k.Left && !k.Right:
		return car.ShiftSignal(-1)
	case k.Right && !k.Left:
		return car.ShiftSignal(1)
	case swipe != 0:
		return car.ShiftSignal(swipe)
	}
	return car.Signal{}
}
