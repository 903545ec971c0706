package input

import "slices"

// Touch follows one finger across frames. Screens report zero for a touch
// that has ended, so the last position seen is kept for the release.
type Touch struct {
	id     int
	active bool
	x      float64
}

// Begin starts tracking finger id at x
func (t *Touch) Begin(id int, x float64) {
	t.id, t.active, t.x = id, true, x
}

// Move records the tracked finger's latest position
func (t *Touch) Move(x float64) {
	if t.active {
		t.x = x
	}
}

// End stops tracking and returns the last position seen
func (t *Touch) End() float64 {
	t.active = false
	return t.x
}

// Reset forgets the tracked finger without reporting a release
func (t *Touch) Reset() {
	*t = Touch{}
}

// Sync drops the tracked finger when it is missing from live, the IDs the
// host still sees pressed. This catches fingers lifted while input was not
// being read. It reports whether the finger was dropped.
func (t *Touch) Sync(live []int) bool {
	if !t.active || slices.Contains(live, t.id) {
		return false
	}
	t.Reset()
	return true
}

// Active reports whether a finger is being tracked
func (t *Touch) Active() bool { return t.active }

// ID is the tracked finger
func (t *Touch) ID() int { return t.id }

// X is the tracked finger's last position
func (t *Touch) X() float64 { return t.x }
