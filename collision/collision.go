// Package collision tests the player against traffic and pickups with
// separate lateral and longitudinal thresholds
package collision

import (
	"math"

	"github.com/golangdaddy/laneracer/pickup"
	"github.com/golangdaddy/laneracer/traffic"
)

// Box holds the half extents two objects must both be inside to touch
type Box struct {
	Lateral      float64
	Longitudinal float64
}

// Overlaps reports whether a thing at (x, f) touches the player at (px, pf).
// Both distances must be strictly below their thresholds.
func (b Box) Overlaps(px, pf, x, f float64) bool {
	return math.Abs(x-px) < b.Lateral && math.Abs(f-pf) < b.Longitudinal
}

// Traffic returns the ID of the first car touching the player
func Traffic(px, pf float64, cars []traffic.Car, box Box) (id int, hit bool) {
	for _, c := range cars {
		if box.Overlaps(px, pf, c.Lateral, c.Longitudinal) {
			return c.ID, true
		}
	}
	return -1, false
}

// Pickups returns the pool slots of uncollected coins touching the player
func Pickups(px, pf float64, coins []pickup.Coin, box Box) []int {
	var slots []int
	for i, c := range coins {
		if c.Collected {
			continue
		}
		if box.Overlaps(px, pf, c.Lateral, c.Longitudinal) {
			slots = append(slots, i)
		}
	}
	return slots
}
