// Package difficulty turns elapsed time into speed and score.
package difficulty

import (
	"math"

	"github.com/golangdaddy/laneracer/config"
)

// Ramp raises speed toward the cap; it never lowers it
func Ramp(speed, dt float64, t config.Difficulty) float64 {
	if dt <= 0 {
		return speed
	}
	next := speed + t.RampRate*dt
	if next > t.SpeedCap {
		next = t.SpeedCap
	}
	if next < speed {
		return speed
	}
	return next
}

// LateralMultiplier rewards driving on the oncoming side of the center line
func LateralMultiplier(lateral float64, t config.Difficulty) float64 {
	if lateral < 0 {
		return t.OncomingMultiplier
	}
	return 1
}

// Accrue adds one frame worth of score
func Accrue(score, speed, lateral, dt float64, t config.Difficulty) float64 {
	if dt <= 0 {
		return score
	}
	gain := dt * t.BaseScoreRate * (1 + speed*t.SpeedScoreFactor) * LateralMultiplier(lateral, t)
	if gain < 0 || math.IsNaN(gain) {
		return score
	}
	return score + gain
}

// Display is the whole-number score shown to players
func Display(score float64) int {
	return int(math.Floor(score))
}
