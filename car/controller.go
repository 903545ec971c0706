package car

import (
	"math"

	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/road"
)

// Body footprint in world units, shared by every renderer
const (
	BodyWidth  = 1.5
	BodyLength = 3.2
)

// SignalKind tells which field of a Signal carries the input
type SignalKind int

const (
	SignalNone  SignalKind = iota // keep the current target
	SignalLane                    // absolute lane index
	SignalShift                   // relative lane change, e.g. a swipe
	SignalSteer                   // normalized steering in [-1, 1]
)

// Signal is one frame of player control
type Signal struct {
	Kind  SignalKind
	Lane  int     // lane index for SignalLane, delta for SignalShift
	Steer float64 // SignalSteer only
}

// LaneSignal selects a lane by index
func LaneSignal(lane int) Signal {
	return Signal{Kind: SignalLane, Lane: lane}
}

// ShiftSignal moves delta lanes right (positive) or left (negative)
func ShiftSignal(delta int) Signal {
	return Signal{Kind: SignalShift, Lane: delta}
}

// SteerSignal requests a lateral position as a fraction of the maximum travel
func SteerSignal(v float64) Signal {
	return Signal{Kind: SignalSteer, Steer: v}
}

// Controller owns the player car's lateral offset and forward coordinate
type Controller struct {
	mode   config.ControlMode
	layout road.Layout
	tuning config.Player

	startLane int
	lane      int     // selected lane, lane mode
	steer     float64 // requested steering, steering mode

	lateral float64
	forward float64
	tilt    float64
}

// NewController places the car at the start lane with zero forward travel
func NewController(mode config.ControlMode, layout road.Layout, t config.Player) *Controller {
	c := &Controller{
		mode:      mode,
		layout:    layout,
		tuning:    t,
		startLane: layout.ClampLane(t.StartLane),
	}
	c.Reset()
	return c
}

// Reset returns the car to the start lane at forward coordinate 0
func (c *Controller) Reset() {
	c.lane = c.startLane
	c.lateral = c.layout.ClampLateral(c.layout.LaneCenter(c.lane))
	c.steer = c.normalized(c.lateral)
	c.forward = 0
	c.tilt = 0
}

// Apply records a control signal; it takes effect on the next Update.
// Out of range lanes clamp and non-finite steering is ignored.
func (c *Controller) Apply(sig Signal) {
	switch sig.Kind {
	case SignalLane:
		c.selectLane(sig.Lane)
	case SignalShift:
		c.selectLane(c.lane + sig.Lane)
	case SignalSteer:
		if math.IsNaN(sig.Steer) || math.IsInf(sig.Steer, 0) {
			return
		}
		v := math.Max(-1, math.Min(1, sig.Steer))
		if c.mode == config.ControlLane {
			c.lane = c.nearestLane(v * c.layout.MaxLateral())
			return
		}
		c.steer = v
	}
}

func (c *Controller) selectLane(lane int) {
	c.lane = c.layout.ClampLane(lane)
	if c.mode == config.ControlSteer {
		c.steer = c.normalized(c.layout.LaneCenter(c.lane))
	}
}

func (c *Controller) nearestLane(x float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, center := range c.layout.Lanes {
		if d := math.Abs(center - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (c *Controller) normalized(x float64) float64 {
	limit := c.layout.MaxLateral()
	if limit == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, x/limit))
}

// Target returns the lateral position the car is heading for
func (c *Controller) Target() float64 {
	if c.mode == config.ControlSteer {
		return c.steer * c.layout.MaxLateral()
	}
	return c.layout.LaneCenter(c.lane)
}

// Blend is the fraction of the remaining gap closed in dt at the given rate.
// Two half steps close the same gap as one full step.
func Blend(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Update eases the car toward its target and moves it forward by speed*dt
func (c *Controller) Update(dt, speed float64) {
	if dt <= 0 {
		return
	}

	target := c.Target()
	rate := c.tuning.LaneRate
	if c.mode == config.ControlSteer {
		rate = c.tuning.SteerRate
	}
	c.lateral += (target - c.lateral) * Blend(rate, dt)
	c.lateral = c.layout.ClampLateral(c.lateral)

	// Tilt is a renderer hint, proportional to how far the car lags its target
	if c.mode == config.ControlSteer {
		c.tilt = (c.steer - c.normalized(c.lateral)) * c.tuning.SteerTilt
	} else {
		c.tilt = (target - c.lateral) * c.tuning.LaneTilt
	}

	c.forward += speed * dt
}

// Sample returns the car position and whether it is usable this frame
func (c *Controller) Sample() (lateral, forward float64, ok bool) {
	ok = !math.IsNaN(c.lateral) && !math.IsInf(c.lateral, 0) &&
		!math.IsNaN(c.forward) && !math.IsInf(c.forward, 0)
	return c.lateral, c.forward, ok
}

// Recover puts the car back at a previously good position
func (c *Controller) Recover(lateral, forward float64) {
	c.lateral = lateral
	c.forward = forward
	c.tilt = 0
}

// Mode returns the control scheme
func (c *Controller) Mode() config.ControlMode { return c.mode }

// Lane returns the selected lane index
func (c *Controller) Lane() int { return c.lane }

// Steer returns the requested steering value
func (c *Controller) Steer() float64 { return c.steer }

// Lateral returns the current lateral offset
func (c *Controller) Lateral() float64 { return c.lateral }

// Forward returns the distance travelled
func (c *Controller) Forward() float64 { return c.forward }

// Tilt returns the body roll for renderers, in radians
func (c *Controller) Tilt() float64 { return c.tilt }
