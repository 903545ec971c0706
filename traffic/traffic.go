// Package traffic runs the pool of oncoming and same-direction cars
package traffic

import (
	"math/rand"

	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/recycler"
	"github.com/golangdaddy/laneracer/road"
)

// Car is one traffic vehicle. ID is stable for the life of a run.
type Car struct {
	ID           int
	Lateral      float64 // lane center
	Longitudinal float64 // forward coordinate
	Oncoming     bool
	Color        string // "#rrggbb" from the palette
}

// kind applies the traffic rules to recycler.Pool
type kind struct {
	cfg      config.Traffic
	oncoming []float64
	same     []float64
}

func (k kind) Spawn(c *Car, id int, at float64, rng *rand.Rand) {
	c.ID = id
	c.Oncoming = id%2 == 0
	c.Longitudinal = at
	k.redraw(c, rng)
}

// redraw picks a lane on the car's side of the road and a colour
func (k kind) redraw(c *Car, rng *rand.Rand) {
	lanes := k.same
	if c.Oncoming {
		lanes = k.oncoming
	}
	if len(lanes) > 0 {
		c.Lateral = lanes[rng.Intn(len(lanes))]
	}
	if len(k.cfg.Colors) > 0 {
		c.Color = k.cfg.Colors[rng.Intn(len(k.cfg.Colors))]
	}
}

func (k kind) Advance(c *Car, dt, speed float64) {
	factor := k.cfg.SameDirectionFactor
	if c.Oncoming {
		factor = k.cfg.OncomingFactor
	}
	c.Longitudinal += speed * factor * dt
}

func (k kind) Position(c *Car) float64 { return c.Longitudinal }

func (k kind) Behind(c *Car, playerForward float64) bool {
	return c.Longitudinal < playerForward-k.cfg.RecycleBehind
}

func (k kind) RespawnAt(playerForward, _ float64, rng *rand.Rand) float64 {
	return playerForward + k.cfg.RespawnAhead + recycler.Jitter(rng, k.cfg.RespawnJitter)
}

func (k kind) Recycle(c *Car, at float64, rng *rand.Rand) {
	c.Longitudinal = at
	k.redraw(c, rng)
}

// Pool is the traffic population
type Pool struct {
	*recycler.Pool[Car]
	cfg config.Traffic
}

// NewPool creates a traffic pool. Oncoming cars use the lanes left of
// center and same-direction cars the rest; a road with only one side
// puts both kinds on it.
func NewPool(cfg config.Traffic, layout road.Layout, rng *rand.Rand) *Pool {
	k := kind{
		cfg:      cfg,
		oncoming: layout.OncomingLanes(),
		same:     layout.SameDirectionLanes(),
	}
	if len(k.oncoming) == 0 {
		k.oncoming = layout.Lanes
	}
	if len(k.same) == 0 {
		k.same = layout.Lanes
	}
	return &Pool{
		Pool: recycler.New[Car](k, rng),
		cfg:  cfg,
	}
}

// Reset repopulates the road ahead of origin
func (p *Pool) Reset(origin float64) {
	p.Initialize(p.cfg.PoolSize, p.cfg.Lead, p.cfg.Spacing, p.cfg.Jitter, origin)
}
