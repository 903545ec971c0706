// Package pickup runs the pool of bonus coins
package pickup

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/recycler"
	"github.com/golangdaddy/laneracer/road"
)

// Coin is one pickup. A collected coin stays in the pool, inert, until it
// is recycled.
type Coin struct {
	ID           int
	Lateral      float64
	Longitudinal float64
	Collected    bool
}

type kind struct {
	cfg  config.Pickups
	half float64 // coins land within [-half, half)
}

func (k kind) Spawn(c *Coin, id int, at float64, rng *rand.Rand) {
	*c = Coin{ID: id, Longitudinal: at}
	c.Lateral = k.lateral(rng)
}

func (k kind) lateral(rng *rand.Rand) float64 {
	return -k.half + rng.Float64()*2*k.half
}

func (k kind) Advance(c *Coin, dt, speed float64) {
	c.Longitudinal += speed * k.cfg.DriftFactor * dt
}

func (k kind) Position(c *Coin) float64 { return c.Longitudinal }

func (k kind) Behind(c *Coin, playerForward float64) bool {
	return c.Longitudinal < playerForward-k.cfg.RecycleBehind
}

func (k kind) RespawnAt(playerForward, furthest float64, rng *rand.Rand) float64 {
	return math.Max(furthest, playerForward) + k.cfg.Spacing + recycler.Jitter(rng, k.cfg.Jitter)
}

func (k kind) Recycle(c *Coin, at float64, rng *rand.Rand) {
	c.Longitudinal = at
	c.Lateral = k.lateral(rng)
	c.Collected = false
}

// Pool is the coin population
type Pool struct {
	*recycler.Pool[Coin]
	cfg config.Pickups
}

// NewPool creates a coin pool spread across the road, one unit in from
// each edge
func NewPool(cfg config.Pickups, layout road.Layout, rng *rand.Rand) *Pool {
	half := math.Max(0, (layout.Width-2)/2)
	return &Pool{
		Pool: recycler.New[Coin](kind{cfg: cfg, half: half}, rng),
		cfg:  cfg,
	}
}

// Reset repopulates the road ahead of origin
func (p *Pool) Reset(origin float64) {
	p.Initialize(p.cfg.PoolSize, p.cfg.Lead, p.cfg.Spacing, p.cfg.Jitter, origin)
}

// Collect marks the coin in slot i as taken and returns the bonus earned,
// which is zero if it was already taken
func (p *Pool) Collect(i int) float64 {
	c := p.At(i)
	if c.Collected {
		return 0
	}
	c.Collected = true
	return p.cfg.Bonus
}

// Live returns the coins not yet collected
func (p *Pool) Live() []Coin {
	var out []Coin
	for _, c := range p.Entities() {
		if !c.Collected {
			out = append(out, c)
		}
	}
	return out
}
