// Package recycler keeps a fixed set of entities ahead of the player and
// moves the ones left behind back out in front, so a small pool covers an
// endless road.
package recycler

import (
	"math"
	"math/rand"
)

// Kind supplies the per-entity rules a Pool applies
type Kind[E any] interface {
	// Spawn fills e for a fresh run at longitudinal position at
	Spawn(e *E, id int, at float64, rng *rand.Rand)
	// Advance moves e along the road for one tick
	Advance(e *E, dt, speed float64)
	// Position returns the longitudinal coordinate of e
	Position(e *E) float64
	// Behind reports whether e has dropped far enough behind the player to be reused
	Behind(e *E, playerForward float64) bool
	// RespawnAt picks where a recycled entity reappears
	RespawnAt(playerForward, furthest float64, rng *rand.Rand) float64
	// Recycle re-draws e at a new position, keeping its id
	Recycle(e *E, at float64, rng *rand.Rand)
}

// Pool is a fixed size population of entities of one kind
type Pool[E any] struct {
	kind     Kind[E]
	rng      *rand.Rand
	entities []E
}

// New creates an empty pool; call Initialize before use
func New[E any](kind Kind[E], rng *rand.Rand) *Pool[E] {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Pool[E]{kind: kind, rng: rng}
}

// Jitter returns a uniform draw from [0, span)
func Jitter(rng *rand.Rand, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return rng.Float64() * span
}

// Initialize replaces the population with size fresh entities. Entity i is
// placed at origin + lead + i*spacing plus up to jitter.
func (p *Pool[E]) Initialize(size int, lead, spacing, jitter, origin float64) {
	if size < 0 {
		size = 0
	}
	p.entities = make([]E, size)
	for i := range p.entities {
		at := origin + lead + float64(i)*spacing + Jitter(p.rng, jitter)
		p.kind.Spawn(&p.entities[i], i, at, p.rng)
	}
}

// Advance moves every entity for one tick
func (p *Pool[E]) Advance(dt, speed float64) {
	if dt <= 0 {
		return
	}
	for i := range p.entities {
		p.kind.Advance(&p.entities[i], dt, speed)
	}
}

// RecycleCheck moves every entity that fell behind playerForward back out
// ahead and returns how many moved
func (p *Pool[E]) RecycleCheck(playerForward float64) int {
	if math.IsNaN(playerForward) || math.IsInf(playerForward, 0) {
		return 0
	}
	recycled := 0
	for i := range p.entities {
		e := &p.entities[i]
		if !p.kind.Behind(e, playerForward) {
			continue
		}
		at := p.kind.RespawnAt(playerForward, p.Furthest(), p.rng)
		p.kind.Recycle(e, at, p.rng)
		recycled++
	}
	return recycled
}

// Furthest returns the largest longitudinal position in the pool, or
// -Inf when the pool is empty
func (p *Pool[E]) Furthest() float64 {
	furthest := math.Inf(-1)
	for i := range p.entities {
		if pos := p.kind.Position(&p.entities[i]); pos > furthest {
			furthest = pos
		}
	}
	return furthest
}

// At returns the entity in slot i for in-place updates
func (p *Pool[E]) At(i int) *E {
	return &p.entities[i]
}

// Entities returns a copy of the population
func (p *Pool[E]) Entities() []E {
	out := make([]E, len(p.entities))
	copy(out, p.entities)
	return out
}

// Len returns the pool size
func (p *Pool[E]) Len() int {
	return len(p.entities)
}
