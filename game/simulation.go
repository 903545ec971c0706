// Package game advances the world one frame at a time: player, traffic,
// pickups, collisions, score and the run lifecycle.
package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/golangdaddy/laneracer/car"
	"github.com/golangdaddy/laneracer/collision"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/difficulty"
	"github.com/golangdaddy/laneracer/pickup"
	"github.com/golangdaddy/laneracer/road"
	"github.com/golangdaddy/laneracer/traffic"
	"github.com/google/uuid"
)

// Input is what the host supplies each frame
type Input struct {
	Delta   float64    // seconds since the previous tick
	Hidden  bool       // window lost focus or visibility
	Control car.Signal // player control for this frame
}

// Simulation owns the authoritative world state. It is not safe for
// concurrent use; drive it from the host's frame loop.
type Simulation struct {
	cfg    config.Tuning
	layout road.Layout
	rng    *rand.Rand
	hooks  Hooks
	logger *log.Logger

	player  *car.Controller
	traffic *traffic.Pool
	pickups *pickup.Pool
	carBox  collision.Box
	coinBox collision.Box

	runID   string
	phase   Phase
	tick    uint64
	speed   float64
	score   float64
	elapsed float64 // time spent running, for the start delay

	// last usable player sample
	goodLateral float64
	goodForward float64

	result Result
	events []Event
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand sets the random source used for spawning
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithSeed seeds the spawn random source
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithHooks registers transition callbacks
func WithHooks(h Hooks) Option {
	return func(s *Simulation) {
		s.hooks = h
	}
}

// WithLogger replaces the standard logger
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// New builds a simulation in the NotStarted phase. The first Tick starts it.
func New(cfg config.Tuning, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	s := &Simulation{
		cfg:    cfg,
		layout: road.NewLayout(cfg.Road),
		logger: log.Default(),
		carBox: collision.Box{
			Lateral:      cfg.Traffic.HitLateral,
			Longitudinal: cfg.Traffic.HitLongitudinal,
		},
		coinBox: collision.Box{
			Lateral:      cfg.Pickups.HitLateral,
			Longitudinal: cfg.Pickups.HitLongitudinal,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.player = car.NewController(cfg.Control, s.layout, cfg.Player)
	s.traffic = traffic.NewPool(cfg.Traffic, s.layout, s.rng)
	s.pickups = pickup.NewPool(cfg.Pickups, s.layout, s.rng)
	s.reset()
	s.phase = NotStarted
	return s, nil
}

// reset puts every piece of run state back to its starting value
func (s *Simulation) reset() {
	s.runID = uuid.NewString()
	s.tick = 0
	s.speed = s.cfg.Difficulty.InitialSpeed
	s.score = 0
	s.elapsed = 0
	s.result = Result{}
	s.player.Reset()
	s.goodLateral, s.goodForward, _ = s.player.Sample()
	s.traffic.Reset(s.goodForward)
	s.pickups.Reset(s.goodForward)
}

// Tick advances the world by one frame and returns the new state.
// Negative or non-finite deltas count as zero. A hidden frame pauses the
// run and its delta is dropped; the next visible frame resumes it.
func (s *Simulation) Tick(in Input) Snapshot {
	s.events = nil
	dt := in.Delta
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	switch s.phase {
	case GameOver:
		return s.snapshot()
	case NotStarted:
		if in.Hidden {
			return s.snapshot()
		}
		s.setPhase(Running)
		s.emit(Event{Kind: EventStarted})
		s.logger.Printf("Run %s started", s.runID)
	case Paused:
		if in.Hidden {
			return s.snapshot()
		}
		s.setPhase(Running)
		s.emit(Event{Kind: EventResumed})
	case Running:
		if in.Hidden {
			s.setPhase(Paused)
			s.emit(Event{Kind: EventPaused})
			return s.snapshot()
		}
	}

	s.tick++
	s.player.Apply(in.Control)
	s.step(dt)
	return s.snapshot()
}

// step runs one active frame
func (s *Simulation) step(dt float64) {
	s.player.Update(dt, s.speed)
	lateral, forward, ok := s.player.Sample()
	if ok {
		s.goodLateral, s.goodForward = lateral, forward
	} else {
		// no usable position this frame: keep the last good one and skip
		// everything that compares against it
		s.player.Recover(s.goodLateral, s.goodForward)
		lateral, forward = s.goodLateral, s.goodForward
	}

	s.elapsed += dt
	if s.elapsed >= s.cfg.StartDelay {
		s.traffic.Advance(dt, s.speed)
		s.pickups.Advance(dt, s.speed)
		if ok {
			s.traffic.RecycleCheck(forward)
			s.pickups.RecycleCheck(forward)
			s.collectPickups(lateral, forward)
			if id, hit := collision.Traffic(lateral, forward, s.traffic.Entities(), s.carBox); hit {
				s.crash(id)
				return
			}
		}
	}

	s.score = difficulty.Accrue(s.score, s.speed, lateral, dt, s.cfg.Difficulty)
	s.speed = difficulty.Ramp(s.speed, dt, s.cfg.Difficulty)
}

func (s *Simulation) collectPickups(lateral, forward float64) {
	coins := s.pickups.Entities()
	for _, slot := range collision.Pickups(lateral, forward, coins, s.coinBox) {
		bonus := s.pickups.Collect(slot)
		if bonus == 0 {
			continue
		}
		s.score += bonus
		id := coins[slot].ID
		s.emit(Event{Kind: EventPickup, ID: id, Bonus: bonus})
		if s.hooks.OnPickup != nil {
			s.hooks.OnPickup(id, bonus)
		}
	}
}

func (s *Simulation) crash(carID int) {
	s.result = Result{
		RunID:    s.runID,
		Score:    difficulty.Display(s.score),
		Distance: s.goodForward,
		Ticks:    s.tick,
		CarID:    carID,
	}
	s.setPhase(GameOver)
	s.emit(Event{Kind: EventCrash, ID: carID})
	s.logger.Printf("Run %s over: hit car %d, score %d, distance %.1f",
		s.runID, carID, s.result.Score, s.result.Distance)
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(s.result)
	}
}

// Restart throws the current run away and starts a fresh one, from any phase
func (s *Simulation) Restart() Snapshot {
	s.events = nil
	old := s.runID
	s.reset()
	s.logger.Printf("Run %s restarted as %s", old, s.runID)
	s.setPhase(Running)
	s.emit(Event{Kind: EventRestarted})
	return s.snapshot()
}

// Snapshot returns the current state without advancing it
func (s *Simulation) Snapshot() Snapshot {
	snap := s.snapshot()
	snap.Events = nil
	return snap
}

// GameOverSnapshot returns the final result while the run is over
func (s *Simulation) GameOverSnapshot() (Result, bool) {
	if s.phase != GameOver {
		return Result{}, false
	}
	return s.result, true
}

// Phase returns the current phase
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Layout returns the road layout the run uses
func (s *Simulation) Layout() road.Layout {
	return s.layout
}

// Tuning returns the configuration the simulation was built with
func (s *Simulation) Tuning() config.Tuning {
	return s.cfg
}

func (s *Simulation) setPhase(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	if s.hooks.OnPhaseChange != nil {
		s.hooks.OnPhaseChange(from, to)
	}
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Simulation) snapshot() Snapshot {
	r := s.cfg.Road
	return Snapshot{
		RunID:    s.runID,
		Tick:     s.tick,
		Phase:    s.phase,
		Forward:  s.player.Forward(),
		Lateral:  s.player.Lateral(),
		Tilt:     s.player.Tilt(),
		Lane:     s.player.Lane(),
		Speed:    s.speed,
		Score:    difficulty.Display(s.score),
		Traffic:  s.traffic.Entities(),
		Pickups:  s.pickups.Live(),
		Segments: road.Window(s.player.Forward(), r.SegmentLength, r.SegmentsBehind, r.SegmentsAhead),
		Events:   s.events,
	}
}
