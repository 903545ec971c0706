// Package config holds the tuning for the driving simulation and the hosts
// that embed it. Defaults reproduce the reference layout: a four lane road
// with two oncoming lanes on the left and two same-direction lanes on the right.
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every tuning validation failure
var ErrInvalid = errors.New("invalid tuning")

// ControlMode selects how the host steers the player car
type ControlMode string

const (
	ControlLane  ControlMode = "lane"  // discrete lane index
	ControlSteer ControlMode = "steer" // normalized value in [-1, 1]
)

// Environment variable names read by LoadEnv
const (
	EnvConfigFile  = "LANERACER_CONFIG"
	EnvSeed        = "LANERACER_SEED"
	EnvControlMode = "LANERACER_CONTROL_MODE"
	EnvStartLane   = "LANERACER_START_LANE"
	EnvSound       = "LANERACER_SOUND"
)

// Tuning is the complete set of knobs for one simulation
type Tuning struct {
	Seed       int64       `yaml:"seed"` // 0 picks a time based seed
	Control    ControlMode `yaml:"control_mode"`
	StartDelay float64     `yaml:"start_delay"` // seconds of grace after a run starts
	Sound      bool        `yaml:"sound"`

	Road       Road       `yaml:"road"`
	Player     Player     `yaml:"player"`
	Difficulty Difficulty `yaml:"difficulty"`
	Traffic    Traffic    `yaml:"traffic"`
	Pickups    Pickups    `yaml:"pickups"`
}

// Road describes the lateral layout and the segment window
type Road struct {
	Lanes            []float64 `yaml:"lanes"` // lane centers, left to right
	Width            float64   `yaml:"width"`
	VehicleHalfWidth float64   `yaml:"vehicle_half_width"`
	EdgeMargin       float64   `yaml:"edge_margin"`
	SegmentLength    float64   `yaml:"segment_length"`
	SegmentsBehind   int       `yaml:"segments_behind"`
	SegmentsAhead    int       `yaml:"segments_ahead"`
}

// Player tunes the lateral controller
type Player struct {
	StartLane int     `yaml:"start_lane"`
	LaneRate  float64 `yaml:"lane_rate"`  // 1/s, lane mode smoothing
	SteerRate float64 `yaml:"steer_rate"` // 1/s, steering mode smoothing
	LaneTilt  float64 `yaml:"lane_tilt"`  // radians per world unit of lag
	SteerTilt float64 `yaml:"steer_tilt"` // radians per unit of normalized lag
}

// Difficulty tunes the speed ramp and score accrual
type Difficulty struct {
	InitialSpeed       float64 `yaml:"initial_speed"` // world units per second
	SpeedCap           float64 `yaml:"speed_cap"`
	RampRate           float64 `yaml:"ramp_rate"` // units per second squared
	BaseScoreRate      float64 `yaml:"base_score_rate"`
	SpeedScoreFactor   float64 `yaml:"speed_score_factor"`
	OncomingMultiplier float64 `yaml:"oncoming_multiplier"`
}

// Traffic tunes the traffic pool
type Traffic struct {
	PoolSize            int      `yaml:"pool_size"`
	Lead                float64  `yaml:"lead"` // distance of the first car from the start
	Spacing             float64  `yaml:"spacing"`
	Jitter              float64  `yaml:"jitter"`
	OncomingFactor      float64  `yaml:"oncoming_factor"`
	SameDirectionFactor float64  `yaml:"same_direction_factor"`
	RecycleBehind       float64  `yaml:"recycle_behind"`
	RespawnAhead        float64  `yaml:"respawn_ahead"`
	RespawnJitter       float64  `yaml:"respawn_jitter"`
	HitLateral          float64  `yaml:"hit_lateral"`
	HitLongitudinal     float64  `yaml:"hit_longitudinal"`
	Colors              []string `yaml:"colors"`
}

// Pickups tunes the coin pool
type Pickups struct {
	PoolSize        int     `yaml:"pool_size"`
	Lead            float64 `yaml:"lead"`
	Spacing         float64 `yaml:"spacing"`
	Jitter          float64 `yaml:"jitter"`
	DriftFactor     float64 `yaml:"drift_factor"`
	RecycleBehind   float64 `yaml:"recycle_behind"`
	Bonus           float64 `yaml:"bonus"`
	HitLateral      float64 `yaml:"hit_lateral"`
	HitLongitudinal float64 `yaml:"hit_longitudinal"`
}

// Default returns the reference tuning
func Default() Tuning {
	return Tuning{
		Control:    ControlLane,
		StartDelay: 0.5,
		Sound:      true,
		Road: Road{
			Lanes:            []float64{-3.5, -1.2, 1.2, 3.5},
			Width:            10,
			VehicleHalfWidth: 0.8,
			EdgeMargin:       0.3,
			SegmentLength:    60,
			SegmentsBehind:   2,
			SegmentsAhead:    8,
		},
		Player: Player{
			StartLane: 2, // first same-direction lane
			LaneRate:  10,
			SteerRate: 8,
			LaneTilt:  0.1,
			SteerTilt: 0.15,
		},
		Difficulty: Difficulty{
			InitialSpeed:       9,    // 0.15 per frame at 60 fps
			SpeedCap:           24,   // 0.4 per frame
			RampRate:           0.12, // 0.002 per frame per second
			BaseScoreRate:      15,
			SpeedScoreFactor:   2.0 / 60.0,
			OncomingMultiplier: 2,
		},
		Traffic: Traffic{
			PoolSize:            14,
			Lead:                15,
			Spacing:             10,
			Jitter:              8,
			OncomingFactor:      -2.0,
			SameDirectionFactor: 0.3,
			RecycleBehind:       40,
			RespawnAhead:        80,
			RespawnJitter:       30,
			HitLateral:          1.4,
			HitLongitudinal:     2.5,
			Colors: []string{
				"#3366cc", "#33cc66", "#cc9933", "#9933cc",
				"#33cccc", "#666666", "#ffffff", "#cc6633",
			},
		},
		Pickups: Pickups{
			PoolSize:        10,
			Lead:            15,
			Spacing:         20,
			Jitter:          10,
			DriftFactor:     -0.7,
			RecycleBehind:   20,
			Bonus:           50,
			HitLateral:      1.5,
			HitLongitudinal: 2.0,
		},
	}
}

// MaxLateral is the furthest the player car may sit from the road center
func (r Road) MaxLateral() float64 {
	m := r.Width/2 - r.VehicleHalfWidth - r.EdgeMargin
	if m < 0 {
		return 0
	}
	return m
}

// Validate reports tuning the simulation cannot run with
func (t Tuning) Validate() error {
	switch t.Control {
	case ControlLane, ControlSteer:
	default:
		return fmt.Errorf("%w: unknown control mode %q", ErrInvalid, t.Control)
	}
	if len(t.Road.Lanes) == 0 {
		return fmt.Errorf("%w: road needs at least one lane", ErrInvalid)
	}
	if !sort.Float64sAreSorted(t.Road.Lanes) {
		return fmt.Errorf("%w: lanes must be ordered left to right", ErrInvalid)
	}
	if t.Road.Width <= 0 {
		return fmt.Errorf("%w: road width %v", ErrInvalid, t.Road.Width)
	}
	if t.Road.SegmentLength <= 0 {
		return fmt.Errorf("%w: segment length %v", ErrInvalid, t.Road.SegmentLength)
	}
	if t.Road.SegmentsBehind < 0 || t.Road.SegmentsAhead < 0 {
		return fmt.Errorf("%w: negative segment margin", ErrInvalid)
	}
	if t.Traffic.PoolSize <= 0 {
		return fmt.Errorf("%w: traffic pool size %d", ErrInvalid, t.Traffic.PoolSize)
	}
	if t.Pickups.PoolSize <= 0 {
		return fmt.Errorf("%w: pickup pool size %d", ErrInvalid, t.Pickups.PoolSize)
	}
	if len(t.Traffic.Colors) == 0 {
		return fmt.Errorf("%w: traffic palette is empty", ErrInvalid)
	}
	for name, v := range t.numbers() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalid, name, v)
		}
	}
	if t.StartDelay < 0 {
		return fmt.Errorf("%w: start delay %v", ErrInvalid, t.StartDelay)
	}
	if t.Difficulty.SpeedCap < t.Difficulty.InitialSpeed {
		return fmt.Errorf("%w: speed cap %v below initial speed %v",
			ErrInvalid, t.Difficulty.SpeedCap, t.Difficulty.InitialSpeed)
	}
	if t.Difficulty.RampRate < 0 {
		return fmt.Errorf("%w: ramp rate %v", ErrInvalid, t.Difficulty.RampRate)
	}
	// entities must fall behind the player or they never recycle
	if t.Traffic.SameDirectionFactor >= 1 || t.Traffic.OncomingFactor >= 1 {
		return fmt.Errorf("%w: traffic factors %v/%v must be below 1",
			ErrInvalid, t.Traffic.SameDirectionFactor, t.Traffic.OncomingFactor)
	}
	if t.Pickups.DriftFactor >= 1 {
		return fmt.Errorf("%w: pickup drift factor %v must be below 1", ErrInvalid, t.Pickups.DriftFactor)
	}
	return nil
}

// numbers lists every float knob by its yaml path
func (t Tuning) numbers() map[string]float64 {
	n := map[string]float64{
		"start_delay":                    t.StartDelay,
		"road.width":                     t.Road.Width,
		"road.vehicle_half_width":        t.Road.VehicleHalfWidth,
		"road.edge_margin":               t.Road.EdgeMargin,
		"road.segment_length":            t.Road.SegmentLength,
		"player.lane_rate":               t.Player.LaneRate,
		"player.steer_rate":              t.Player.SteerRate,
		"player.lane_tilt":               t.Player.LaneTilt,
		"player.steer_tilt":              t.Player.SteerTilt,
		"difficulty.initial_speed":       t.Difficulty.InitialSpeed,
		"difficulty.speed_cap":           t.Difficulty.SpeedCap,
		"difficulty.ramp_rate":           t.Difficulty.RampRate,
		"difficulty.base_score_rate":     t.Difficulty.BaseScoreRate,
		"difficulty.speed_score_factor":  t.Difficulty.SpeedScoreFactor,
		"difficulty.oncoming_multiplier": t.Difficulty.OncomingMultiplier,
		"traffic.lead":                   t.Traffic.Lead,
		"traffic.spacing":                t.Traffic.Spacing,
		"traffic.jitter":                 t.Traffic.Jitter,
		"traffic.oncoming_factor":        t.Traffic.OncomingFactor,
		"traffic.same_direction_factor":  t.Traffic.SameDirectionFactor,
		"traffic.recycle_behind":         t.Traffic.RecycleBehind,
		"traffic.respawn_ahead":          t.Traffic.RespawnAhead,
		"traffic.respawn_jitter":         t.Traffic.RespawnJitter,
		"traffic.hit_lateral":            t.Traffic.HitLateral,
		"traffic.hit_longitudinal":       t.Traffic.HitLongitudinal,
		"pickups.lead":                   t.Pickups.Lead,
		"pickups.spacing":                t.Pickups.Spacing,
		"pickups.jitter":                 t.Pickups.Jitter,
		"pickups.drift_factor":           t.Pickups.DriftFactor,
		"pickups.recycle_behind":         t.Pickups.RecycleBehind,
		"pickups.bonus":                  t.Pickups.Bonus,
		"pickups.hit_lateral":            t.Pickups.HitLateral,
		"pickups.hit_longitudinal":       t.Pickups.HitLongitudinal,
	}
	for i, lane := range t.Road.Lanes {
		n[fmt.Sprintf("road.lanes[%d]", i)] = lane
	}
	return n
}

// LoadFile decodes a yaml tuning file over the defaults
func LoadFile(filename string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", filename, err)
	}
	return t, nil
}

// Load reads an optional .env file, an optional yaml tuning file named by
// LANERACER_CONFIG, then applies the remaining environment overrides
func Load() (Tuning, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	t := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return t, err
		}
		t = loaded
	}

	ApplyEnv(&t)
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// ApplyEnv overrides tuning fields from LANERACER_* variables.
// Values that do not parse are ignored.
func ApplyEnv(t *Tuning) {
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			t.Seed = seed
		} else {
			log.Printf("Warning: ignoring %s=%q: %v", EnvSeed, v, err)
		}
	}
	if v := os.Getenv(EnvControlMode); v != "" {
		mode := ControlMode(strings.ToLower(strings.TrimSpace(v)))
		if mode == ControlLane || mode == ControlSteer {
			t.Control = mode
		} else {
			log.Printf("Warning: ignoring %s=%q: want lane or steer", EnvControlMode, v)
		}
	}
	if v := os.Getenv(EnvStartLane); v != "" {
		if lane, err := strconv.Atoi(v); err == nil {
			t.Player.StartLane = lane
		} else {
			log.Printf("Warning: ignoring %s=%q: %v", EnvStartLane, v, err)
		}
	}
	if v := os.Getenv(EnvSound); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			t.Sound = on
		} else {
			log.Printf("Warning: ignoring %s=%q: %v", EnvSound, v, err)
		}
	}
}
