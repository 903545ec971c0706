package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}
	if got := len(cfg.Road.Lanes); got != 4 {
		t.Errorf("Expected 4 lanes, got %d", got)
	}
	if math.Abs(cfg.Road.MaxLateral()-3.9) > 1e-9 {
		t.Errorf("Expected max lateral 3.9, got %v", cfg.Road.MaxLateral())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"unknown mode", func(c *Tuning) { c.Control = "joystick" }},
		{"no lanes", func(c *Tuning) { c.Road.Lanes = nil }},
		{"unordered lanes", func(c *Tuning) { c.Road.Lanes = []float64{1, -1} }},
		{"zero segment", func(c *Tuning) { c.Road.SegmentLength = 0 }},
		{"empty traffic pool", func(c *Tuning) { c.Traffic.PoolSize = 0 }},
		{"empty pickup pool", func(c *Tuning) { c.Pickups.PoolSize = 0 }},
		{"no colors", func(c *Tuning) { c.Traffic.Colors = nil }},
		{"cap below start", func(c *Tuning) { c.Difficulty.SpeedCap = 1 }},
		{"negative ramp", func(c *Tuning) { c.Difficulty.RampRate = -0.1 }},
		{"negative start delay", func(c *Tuning) { c.StartDelay = -1 }},
		{"nan start delay", func(c *Tuning) { c.StartDelay = math.NaN() }},
		{"infinite speed", func(c *Tuning) { c.Difficulty.SpeedCap = math.Inf(1) }},
		{"nan lane", func(c *Tuning) { c.Road.Lanes[1] = math.NaN() }},
		{"same direction outruns player", func(c *Tuning) { c.Traffic.SameDirectionFactor = 1 }},
		{"oncoming outruns player", func(c *Tuning) { c.Traffic.OncomingFactor = 1.5 }},
		{"coins outrun player", func(c *Tuning) { c.Pickups.DriftFactor = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := []byte(`
control_mode: steer
traffic:
  pool_size: 6
difficulty:
  speed_cap: 30
`)
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Control != ControlSteer {
		t.Errorf("Expected steer mode, got %q", cfg.Control)
	}
	if cfg.Traffic.PoolSize != 6 {
		t.Errorf("Expected traffic pool 6, got %d", cfg.Traffic.PoolSize)
	}
	if cfg.Difficulty.SpeedCap != 30 {
		t.Errorf("Expected speed cap 30, got %v", cfg.Difficulty.SpeedCap)
	}
	// untouched keys keep their defaults
	if cfg.Pickups.Bonus != 50 {
		t.Errorf("Expected default bonus 50, got %v", cfg.Pickups.Bonus)
	}
	if cfg.Traffic.HitLateral != 1.4 {
		t.Errorf("Expected default hit lateral 1.4, got %v", cfg.Traffic.HitLateral)
	}
}

func TestLoadFileNaNRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("start_delay: .nan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !math.IsNaN(cfg.StartDelay) {
		t.Fatalf("Expected NaN start delay, got %v", cfg.StartDelay)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected not-exist error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvControlMode, "STEER")
	t.Setenv(EnvStartLane, "1")
	t.Setenv(EnvSound, "false")

	cfg := Default()
	ApplyEnv(&cfg)
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Control != ControlSteer {
		t.Errorf("Expected steer mode, got %q", cfg.Control)
	}
	if cfg.Player.StartLane != 1 {
		t.Errorf("Expected start lane 1, got %d", cfg.Player.StartLane)
	}
	if cfg.Sound {
		t.Errorf("Expected sound disabled")
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvSeed, "many")
	t.Setenv(EnvControlMode, "wheel")

	cfg := Default()
	ApplyEnv(&cfg)
	if cfg.Seed != 0 {
		t.Errorf("Expected seed untouched, got %d", cfg.Seed)
	}
	if cfg.Control != ControlLane {
		t.Errorf("Expected lane mode untouched, got %q", cfg.Control)
	}
}

func TestLoadReadsConfigFileFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("start_delay: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir) // no .env here
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartDelay != 1.5 {
		t.Errorf("Expected start delay 1.5, got %v", cfg.StartDelay)
	}
}
