package difficulty

import (
	"math"
	"testing"

	"github.com/golangdaddy/laneracer/config"
)

func TestRampCapsSpeed(t *testing.T) {
	d := config.Default().Difficulty
	speed := d.InitialSpeed
	for i := 0; i < 100000; i++ {
		next := Ramp(speed, 1.0/60, d)
		if next < speed {
			t.Fatalf("speed decreased at frame %d: %f -> %f", i, speed, next)
		}
		speed = next
	}
	if speed != d.SpeedCap {
		t.Fatalf("speed = %f, want cap %f", speed, d.SpeedCap)
	}
}

func TestRampIgnoresNonPositiveDelta(t *testing.T) {
	d := config.Default().Difficulty
	if got := Ramp(10, 0, d); got != 10 {
		t.Errorf("Ramp with dt=0 = %f, want 10", got)
	}
	if got := Ramp(10, -1, d); got != 10 {
		t.Errorf("Ramp with dt<0 = %f, want 10", got)
	}
}

func TestAccrueDoublesOnOncomingSide(t *testing.T) {
	d := config.Default().Difficulty
	right := Accrue(0, d.InitialSpeed, 1.2, 0.5, d)
	left := Accrue(0, d.InitialSpeed, -1.2, 0.5, d)
	if right <= 0 {
		t.Fatalf("expected score gain, got %f", right)
	}
	if math.Abs(left-2*right) > 1e-9 {
		t.Fatalf("oncoming side gain = %f, want %f", left, 2*right)
	}
	// center line counts as the same-direction side
	if got := Accrue(0, d.InitialSpeed, 0, 0.5, d); got != right {
		t.Errorf("center gain = %f, want %f", got, right)
	}
}

func TestAccrueFormula(t *testing.T) {
	d := config.Default().Difficulty
	// 0.15 per frame at 60 fps, as in the reference game
	got := Accrue(100, 9, 2, 1, d)
	want := 100 + 15*(1+0.15*2)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Accrue = %f, want %f", got, want)
	}
}

func TestDisplayFloors(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.99, 0},
		{49.999, 49},
		{50, 50},
	}
	for _, tt := range tests {
		if got := Display(tt.in); got != tt.want {
			t.Errorf("Display(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
