package road

import (
	"math"
	"testing"

	"github.com/golangdaddy/laneracer/config"
)

func TestClampLane(t *testing.T) {
	l := NewLayout(config.Default().Road)
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{5, 3},
	}
	for _, tt := range tests {
		if got := l.ClampLane(tt.in); got != tt.want {
			t.Errorf("ClampLane(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := l.LaneCenter(5); got != 3.5 {
		t.Errorf("LaneCenter(5) = %v, want 3.5", got)
	}
}

func TestLaneSides(t *testing.T) {
	l := NewLayout(config.Default().Road)
	on := l.OncomingLanes()
	same := l.SameDirectionLanes()
	if len(on) != 2 || len(same) != 2 {
		t.Fatalf("sides = %v / %v, want two lanes each", on, same)
	}
	for _, x := range on {
		if x >= 0 {
			t.Errorf("oncoming lane %v is not left of center", x)
		}
	}
}

func TestLayoutCopiesLanes(t *testing.T) {
	r := config.Default().Road
	l := NewLayout(r)
	r.Lanes[0] = 99
	if l.Lanes[0] == 99 {
		t.Fatalf("layout shares the tuning slice")
	}
}

func TestClampLateral(t *testing.T) {
	l := NewLayout(config.Default().Road)
	if got := l.ClampLateral(10); math.Abs(got-3.9) > 1e-9 {
		t.Errorf("ClampLateral(10) = %v, want 3.9", got)
	}
	if got := l.ClampLateral(-10); math.Abs(got+3.9) > 1e-9 {
		t.Errorf("ClampLateral(-10) = %v, want -3.9", got)
	}
	if got := l.ClampLateral(1); got != 1 {
		t.Errorf("ClampLateral(1) = %v, want 1", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		forward              float64
		current, first, last int
	}{
		{0, 0, -2, 8},
		{59.9, 0, -2, 8},
		{60, 1, -1, 9},
		{1234, 20, 18, 28},
		{-1, -1, -3, 7},
	}
	for _, tt := range tests {
		w := Window(tt.forward, 60, 2, 8)
		if w.Current != tt.current || w.First != tt.first || w.Last != tt.last {
			t.Errorf("Window(%v) = %+v, want current=%d first=%d last=%d",
				tt.forward, w, tt.current, tt.first, tt.last)
		}
		if w.Len() != 11 {
			t.Errorf("Window(%v).Len() = %d, want 11", tt.forward, w.Len())
		}
	}
}

func TestSegmentIndexNonFinite(t *testing.T) {
	if got := SegmentIndex(math.NaN(), 60); got != 0 {
		t.Errorf("SegmentIndex(NaN) = %d, want 0", got)
	}
	if got := SegmentIndex(100, 0); got != 0 {
		t.Errorf("SegmentIndex with zero length = %d, want 0", got)
	}
}

func TestWindowContains(t *testing.T) {
	w := Window(600, 60, 2, 8)
	if !w.Contains(10) || !w.Contains(8) || !w.Contains(18) {
		t.Errorf("window %+v misses an expected index", w)
	}
	if w.Contains(7) || w.Contains(19) {
		t.Errorf("window %+v holds an index outside its margins", w)
	}
}
