package traffic

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/road"
)

func newPool(t *testing.T, seed int64) (*Pool, config.Traffic) {
	t.Helper()
	cfg := config.Default()
	p := NewPool(cfg.Traffic, road.NewLayout(cfg.Road), rand.New(rand.NewSource(seed)))
	p.Reset(0)
	return p, cfg.Traffic
}

func TestResetLayout(t *testing.T) {
	p, cfg := newPool(t, 1)
	if p.Len() != cfg.PoolSize {
		t.Fatalf("pool size %d, want %d", p.Len(), cfg.PoolSize)
	}
	palette := map[string]bool{}
	for _, c := range cfg.Colors {
		palette[c] = true
	}
	for i, c := range p.Entities() {
		if c.ID != i {
			t.Errorf("slot %d id %d", i, c.ID)
		}
		if c.Oncoming != (i%2 == 0) {
			t.Errorf("car %d oncoming=%v", i, c.Oncoming)
		}
		if c.Oncoming && c.Lateral >= 0 {
			t.Errorf("oncoming car %d in lane %v", i, c.Lateral)
		}
		if !c.Oncoming && c.Lateral < 0 {
			t.Errorf("same-direction car %d in lane %v", i, c.Lateral)
		}
		lo := cfg.Lead + float64(i)*cfg.Spacing
		if c.Longitudinal < lo || c.Longitudinal >= lo+cfg.Jitter {
			t.Errorf("car %d at %v, want [%v, %v)", i, c.Longitudinal, lo, lo+cfg.Jitter)
		}
		if !palette[c.Color] {
			t.Errorf("car %d colour %q not in palette", i, c.Color)
		}
	}
}

func TestAdvanceByDirection(t *testing.T) {
	p, _ := newPool(t, 2)
	before := p.Entities()
	p.Advance(0.5, 10)
	for i, c := range p.Entities() {
		moved := c.Longitudinal - before[i].Longitudinal
		want := 10 * 0.3 * 0.5
		if c.Oncoming {
			want = 10 * -2.0 * 0.5
		}
		if moved < want-1e-9 || moved > want+1e-9 {
			t.Errorf("car %d moved %v, want %v", i, moved, want)
		}
	}
}

func TestRecycleKeepsIDAndKind(t *testing.T) {
	p, cfg := newPool(t, 3)
	forward := 500.0
	if n := p.RecycleCheck(forward); n != cfg.PoolSize {
		t.Fatalf("recycled %d, want all %d", n, cfg.PoolSize)
	}
	for i, c := range p.Entities() {
		if c.ID != i || c.Oncoming != (i%2 == 0) {
			t.Errorf("slot %d became %+v", i, c)
		}
		lo := forward + cfg.RespawnAhead
		if c.Longitudinal < lo || c.Longitudinal >= lo+cfg.RespawnJitter {
			t.Errorf("car %d respawned at %v, want [%v, %v)", i, c.Longitudinal, lo, lo+cfg.RespawnJitter)
		}
	}
}

func TestRecycleMargin(t *testing.T) {
	p, cfg := newPool(t, 4)
	inside := 100 - cfg.RecycleBehind + 0.01
	p.At(0).Longitudinal = inside
	p.RecycleCheck(100)
	if got := p.At(0).Longitudinal; got != inside {
		t.Fatalf("car inside the margin moved to %v", got)
	}
	p.At(0).Longitudinal = 100 - cfg.RecycleBehind - 0.01
	p.RecycleCheck(100)
	if got := p.At(0).Longitudinal; got < 100+cfg.RespawnAhead {
		t.Fatalf("car past the margin stayed at %v", got)
	}
}

func TestSameSeedSameTraffic(t *testing.T) {
	a, _ := newPool(t, 42)
	b, _ := newPool(t, 42)
	ea, eb := a.Entities(), b.Entities()
	for i := range ea {
		if ea[i] != eb[i] {
			t.Fatalf("car %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestOneSidedRoad(t *testing.T) {
	cfg := config.Default()
	cfg.Road.Lanes = []float64{1, 3}
	p := NewPool(cfg.Traffic, road.NewLayout(cfg.Road), rand.New(rand.NewSource(5)))
	p.Reset(0)
	for _, c := range p.Entities() {
		if c.Lateral != 1 && c.Lateral != 3 {
			t.Errorf("car %d off the road at %v", c.ID, c.Lateral)
		}
	}
}
