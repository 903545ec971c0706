package recycler

import (
	"math"
	"math/rand"
	"testing"
)

type marker struct {
	id       int
	pos      float64
	recycles int
}

type markerKind struct{}

func (markerKind) Spawn(e *marker, id int, at float64, _ *rand.Rand) {
	*e = marker{id: id, pos: at}
}

func (markerKind) Advance(e *marker, dt, speed float64) {
	e.pos -= speed * dt
}

func (markerKind) Position(e *marker) float64 { return e.pos }

func (markerKind) Behind(e *marker, playerForward float64) bool {
	return e.pos < playerForward-10
}

func (markerKind) RespawnAt(playerForward, furthest float64, rng *rand.Rand) float64 {
	return math.Max(furthest, playerForward) + 5 + Jitter(rng, 1)
}

func (markerKind) Recycle(e *marker, at float64, _ *rand.Rand) {
	e.pos = at
	e.recycles++
}

func newMarkers(t *testing.T, size int) *Pool[marker] {
	t.Helper()
	p := New[marker](markerKind{}, rand.New(rand.NewSource(7)))
	p.Initialize(size, 15, 10, 2, 0)
	return p
}

func TestInitializeSpacing(t *testing.T) {
	p := newMarkers(t, 5)
	if p.Len() != 5 {
		t.Fatalf("Len = %d, want 5", p.Len())
	}
	for i, e := range p.Entities() {
		if e.id != i {
			t.Errorf("slot %d has id %d", i, e.id)
		}
		lo := 15 + float64(i)*10
		if e.pos < lo || e.pos >= lo+2 {
			t.Errorf("entity %d at %v, want [%v, %v)", i, e.pos, lo, lo+2)
		}
	}
}

func TestEntitiesIsACopy(t *testing.T) {
	p := newMarkers(t, 3)
	out := p.Entities()
	out[0].pos = -1000
	if p.At(0).pos == -1000 {
		t.Fatalf("Entities exposed the backing slice")
	}
}

func TestRecyclePreservesIdentity(t *testing.T) {
	p := newMarkers(t, 4)
	forward := 0.0
	total := 0
	for tick := 0; tick < 5000; tick++ {
		p.Advance(1.0/60, 20)
		forward += 9.0 / 60
		total += p.RecycleCheck(forward)
		if p.Len() != 4 {
			t.Fatalf("tick %d: pool size %d, want 4", tick, p.Len())
		}
	}
	if total == 0 {
		t.Fatalf("nothing was recycled")
	}
	seen := map[int]bool{}
	for i, e := range p.Entities() {
		if e.id != i {
			t.Errorf("slot %d now has id %d", i, e.id)
		}
		seen[e.id] = true
		if e.pos < forward-10 {
			t.Errorf("entity %d left behind at %v (player %v)", e.id, e.pos, forward)
		}
	}
	if len(seen) != 4 {
		t.Errorf("ids not unique: %v", seen)
	}
}

func TestRecycleStacksAheadOfFurthest(t *testing.T) {
	p := New[marker](markerKind{}, rand.New(rand.NewSource(1)))
	p.Initialize(3, 0, 0, 0, 0)
	// all three start at 0; leaving them 20 behind recycles every one
	if n := p.RecycleCheck(20); n != 3 {
		t.Fatalf("RecycleCheck = %d, want 3", n)
	}
	es := p.Entities()
	for i := 1; i < len(es); i++ {
		if es[i].pos <= es[i-1].pos {
			t.Errorf("entity %d at %v not beyond entity %d at %v", i, es[i].pos, i-1, es[i-1].pos)
		}
	}
}

func TestAdvanceIgnoresNonPositiveDelta(t *testing.T) {
	p := newMarkers(t, 2)
	before := p.Entities()
	p.Advance(0, 20)
	p.Advance(-1, 20)
	after := p.Entities()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("entity %d moved on a zero delta", i)
		}
	}
}

func TestRecycleCheckNonFinite(t *testing.T) {
	p := newMarkers(t, 2)
	if n := p.RecycleCheck(math.NaN()); n != 0 {
		t.Fatalf("NaN forward recycled %d entities", n)
	}
}

func TestFurthestEmpty(t *testing.T) {
	p := New[marker](markerKind{}, nil)
	p.Initialize(0, 0, 0, 0, 0)
	if !math.IsInf(p.Furthest(), -1) {
		t.Fatalf("Furthest on empty pool = %v", p.Furthest())
	}
}
