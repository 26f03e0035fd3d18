package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/boid"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// emptyFlock returns a flock with no boids and deterministic-friendly knobs.
func emptyFlock(cfg *Config) *Flock {
	cfg.NumBoids = 0
	return NewFlock(cfg)
}

func TestFlock_UpdateEmpty(t *testing.T) {
	// End-to-end scenario: a simulation with 0 boids must update without
	// error and stay empty.
	f := emptyFlock(DefaultConfig())

	f.Update()

	if len(f.Boids()) != 0 {
		t.Errorf("empty flock has %d boids after update; want 0", len(f.Boids()))
	}
}

func TestFlock_SetBoidCountGrow(t *testing.T) {
	// End-to-end scenario: raising the count from 50 to 100 appends exactly
	// 50 new boids, all within [0,width) x [0,height).
	cfg := DefaultConfig()
	f := NewFlock(cfg)
	if len(f.Boids()) != 50 {
		t.Fatalf("initial flock size = %d; want 50", len(f.Boids()))
	}
	existing := make([]*boid.Boid, 50)
	copy(existing, f.Boids())

	f.SetBoidCount(100)

	if len(f.Boids()) != 100 {
		t.Fatalf("flock size after grow = %d; want 100", len(f.Boids()))
	}
	// The first 50 are the same boids in the same order.
	for i, b := range existing {
		if f.Boids()[i] != b {
			t.Fatalf("grow reordered the collection at index %d", i)
		}
	}
	for i, b := range f.Boids()[50:] {
		if b.Pos.X < 0 || b.Pos.X >= cfg.WorldWidth || b.Pos.Y < 0 || b.Pos.Y >= cfg.WorldHeight {
			t.Errorf("spawned boid %d at %v; want within [0,%v) x [0,%v)",
				i, b.Pos, cfg.WorldWidth, cfg.WorldHeight)
		}
	}
}

func TestFlock_SetBoidCountShrinkRemovesFromEnd(t *testing.T) {
	f := NewFlock(DefaultConfig())
	head := f.Boids()[0]

	f.SetBoidCount(10)

	if len(f.Boids()) != 10 {
		t.Fatalf("flock size after shrink = %d; want 10", len(f.Boids()))
	}
	if f.Boids()[0] != head {
		t.Error("shrink removed boids from the front; want removal from the end")
	}
}

func TestFlock_SetBoidCountNegative(t *testing.T) {
	f := NewFlock(DefaultConfig())
	f.SetBoidCount(-5)
	if len(f.Boids()) != 0 {
		t.Errorf("flock size after negative count = %d; want 0", len(f.Boids()))
	}
}

func TestFlock_RemoveBoid(t *testing.T) {
	f := emptyFlock(DefaultConfig())
	a := boid.New(1, 1)
	b := boid.New(2, 2)
	c := boid.New(3, 3)
	f.AddBoid(a)
	f.AddBoid(b)
	f.AddBoid(c)

	f.RemoveBoid(b)
	if len(f.Boids()) != 2 || f.Boids()[0] != a || f.Boids()[1] != c {
		t.Errorf("after removal: %v; want [a, c] in order", f.Boids())
	}

	// Removing an absent boid is a silent no-op.
	f.RemoveBoid(b)
	if len(f.Boids()) != 2 {
		t.Errorf("no-op removal changed the collection size to %d", len(f.Boids()))
	}
}

func TestFlock_Clear(t *testing.T) {
	f := NewFlock(DefaultConfig())
	f.Clear()
	if len(f.Boids()) != 0 {
		t.Errorf("flock size after Clear = %d; want 0", len(f.Boids()))
	}
}

func TestFlock_SetMaxSpeedUniform(t *testing.T) {
	f := NewFlock(DefaultConfig())

	f.SetMaxSpeed(7)

	for i, b := range f.Boids() {
		if b.MaxSpeed != 7 {
			t.Fatalf("boid %d MaxSpeed = %v; want 7", i, b.MaxSpeed)
		}
	}
	// Future spawns pick up the new limit too.
	f.SetBoidCount(len(f.Boids()) + 1)
	last := f.Boids()[len(f.Boids())-1]
	if last.MaxSpeed != 7 {
		t.Errorf("spawned boid MaxSpeed = %v; want 7", last.MaxSpeed)
	}
}

func TestFlock_Reset(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFlock(cfg)

	cfg.SeparationWeight = 4.2
	cfg.AlignmentWeight = 0.1
	cfg.CohesionWeight = 3.3
	cfg.PerceptionRadius = 12
	f.SetMaxSpeed(9)
	f.SetBoidCount(123)

	f.Reset()

	def := DefaultConfig()
	if cfg.SeparationWeight != def.SeparationWeight ||
		cfg.AlignmentWeight != def.AlignmentWeight ||
		cfg.CohesionWeight != def.CohesionWeight ||
		cfg.PerceptionRadius != def.PerceptionRadius ||
		cfg.MaxSpeed != def.MaxSpeed {
		t.Errorf("Reset left knobs at %+v; want defaults %+v", cfg, def)
	}
	if len(f.Boids()) != def.NumBoids {
		t.Errorf("flock size after Reset = %d; want %d", len(f.Boids()), def.NumBoids)
	}
	for i, b := range f.Boids() {
		if b.MaxSpeed != def.MaxSpeed {
			t.Fatalf("boid %d MaxSpeed after Reset = %v; want %v", i, b.MaxSpeed, def.MaxSpeed)
		}
	}
}

func TestFlock_UpdateAcceptsExtremeKnobs(t *testing.T) {
	// No knob value may crash the update loop: negative radius, negative and
	// huge weights, zero max speed.
	cfg := DefaultConfig()
	cfg.NumBoids = 20
	f := NewFlock(cfg)

	knobs := []struct {
		sep, ali, coh, radius, speed float64
	}{
		{-3, -3, -3, -50, 4},
		{1e12, 1e12, 1e12, 1e12, 4},
		{1.5, 1.0, 1.0, 0, 0},
		{0, 0, 0, 100, math.MaxFloat64},
	}

	for _, k := range knobs {
		cfg.SeparationWeight = k.sep
		cfg.AlignmentWeight = k.ali
		cfg.CohesionWeight = k.coh
		cfg.PerceptionRadius = k.radius
		f.SetMaxSpeed(k.speed)
		f.Update()
	}
}

func TestFlock_VelocityCapHoldsAfterUpdate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumBoids = 30
	f := NewFlock(cfg)

	for tick := 0; tick < 20; tick++ {
		f.Update()
		for i, b := range f.Boids() {
			if b.Vel.Len() > b.MaxSpeed+1e-9 {
				t.Fatalf("tick %d boid %d speed %v exceeds MaxSpeed %v",
					tick, i, b.Vel.Len(), b.MaxSpeed)
			}
			if !b.Acc.Eq(geometry.Vector2D{}) {
				t.Fatalf("tick %d boid %d acceleration %v not reset", tick, i, b.Acc)
			}
			if b.Pos.X < 0 || b.Pos.X > cfg.WorldWidth || b.Pos.Y < 0 || b.Pos.Y > cfg.WorldHeight {
				t.Fatalf("tick %d boid %d position %v outside wrapped bounds", tick, i, b.Pos)
			}
		}
	}
}

// fixedBoid builds a boid with fully deterministic state.
func fixedBoid(px, py, vx, vy float64) *boid.Boid {
	b := boid.New(px, py)
	b.Vel = geometry.Vector2D{X: vx, Y: vy}
	return b
}

func TestFlock_SequentialUpdateSemantics(t *testing.T) {
	// Boids are integrated one at a time: boids later in the pass must see
	// the already-moved state of earlier boids, and the resulting positions
	// must differ from a compute-all-then-apply-all two-pass scheme.
	cfg := DefaultConfig()
	states := []struct{ px, py, vx, vy float64 }{
		{0, 0, 1, 0},
		{10, 0, 0, 1},
		{20, 0, -1, 0},
	}

	newFixedFlock := func() *Flock {
		f := emptyFlock(DefaultConfig())
		for _, s := range states {
			f.AddBoid(fixedBoid(s.px, s.py, s.vx, s.vy))
		}
		return f
	}

	// 1. The flock under test.
	f := newFixedFlock()
	f.Update()

	// 2. Manual sequential replication: identical per-boid order, forces
	// computed against the live, partially-updated collection.
	seq := newFixedFlock()
	boids := seq.Boids()
	for _, b := range boids {
		b.ApplyForce(b.Separation(boids, cfg.PerceptionRadius, cfg.SeparationWeight))
		b.ApplyForce(b.Alignment(boids, cfg.PerceptionRadius, cfg.AlignmentWeight))
		b.ApplyForce(b.Cohesion(boids, cfg.PerceptionRadius, cfg.CohesionWeight))
		b.Update()
		b.WrapAround(cfg.WorldWidth, cfg.WorldHeight)
	}
	for i := range boids {
		if !f.Boids()[i].Pos.Eq(boids[i].Pos) || !f.Boids()[i].Vel.Eq(boids[i].Vel) {
			t.Fatalf("boid %d diverged from sequential reference: pos %v vs %v",
				i, f.Boids()[i].Pos, boids[i].Pos)
		}
	}

	// 3. Two-pass variant: all forces computed against the start-of-tick
	// state, then integrated. Later boids never see earlier boids moved, so
	// at least one boid must end up elsewhere.
	twoPass := newFixedFlock()
	tpBoids := twoPass.Boids()
	forces := make([]geometry.Vector2D, len(tpBoids))
	for i, b := range tpBoids {
		forces[i] = b.Separation(tpBoids, cfg.PerceptionRadius, cfg.SeparationWeight).
			Add(b.Alignment(tpBoids, cfg.PerceptionRadius, cfg.AlignmentWeight)).
			Add(b.Cohesion(tpBoids, cfg.PerceptionRadius, cfg.CohesionWeight))
	}
	for i, b := range tpBoids {
		b.ApplyForce(forces[i])
		b.Update()
		b.WrapAround(cfg.WorldWidth, cfg.WorldHeight)
	}

	diverged := false
	for i := range tpBoids {
		if !f.Boids()[i].Pos.Eq(tpBoids[i].Pos) {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("two-pass update produced identical positions; sequential semantics not observable")
	}
}
