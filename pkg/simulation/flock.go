package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/boid"
)

// Flock is the orchestrator: it exclusively owns the ordered boid collection
// and the shared Config, and drives one simulation step per tick.
//
// Single-threaded by contract: Update must fully complete before the
// renderer reads boid state, and the collection may only be mutated between
// ticks. There is exactly one control-flow thread, so no locking.
type Flock struct {
	cfg   *Config
	boids []*boid.Boid
	drift *DriftField
}

// NewFlock creates a flock of cfg.NumBoids boids spawned at random positions
// within the world bounds.
func NewFlock(cfg *Config) *Flock {
	f := &Flock{
		cfg:   cfg,
		drift: NewDriftField(rand.Int64()),
	}
	f.SetBoidCount(cfg.NumBoids)
	return f
}

// Config returns the shared tunables; mutations take effect on the next tick.
func (f *Flock) Config() *Config {
	return f.cfg
}

// Boids exposes the ordered collection for read-only iteration by the
// renderer.
func (f *Flock) Boids() []*boid.Boid {
	return f.boids
}

// AddBoid appends to the end of the ordered collection.
func (f *Flock) AddBoid(b *boid.Boid) {
	f.boids = append(f.boids, b)
}

// RemoveBoid removes the first occurrence of b by pointer identity. Removing
// a boid that is not present is a silent no-op.
func (f *Flock) RemoveBoid(b *boid.Boid) {
	for i, other := range f.boids {
		if other == b {
			f.boids = append(f.boids[:i], f.boids[i+1:]...)
			return
		}
	}
}

// Clear empties the collection.
func (f *Flock) Clear() {
	f.boids = f.boids[:0]
}

// spawn creates a boid at a random position within the world bounds, with
// the flock's current kinematic limits.
func (f *Flock) spawn() *boid.Boid {
	b := boid.New(rand.Float64()*f.cfg.WorldWidth, rand.Float64()*f.cfg.WorldHeight)
	b.MaxSpeed = f.cfg.MaxSpeed
	b.MaxForce = f.cfg.MaxForce
	return b
}

// SetBoidCount grows the flock by spawning at random positions, or shrinks
// it by removing boids from the end of the collection. Negative counts are
// treated as zero.
func (f *Flock) SetBoidCount(n int) {
	if n < 0 {
		n = 0
	}
	for len(f.boids) < n {
		f.AddBoid(f.spawn())
	}
	if len(f.boids) > n {
		f.boids = f.boids[:n]
	}
	f.cfg.NumBoids = n
}

// SetMaxSpeed applies a new speed limit uniformly to all current boids and
// records it for future spawns.
func (f *Flock) SetMaxSpeed(v float64) {
	f.cfg.MaxSpeed = v
	for _, b := range f.boids {
		b.MaxSpeed = v
	}
}

// SetMaxForce applies a new force limit uniformly to all current boids and
// records it for future spawns.
func (f *Flock) SetMaxForce(v float64) {
	f.cfg.MaxForce = v
	for _, b := range f.boids {
		b.MaxForce = v
	}
}

// Reset restores every knob to its default value and adjusts the boid count
// accordingly. World bounds are fixed at construction and keep their value.
func (f *Flock) Reset() {
	def := DefaultConfig()
	f.cfg.SeparationWeight = def.SeparationWeight
	f.cfg.AlignmentWeight = def.AlignmentWeight
	f.cfg.CohesionWeight = def.CohesionWeight
	f.cfg.PerceptionRadius = def.PerceptionRadius
	f.cfg.DriftWeight = def.DriftWeight
	f.SetMaxSpeed(def.MaxSpeed)
	f.SetMaxForce(def.MaxForce)
	f.SetBoidCount(def.NumBoids)
}

// Update runs one simulation tick, called once per frame by the scheduler.
//
// Boids are processed strictly in insertion order, each one computing its
// forces against the current full collection and integrating immediately.
// Boids earlier in the pass have therefore already moved when later boids
// read them; this sequential semantics is part of the emergent dynamic and
// must not be replaced by a compute-all-then-apply-all two-pass design.
func (f *Flock) Update() {
	cfg := f.cfg
	f.drift.Step()

	for _, b := range f.boids {
		b.ApplyForce(b.Separation(f.boids, cfg.PerceptionRadius, cfg.SeparationWeight))
		b.ApplyForce(b.Alignment(f.boids, cfg.PerceptionRadius, cfg.AlignmentWeight))
		b.ApplyForce(b.Cohesion(f.boids, cfg.PerceptionRadius, cfg.CohesionWeight))
		if cfg.DriftWeight != 0 {
			b.ApplyForce(f.drift.Force(b.Pos, cfg.DriftWeight))
		}
		b.Update()
		b.WrapAround(cfg.WorldWidth, cfg.WorldHeight)
	}
}
