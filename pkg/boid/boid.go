package boid

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Default kinematic limits for a freshly spawned boid.
const (
	DefaultMaxSpeed = 4.0
	DefaultMaxForce = 0.2
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds from three local steering
// rules. The name "boid" is a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
// Fields are exported so the renderer can read position and velocity.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	// Acc accumulates the applied forces for the current tick only; Update
	// resets it to zero.
	Acc geometry.Vector2D

	MaxSpeed float64
	MaxForce float64
}

// New creates a boid at the given position with a unit-length velocity in a
// uniformly random direction.
func New(x, y float64) *Boid {
	return &Boid{
		Pos:      geometry.Vector2D{X: x, Y: y},
		Vel:      geometry.NewVectorPolar(1, rand.Float64()*2*math.Pi),
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
	}
}

// steer turns a desired direction into a steering force: scale the desired
// direction to MaxSpeed, subtract the current velocity, and clamp the delta
// to MaxForce (Reynolds: steering = desired - velocity).
func (b *Boid) steer(desired geometry.Vector2D) geometry.Vector2D {
	return desired.SetMag(b.MaxSpeed).Sub(b.Vel).Limit(b.MaxForce)
}

// Separation computes the steering force pushing b away from nearby
// flockmates. Each neighbor within radius contributes the normalized vector
// from the neighbor to b, scaled by 1/d so that closer neighbors weigh more.
// The weight multiplies the clamped steering force as the last step, so a
// weight outside [0,1] (or negative) is never re-clamped.
func (b *Boid) Separation(flock []*Boid, radius, weight float64) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0

	for _, other := range flock {
		d := b.Pos.DistanceTo(other.Pos)
		// Strict lower bound excludes self and coincident boids.
		if d > 0 && d < radius {
			away := b.Pos.Sub(other.Pos).Normalize().Mul(1 / d)
			sum = sum.Add(away)
			count++
		}
	}

	if count > 0 {
		sum = b.steer(sum.Mul(1 / float64(count)))
	}
	return sum.Mul(weight)
}

// Alignment computes the steering force matching b's velocity to the average
// velocity of its neighbors. No distance weighting.
func (b *Boid) Alignment(flock []*Boid, radius, weight float64) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0

	for _, other := range flock {
		d := b.Pos.DistanceTo(other.Pos)
		if d > 0 && d < radius {
			sum = sum.Add(other.Vel)
			count++
		}
	}

	if count > 0 {
		sum = b.steer(sum.Mul(1 / float64(count)))
	}
	return sum.Mul(weight)
}

// Cohesion computes the steering force pulling b toward the average position
// of its neighbors (a seek toward the local center of mass).
func (b *Boid) Cohesion(flock []*Boid, radius, weight float64) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0

	for _, other := range flock {
		d := b.Pos.DistanceTo(other.Pos)
		if d > 0 && d < radius {
			sum = sum.Add(other.Pos)
			count++
		}
	}

	if count > 0 {
		target := sum.Mul(1 / float64(count))
		sum = b.steer(target.Sub(b.Pos))
	}
	return sum.Mul(weight)
}

// ApplyForce accumulates a force into the boid's acceleration. Forces
// superpose additively; mass is implicitly 1.
func (b *Boid) ApplyForce(f geometry.Vector2D) {
	b.Acc = b.Acc.Add(f)
}

// Update integrates one tick of physics. The order is significant:
// acceleration is clamped to MaxForce before the velocity add, and velocity
// is clamped to MaxSpeed after it, so |Vel| <= MaxSpeed holds after every
// tick while acceleration can still build frame to frame toward the cap.
func (b *Boid) Update() {
	b.Acc = b.Acc.Limit(b.MaxForce)
	b.Vel = b.Vel.Add(b.Acc).Limit(b.MaxSpeed)
	b.Pos = b.Pos.Add(b.Vel)
	b.Acc = geometry.Vector2D{}
}

// WrapAround teleports the boid to the opposite edge when it leaves the
// world bounds. Each axis is checked independently, so a diagonal exit wraps
// both in the same call. Velocity is untouched.
func (b *Boid) WrapAround(width, height float64) {
	if b.Pos.X >= width {
		b.Pos.X = 0
	} else if b.Pos.X < 0 {
		b.Pos.X = width
	}
	if b.Pos.Y >= height {
		b.Pos.Y = 0
	} else if b.Pos.Y < 0 {
		b.Pos.Y = height
	}
}

// Heading returns the direction of travel in radians, for the renderer.
func (b *Boid) Heading() float64 {
	return b.Vel.Angle()
}
