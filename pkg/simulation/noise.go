package simulation

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

const (
	driftNoiseScale = 0.004 // spatial frequency of the noise field
	driftTimeStep   = 0.002 // field evolution per tick
	driftAlpha      = 2.0
	driftBeta       = 2.0
	driftOctaves    = 3
)

// DriftField is an optional Perlin-noise steering field. Sampling the field
// at a boid's position yields a smoothly varying unit direction, so nearby
// boids drift coherently instead of jittering independently. The field
// evolves slowly over time via a third noise dimension.
type DriftField struct {
	noise *perlin.Perlin
	t     float64
}

func NewDriftField(seed int64) *DriftField {
	return &DriftField{
		noise: perlin.NewPerlin(driftAlpha, driftBeta, driftOctaves, seed),
	}
}

// Step advances the field by one tick.
func (d *DriftField) Step() {
	d.t += driftTimeStep
}

// Force samples the field at pos and returns a drift force of magnitude
// weight. Noise3D returns a value in [-1, 1]; mapped to [-Pi, Pi] it covers
// every direction.
func (d *DriftField) Force(pos geometry.Vector2D, weight float64) geometry.Vector2D {
	angle := d.noise.Noise3D(pos.X*driftNoiseScale, pos.Y*driftNoiseScale, d.t) * math.Pi
	return geometry.NewVectorPolar(weight, angle)
}
