package field

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	driftAlpha = 2.0
	driftBeta  = 2.0
	driftDepth = 3
)

// Drift is a slow Perlin flow layered onto the field. Each particle samples
// a noise angle at its position and gets a small displacement along it,
// giving the backdrop a drifting, current-like motion.
type Drift struct {
	noise    *perlin.Perlin
	scale    float64 // spatial frequency
	rate     float64 // temporal frequency
	strength float64 // displacement per frame
}

// NewDrift creates a drift layer. Strength is the per-frame displacement in
// pixels; zero or negative strength yields a nil drift (disabled).
func NewDrift(scale, rate, strength float64, seed int64) *Drift {
	if strength <= 0 {
		return nil
	}
	return &Drift{
		noise:    perlin.NewPerlin(driftAlpha, driftBeta, driftDepth, seed),
		scale:    scale,
		rate:     rate,
		strength: strength,
	}
}

// At samples the flow at a position and time and returns the displacement.
func (d *Drift) At(x, y, t float64) (float64, float64) {
	angle := d.noise.Noise3D(x*d.scale, y*d.scale, t*d.rate) * 2 * math.Pi
	return math.Cos(angle) * d.strength, math.Sin(angle) * d.strength
}
