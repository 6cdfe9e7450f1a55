package field

import (
	"math"
	"math/rand"
)

// Tuning constants for the backdrop field.
const (
	RepelRadius   = 120.0 // pointer influence radius
	RepelStrength = 2.0   // max displacement per frame at zero distance
	LinkRadius    = 150.0 // proximity link threshold
	LinkMaxAlpha  = 0.08  // link alpha at zero distance

	NarrowWidth = 768.0
	NarrowCount = 40
	WideCount   = 80

	MinSize = 1.0
	MaxSize = 4.0
)

// Particle is a single animated point. The set is created once at field
// construction and never grows or shrinks.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

// Link is a proximity connection between two particles, by index.
type Link struct {
	A, B  int
	Alpha float64
}

// Field owns the particle set and advances it one frame at a time.
type Field struct {
	Width, Height float64
	Particles     []*Particle

	drift *Drift
	rng   *rand.Rand
}

// CountForWidth selects the particle count for a viewport width.
// Narrow viewports get the reduced count to keep the O(n²) link pass cheap.
func CountForWidth(width float64) int {
	if width < NarrowWidth {
		return NarrowCount
	}
	return WideCount
}

// New creates a field sized to the viewport with CountForWidth particles,
// seeded at random positions with slow random velocities.
func New(width, height float64, seed int64) *Field {
	return NewWithCount(width, height, CountForWidth(width), seed)
}

// NewWithCount creates a field with an explicit particle count.
func NewWithCount(width, height float64, count int, seed int64) *Field {
	f := &Field{
		Width:     width,
		Height:    height,
		Particles: make([]*Particle, count),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range f.Particles {
		f.Particles[i] = &Particle{
			X:       f.rng.Float64() * width,
			Y:       f.rng.Float64() * height,
			VX:      f.rng.Float64() - 0.5,
			VY:      f.rng.Float64() - 0.5,
			Size:    MinSize + f.rng.Float64()*(MaxSize-MinSize),
			Opacity: 0.2 + f.rng.Float64()*0.5,
		}
	}
	return f
}

// SetDrift attaches an optional noise drift applied on every Step.
// A nil drift disables it.
func (f *Field) SetDrift(d *Drift) { f.drift = d }

// Step advances every particle by one frame: velocity, optional drift,
// pointer repulsion, border bounce, clamp.
func (f *Field) Step(p Pointer, t float64) {
	for _, pt := range f.Particles {
		pt.X += pt.VX
		pt.Y += pt.VY

		if f.drift != nil {
			dx, dy := f.drift.At(pt.X, pt.Y, t)
			pt.X += dx
			pt.Y += dy
		}

		if p.Present {
			dx := pt.X - p.X
			dy := pt.Y - p.Y
			d := math.Sqrt(dx*dx + dy*dy)
			// d == 0 would divide by zero; a coincident pointer simply
			// exerts no push that frame.
			if d > 0 && d < RepelRadius {
				force := (RepelRadius - d) / RepelRadius * RepelStrength
				pt.X += dx / d * force
				pt.Y += dy / d * force
			}
		}

		// Soft border bounce: reflect velocity on crossing, then clamp.
		if pt.X < 0 || pt.X > f.Width {
			pt.VX = -pt.VX
		}
		if pt.Y < 0 || pt.Y > f.Height {
			pt.VY = -pt.VY
		}
		pt.X = clamp(pt.X, 0, f.Width)
		pt.Y = clamp(pt.Y, 0, f.Height)
	}
}

// Links returns the proximity connections for the current frame. Every
// unordered pair closer than LinkRadius yields a link whose alpha fades
// linearly from LinkMaxAlpha at zero distance to zero at the threshold.
func (f *Field) Links() []Link {
	links := make([]Link, 0, len(f.Particles))
	for i := 0; i < len(f.Particles); i++ {
		for j := i + 1; j < len(f.Particles); j++ {
			dx := f.Particles[i].X - f.Particles[j].X
			dy := f.Particles[i].Y - f.Particles[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < LinkRadius {
				links = append(links, Link{
					A:     i,
					B:     j,
					Alpha: LinkMaxAlpha * (1 - d/LinkRadius),
				})
			}
		}
	}
	return links
}

// Resize updates the bounds. Particles are deliberately not re-seeded;
// any now out of bounds are pulled back by the clamp on the next Step.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
