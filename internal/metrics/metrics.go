// Package metrics collects per-frame observations over the particle field
// for headless runs and the live view.
package metrics

import (
	"math"

	"github.com/ndelcros/vitrine/internal/field"
)

// Metric observes the field once per frame and reduces to a scalar.
type Metric interface {
	Name() string
	Observe(f *field.Field, t float64)
	Value() float64
	Reset()
}

// AvgSpeed is the mean particle speed, averaged over all observed frames.
type AvgSpeed struct {
	total   float64
	samples int
}

func NewAvgSpeed() *AvgSpeed { return &AvgSpeed{} }

func (m *AvgSpeed) Name() string { return "avg_speed" }

func (m *AvgSpeed) Observe(f *field.Field, t float64) {
	if len(f.Particles) == 0 {
		return
	}
	sum := 0.0
	for _, p := range f.Particles {
		sum += math.Hypot(p.VX, p.VY)
	}
	m.total += sum / float64(len(f.Particles))
	m.samples++
}

func (m *AvgSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *AvgSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// LinkCount is the mean number of proximity links per frame. It repeats the
// O(n²) pass, so headless runs pay for it twice at most.
type LinkCount struct {
	total   int
	samples int
}

func NewLinkCount() *LinkCount { return &LinkCount{} }

func (m *LinkCount) Name() string { return "link_count" }

func (m *LinkCount) Observe(f *field.Field, t float64) {
	m.total += len(f.Links())
	m.samples++
}

func (m *LinkCount) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *LinkCount) Reset() {
	m.total = 0
	m.samples = 0
}

// Energy is the mean kinetic energy of the field (unit mass per particle).
type Energy struct {
	total   float64
	samples int
}

func NewEnergy() *Energy { return &Energy{} }

func (m *Energy) Name() string { return "energy" }

func (m *Energy) Observe(f *field.Field, t float64) {
	sum := 0.0
	for _, p := range f.Particles {
		sum += 0.5 * (p.VX*p.VX + p.VY*p.VY)
	}
	m.total += sum
	m.samples++
}

func (m *Energy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Energy) Reset() {
	m.total = 0
	m.samples = 0
}

// Spread is the fraction of a coarse grid over the canvas that holds at
// least one particle, averaged over frames. 1.0 means the field fills the
// viewport evenly.
type Spread struct {
	cells   int
	total   float64
	samples int
}

// NewSpread creates a spread metric over a cells×cells grid.
func NewSpread(cells int) *Spread {
	if cells <= 0 {
		cells = 8
	}
	return &Spread{cells: cells}
}

func (m *Spread) Name() string { return "spread" }

func (m *Spread) Observe(f *field.Field, t float64) {
	if f.Width == 0 || f.Height == 0 {
		return
	}
	occupied := make(map[int]struct{})
	for _, p := range f.Particles {
		cx := int(p.X / f.Width * float64(m.cells))
		cy := int(p.Y / f.Height * float64(m.cells))
		if cx >= m.cells {
			cx = m.cells - 1
		}
		if cy >= m.cells {
			cy = m.cells - 1
		}
		occupied[cy*m.cells+cx] = struct{}{}
	}
	m.total += float64(len(occupied)) / float64(m.cells*m.cells)
	m.samples++
}

func (m *Spread) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Spread) Reset() {
	m.total = 0
	m.samples = 0
}

// Defaults is the standard metric set for recorded runs.
func Defaults() []Metric {
	return []Metric{NewAvgSpeed(), NewLinkCount(), NewEnergy(), NewSpread(8)}
}
