package metrics

import (
	"math"
	"testing"

	"github.com/ndelcros/vitrine/internal/field"
)

func staticField(t *testing.T) *field.Field {
	t.Helper()
	f := field.NewWithCount(1000, 1000, 2, 1)
	a, b := f.Particles[0], f.Particles[1]
	a.X, a.Y, a.VX, a.VY = 100, 100, 3, 4
	b.X, b.Y, b.VX, b.VY = 150, 100, 0, 0
	return f
}

func TestAvgSpeed(t *testing.T) {
	f := staticField(t)
	m := NewAvgSpeed()

	if m.Value() != 0 {
		t.Error("unobserved metric should be 0")
	}

	m.Observe(f, 0)
	// Speeds 5 and 0, mean 2.5.
	if math.Abs(m.Value()-2.5) > 1e-12 {
		t.Errorf("expected 2.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset metric should be 0")
	}
}

func TestLinkCount(t *testing.T) {
	f := staticField(t)
	m := NewLinkCount()
	m.Observe(f, 0)
	// The two particles are 50 apart: one link.
	if m.Value() != 1 {
		t.Errorf("expected 1 link, got %f", m.Value())
	}
}

func TestEnergy(t *testing.T) {
	f := staticField(t)
	m := NewEnergy()
	m.Observe(f, 0)
	// 0.5 * (9 + 16) = 12.5 for one particle, 0 for the other.
	if math.Abs(m.Value()-12.5) > 1e-12 {
		t.Errorf("expected 12.5, got %f", m.Value())
	}
}

func TestSpread(t *testing.T) {
	f := staticField(t)
	m := NewSpread(2)
	m.Observe(f, 0)
	// Both particles land in the top-left quadrant of a 2×2 grid.
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected 0.25, got %f", m.Value())
	}
}

func TestSpreadParticleAtFarEdge(t *testing.T) {
	f := field.NewWithCount(100, 100, 1, 1)
	f.Particles[0].X, f.Particles[0].Y = 100, 100
	m := NewSpread(4)
	m.Observe(f, 0) // must not index past the last cell
	if m.Value() <= 0 {
		t.Error("expected non-zero spread")
	}
}

func TestDefaults(t *testing.T) {
	ms := Defaults()
	if len(ms) != 4 {
		t.Fatalf("expected 4 default metrics, got %d", len(ms))
	}
	names := map[string]bool{}
	for _, m := range ms {
		names[m.Name()] = true
	}
	for _, want := range []string{"avg_speed", "link_count", "energy", "spread"} {
		if !names[want] {
			t.Errorf("missing metric %s", want)
		}
	}
}
