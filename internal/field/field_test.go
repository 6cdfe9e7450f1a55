package field

import (
	"math"
	"testing"
)

func TestCountForWidth(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{320, NarrowCount},
		{767, NarrowCount},
		{768, WideCount},
		{1920, WideCount},
	}
	for _, tt := range tests {
		if got := CountForWidth(tt.width); got != tt.want {
			t.Errorf("CountForWidth(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestNewCountFixed(t *testing.T) {
	f := New(1024, 768, 1)
	if len(f.Particles) != WideCount {
		t.Fatalf("expected %d particles, got %d", WideCount, len(f.Particles))
	}

	for i := 0; i < 100; i++ {
		f.Step(NoPointer(), float64(i))
	}
	if len(f.Particles) != WideCount {
		t.Errorf("particle count changed to %d after stepping", len(f.Particles))
	}
}

func TestStepClampsIntoBounds(t *testing.T) {
	f := NewWithCount(200, 100, 50, 7)
	// Fast particles so plenty of bound crossings happen.
	for _, p := range f.Particles {
		p.VX *= 20
		p.VY *= 20
	}

	for i := 0; i < 200; i++ {
		f.Step(PointerAt(100, 50), float64(i))
		for j, p := range f.Particles {
			if p.X < 0 || p.X > f.Width || p.Y < 0 || p.Y > f.Height {
				t.Fatalf("step %d: particle %d out of bounds at (%v, %v)", i, j, p.X, p.Y)
			}
		}
	}
}

func TestStepReflectsVelocityAtBorder(t *testing.T) {
	f := NewWithCount(100, 100, 1, 1)
	p := f.Particles[0]
	p.X, p.Y = 99, 50
	p.VX, p.VY = 5, 0

	f.Step(NoPointer(), 0)

	if p.VX != -5 {
		t.Errorf("expected VX reflected to -5, got %v", p.VX)
	}
	if p.X != 100 {
		t.Errorf("expected X clamped to 100, got %v", p.X)
	}
}

func TestPointerRepulsion(t *testing.T) {
	pointer := PointerAt(500, 500)

	// Same particle stepped with and without the pointer; with the pointer
	// it must end up strictly farther away.
	mk := func() *Field {
		f := NewWithCount(1000, 1000, 1, 3)
		p := f.Particles[0]
		p.X, p.Y = 560, 500 // 60 < RepelRadius
		p.VX, p.VY = 0.3, -0.2
		return f
	}

	with := mk()
	with.Step(pointer, 0)
	without := mk()
	without.Step(NoPointer(), 0)

	dWith := math.Hypot(with.Particles[0].X-pointer.X, with.Particles[0].Y-pointer.Y)
	dWithout := math.Hypot(without.Particles[0].X-pointer.X, without.Particles[0].Y-pointer.Y)

	if dWith <= dWithout {
		t.Errorf("repulsion not applied: with pointer %v, without %v", dWith, dWithout)
	}
}

func TestPointerOutsideRadiusNoEffect(t *testing.T) {
	mk := func() *Field {
		f := NewWithCount(1000, 1000, 1, 3)
		p := f.Particles[0]
		p.X, p.Y = 700, 500 // 200 > RepelRadius
		p.VX, p.VY = 0.3, -0.2
		return f
	}

	with := mk()
	with.Step(PointerAt(500, 500), 0)
	without := mk()
	without.Step(NoPointer(), 0)

	if with.Particles[0].X != without.Particles[0].X || with.Particles[0].Y != without.Particles[0].Y {
		t.Error("pointer outside radius moved the particle")
	}
}

func TestCoincidentPointerNoNaN(t *testing.T) {
	f := NewWithCount(1000, 1000, 1, 3)
	p := f.Particles[0]
	p.X, p.Y = 500, 500
	p.VX, p.VY = 0, 0

	f.Step(PointerAt(500, 500), 0)

	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatal("coincident pointer produced NaN position")
	}
	if p.X != 500 || p.Y != 500 {
		t.Errorf("coincident pointer should leave particle unmoved, got (%v, %v)", p.X, p.Y)
	}
}

func TestLinksThresholdAndAlpha(t *testing.T) {
	f := NewWithCount(1000, 1000, 2, 3)
	a, b := f.Particles[0], f.Particles[1]
	a.X, a.Y = 100, 100

	// At the threshold: no link.
	b.X, b.Y = 100+LinkRadius, 100
	if links := f.Links(); len(links) != 0 {
		t.Fatalf("expected no link at distance %v, got %d", LinkRadius, len(links))
	}

	// Coincident: full alpha.
	b.X, b.Y = 100, 100
	links := f.Links()
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if links[0].Alpha != LinkMaxAlpha {
		t.Errorf("expected alpha %v at zero distance, got %v", LinkMaxAlpha, links[0].Alpha)
	}

	// Halfway: half alpha.
	b.X, b.Y = 100+LinkRadius/2, 100
	links = f.Links()
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	want := LinkMaxAlpha * 0.5
	if math.Abs(links[0].Alpha-want) > 1e-12 {
		t.Errorf("expected alpha %v at half distance, got %v", want, links[0].Alpha)
	}
}

func TestLinksPairCount(t *testing.T) {
	// Three mutually close particles form three unordered pairs.
	f := NewWithCount(1000, 1000, 3, 3)
	for i, p := range f.Particles {
		p.X = 100 + float64(i)*10
		p.Y = 100
	}
	if links := f.Links(); len(links) != 3 {
		t.Errorf("expected 3 links, got %d", len(links))
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	f := NewWithCount(1000, 1000, 10, 9)
	before := make([]float64, len(f.Particles))
	for i, p := range f.Particles {
		before[i] = p.X
	}

	f.Resize(300, 300)

	// Positions are untouched by the resize itself.
	for i, p := range f.Particles {
		if p.X != before[i] {
			t.Fatalf("resize moved particle %d", i)
		}
	}

	// The next step pulls strays back into the new bounds.
	f.Step(NoPointer(), 0)
	for i, p := range f.Particles {
		if p.X < 0 || p.X > 300 || p.Y < 0 || p.Y > 300 {
			t.Errorf("particle %d outside new bounds at (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestDriftDisplaces(t *testing.T) {
	d := NewDrift(0.002, 0.1, 0.4, 42)
	if d == nil {
		t.Fatal("expected drift, got nil")
	}
	dx, dy := d.At(100, 200, 1.5)
	if math.Hypot(dx, dy) == 0 {
		t.Error("drift displacement should be non-zero")
	}
	if math.Abs(dx) > 0.4 || math.Abs(dy) > 0.4 {
		t.Errorf("displacement exceeds strength: (%v, %v)", dx, dy)
	}
}

func TestDriftDisabled(t *testing.T) {
	if d := NewDrift(0.002, 0.1, 0, 42); d != nil {
		t.Error("zero strength should disable drift")
	}
}

func TestDeterministicSeed(t *testing.T) {
	a := NewWithCount(800, 600, 20, 99)
	b := NewWithCount(800, 600, 20, 99)
	for i := range a.Particles {
		if a.Particles[i].X != b.Particles[i].X || a.Particles[i].Y != b.Particles[i].Y {
			t.Fatalf("same seed produced different particle %d", i)
		}
	}
}
