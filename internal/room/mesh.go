package room

import "image"

// RGB is a linear color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

func (c RGB) Scale(s float64) RGB {
	return RGB{clamp01(c.R * s), clamp01(c.G * s), clamp01(c.B * s)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Quad is one renderable face. Corners wind counter-clockwise as seen from
// the front. Emissive faces (screen glow, LED strip) skip the lighting pass;
// Texture, when present, replaces the flat fill on poster surfaces.
type Quad struct {
	P        [4]Vec3
	Color    RGB
	Emissive float64
	Texture  image.Image
}

func (q Quad) Center() Vec3 {
	return q.P[0].Add(q.P[1]).Add(q.P[2]).Add(q.P[3]).Scale(0.25)
}

func (q Quad) Normal() Vec3 {
	return q.P[1].Sub(q.P[0]).Cross(q.P[3].Sub(q.P[0])).Normalize()
}

// Node is a named group of quads, one per piece of furniture or surface.
type Node struct {
	Name  string
	Quads []Quad
}

func (n Node) QuadCount() int { return len(n.Quads) }

// Box builds a node of six quads for an axis-aligned cuboid centered at c
// with full extents sx, sy, sz.
func Box(name string, c Vec3, sx, sy, sz float64, col RGB) Node {
	hx, hy, hz := sx/2, sy/2, sz/2
	v := func(dx, dy, dz float64) Vec3 {
		return Vec3{c.X + dx*hx, c.Y + dy*hy, c.Z + dz*hz}
	}
	return Node{
		Name: name,
		Quads: []Quad{
			// front (+Z), back (-Z)
			{P: [4]Vec3{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)}, Color: col},
			{P: [4]Vec3{v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)}, Color: col},
			// left (-X), right (+X)
			{P: [4]Vec3{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, Color: col},
			{P: [4]Vec3{v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)}, Color: col},
			// top (+Y), bottom (-Y)
			{P: [4]Vec3{v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)}, Color: col},
			{P: [4]Vec3{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, Color: col},
		},
	}
}
