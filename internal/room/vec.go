package room

import "math"

// Vec3 is a point or direction in the room's right-handed space:
// +X right, +Y up, +Z toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Camera projects room space onto a 2D surface. Orbit rotations are applied
// around the Y then X axes before a simple perspective divide.
type Camera struct {
	Distance   float64 // eye distance from the origin along +Z after rotation
	Near       float64
	Zoom       float64
	RotX, RotY float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 26, Near: 0.5, Zoom: 1.0, RotX: -0.35, RotY: 0.7}
}

func (c *Camera) Orbit(dx, dy float64) {
	c.RotY += dx
	c.RotX += dy
	// Keep the pitch away from the poles.
	if c.RotX > 1.2 {
		c.RotX = 1.2
	}
	if c.RotX < -1.2 {
		c.RotX = -1.2
	}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(4, c.Zoom*1.1) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.3, c.Zoom/1.1) }

// RotatePoint applies the camera orbit to a room-space point.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project converts a room-space point to surface coordinates. It returns the
// screen position, the view-space depth, and whether the point is in front
// of the near plane.
func (c *Camera) Project(p Vec3, sw, sh int) (float64, float64, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	pScale := minDim / 24.0
	sx := rot.X*scale*pScale + float64(sw)/2
	sy := -rot.Y*scale*pScale + float64(sh)/2
	return sx, sy, rot.Z, true
}
