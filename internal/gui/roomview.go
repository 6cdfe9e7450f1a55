package gui

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ndelcros/vitrine/internal/room"
)

// whiteImage is the 1x1 source for flat triangle fills. The SubImage of a
// 3x3 image avoids bleeding at the texture border.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// roomView projects the scene graph with a painter sort and shades each face
// against the light registry. Emissive faces skip the lighting pass.
type roomView struct {
	cam      *room.Camera
	textures map[image.Image]*ebiten.Image
}

func newRoomView(cam *room.Camera) *roomView {
	return &roomView{cam: cam, textures: make(map[image.Image]*ebiten.Image)}
}

// invalidate drops cached GPU textures. Call after the scene graph changes.
func (v *roomView) invalidate() {
	v.textures = make(map[image.Image]*ebiten.Image)
}

type projectedQuad struct {
	x, y  [4]float32
	col   room.RGB
	tex   *ebiten.Image
	depth float64
}

func (v *roomView) draw(screen *ebiten.Image, s *room.Scene, w, h int) {
	if !s.Built() {
		return
	}

	// Dim the particle layer behind the room.
	screen.DrawTriangles(rectVertices(w, h, color.RGBA{A: 0xb4}), rectIndices,
		whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), &ebiten.DrawTrianglesOptions{})

	lights := s.Lights().All()
	quads := make([]projectedQuad, 0, s.QuadCount())
	for _, n := range s.Nodes() {
		for _, q := range n.Quads {
			pq, ok := v.project(q, w, h)
			if !ok {
				continue
			}
			pq.col = shade(q, lights)
			pq.tex = v.texture(q.Texture)
			quads = append(quads, pq)
		}
	}

	// Painter sort, farthest first. View depth grows toward the camera.
	sort.Slice(quads, func(i, j int) bool { return quads[i].depth < quads[j].depth })

	for _, pq := range quads {
		v.fill(screen, pq)
	}
}

// project maps the quad to screen space, rejecting faces that cross the near
// plane or wind away from the camera.
func (v *roomView) project(q room.Quad, w, h int) (projectedQuad, bool) {
	var pq projectedQuad
	var depth float64
	for i, p := range q.P {
		sx, sy, d, ok := v.cam.Project(p, w, h)
		if !ok {
			return pq, false
		}
		pq.x[i] = float32(sx)
		pq.y[i] = float32(sy)
		depth += d
	}
	pq.depth = depth / 4

	// Front faces wind clockwise on screen after the Y flip.
	e1x, e1y := pq.x[1]-pq.x[0], pq.y[1]-pq.y[0]
	e2x, e2y := pq.x[2]-pq.x[0], pq.y[2]-pq.y[0]
	if e1x*e2y-e1y*e2x >= 0 {
		return pq, false
	}
	return pq, true
}

// shade lights a face with an ambient term plus lambert point lights with
// linear falloff. Emissive faces return their own color at full strength.
func shade(q room.Quad, lights []*room.Light) room.RGB {
	if q.Emissive > 0 {
		return q.Color
	}

	center := q.Center()
	normal := q.Normal()
	var acc room.RGB
	for _, l := range lights {
		if l.Intensity <= 0 {
			continue
		}
		if l.Role == room.Ambient {
			acc.R += l.Color.R * l.Intensity
			acc.G += l.Color.G * l.Intensity
			acc.B += l.Color.B * l.Intensity
			continue
		}
		toLight := l.Position.Sub(center)
		d := toLight.Length()
		if l.Range <= 0 || d >= l.Range {
			continue
		}
		lambert := normal.Dot(toLight.Normalize())
		if lambert <= 0 {
			continue
		}
		k := l.Intensity * lambert * (1 - d/l.Range)
		acc.R += l.Color.R * k
		acc.G += l.Color.G * k
		acc.B += l.Color.B * k
	}
	return room.RGB{
		R: q.Color.R * acc.R,
		G: q.Color.G * acc.G,
		B: q.Color.B * acc.B,
	}.Scale(1)
}

// texture uploads a decoded poster once and reuses the GPU copy.
func (v *roomView) texture(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if t, ok := v.textures[img]; ok {
		return t
	}
	t := ebiten.NewImageFromImage(img)
	v.textures[img] = t
	return t
}

var rectIndices = []uint16{0, 1, 2, 0, 2, 3}

func rectVertices(w, h int, clr color.RGBA) []ebiten.Vertex {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	xs := [4]float32{0, float32(w), float32(w), 0}
	ys := [4]float32{0, 0, float32(h), float32(h)}
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX: xs[i], DstY: ys[i],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	return vs
}

func (v *roomView) fill(screen *ebiten.Image, pq projectedQuad) {
	src := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	cr := float32(pq.col.R)
	cg := float32(pq.col.G)
	cb := float32(pq.col.B)

	var srcX, srcY [4]float32
	if pq.tex != nil {
		src = pq.tex
		b := src.Bounds()
		fw, fh := float32(b.Dx()), float32(b.Dy())
		// Corners run bottom-left, bottom-right, top-right, top-left.
		srcX = [4]float32{0, fw, fw, 0}
		srcY = [4]float32{fh, fh, 0, 0}
		// Modulate the texture by the lighting on the poster surface.
		lum := float32((pq.col.R + pq.col.G + pq.col.B) / 3)
		cr, cg, cb = lum, lum, lum
	} else {
		srcX = [4]float32{1, 1, 1, 1}
		srcY = [4]float32{1, 1, 1, 1}
	}

	vs := make([]ebiten.Vertex, 4)
	for i := 0; i < 4; i++ {
		vs[i] = ebiten.Vertex{
			DstX: pq.x[i], DstY: pq.y[i],
			SrcX: srcX[i], SrcY: srcY[i],
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	screen.DrawTriangles(vs, rectIndices, src, op)
}
