// Package gui runs the interactive window: a particle field that reacts
// to the cursor, with a 3D room view layered on top once the user opens it.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ndelcros/vitrine/internal/config"
	"github.com/ndelcros/vitrine/internal/field"
	"github.com/ndelcros/vitrine/internal/room"
)

// App implements ebiten.Game. The particle layer is always live; the room
// scene is built on first open and kept until Dispose.
type App struct {
	cfg *config.Config

	f     *field.Field
	scene *room.Scene
	cam   *room.Camera
	view  *roomView

	roomOpen bool
	t        float64
	dt       float64

	width  int
	height int
}

// NewApp builds the particle field from cfg. The room scene is created but
// not built; Build happens the first time the room is opened.
func NewApp(cfg *config.Config) *App {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	var f *field.Field
	if cfg.Field.Count > 0 {
		f = field.NewWithCount(w, h, cfg.Field.Count, cfg.Seed)
	} else {
		f = field.New(w, h, cfg.Seed)
	}
	f.SetDrift(field.NewDrift(cfg.Field.DriftScale, cfg.Field.DriftRate, cfg.Field.DriftStrength, cfg.Seed))

	cam := room.NewCamera()
	return &App{
		cfg:    cfg,
		f:      f,
		scene:  room.New(cfg.Room.PosterDir),
		cam:    cam,
		view:   newRoomView(cam),
		dt:     1.0 / float64(cfg.Window.FPS),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
}

func (a *App) pointer() field.Pointer {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return field.NoPointer()
	}
	return field.PointerAt(float64(x), float64(y))
}

func (a *App) Update() error {
	a.t += a.dt
	a.f.Step(a.pointer(), a.t)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if !a.roomOpen {
			if err := a.openRoom(); err != nil {
				return err
			}
		} else {
			a.roomOpen = false
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.roomOpen {
		a.roomOpen = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		a.scene.ToggleLights()
	}

	if a.roomOpen {
		a.updateCamera()
	}
	return nil
}

// openRoom builds the scene on first use. Later opens reuse the built graph.
func (a *App) openRoom() error {
	first := !a.scene.Built()
	if err := a.scene.Build(); err != nil {
		return err
	}
	if first {
		a.scene.SetLightsOn(a.cfg.Room.StartLit)
		a.view.invalidate()
	}
	a.roomOpen = true
	return nil
}

func (a *App) updateCamera() {
	speed := a.cfg.Room.OrbitSpeed * a.dt
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		a.cam.Orbit(-speed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		a.cam.Orbit(speed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		a.cam.Orbit(0, -speed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		a.cam.Orbit(0, speed)
	}
	_, wy := ebiten.Wheel()
	if wy > 0 {
		a.cam.ZoomIn()
	} else if wy < 0 {
		a.cam.ZoomOut()
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0e, G: 0x0e, B: 0x14, A: 0xff})
	a.drawField(screen)
	if a.roomOpen {
		a.view.draw(screen, a.scene, a.width, a.height)
	}
}

func (a *App) drawField(screen *ebiten.Image) {
	for _, l := range a.f.Links() {
		pa := a.f.Particles[l.A]
		pb := a.f.Particles[l.B]
		vector.StrokeLine(screen,
			float32(pa.X), float32(pa.Y),
			float32(pb.X), float32(pb.Y),
			1, premultiply(0xc8, 0xd0, 0xe0, l.Alpha), true)
	}
	for _, p := range a.f.Particles {
		c := premultiply(0xe6, 0xea, 0xf2, p.Opacity)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	}
}

// premultiply builds an alpha-premultiplied color from 8-bit channels and a
// [0, 1] alpha.
func premultiply(r, g, b uint8, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}

// Layout reports the logical size and resizes the field bounds to match.
// Particle positions are kept; the next Step clamps strays back in.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.f.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return a.width, a.height
}

// Run opens the window and blocks until it is closed. The room scene is
// disposed on the way out.
func Run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.FPS)

	app := NewApp(cfg)
	defer app.scene.Dispose()
	return ebiten.RunGame(app)
}
