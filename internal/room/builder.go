package room

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
)

// Palette for the room surfaces.
var (
	colWall    = RGB{0.42, 0.40, 0.48}
	colFloor   = RGB{0.30, 0.24, 0.20}
	colRug     = RGB{0.50, 0.22, 0.24}
	colDesk    = RGB{0.55, 0.40, 0.26}
	colLeg     = RGB{0.20, 0.18, 0.16}
	colMonitor = RGB{0.10, 0.10, 0.12}
	colScreen  = RGB{0.55, 0.75, 0.95}
	colShelf   = RGB{0.48, 0.36, 0.24}
	colChair   = RGB{0.22, 0.22, 0.28}
	colPoster  = RGB{0.85, 0.82, 0.75}
	colFigA    = RGB{0.75, 0.35, 0.30}
	colFigB    = RGB{0.32, 0.55, 0.40}
	colFigC    = RGB{0.80, 0.70, 0.30}
	colLED     = RGB{0.45, 0.30, 0.85}
)

// buildNodes assembles the fixed room hierarchy. Pure placement: the room is
// a 20×12×20 shell opening toward the viewer, desk against the back wall,
// shelf on the left wall.
func buildNodes(posterDir string) []Node {
	nodes := []Node{
		floorNode(),
		wallNode("wall_back", [4]Vec3{{-10, 0, -10}, {10, 0, -10}, {10, 12, -10}, {-10, 12, -10}}),
		wallNode("wall_left", [4]Vec3{{-10, 0, 10}, {-10, 0, -10}, {-10, 12, -10}, {-10, 12, 10}}),
		wallNode("wall_right", [4]Vec3{{10, 0, -10}, {10, 0, 10}, {10, 12, 10}, {10, 12, -10}}),
		rugNode(),
	}

	// Desk against the back wall.
	nodes = append(nodes,
		Box("desk_top", Vec3{0, 4.0, -7.5}, 9, 0.4, 4, colDesk),
		Box("desk_leg_fl", Vec3{-4.2, 2.0, -5.8}, 0.4, 3.6, 0.4, colLeg),
		Box("desk_leg_fr", Vec3{4.2, 2.0, -5.8}, 0.4, 3.6, 0.4, colLeg),
		Box("desk_leg_bl", Vec3{-4.2, 2.0, -9.2}, 0.4, 3.6, 0.4, colLeg),
		Box("desk_leg_br", Vec3{4.2, 2.0, -9.2}, 0.4, 3.6, 0.4, colLeg),
	)

	// Monitor: stand, bezel, and an emissive screen face.
	nodes = append(nodes,
		Box("monitor_stand", Vec3{0, 4.6, -8.6}, 0.6, 0.8, 0.4, colMonitor),
		Box("monitor_bezel", Vec3{0, 6.2, -8.8}, 5.0, 3.0, 0.3, colMonitor),
		screenNode(),
	)

	// Shelf on the left wall with three figurines and the LED strip under it.
	nodes = append(nodes,
		Box("shelf", Vec3{-9.3, 7.5, -2}, 1.4, 0.3, 7, colShelf),
		Box("figurine_a", Vec3{-9.3, 8.1, -4.2}, 0.7, 0.9, 0.7, colFigA),
		Box("figurine_b", Vec3{-9.3, 8.0, -2.0}, 0.6, 0.7, 0.6, colFigB),
		Box("figurine_c", Vec3{-9.3, 8.2, 0.4}, 0.8, 1.1, 0.8, colFigC),
		ledStripNode(),
	)

	// Chair in front of the desk.
	nodes = append(nodes,
		Box("chair_seat", Vec3{0, 2.4, -3.2}, 2.4, 0.4, 2.4, colChair),
		Box("chair_back", Vec3{0, 4.2, -2.0}, 2.4, 3.2, 0.4, colChair),
		Box("chair_post", Vec3{0, 1.2, -3.2}, 0.3, 2.0, 0.3, colLeg),
	)

	nodes = append(nodes, posterNodes(posterDir)...)
	return nodes
}

func floorNode() Node {
	return Node{Name: "floor", Quads: []Quad{{
		P:     [4]Vec3{{-10, 0, 10}, {10, 0, 10}, {10, 0, -10}, {-10, 0, -10}},
		Color: colFloor,
	}}}
}

func wallNode(name string, p [4]Vec3) Node {
	return Node{Name: name, Quads: []Quad{{P: p, Color: colWall}}}
}

func rugNode() Node {
	return Node{Name: "rug", Quads: []Quad{{
		P:     [4]Vec3{{-3.5, 0.02, 1.5}, {3.5, 0.02, 1.5}, {3.5, 0.02, -5.5}, {-3.5, 0.02, -5.5}},
		Color: colRug,
	}}}
}

func screenNode() Node {
	return Node{Name: "monitor_screen", Quads: []Quad{{
		P:        [4]Vec3{{-2.2, 4.9, -8.6}, {2.2, 4.9, -8.6}, {2.2, 7.5, -8.6}, {-2.2, 7.5, -8.6}},
		Color:    colScreen,
		Emissive: MonitorOn,
	}}}
}

func ledStripNode() Node {
	n := Box("led_strip", Vec3{-9.3, 7.25, -2}, 1.0, 0.1, 6.6, colLED)
	for i := range n.Quads {
		n.Quads[i].Emissive = LEDOn
	}
	return n
}

// posterNodes places the wall posters. Textures load fire-and-forget from
// posterDir; a missing or undecodable file leaves that poster untextured.
func posterNodes(posterDir string) []Node {
	posters := []struct {
		name string
		file string
		p    [4]Vec3
	}{
		{"poster_back", "poster1.png", [4]Vec3{{3, 6, -9.95}, {7, 6, -9.95}, {7, 10, -9.95}, {3, 10, -9.95}}},
		{"poster_right", "poster2.png", [4]Vec3{{9.95, 5, 2}, {9.95, 5, -3}, {9.95, 9, -3}, {9.95, 9, 2}}},
	}

	nodes := make([]Node, 0, len(posters))
	for _, p := range posters {
		q := Quad{P: p.p, Color: colPoster}
		if posterDir != "" {
			q.Texture = loadTexture(filepath.Join(posterDir, p.file))
		}
		nodes = append(nodes, Node{Name: p.name, Quads: []Quad{q}})
	}
	return nodes
}

// loadTexture decodes an image from disk. Failures are swallowed: the
// surface stays untextured with no diagnostic.
func loadTexture(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}

// buildLights places the six fixed sources and registers them under their
// roles, at their bright presets.
func buildLights() *Registry {
	r := &Registry{}
	r.set(&Light{Role: Ambient, Color: RGB{1, 1, 1}, Intensity: AmbientOn, On: AmbientOn, Off: AmbientOff})
	r.set(&Light{Role: Desk, Position: Vec3{3.5, 5.6, -7.5}, Color: RGB{1, 0.9, 0.7}, Range: 9, Intensity: DeskOn, On: DeskOn, Off: DeskOff})
	r.set(&Light{Role: Monitor, Position: Vec3{0, 6.2, -8.2}, Color: RGB{0.6, 0.8, 1}, Range: 6, Intensity: MonitorOn, On: MonitorOn, Off: MonitorOn})
	r.set(&Light{Role: LED, Position: Vec3{-9.0, 7.2, -2}, Color: RGB{0.55, 0.4, 1}, Range: 7, Intensity: LEDOn, On: LEDOn, Off: LEDOn})
	r.set(&Light{Role: Ceiling, Position: Vec3{0, 11.5, 0}, Color: RGB{1, 1, 0.95}, Range: 24, Intensity: CeilingOn, On: CeilingOn, Off: CeilingOff})
	r.set(&Light{Role: Fill, Position: Vec3{7, 9, 7}, Color: RGB{0.8, 0.85, 1}, Range: 20, Intensity: FillOn, On: FillOn, Off: FillOff})
	return r
}
