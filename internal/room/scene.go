package room

import "errors"

var ErrDisposed = errors.New("room: scene disposed")

// Scene owns the room's graph, lights, and switch state. It replaces what
// would otherwise be module-level globals: construction and teardown are its
// lifecycle boundary.
//
// Scene is not safe for concurrent use; everything runs on the render
// goroutine.
type Scene struct {
	posterDir string

	built    bool
	disposed bool
	lightsOn bool

	nodes  []Node
	lights *Registry
}

// New creates an empty, unbuilt scene. posterDir may be empty; posters then
// render as flat fills.
func New(posterDir string) *Scene {
	return &Scene{posterDir: posterDir, lightsOn: true}
}

// Build constructs the fixed scene graph and light registry. It runs exactly
// once per scene: repeat calls are no-ops, and a disposed scene stays empty.
func (s *Scene) Build() error {
	if s.disposed {
		return ErrDisposed
	}
	if s.built {
		return nil
	}
	s.nodes = buildNodes(s.posterDir)
	s.lights = buildLights()
	s.lights.apply(s.lightsOn)
	s.built = true
	return nil
}

func (s *Scene) Built() bool    { return s.built }
func (s *Scene) Disposed() bool { return s.disposed }

// NodeCount reports the scene graph size; zero before Build and after
// Dispose.
func (s *Scene) NodeCount() int { return len(s.nodes) }

func (s *Scene) QuadCount() int {
	n := 0
	for _, node := range s.nodes {
		n += len(node.Quads)
	}
	return n
}

// Nodes exposes the graph to the renderer.
func (s *Scene) Nodes() []Node { return s.nodes }

// Lights exposes the registry to the renderer; nil before Build.
func (s *Scene) Lights() *Registry { return s.lights }

// LightsOn reports the current switch state.
func (s *Scene) LightsOn() bool { return s.lightsOn }

// ToggleLights flips the room between its bright and dark presets and
// returns the resulting state. Ambient, desk, ceiling and fill intensities
// are rewritten; monitor and LED keep their fixed glow. Before Build (or
// after Dispose) the toggle is a no-op and the state is unchanged.
func (s *Scene) ToggleLights() bool {
	if !s.built || s.disposed || !s.lights.Complete() {
		return s.lightsOn
	}
	s.lightsOn = !s.lightsOn
	s.lights.apply(s.lightsOn)
	return s.lightsOn
}

// SetLightsOn forces the switch state, used to honor the configured initial
// state on first open. Same guard as ToggleLights.
func (s *Scene) SetLightsOn(on bool) {
	if !s.built || s.disposed {
		s.lightsOn = on
		return
	}
	s.lightsOn = on
	s.lights.apply(on)
}

// Dispose releases the graph. Idempotent; the scene cannot be rebuilt.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.nodes = nil
	s.lights = nil
	s.built = false
	s.disposed = true
}
