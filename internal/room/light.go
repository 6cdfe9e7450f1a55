package room

// Role identifies one of the room's fixed light sources.
type Role int

const (
	Ambient Role = iota
	Desk
	Monitor
	LED
	Ceiling
	Fill
	numRoles
)

func (r Role) String() string {
	switch r {
	case Ambient:
		return "ambient"
	case Desk:
		return "desk"
	case Monitor:
		return "monitor"
	case LED:
		return "led"
	case Ceiling:
		return "ceiling"
	case Fill:
		return "fill"
	default:
		return "unknown"
	}
}

// Bright and dark intensity presets per role. Monitor and LED have no dark
// preset: screen glow and the strip stay lit when the room lights go off.
const (
	AmbientOn  = 0.35
	AmbientOff = 0.02
	DeskOn     = 1.2
	DeskOff    = 0.0
	MonitorOn  = 0.8
	LEDOn      = 0.6
	CeilingOn  = 0.9
	CeilingOff = 0.0
	FillOn     = 0.3
	FillOff    = 0.0
)

// Light is a handle to one source in the scene. Intensity is the live value
// the renderer reads; On and Off are the toggle presets.
type Light struct {
	Role      Role
	Position  Vec3
	Color     RGB
	Range     float64
	Intensity float64
	On, Off   float64
}

// switched lists the roles the group toggle drives. Monitor and LED are
// exempt.
var switched = [...]Role{Ambient, Desk, Ceiling, Fill}

// Registry is the fixed mapping from role to light handle. It must be fully
// populated (by Build) before toggling is permitted.
type Registry struct {
	lights [numRoles]*Light
}

func (r *Registry) set(l *Light) {
	r.lights[l.Role] = l
}

func (r *Registry) Get(role Role) *Light {
	if role < 0 || role >= numRoles {
		return nil
	}
	return r.lights[role]
}

// All returns every registered light, in role order.
func (r *Registry) All() []*Light {
	out := make([]*Light, 0, numRoles)
	for _, l := range r.lights {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

// Complete reports whether every role has a handle.
func (r *Registry) Complete() bool {
	for _, l := range r.lights {
		if l == nil {
			return false
		}
	}
	return true
}

// apply writes the preset for the given switch state to the switched roles.
func (r *Registry) apply(on bool) {
	for _, role := range switched {
		l := r.lights[role]
		if on {
			l.Intensity = l.On
		} else {
			l.Intensity = l.Off
		}
	}
}
