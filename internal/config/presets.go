package config

var Presets = map[string]*Config{
	"calm": {
		Window: WindowConfig{Width: 1280, Height: 720, Title: "vitrine", FPS: 60},
		Field:  FieldConfig{Count: 40, DriftScale: 0.0015, DriftRate: 0.05, DriftStrength: 0.2},
		Room:   RoomConfig{OrbitSpeed: 0.005, StartLit: true},
	},
	"dense": {
		Window: WindowConfig{Width: 1280, Height: 720, Title: "vitrine", FPS: 60},
		Field:  FieldConfig{Count: 80},
		Room:   RoomConfig{OrbitSpeed: 0.01, StartLit: true},
	},
	"storm": {
		Window: WindowConfig{Width: 1280, Height: 720, Title: "vitrine", FPS: 60},
		Field:  FieldConfig{Count: 80, DriftScale: 0.004, DriftRate: 0.3, DriftStrength: 0.8},
		Room:   RoomConfig{OrbitSpeed: 0.02, StartLit: false},
	},
	"minimal": {
		Window: WindowConfig{Width: 960, Height: 540, Title: "vitrine", FPS: 30},
		Field:  FieldConfig{Count: 24},
		Room:   RoomConfig{OrbitSpeed: 0.005, StartLit: true},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
