package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultFPS       = 60
	DefaultDriftRate = 0.1
)

// Config is the full renderer configuration: window, particle field, and
// room view.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Field  FieldConfig  `yaml:"field"`
	Room   RoomConfig   `yaml:"room"`
	Seed   int64        `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// FieldConfig tunes the particle backdrop. Count 0 means "pick from the
// viewport width" (40 narrow, 80 wide).
type FieldConfig struct {
	Count         int     `yaml:"count"`
	DriftScale    float64 `yaml:"drift_scale"`
	DriftRate     float64 `yaml:"drift_rate"`
	DriftStrength float64 `yaml:"drift_strength"`
}

// RoomConfig tunes the decorative room view.
type RoomConfig struct {
	PosterDir  string  `yaml:"poster_dir"`
	OrbitSpeed float64 `yaml:"orbit_speed"`
	StartLit   bool    `yaml:"start_lit"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "vitrine",
			FPS:    DefaultFPS,
		},
		Field: FieldConfig{
			Count:     0,
			DriftRate: DefaultDriftRate,
		},
		Room: RoomConfig{
			OrbitSpeed: 0.01,
			StartLit:   true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Field.Count < 0 {
		return fmt.Errorf("particle count must not be negative, got %d", c.Field.Count)
	}
	if c.Field.DriftStrength < 0 {
		return fmt.Errorf("drift strength must not be negative, got %f", c.Field.DriftStrength)
	}
	return nil
}
