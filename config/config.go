// Package config handles loading the debug draw demo settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/debugdraw/common"
	"github.com/milk9111/debugdraw/debugdraw"
	"github.com/milk9111/debugdraw/drawbuf"
	"github.com/milk9111/debugdraw/physics"
)

var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Buffer  BufferConfig  `yaml:"buffer"`
	Debug   DebugConfig   `yaml:"debug"`
	Colors  ColorsConfig  `yaml:"colors"`
	Physics PhysicsConfig `yaml:"physics"`
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// BufferConfig selects the vertex storage strategy.
type BufferConfig struct {
	Strategy string `yaml:"strategy"` // fixed, dynamic or shared
	Capacity int    `yaml:"capacity"` // vertices
}

// DebugConfig holds adapter settings.
type DebugConfig struct {
	Enabled bool     `yaml:"enabled"`
	Modes   []string `yaml:"modes"`
	Memory  string   `yaml:"memory"` // heap or vectors
}

// ColorsConfig overrides debug colors, each [r, g, b] in [0, 1].
type ColorsConfig struct {
	Outline    []float32 `yaml:"outline,omitempty"`
	Static     []float32 `yaml:"static,omitempty"`
	Dynamic    []float32 `yaml:"dynamic,omitempty"`
	Sensor     []float32 `yaml:"sensor,omitempty"`
	Constraint []float32 `yaml:"constraint,omitempty"`
	Contact    []float32 `yaml:"contact,omitempty"`
	Aabb       []float32 `yaml:"aabb,omitempty"`
	Normal     []float32 `yaml:"normal,omitempty"`
}

// PhysicsConfig holds simulation settings.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	TickRate int     `yaml:"tick_rate"` // steps per second
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SceneConfig points at a tengo scene script. Empty uses the built-in one.
type SceneConfig struct {
	Script string `yaml:"script"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			Strategy: drawbuf.Fixed.String(),
			Capacity: drawbuf.DefaultCapacity,
		},
		Debug: DebugConfig{
			Enabled: true,
			Modes:   []string{"wireframe", "contact_points"},
			Memory:  "heap",
		},
		Physics: PhysicsConfig{
			Gravity:  physics.DefaultGravity,
			TickRate: 60,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "debugdraw",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every enumerated value.
func (c *Config) Validate() error {
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: buffer.strategy: %w", ErrInvalid, err)
	}
	if c.Buffer.Capacity <= 0 {
		return fmt.Errorf("%w: buffer.capacity must be positive, got %d", ErrInvalid, c.Buffer.Capacity)
	}
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: debug.modes: %w", ErrInvalid, err)
	}
	switch c.memory() {
	case "heap", "vectors":
	default:
		return fmt.Errorf("%w: debug.memory must be heap or vectors, got %q", ErrInvalid, c.Debug.Memory)
	}
	if _, err := c.PhysicsColors(); err != nil {
		return err
	}
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("%w: physics.tick_rate must be positive, got %d", ErrInvalid, c.Physics.TickRate)
	}
	return nil
}

func (c *Config) Strategy() (drawbuf.Strategy, error) {
	return drawbuf.ParseStrategy(c.Buffer.Strategy)
}

func (c *Config) Mode() (debugdraw.Mode, error) {
	return debugdraw.ParseMode(c.Debug.Modes...)
}

// Arena builds the handle memory named by debug.memory.
func (c *Config) Arena() debugdraw.Arena {
	if c.memory() == "vectors" {
		return debugdraw.NewVectors(1024)
	}
	return debugdraw.NewHeap(16 * 1024)
}

func (c *Config) memory() string {
	m := strings.ToLower(strings.TrimSpace(c.Debug.Memory))
	if m == "" {
		return "heap"
	}
	return m
}

// PhysicsColors merges color overrides onto the physics defaults.
func (c *Config) PhysicsColors() (physics.Colors, error) {
	colors := physics.DefaultColors()
	fields := []struct {
		name string
		src  []float32
		dst  *common.Vec3
	}{
		{"outline", c.Colors.Outline, &colors.Outline},
		{"static", c.Colors.Static, &colors.Static},
		{"dynamic", c.Colors.Dynamic, &colors.Dynamic},
		{"sensor", c.Colors.Sensor, &colors.Sensor},
		{"constraint", c.Colors.Constraint, &colors.Constraint},
		{"contact", c.Colors.Contact, &colors.Contact},
		{"aabb", c.Colors.Aabb, &colors.Aabb},
		{"normal", c.Colors.Normal, &colors.Normal},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if len(f.src) != 3 {
			return colors, fmt.Errorf("%w: colors.%s needs 3 components, got %d", ErrInvalid, f.name, len(f.src))
		}
		*f.dst = common.Vec3{X: f.src[0], Y: f.src[1], Z: f.src[2]}
	}
	return colors, nil
}
