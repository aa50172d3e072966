// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/shellview/internal/engine/camera"
	"github.com/Faultbox/shellview/internal/engine/lighting"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/surface"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig            `yaml:"window"`
	Shape   surface.ShapeParameters `yaml:"shape"`
	Camera  CameraConfig            `yaml:"camera"`
	Render  RenderConfig            `yaml:"render"`
	Input   InputConfig             `yaml:"input"`
	Watch   WatchConfig             `yaml:"watch"`
	Logging LoggingConfig           `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial orbit and its limits.
type CameraConfig struct {
	Initial camera.OrbitState `yaml:"initial"`
	Limits  camera.Limits     `yaml:"limits"`
}

// RenderConfig holds shading and lighting settings.
type RenderConfig struct {
	Shading       string            `yaml:"shading"` // wireframe, per_vertex or per_fragment
	Outline       bool              `yaml:"outline"` // Draw quad edges over lit shading
	ClearColor    [4]float32        `yaml:"clear_color"`
	Light         lighting.Light    `yaml:"light"`
	Material      lighting.Material `yaml:"material"`
	ScreenshotDir string            `yaml:"screenshot_dir"`
}

// InputConfig holds key bindings and mouse settings.
type InputConfig struct {
	// Bindings maps SDL key names (e.g. "Left", "F12") to viewer actions.
	Bindings       map[string]string `yaml:"bindings"`
	DragStepPixels float32           `yaml:"drag_step_pixels"`
}

// WatchConfig controls reloading the shape when the config file changes.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultBindings returns the default keyboard layout.
func DefaultBindings() map[string]string {
	return map[string]string{
		"Right":  "theta+",
		"Left":   "theta-",
		"Down":   "phi+",
		"Up":     "phi-",
		"=":      "zoom+",
		"-":      "zoom-",
		"1":      "shading:wireframe",
		"2":      "shading:per_vertex",
		"3":      "shading:per_fragment",
		"O":      "outline",
		"R":      "reset",
		"F12":    "screenshot",
		"Escape": "quit",
		"Q":      "shape:a+",
		"A":      "shape:a-",
		"W":      "shape:b+",
		"S":      "shape:b-",
		"E":      "shape:c+",
		"D":      "shape:c-",
		"T":      "shape:j+",
		"G":      "shape:j-",
		"Y":      "shape:k+",
		"H":      "shape:k-",
		"U":      "shape:outer_radius+",
		"J":      "shape:outer_radius-",
		"I":      "shape:inner_radius+",
		"K":      "shape:inner_radius-",
		"]":      "shape:row_segments+",
		"[":      "shape:row_segments-",
		"'":      "shape:column_segments+",
		";":      "shape:column_segments-",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Shell Viewer",
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Shape: surface.DefaultParameters(),
		Camera: CameraConfig{
			Initial: camera.DefaultState(),
			Limits:  camera.DefaultLimits(),
		},
		Render: RenderConfig{
			Shading:       render.Wireframe.String(),
			Outline:       false,
			ClearColor:    [4]float32{0.2, 0.2, 0.2, 1.0},
			Light:         lighting.DefaultLight(),
			Material:      lighting.DefaultMaterial(),
			ScreenshotDir: "screenshots",
		},
		Input: InputConfig{
			Bindings:       DefaultBindings(),
			DragStepPixels: 20,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if err := c.Shape.Validate(); err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	if _, err := render.ParseShadingMode(c.Render.Shading); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.Camera.Limits.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := c.Camera.Initial.Validate(c.Camera.Limits); err != nil {
		return fmt.Errorf("camera initial: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
