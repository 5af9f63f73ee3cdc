// Package config handles gridtool configuration loading and management.
package config

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/perspective-grid/internal/camera"
	"github.com/Faultbox/perspective-grid/internal/grid"
	"github.com/Faultbox/perspective-grid/internal/layout"
	"github.com/Faultbox/perspective-grid/internal/render"
	"github.com/Faultbox/perspective-grid/pkg/math"
)

// Config holds all gridtool settings.
type Config struct {
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Grid    grid.Config   `yaml:"grid" toml:"grid"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// LayoutConfig describes the room and its panels.
type LayoutConfig struct {
	Type  string                 `yaml:"type" toml:"type"`
	Panel layout.PanelDimensions `yaml:"panel" toml:"panel"`
	Room  layout.RoomDimensions  `yaml:"room" toml:"room"`
}

// CameraConfig holds the viewpoint. With Auto set, position and target
// come from the layout's suggested viewpoint.
type CameraConfig struct {
	Auto     bool       `yaml:"auto" toml:"auto"`
	Position [3]float64 `yaml:"position,flow" toml:"position"`
	Target   [3]float64 `yaml:"target,flow" toml:"target"`
	FOV      float64    `yaml:"fov" toml:"fov"` // degrees
	Near     float64    `yaml:"near" toml:"near"`
	Far      float64    `yaml:"far" toml:"far"`
}

// OutputConfig holds image settings.
type OutputConfig struct {
	Path          string  `yaml:"path" toml:"path"`
	Format        string  `yaml:"format" toml:"format"` // Empty means use the path extension
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	Title         string  `yaml:"title" toml:"title"`
	Background    string  `yaml:"background" toml:"background"`
	GridColor     string  `yaml:"grid_color" toml:"grid_color"`
	BoundaryColor string  `yaml:"boundary_color" toml:"boundary_color"`
	LabelColor    string  `yaml:"label_color" toml:"label_color"`
	GridWidth     float64 `yaml:"grid_width" toml:"grid_width"`
	BoundaryWidth float64 `yaml:"boundary_width" toml:"boundary_width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	panel, _ := layout.PanelPreset(layout.PresetStandard)
	room, _ := layout.RoomPreset(layout.PresetStandard)

	return &Config{
		Layout: LayoutConfig{
			Type:  layout.TypeThreePanel,
			Panel: panel,
			Room:  room,
		},
		Camera: CameraConfig{
			Auto: true,
			FOV:  60,
			Near: 0.1,
			Far:  1000,
		},
		Grid: grid.DefaultConfig(),
		Output: OutputConfig{
			Path:          "grid.svg",
			Width:         1920,
			Height:        1080,
			Title:         "Perspective Grid",
			Background:    "#ffffff",
			GridColor:     "#666666",
			BoundaryColor: "#000000",
			LabelColor:    "darkred",
			GridWidth:     1,
			BoundaryWidth: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	l, err := layout.New(c.LayoutConfig())
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if _, err := camera.New(c.CameraConfig(l)); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if _, err := c.RenderOptions(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// LayoutConfig converts the layout section.
func (c *Config) LayoutConfig() layout.Config {
	return layout.Config{
		Panel: c.Layout.Panel,
		Room:  c.Layout.Room,
		Type:  c.Layout.Type,
	}
}

// GridConfig returns the grid section.
func (c *Config) GridConfig() grid.Config {
	return c.Grid
}

type viewPointer interface {
	ViewPoint() (eye, target math.Point3)
}

// CameraConfig converts the camera section. When Auto is set and l can
// suggest a viewpoint, that viewpoint replaces Position and Target.
func (c *Config) CameraConfig(l layout.Layout) camera.Config {
	cfg := camera.DefaultConfig()
	cfg.Position = point(c.Camera.Position)
	cfg.Target = point(c.Camera.Target)
	cfg.FOV = c.Camera.FOV
	cfg.Near = c.Camera.Near
	cfg.Far = c.Camera.Far

	if vp, ok := l.(viewPointer); ok && c.Camera.Auto {
		cfg.Position, cfg.Target = vp.ViewPoint()
	}
	return cfg
}

// RenderOptions converts the output section. Label visibility follows
// the grid section.
func (c *Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width = c.Output.Width
	opts.Height = c.Output.Height
	opts.GridWidth = c.Output.GridWidth
	opts.BoundaryWidth = c.Output.BoundaryWidth
	opts.ShowLabels = c.Grid.ShowPanelLabels

	var err error
	if c.Output.Format != "" {
		opts.Format, err = render.ParseFormat(c.Output.Format)
	} else {
		opts.Format, err = render.FormatFromPath(c.Output.Path)
	}
	if err != nil {
		return render.Options{}, err
	}

	colors := []struct {
		dst *color.Color
		src string
	}{
		{&opts.Background, c.Output.Background},
		{&opts.GridColor, c.Output.GridColor},
		{&opts.BoundaryColor, c.Output.BoundaryColor},
		{&opts.LabelColor, c.Output.LabelColor},
	}
	for _, cc := range colors {
		if cc.src == "" {
			continue
		}
		parsed, err := render.ParseColor(cc.src)
		if err != nil {
			return render.Options{}, err
		}
		*cc.dst = parsed
	}

	if err := opts.Validate(); err != nil {
		return render.Options{}, err
	}
	return opts, nil
}

func point(v [3]float64) math.Point3 {
	return math.Point3{X: v[0], Y: v[1], Z: v[2]}
}
