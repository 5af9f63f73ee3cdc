package config

import (
	"flag"

	"github.com/Faultbox/perspective-grid/internal/layout"
)

// Flags holds command-line overrides. Zero values leave the config unchanged.
type Flags struct {
	Config  string
	Debug   bool
	Width   int
	Height  int
	Density float64
	FOV     float64
	Format  string
	Output  string
	Preset  string
	Room    string
}

// RegisterFlags binds the config overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Image width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Image height in pixels")
	fs.Float64Var(&f.Density, "density", 0, "Grid density (higher is finer)")
	fs.Float64Var(&f.FOV, "fov", 0, "Camera field of view in degrees")
	fs.StringVar(&f.Format, "format", "", "Output format: svg or png")
	fs.StringVar(&f.Output, "o", "", "Output file path")
	fs.StringVar(&f.Preset, "preset", "", "Panel size preset: small, standard, large")
	fs.StringVar(&f.Room, "room", "", "Room size preset: small, standard, large")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Output.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Output.Height = f.Height
	}
	if f.Density > 0 {
		cfg.Grid.Density = f.Density
	}
	if f.FOV > 0 {
		cfg.Camera.FOV = f.FOV
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Output != "" {
		cfg.Output.Path = f.Output
	}
	if f.Preset != "" {
		panel, err := layout.PanelPreset(f.Preset)
		if err != nil {
			return err
		}
		cfg.Layout.Panel = panel
	}
	if f.Room != "" {
		room, err := layout.RoomPreset(f.Room)
		if err != nil {
			return err
		}
		cfg.Layout.Room = room
	}
	return nil
}
