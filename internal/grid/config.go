// Package grid projects panel subdivisions into pixel-space line segments.
package grid

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid grid config")

// Config controls grid density and which lines are produced.
type Config struct {
	// Density scales the cell size: higher is finer. Must be > 0.
	Density             float64 `yaml:"density" toml:"density"`
	ShowPanelBoundaries bool    `yaml:"show_panel_boundaries" toml:"show_panel_boundaries"`
	ShowPanelLabels     bool    `yaml:"show_panel_labels" toml:"show_panel_labels"`
	// MinLineLength is in pixels. Shorter segments are dropped; with 0,
	// segments that project to a single point are kept.
	MinLineLength float64 `yaml:"min_line_length" toml:"min_line_length"`
	// MaxLinesPerPanel caps interior lines per panel; 0 disables the cap.
	// The horizontal family gets the odd line. Spacing is unaffected, so
	// lines past the cap are dropped from the far end of each axis.
	MaxLinesPerPanel int `yaml:"max_lines_per_panel" toml:"max_lines_per_panel"`
}

// DefaultConfig returns the default grid settings.
func DefaultConfig() Config {
	return Config{
		Density:             0.5,
		ShowPanelBoundaries: true,
		ShowPanelLabels:     true,
		MinLineLength:       5,
		MaxLinesPerPanel:    100,
	}
}

// Validate rejects non-positive density and negative limits.
func (c Config) Validate() error {
	if !(c.Density > 0) {
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidConfig, c.Density)
	}
	if !(c.MinLineLength >= 0) {
		return fmt.Errorf("%w: min line length must be non-negative, got %v", ErrInvalidConfig, c.MinLineLength)
	}
	if c.MaxLinesPerPanel < 0 {
		return fmt.Errorf("%w: max lines per panel must be non-negative, got %d", ErrInvalidConfig, c.MaxLinesPerPanel)
	}
	return nil
}
