// Package layout describes room installations as ordered sets of flat panels.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/perspective-grid/pkg/math"
)

var (
	ErrInvalidDimensions = errors.New("dimensions must be positive")
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrUnknownLayout     = errors.New("unknown layout type")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrMalformedPanel    = errors.New("panel must have exactly 4 corners")
)

// Layout type names.
const (
	TypeThreePanel = "3panel"
)

// Layout is an immutable arrangement of panels.
type Layout interface {
	// Panels returns the panels in a fixed order. The slice is shared;
	// callers must not modify it.
	Panels() []Panel
	Name() string
	PanelCount() int
}

// PanelDimensions is the physical size of one drawing panel.
// Its unit is the unit of all layout coordinates.
type PanelDimensions struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Units  string  `yaml:"units" toml:"units"`
}

// RoomDimensions is the size of the room being represented.
type RoomDimensions struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Depth  float64 `yaml:"depth" toml:"depth"`
	Units  string  `yaml:"units" toml:"units"`
}

// Config selects a layout variant and its dimensions.
type Config struct {
	Panel PanelDimensions
	Room  RoomDimensions
	Type  string
}

// Validate checks that every dimension is strictly positive and every unit is known.
func (c Config) Validate() error {
	if !(c.Panel.Width > 0) || !(c.Panel.Height > 0) {
		return fmt.Errorf("%w: panel %vx%v", ErrInvalidDimensions, c.Panel.Width, c.Panel.Height)
	}
	if !(c.Room.Width > 0) || !(c.Room.Height > 0) || !(c.Room.Depth > 0) {
		return fmt.Errorf("%w: room %vx%vx%v", ErrInvalidDimensions, c.Room.Width, c.Room.Height, c.Room.Depth)
	}
	if _, err := ScaleFactor(c.Room.Units, c.Panel.Units); err != nil {
		return err
	}
	return nil
}

// New builds the layout variant named by cfg.Type.
func New(cfg Config) (Layout, error) {
	switch cfg.Type {
	case TypeThreePanel, "":
		return NewThreePanel(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, cfg.Type)
	}
}

// TotalBounds returns the box enclosing every corner of every panel.
func TotalBounds(l Layout) Bounds {
	var corners []math.Point3
	for _, p := range l.Panels() {
		corners = append(corners, p.Corners...)
	}
	return boundsOf(corners)
}

// CenterPoint returns the midpoint of the layout's total bounds.
func CenterPoint(l Layout) math.Point3 {
	return TotalBounds(l).Center()
}

// Describe returns a one-line human-readable summary.
func Describe(l Layout) string {
	labels := make([]string, 0, l.PanelCount())
	for _, p := range l.Panels() {
		labels = append(labels, p.Label)
	}
	return fmt.Sprintf("%s: %s", l.Name(), strings.Join(labels, ", "))
}
