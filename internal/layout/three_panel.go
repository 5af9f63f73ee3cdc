package layout

import (
	"fmt"

	"github.com/Faultbox/perspective-grid/pkg/math"
)

// ThreePanel is a corner room: a floor and two walls meeting at the origin.
//
// Coordinate system:
//   - origin at the corner where the walls meet the floor
//   - X runs along the right wall
//   - Y is vertical
//   - Z runs along the left wall
type ThreePanel struct {
	cfg    Config
	panels []Panel
}

// NewThreePanel validates cfg and builds the three panels.
func NewThreePanel(cfg Config) (*ThreePanel, error) {
	cfg.Type = TypeThreePanel
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid 3-panel config: %w", err)
	}

	scale, err := ScaleFactor(cfg.Room.Units, cfg.Panel.Units)
	if err != nil {
		return nil, err
	}

	w := cfg.Room.Width * scale
	h := cfg.Room.Height * scale
	d := cfg.Room.Depth * scale
	origin := math.Point3{}

	return &ThreePanel{
		cfg: cfg,
		panels: []Panel{
			quad("Floor", Floor, origin,
				math.Vec3{X: w}, math.Vec3{Z: d}, math.Vec3{Y: 1}),
			quad("Left Wall", Wall, origin,
				math.Vec3{Z: d}, math.Vec3{Y: h}, math.Vec3{X: 1}),
			quad("Right Wall", Wall, origin,
				math.Vec3{X: w}, math.Vec3{Y: h}, math.Vec3{Z: 1}),
		},
	}, nil
}

// Panels returns Floor, Left Wall and Right Wall in that order.
func (l *ThreePanel) Panels() []Panel {
	return l.panels
}

// Name returns the layout name.
func (l *ThreePanel) Name() string {
	return "3-Panel Corner Room"
}

// PanelCount returns 3.
func (l *ThreePanel) PanelCount() int {
	return len(l.panels)
}

// Config returns the configuration the layout was built from.
func (l *ThreePanel) Config() Config {
	return l.cfg
}

// ViewPoint returns a camera position and target for photographing the
// corner from inside the room, at roughly eye level.
func (l *ThreePanel) ViewPoint() (eye, target math.Point3) {
	b := TotalBounds(l)
	eye = math.Point3{X: b.Max.X * 0.9, Y: b.Max.Y * 0.5, Z: b.Max.Z * 0.9}
	target = math.Point3{X: b.Max.X * 0.1, Y: b.Max.Y * 0.3, Z: b.Max.Z * 0.1}
	return eye, target
}
