package layout

import (
	gomath "math"

	"github.com/Faultbox/perspective-grid/pkg/math"
)

// PanelType classifies a panel surface.
type PanelType string

const (
	Floor   PanelType = "floor"
	Wall    PanelType = "wall"
	Ceiling PanelType = "ceiling"
)

// Panel is a planar quadrilateral surface in room space.
//
// Corner convention, shared by every panel type:
//
//	Corners[0]  origin
//	Corners[1]  origin + U   (width axis)
//	Corners[2]  origin + U + V
//	Corners[3]  origin + V   (depth axis for floors, height axis for walls)
//
// The normal points into the room.
type Panel struct {
	Label   string
	Corners []math.Point3
	Normal  math.Vec3
	Type    PanelType
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Point3
	Max math.Point3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Point3 {
	return math.Point3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// IsQuad reports whether the panel has exactly four corners.
func (p Panel) IsQuad() bool {
	return len(p.Corners) == 4
}

// Axes returns the in-plane width (U) and depth/height (V) edge vectors.
func (p Panel) Axes() (u, v math.Vec3, err error) {
	if !p.IsQuad() {
		return math.Vec3{}, math.Vec3{}, ErrMalformedPanel
	}
	return p.Corners[1].Sub(p.Corners[0]), p.Corners[3].Sub(p.Corners[0]), nil
}

// Center returns the average of the four corners.
func (p Panel) Center() (math.Point3, error) {
	if !p.IsQuad() {
		return math.Point3{}, ErrMalformedPanel
	}
	var c math.Point3
	for _, corner := range p.Corners {
		c.X += corner.X / 4
		c.Y += corner.Y / 4
		c.Z += corner.Z / 4
	}
	return c, nil
}

// Bounds returns the bounding box of the panel corners.
// A panel without corners has an empty box at the origin.
func (p Panel) Bounds() Bounds {
	return boundsOf(p.Corners)
}

func boundsOf(points []math.Point3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: math.Point3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)},
		Max: math.Point3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)},
	}
	for _, c := range points {
		b.Min.X = gomath.Min(b.Min.X, c.X)
		b.Min.Y = gomath.Min(b.Min.Y, c.Y)
		b.Min.Z = gomath.Min(b.Min.Z, c.Z)
		b.Max.X = gomath.Max(b.Max.X, c.X)
		b.Max.Y = gomath.Max(b.Max.Y, c.Y)
		b.Max.Z = gomath.Max(b.Max.Z, c.Z)
	}
	return b
}

// quad builds a panel from an origin and its two edge vectors.
func quad(label string, t PanelType, origin math.Point3, u, v, normal math.Vec3) Panel {
	return Panel{
		Label: label,
		Corners: []math.Point3{
			origin,
			origin.Add(u),
			origin.Add(u).Add(v),
			origin.Add(v),
		},
		Normal: normal,
		Type:   t,
	}
}
