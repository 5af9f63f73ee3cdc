package grid

import "github.com/Faultbox/perspective-grid/pkg/math"

// LineType classifies a grid line.
type LineType string

const (
	Horizontal LineType = "horizontal" // parallel to the panel's U axis
	Vertical   LineType = "vertical"   // parallel to the panel's V axis
	Boundary   LineType = "boundary"
)

// LineTypes returns every line type in output order.
func LineTypes() []LineType {
	return []LineType{Horizontal, Vertical, Boundary}
}

// Line is a projected, clipped segment in pixel space.
type Line struct {
	Start      math.Point2
	End        math.Point2
	PanelLabel string
	Type       LineType
}

// Length returns the segment length in pixels.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() math.Point2 {
	return l.Start.Lerp(l.End, 0.5)
}
