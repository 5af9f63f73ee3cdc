package math

import "math"

// Point2 is a location in screen space, in pixels with the origin at the top-left.
type Point2 struct {
	X, Y float64
}

// Sub returns p - other.
func (p Point2) Sub(other Point2) Point2 {
	return Point2{p.X - other.X, p.Y - other.Y}
}

// Lerp returns the point a fraction t of the way from p to other.
func (p Point2) Lerp(other Point2, t float64) Point2 {
	return Point2{p.X + (other.X-p.X)*t, p.Y + (other.Y-p.Y)*t}
}

// Length returns the distance from the origin.
func (p Point2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance to another point.
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
