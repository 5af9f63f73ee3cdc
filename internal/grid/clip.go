package grid

import "github.com/Faultbox/perspective-grid/pkg/math"

// Outcode bits.
const (
	OutLeft   = 1
	OutRight  = 2
	OutBottom = 4 // y below MinY
	OutTop    = 8 // y above MaxY
)

// Rect is an axis-aligned clip rectangle in pixels.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ExpandedViewport returns the image rectangle grown by half its larger
// dimension on every side. Lines are kept if any part falls in it, so
// segments that run slightly off-image still reach the edge.
func ExpandedViewport(width, height int) Rect {
	w, h := float64(width), float64(height)
	m := 0.5 * max(w, h)
	return Rect{MinX: -m, MinY: -m, MaxX: w + m, MaxY: h + m}
}

// Outcode returns the Cohen-Sutherland region code of p relative to r.
func Outcode(p math.Point2, r Rect) int {
	code := 0
	if p.X < r.MinX {
		code |= OutLeft
	} else if p.X > r.MaxX {
		code |= OutRight
	}
	if p.Y < r.MinY {
		code |= OutBottom
	} else if p.Y > r.MaxY {
		code |= OutTop
	}
	return code
}

// ClipLine clips segment a-b to r. It returns false when no part of the
// segment lies inside r or either endpoint is not finite.
func ClipLine(a, b math.Point2, r Rect) (math.Point2, math.Point2, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}

	ca, cb := Outcode(a, r), Outcode(b, r)
	for {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}

		out := ca
		if out == 0 {
			out = cb
		}

		var p math.Point2
		switch {
		case out&OutTop != 0:
			p.X = a.X + (b.X-a.X)*(r.MaxY-a.Y)/(b.Y-a.Y)
			p.Y = r.MaxY
		case out&OutBottom != 0:
			p.X = a.X + (b.X-a.X)*(r.MinY-a.Y)/(b.Y-a.Y)
			p.Y = r.MinY
		case out&OutRight != 0:
			p.Y = a.Y + (b.Y-a.Y)*(r.MaxX-a.X)/(b.X-a.X)
			p.X = r.MaxX
		case out&OutLeft != 0:
			p.Y = a.Y + (b.Y-a.Y)*(r.MinX-a.X)/(b.X-a.X)
			p.X = r.MinX
		}

		if out == ca {
			a, ca = p, Outcode(p, r)
		} else {
			b, cb = p, Outcode(p, r)
		}
	}
}
