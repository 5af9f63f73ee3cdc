package grid

import (
	"go.uber.org/zap"

	"github.com/Faultbox/perspective-grid/internal/layout"
	"github.com/Faultbox/perspective-grid/internal/logger"
	"github.com/Faultbox/perspective-grid/pkg/math"
)

// Viewer supplies the transforms a grid is projected through.
// *camera.Camera implements it.
type Viewer interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix(aspect float64) math.Mat4
	Near() float64
}

// Generator turns panels into projected grid lines.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator. cfg is expected to be valid; see Config.Validate.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Config returns the generator settings.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate returns the grid lines for panels as seen by cam on a
// width x height image. For each panel, boundaries come first, then
// horizontal lines, then vertical lines. Malformed or degenerate panels
// produce no lines.
func (g *Generator) Generate(panels []layout.Panel, cam Viewer, width, height int) []Line {
	if width <= 0 || height <= 0 {
		logger.Debug("empty viewport", zap.Int("width", width), zap.Int("height", height))
		return nil
	}

	pr := &projector{
		view:     cam.ViewMatrix(),
		proj:     cam.ProjectionMatrix(float64(width) / float64(height)),
		near:     cam.Near(),
		width:    float64(width),
		height:   float64(height),
		viewport: ExpandedViewport(width, height),
	}

	var lines []Line
	for _, p := range panels {
		lines = g.panelLines(lines, p, pr)
	}
	return lines
}

// Stats summarizes lines produced by Generate.
func (g *Generator) Stats(lines []Line) Stats {
	return ComputeStats(lines)
}

func (g *Generator) panelLines(lines []Line, p layout.Panel, pr *projector) []Line {
	u, v, err := p.Axes()
	if err != nil {
		logger.Debug("skipping panel", zap.String("panel", p.Label), zap.Int("corners", len(p.Corners)))
		return lines
	}
	lenU, lenV := u.Length(), v.Length()
	if lenU == 0 || lenV == 0 {
		logger.Debug("skipping degenerate panel", zap.String("panel", p.Label),
			zap.Float64("u", lenU), zap.Float64("v", lenV))
		return lines
	}

	if g.cfg.ShowPanelBoundaries {
		for i := range p.Corners {
			next := p.Corners[(i+1)%len(p.Corners)]
			lines = g.emit(lines, pr, p.Corners[i], next, p.Label, Boundary)
		}
	}

	spacing := g.spacing(lenU, lenV)
	origin := p.Corners[0]
	uDir, vDir := u.Scale(1/lenU), v.Scale(1/lenV)
	hMax, vMax := g.axisLimits()

	for _, off := range truncate(offsets(lenV, spacing), hMax) {
		start := origin.Add(vDir.Scale(off))
		lines = g.emit(lines, pr, start, start.Add(u), p.Label, Horizontal)
	}
	for _, off := range truncate(offsets(lenU, spacing), vMax) {
		start := origin.Add(uDir.Scale(off))
		lines = g.emit(lines, pr, start, start.Add(v), p.Label, Vertical)
	}
	return lines
}

// spacing returns the square cell size for a panel with the given extents.
// It never exceeds half the shorter side.
func (g *Generator) spacing(lenU, lenV float64) float64 {
	base := min(lenU, lenV)
	return math.Clamp(base*0.1/g.cfg.Density, base/1000, base/2)
}

// axisLimits splits MaxLinesPerPanel between the horizontal and vertical
// families. -1 means unlimited.
func (g *Generator) axisLimits() (horizontal, vertical int) {
	n := g.cfg.MaxLinesPerPanel
	if n <= 0 {
		return -1, -1
	}
	return (n + 1) / 2, n / 2
}

func truncate(offs []float64, limit int) []float64 {
	if limit >= 0 && len(offs) > limit {
		return offs[:limit]
	}
	return offs
}

// offsets returns k*spacing for every k >= 1 strictly inside (0, extent).
func offsets(extent, spacing float64) []float64 {
	eps := extent * 1e-9
	var out []float64
	for k := 1; ; k++ {
		off := float64(k) * spacing
		if off >= extent-eps {
			return out
		}
		out = append(out, off)
	}
}

func (g *Generator) emit(lines []Line, pr *projector, a, b math.Point3, label string, t LineType) []Line {
	p0, p1, ok := pr.segment(a, b)
	if !ok {
		return lines
	}
	p0, p1, ok = ClipLine(p0, p1, pr.viewport)
	if !ok {
		return lines
	}

	l := Line{Start: p0, End: p1, PanelLabel: label, Type: t}
	if l.Length() < g.cfg.MinLineLength {
		return lines
	}
	return append(lines, l)
}

type projector struct {
	view, proj    math.Mat4
	near          float64
	width, height float64
	viewport      Rect
}

// segment projects a room-space segment to pixels. The part of the
// segment closer than the near plane is cut off in view space first, so
// nothing behind the camera is ever divided by a negative w.
func (pr *projector) segment(a, b math.Point3) (math.Point2, math.Point2, bool) {
	va := pr.view.TransformPoint(a)
	vb := pr.view.TransformPoint(b)

	limit := -pr.near
	inA, inB := va.Z <= limit, vb.Z <= limit
	switch {
	case !inA && !inB:
		return math.Point2{}, math.Point2{}, false
	case !inA:
		va = va.Add(vb.Sub(va).Scale((limit - va.Z) / (vb.Z - va.Z)))
	case !inB:
		vb = vb.Add(va.Sub(vb).Scale((limit - vb.Z) / (va.Z - vb.Z)))
	}

	p0, ok0 := pr.toScreen(va)
	p1, ok1 := pr.toScreen(vb)
	return p0, p1, ok0 && ok1
}

func (pr *projector) toScreen(v math.Point3) (math.Point2, bool) {
	c := pr.proj.MulVec4(math.Vec4{v.X, v.Y, v.Z, 1})
	if !(c[3] > 0) {
		return math.Point2{}, false
	}
	ndcX, ndcY := c[0]/c[3], c[1]/c[3]
	p := math.Point2{
		X: (ndcX + 1) / 2 * pr.width,
		Y: (1 - ndcY) / 2 * pr.height,
	}
	return p, p.IsFinite()
}
