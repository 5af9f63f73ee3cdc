// Package render draws grid lines to SVG or PNG images.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/Faultbox/perspective-grid/internal/grid"
	"github.com/Faultbox/perspective-grid/internal/logger"
	"github.com/Faultbox/perspective-grid/pkg/math"
)

// Renderer draws grid lines onto a fixed-size image.
type Renderer struct {
	opts Options
}

// New creates a renderer after validating opts.
func New(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts}, nil
}

// Options returns the renderer settings.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render writes an image of lines to w. Interior lines are drawn first so
// panel boundaries stay on top, then panel labels and the title.
func (r *Renderer) Render(w io.Writer, lines []grid.Line, title string) error {
	c, out := r.newCanvas()
	dc := draw.New(c)

	width, height := vg.Length(r.opts.Width), vg.Length(r.opts.Height)
	dc.FillPolygon(r.opts.Background, []vg.Point{
		{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: height}, {X: 0, Y: height},
	})

	gridStyle := draw.LineStyle{Color: r.opts.GridColor, Width: vg.Length(r.opts.GridWidth)}
	boundaryStyle := draw.LineStyle{Color: r.opts.BoundaryColor, Width: vg.Length(r.opts.BoundaryWidth)}

	for _, t := range []grid.LineType{grid.Horizontal, grid.Vertical} {
		for _, l := range lines {
			if l.Type == t {
				r.stroke(dc, gridStyle, l)
			}
		}
	}
	for _, l := range lines {
		if l.Type == grid.Boundary {
			r.stroke(dc, boundaryStyle, l)
		}
	}

	if r.opts.ShowLabels {
		for _, lbl := range labelPositions(lines) {
			dc.FillText(r.textStyle(r.opts.LabelSize, draw.XCenter, draw.YCenter), r.toCanvas(lbl.at), lbl.text)
		}
	}
	if title != "" {
		pad := vg.Length(r.opts.TitleSize)
		dc.FillText(r.textStyle(r.opts.TitleSize, draw.XLeft, draw.YTop), vg.Point{X: pad, Y: height - pad}, title)
	}

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", r.opts.Format, err)
	}
	logger.Debug("rendered grid",
		zap.String("format", string(r.opts.Format)),
		zap.Int("lines", len(lines)),
		zap.Int("width", r.opts.Width),
		zap.Int("height", r.opts.Height))
	return nil
}

// RenderFile renders to path, replacing any existing file.
func (r *Renderer) RenderFile(path string, lines []grid.Line, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := r.Render(f, lines, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Renderer) newCanvas() (vg.CanvasSizer, io.WriterTo) {
	w, h := vg.Length(r.opts.Width), vg.Length(r.opts.Height)
	if r.opts.Format == FormatPNG {
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
		return c, vgimg.PngCanvas{Canvas: c}
	}
	c := vgsvg.New(w, h)
	return c, c
}

// toCanvas flips from image coordinates (y down) to canvas coordinates (y up).
func (r *Renderer) toCanvas(p math.Point2) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(float64(r.opts.Height) - p.Y)}
}

func (r *Renderer) stroke(dc draw.Canvas, sty draw.LineStyle, l grid.Line) {
	a, b := r.toCanvas(l.Start), r.toCanvas(l.End)
	dc.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}

func (r *Renderer) textStyle(size float64, x draw.XAlignment, y draw.YAlignment) draw.TextStyle {
	fnt := plot.DefaultFont
	fnt.Size = vg.Length(size)
	return draw.TextStyle{
		Color:   r.opts.LabelColor,
		Font:    fnt,
		XAlign:  x,
		YAlign:  y,
		Handler: plot.DefaultTextHandler,
	}
}

type label struct {
	text string
	at   math.Point2
}

// labelPositions places one label per panel at the mean midpoint of its
// boundary lines, or of all its lines when it has no boundaries.
func labelPositions(lines []grid.Line) []label {
	type acc struct {
		sum      math.Point2
		n        int
		boundary bool
	}
	byPanel := map[string]*acc{}
	for _, l := range lines {
		a := byPanel[l.PanelLabel]
		if a == nil {
			a = &acc{}
			byPanel[l.PanelLabel] = a
		}
		isBoundary := l.Type == grid.Boundary
		if a.boundary && !isBoundary {
			continue
		}
		if isBoundary && !a.boundary {
			*a = acc{boundary: true}
		}
		m := l.Midpoint()
		a.sum.X += m.X
		a.sum.Y += m.Y
		a.n++
	}

	out := make([]label, 0, len(byPanel))
	for text, a := range byPanel {
		out = append(out, label{
			text: text,
			at:   math.Point2{X: a.sum.X / float64(a.n), Y: a.sum.Y / float64(a.n)},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].text < out[j].text })
	return out
}

// EstimateSize returns a rough SVG output size in bytes.
func EstimateSize(lines []grid.Line) int {
	const (
		header   = 1024
		perLine  = 96
		perLabel = 160
	)
	panels := map[string]struct{}{}
	for _, l := range lines {
		panels[l.PanelLabel] = struct{}{}
	}
	return header + perLine*len(lines) + perLabel*len(panels)
}
