// Package pipeline runs one grid generation: config to layout, camera,
// grid lines and finally an image.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/perspective-grid/internal/camera"
	"github.com/Faultbox/perspective-grid/internal/config"
	"github.com/Faultbox/perspective-grid/internal/grid"
	"github.com/Faultbox/perspective-grid/internal/layout"
	"github.com/Faultbox/perspective-grid/internal/logger"
	"github.com/Faultbox/perspective-grid/internal/render"
)

// Stdout as an output path writes the image to standard output.
const Stdout = "-"

// Result is the outcome of one run.
type Result struct {
	RunID   string
	Layout  layout.Layout
	Camera  *camera.Camera
	Lines   []grid.Line
	Stats   grid.Stats
	Output  string // Empty when nothing was rendered
	Elapsed time.Duration
}

// Generate builds the layout and camera described by cfg and computes the
// grid lines without rendering them.
func Generate(cfg *config.Config) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := layout.New(cfg.LayoutConfig())
	if err != nil {
		return nil, err
	}
	cam, err := camera.New(cfg.CameraConfig(l))
	if err != nil {
		return nil, err
	}

	gen := grid.NewGenerator(cfg.GridConfig())
	lines := gen.Generate(l.Panels(), cam, cfg.Output.Width, cfg.Output.Height)

	return &Result{
		RunID:   uuid.NewString(),
		Layout:  l,
		Camera:  cam,
		Lines:   lines,
		Stats:   gen.Stats(lines),
		Elapsed: time.Since(start),
	}, nil
}

// Run generates the grid and renders it to cfg.Output.Path.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	start := time.Now()
	res, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.With(zap.String("run_id", res.RunID))
	log.Debug("generated grid",
		zap.String("layout", res.Layout.Name()),
		zap.Int("lines", res.Stats.TotalLines))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	r, err := render.New(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Output.Path == Stdout {
		err = r.Render(os.Stdout, res.Lines, cfg.Output.Title)
	} else {
		err = r.RenderFile(cfg.Output.Path, res.Lines, cfg.Output.Title)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", cfg.Output.Path, err)
	}

	res.Output = cfg.Output.Path
	res.Elapsed = time.Since(start)
	log.Info("grid written",
		zap.String("output", res.Output),
		zap.String("format", string(opts.Format)),
		zap.Int("lines", res.Stats.TotalLines),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
