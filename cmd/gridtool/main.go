// gridtool generates forced-perspective grid overlays for room installations.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Faultbox/perspective-grid/internal/config"
	"github.com/Faultbox/perspective-grid/internal/grid"
	"github.com/Faultbox/perspective-grid/internal/layout"
	"github.com/Faultbox/perspective-grid/internal/logger"
	"github.com/Faultbox/perspective-grid/internal/pipeline"
	"github.com/Faultbox/perspective-grid/internal/render"
	"github.com/Faultbox/perspective-grid/internal/watch"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "stats":
		cmdStats(args)
	case "presets":
		cmdPresets()
	case "watch":
		cmdWatch(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gridtool - perspective grid generator for forced-perspective rooms

Usage:
  gridtool <command> [options]

Commands:
  generate [flags]          Render the grid to an SVG or PNG file
  stats [flags]             Print line counts without rendering
  presets                   List panel and room size presets
  watch [flags]             Regenerate whenever the config file changes
  init [path]               Write the default config (YAML or TOML)

Flags (generate, stats, watch):
  -config <file>            Config file (.yaml or .toml)
  -preset <name>            Panel size preset
  -room <name>              Room size preset
  -density <n>              Grid density, higher is finer
  -fov <deg>                Camera field of view
  -width, -height <px>      Image size
  -format svg|png           Output format (default: from file extension)
  -o <file>                 Output file, "-" for stdout
  -debug                    Enable debug logging

Examples:
  gridtool generate -preset standard -room large -o corner.svg
  gridtool generate -config gridtool.yaml -format png -o - > grid.png
  gridtool stats -density 1.0
  gridtool watch -config gridtool.toml`)
}

// setup parses flags, loads the config and starts logging.
func setup(name string, args []string) (*config.Config, *config.Flags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, flags
}

func cmdGenerate(args []string) {
	cfg, _ := setup("generate", args)
	defer logger.Sync()

	res, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printWritten(os.Stdout, res)
}

// printWritten reports where a run's image went. Nothing is printed when
// the image itself was streamed to stdout.
func printWritten(w io.Writer, res *pipeline.Result) {
	if res.Output == "" || res.Output == pipeline.Stdout {
		return
	}
	fmt.Fprintf(w, "Wrote %s (%d lines, %s)\n", res.Output, res.Stats.TotalLines, res.Elapsed.Round(time.Millisecond))
}

func cmdStats(args []string) {
	cfg, _ := setup("stats", args)
	defer logger.Sync()

	res, err := pipeline.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(layout.Describe(res.Layout))
	fmt.Printf("Camera:  %v -> %v, fov %.0f\n", res.Camera.Position(), res.Camera.Target(), res.Camera.FOV())
	fmt.Printf("Image:   %dx%d\n", cfg.Output.Width, cfg.Output.Height)
	fmt.Println()
	printStats(os.Stdout, res.Stats)
	fmt.Printf("\nEstimated SVG size: %.1f KB\n", float64(render.EstimateSize(res.Lines))/1024)
}

func printStats(w io.Writer, s grid.Stats) {
	fmt.Fprintf(w, "Lines:   %d\n", s.TotalLines)
	fmt.Fprintln(w, "By panel:")
	for _, label := range s.PanelLabels() {
		fmt.Fprintf(w, "  %-12s %d\n", label, s.Panels[label])
	}
	fmt.Fprintln(w, "By type:")
	for _, t := range grid.LineTypes() {
		fmt.Fprintf(w, "  %-12s %d\n", t, s.LineTypes[t])
	}
}

func cmdPresets() {
	printPresets(os.Stdout)
}

func printPresets(w io.Writer) {
	fmt.Fprintln(w, "Panel presets:")
	for _, name := range layout.PresetNames() {
		p, _ := layout.PanelPreset(name)
		fmt.Fprintf(w, "  %-10s %gx%g %s\n", name, p.Width, p.Height, p.Units)
	}
	fmt.Fprintln(w, "Room presets:")
	for _, name := range layout.PresetNames() {
		r, _ := layout.RoomPreset(name)
		fmt.Fprintf(w, "  %-10s %gx%gx%g %s\n", name, r.Width, r.Height, r.Depth, r.Units)
	}

	fmt.Fprintf(w, "Units: %s\n", strings.Join(layout.ValidUnits(), ", "))
}

func cmdWatch(args []string) {
	_, flags := setup("watch", args)
	defer logger.Sync()

	if flags.Config == "" {
		fmt.Fprintln(os.Stderr, "Usage: gridtool watch -config <file> [flags]")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(flags.Config, watch.DefaultDebounce, func(ctx context.Context) error {
		// Reload so edits to the file take effect; flags still win.
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}
		res, err := pipeline.Run(ctx, cfg)
		if err != nil {
			return err
		}
		printWritten(os.Stdout, res)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdInit(args []string) {
	cfg := config.Default()
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", args[0])
}
