package render

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	ErrInvalidSize   = errors.New("image size must be positive")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidColor  = errors.New("invalid color")
)

// Format is an output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Options controls image size and styling. Widths and sizes are in
// points, which equal pixels at the 72 DPI the renderer uses.
type Options struct {
	Width  int
	Height int
	Format Format

	Background    color.Color
	GridColor     color.Color
	BoundaryColor color.Color
	LabelColor    color.Color

	GridWidth     float64
	BoundaryWidth float64

	ShowLabels bool
	LabelSize  float64
	TitleSize  float64
}

// DefaultOptions returns a 1920x1080 SVG with a grey grid on white.
func DefaultOptions() Options {
	return Options{
		Width:         1920,
		Height:        1080,
		Format:        FormatSVG,
		Background:    colornames.White,
		GridColor:     color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		BoundaryColor: colornames.Black,
		LabelColor:    colornames.Darkred,
		GridWidth:     1,
		BoundaryWidth: 2,
		ShowLabels:    true,
		LabelSize:     24,
		TitleSize:     16,
	}
}

// Validate checks size and format.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

// ParseColor accepts an SVG color name ("steelblue") or a hex triplet
// ("#336699" or "#369").
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
