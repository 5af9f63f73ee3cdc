package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/perspective-grid/internal/camera"
	"github.com/Faultbox/perspective-grid/internal/layout"
	"github.com/Faultbox/perspective-grid/pkg/math"
)

// frontalPanel is a 2x2 square in the z=0 plane facing +Z.
func frontalPanel(label string) layout.Panel {
	return layout.Panel{
		Label: label,
		Corners: []math.Point3{
			{X: -1, Y: -1, Z: 0},
			{X: 1, Y: -1, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: -1, Y: 1, Z: 0},
		},
		Normal: math.Vec3{Z: 1},
		Type:   layout.Wall,
	}
}

// frontalCamera sits 10 units in front of frontalPanel with a 90 degree
// field of view, so on a 100x100 image x maps to 50+5x and y to 50-5y.
func frontalCamera(t *testing.T) *camera.Camera {
	t.Helper()
	cam, err := camera.New(camera.Config{
		Position: math.Point3{Z: 10},
		FOV:      90,
		Near:     0.1,
		Far:      100,
	})
	require.NoError(t, err)
	return cam
}

func roomScene(t *testing.T) ([]layout.Panel, *camera.Camera) {
	t.Helper()
	cfg, err := layout.StandardConfig(layout.PresetStandard, layout.PresetStandard)
	require.NoError(t, err)
	room, err := layout.NewThreePanel(cfg)
	require.NoError(t, err)

	eye, target := room.ViewPoint()
	cam, err := camera.LookingAt(eye, target, 75, 0.1, 1000)
	require.NoError(t, err)
	return room.Panels(), cam
}

func TestGenerateFrontalPanel(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lines := g.Generate([]layout.Panel{frontalPanel("Front")}, frontalCamera(t), 100, 100)

	// Spacing 2*0.1/0.5 = 0.4 leaves four interior lines per axis.
	var types []LineType
	for _, l := range lines {
		types = append(types, l.Type)
	}
	want := []LineType{
		Boundary, Boundary, Boundary, Boundary,
		Horizontal, Horizontal, Horizontal, Horizontal,
		Vertical, Vertical, Vertical, Vertical,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("line types mismatch (-want +got):\n%s", diff)
	}

	first := lines[0]
	assert.InDelta(t, 45, first.Start.X, 1e-9)
	assert.InDelta(t, 55, first.Start.Y, 1e-9)
	assert.InDelta(t, 55, first.End.X, 1e-9)
	assert.InDelta(t, 55, first.End.Y, 1e-9)

	for _, l := range lines {
		assert.Equal(t, "Front", l.PanelLabel)
		assert.InDelta(t, 10, l.Length(), 1e-9)
		switch l.Type {
		case Horizontal:
			assert.InDelta(t, l.Start.Y, l.End.Y, 1e-9)
		case Vertical:
			assert.InDelta(t, l.Start.X, l.End.X, 1e-9)
		}
	}
}

func TestGenerateRespectsMaxLinesPerPanel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 100
	cfg.MaxLinesPerPanel = 4
	cfg.ShowPanelBoundaries = false
	cfg.MinLineLength = 0

	lines := NewGenerator(cfg).Generate([]layout.Panel{frontalPanel("Front")}, frontalCamera(t), 100, 100)
	stats := ComputeStats(lines)
	assert.Equal(t, 2, stats.LineTypes[Horizontal])
	assert.Equal(t, 2, stats.LineTypes[Vertical])
	assert.Zero(t, stats.LineTypes[Boundary])
}

func TestGenerateMaxLinesKeepsSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLinesPerPanel = 1
	cfg.ShowPanelBoundaries = false

	g := NewGenerator(cfg)
	assert.LessOrEqual(t, g.spacing(10, 10), 5.0)

	lines := g.Generate([]layout.Panel{frontalPanel("Front")}, frontalCamera(t), 100, 100)
	require.Len(t, lines, 1)
	assert.Equal(t, Horizontal, lines[0].Type)
	// First interior line sits one 0.4 cell above the bottom edge.
	assert.InDelta(t, 53, lines[0].Start.Y, 1e-9)
}

func TestGenerateElongatedPanel(t *testing.T) {
	strip := layout.Panel{
		Label: "Strip",
		Corners: []math.Point3{
			{X: -50, Y: -0.5, Z: 0},
			{X: 50, Y: -0.5, Z: 0},
			{X: 50, Y: 0.5, Z: 0},
			{X: -50, Y: 0.5, Z: 0},
		},
		Normal: math.Vec3{Z: 1},
		Type:   layout.Wall,
	}
	cam := frontalCamera(t)
	require.NoError(t, cam.SetDistanceToTarget(50))

	cfg := DefaultConfig()
	cfg.ShowPanelBoundaries = false
	cfg.MinLineLength = 0
	g := NewGenerator(cfg)

	// Cells stay square and follow the short side.
	assert.InDelta(t, 0.2, g.spacing(100, 1), 1e-12)
	assert.LessOrEqual(t, g.spacing(1000, 10), 5.0)

	stats := ComputeStats(g.Generate([]layout.Panel{strip}, cam, 100, 100))
	assert.Equal(t, 4, stats.LineTypes[Horizontal])
	assert.Equal(t, 50, stats.LineTypes[Vertical])
	assert.Equal(t, 54, stats.TotalLines)
}

func TestGenerateKeepsPointSegmentsWithoutMinimum(t *testing.T) {
	// Edge-on to the camera: the horizontal line at y=0 runs straight
	// along the line of sight and projects to the image center.
	edgeOn := []layout.Panel{{
		Label: "Edge",
		Corners: []math.Point3{
			{X: 0, Y: -0.8, Z: -1},
			{X: 0, Y: -0.8, Z: 1},
			{X: 0, Y: 1.2, Z: 1},
			{X: 0, Y: 1.2, Z: -1},
		},
		Normal: math.Vec3{X: 1},
		Type:   layout.Wall,
	}}
	cam := frontalCamera(t)

	points := func(lines []Line) int {
		n := 0
		for _, l := range lines {
			if l.Length() == 0 {
				n++
			}
		}
		return n
	}

	cfg := DefaultConfig()
	cfg.ShowPanelBoundaries = false
	cfg.MinLineLength = 0
	lines := NewGenerator(cfg).Generate(edgeOn, cam, 100, 100)
	require.Equal(t, 1, points(lines))
	for _, l := range lines {
		if l.Length() == 0 {
			assert.Equal(t, Horizontal, l.Type)
			assert.Equal(t, math.Point2{X: 50, Y: 50}, l.Start)
		}
	}

	lines = NewGenerator(DefaultConfig()).Generate(edgeOn, cam, 100, 100)
	assert.Zero(t, points(lines))
}

func TestDensityIsMonotonic(t *testing.T) {
	panels, cam := roomScene(t)

	count := func(density float64) int {
		cfg := DefaultConfig()
		cfg.Density = density
		return len(NewGenerator(cfg).Generate(panels, cam, 1920, 1080))
	}

	coarse, medium, fine := count(0.2), count(0.5), count(1.0)
	assert.Greater(t, coarse, 0)
	assert.GreaterOrEqual(t, medium, coarse)
	assert.GreaterOrEqual(t, fine, medium)
}

func TestSpacingIsMonotonicAndBounded(t *testing.T) {
	prev := 0.0
	for i, density := range []float64{10, 2, 1, 0.5, 0.2, 0.01, 0.0001} {
		cfg := DefaultConfig()
		cfg.Density = density
		s := NewGenerator(cfg).spacing(144, 96)

		assert.GreaterOrEqual(t, s, 96.0/1000)
		assert.LessOrEqual(t, s, 96.0/2)
		if i > 0 {
			assert.GreaterOrEqual(t, s, prev, "density %v", density)
		}
		prev = s
	}
}

func TestGenerateLineProperties(t *testing.T) {
	panels, cam := roomScene(t)
	cfg := DefaultConfig()
	cfg.MinLineLength = 12
	width, height := 1280, 720

	lines := NewGenerator(cfg).Generate(panels, cam, width, height)
	require.NotEmpty(t, lines)

	vp := ExpandedViewport(width, height)
	labels := map[string]bool{}
	for _, l := range lines {
		labels[l.PanelLabel] = true
		assert.GreaterOrEqual(t, l.Length(), cfg.MinLineLength)
		assert.True(t, l.Start.IsFinite() && l.End.IsFinite())
		assert.Zero(t, Outcode(l.Start, vp), "start %v outside viewport", l.Start)
		assert.Zero(t, Outcode(l.End, vp), "end %v outside viewport", l.End)
	}
	assert.Equal(t, map[string]bool{"Floor": true, "Left Wall": true, "Right Wall": true}, labels)
}

func TestGenerateSkipsMalformedPanels(t *testing.T) {
	bad := frontalPanel("Triangle")
	bad.Corners = bad.Corners[:3]

	flat := frontalPanel("Flat")
	flat.Corners = []math.Point3{{}, {X: 1}, {X: 1}, {}}

	g := NewGenerator(DefaultConfig())
	lines := g.Generate([]layout.Panel{bad, frontalPanel("Front"), flat}, frontalCamera(t), 100, 100)

	require.NotEmpty(t, lines)
	stats := g.Stats(lines)
	assert.Equal(t, []string{"Front"}, stats.PanelLabels())
}

func TestGenerateCameraFacingAway(t *testing.T) {
	cam := frontalCamera(t)
	cam.SetTarget(math.Point3{Z: 20})

	lines := NewGenerator(DefaultConfig()).Generate([]layout.Panel{frontalPanel("Front")}, cam, 100, 100)
	assert.Empty(t, lines)
}

func TestGenerateClipsAtNearPlane(t *testing.T) {
	// A long floor running under and behind the camera.
	floor := layout.Panel{
		Label: "Floor",
		Corners: []math.Point3{
			{X: -10, Y: 0, Z: -50},
			{X: 10, Y: 0, Z: -50},
			{X: 10, Y: 0, Z: 50},
			{X: -10, Y: 0, Z: 50},
		},
		Normal: math.Vec3{Y: 1},
		Type:   layout.Floor,
	}
	cam, err := camera.LookingAt(math.Point3{Y: 1}, math.Point3{Y: 1, Z: -10}, 60, 0.1, 200)
	require.NoError(t, err)

	lines := NewGenerator(DefaultConfig()).Generate([]layout.Panel{floor}, cam, 640, 480)
	require.NotEmpty(t, lines)

	vp := ExpandedViewport(640, 480)
	for _, l := range lines {
		assert.True(t, l.Start.IsFinite() && l.End.IsFinite())
		assert.Zero(t, Outcode(l.Start, vp))
		assert.Zero(t, Outcode(l.End, vp))
	}
}

func TestGenerateWithoutBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowPanelBoundaries = false

	lines := NewGenerator(cfg).Generate([]layout.Panel{frontalPanel("Front")}, frontalCamera(t), 100, 100)
	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.NotEqual(t, Boundary, l.Type)
	}
}

func TestGenerateEmptyViewport(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	assert.Nil(t, g.Generate([]layout.Panel{frontalPanel("Front")}, frontalCamera(t), 0, 100))
	assert.Nil(t, g.Generate(nil, frontalCamera(t), 100, 100))
}

func TestGenerateReflectsCameraChanges(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	cam := frontalCamera(t)
	panels := []layout.Panel{frontalPanel("Front")}

	before := g.Generate(panels, cam, 100, 100)
	require.NoError(t, cam.SetDistanceToTarget(5))
	after := g.Generate(panels, cam, 100, 100)

	require.Len(t, after, len(before))
	// Halving the distance doubles the projected size.
	assert.InDelta(t, 2*before[0].Length(), after[0].Length(), 1e-9)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero density", func(c *Config) { c.Density = 0 }},
		{"negative density", func(c *Config) { c.Density = -1 }},
		{"negative min length", func(c *Config) { c.MinLineLength = -0.5 }},
		{"negative max lines", func(c *Config) { c.MaxLinesPerPanel = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
