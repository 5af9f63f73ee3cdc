// Package camera provides the virtual camera the grid is photographed from.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/perspective-grid/pkg/math"
)

// FOV limits in degrees.
const (
	MinFOV = 1.0
	MaxFOV = 179.0
)

var (
	ErrFOVOutOfRange     = errors.New("field of view out of range")
	ErrInvalidClipPlanes = errors.New("clip planes must satisfy 0 < near < far")
	ErrInvalidDistance   = errors.New("distance must be positive")
	ErrCoincidentTarget  = errors.New("camera and target cannot be at the same position")
	ErrZeroUpVector      = errors.New("up vector must be non-zero")
	ErrUpParallel        = errors.New("up vector must not be parallel to the view direction")
)

// Config holds the initial camera parameters.
type Config struct {
	Position math.Point3
	Target   math.Point3
	FOV      float64 // Vertical field of view, degrees
	Near     float64
	Far      float64
	Up       math.Vec3 // Zero means +Y
}

// DefaultConfig returns a camera looking at the origin from slightly above and behind.
func DefaultConfig() Config {
	return Config{
		Position: math.Point3{X: 0, Y: 4, Z: 8},
		FOV:      50,
		Near:     0.1,
		Far:      100,
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// Camera is a perspective camera aimed at a target point.
//
// View and projection matrices are rebuilt from the current fields on every
// call, so a mutation is always visible to the next read. A Camera is not
// safe for concurrent use.
type Camera struct {
	position math.Point3
	target   math.Point3
	fov      float64
	near     float64
	far      float64
	up       math.Vec3
}

// New creates a camera, rejecting out-of-range parameters.
func New(cfg Config) (*Camera, error) {
	if cfg.Up.IsZero() {
		cfg.Up = math.Vec3{X: 0, Y: 1, Z: 0}
	}
	if err := checkFOV(cfg.FOV); err != nil {
		return nil, err
	}
	if err := checkClipPlanes(cfg.Near, cfg.Far); err != nil {
		return nil, err
	}
	if err := checkView(cfg.Position, cfg.Target, cfg.Up); err != nil {
		return nil, err
	}
	return &Camera{
		position: cfg.Position,
		target:   cfg.Target,
		fov:      cfg.FOV,
		near:     cfg.Near,
		far:      cfg.Far,
		up:       cfg.Up,
	}, nil
}

// Config returns a snapshot of the camera parameters.
func (c *Camera) Config() Config {
	return Config{
		Position: c.position,
		Target:   c.target,
		FOV:      c.fov,
		Near:     c.near,
		Far:      c.far,
		Up:       c.up,
	}
}

// Position returns the camera position in world space.
func (c *Camera) Position() math.Point3 {
	return c.position
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(p math.Point3) {
	c.position = p
}

// Target returns the point the camera looks at.
func (c *Camera) Target() math.Point3 {
	return c.target
}

// SetTarget changes the point the camera looks at.
func (c *Camera) SetTarget(p math.Point3) {
	c.target = p
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 {
	return c.fov
}

// SetFOV sets the vertical field of view in degrees.
// Values outside [MinFOV, MaxFOV] are rejected and leave the camera unchanged.
func (c *Camera) SetFOV(deg float64) error {
	if err := checkFOV(deg); err != nil {
		return err
	}
	c.fov = deg
	return nil
}

// Near returns the near clip distance.
func (c *Camera) Near() float64 {
	return c.near
}

// Far returns the far clip distance.
func (c *Camera) Far() float64 {
	return c.far
}

// SetClipPlanes sets the near and far clip distances.
func (c *Camera) SetClipPlanes(near, far float64) error {
	if err := checkClipPlanes(near, far); err != nil {
		return err
	}
	c.near, c.far = near, far
	return nil
}

// Up returns the up vector.
func (c *Camera) Up() math.Vec3 {
	return c.up
}

// SetUp sets the up vector.
func (c *Camera) SetUp(v math.Vec3) error {
	if v.IsZero() {
		return ErrZeroUpVector
	}
	c.up = v
	return nil
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.target, c.up)
}

// ProjectionMatrix returns the perspective projection for the given width/height ratio.
func (c *Camera) ProjectionMatrix(aspect float64) math.Mat4 {
	return math.Perspective(math.Radians(c.fov), aspect, c.near, c.far)
}

// DistanceToTarget returns the distance between position and target.
func (c *Camera) DistanceToTarget() float64 {
	return c.position.Distance(c.target)
}

// SetDistanceToTarget moves the camera along its current line of sight so
// that it sits d units from the target. The target does not move.
func (c *Camera) SetDistanceToTarget(d float64) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, d)
	}
	current := c.DistanceToTarget()
	if current == 0 {
		return ErrCoincidentTarget
	}

	dir := c.position.Sub(c.target).Scale(1 / current)
	c.position = c.target.Add(dir.Scale(d))
	return nil
}

// OrbitAroundTarget places the camera on a sphere around the target.
// Azimuth 0 points along +X, elevation 0 is the horizontal plane and
// 90 is straight up.
func (c *Camera) OrbitAroundTarget(azimuthDeg, elevationDeg, d float64) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, d)
	}

	az := math.Radians(azimuthDeg)
	el := math.Radians(elevationDeg)

	offset := math.Vec3{
		X: d * gomath.Cos(el) * gomath.Cos(az),
		Y: d * gomath.Sin(el),
		Z: d * gomath.Cos(el) * gomath.Sin(az),
	}
	c.position = c.target.Add(offset)
	return nil
}

func checkFOV(deg float64) error {
	if gomath.IsNaN(deg) || deg < MinFOV || deg > MaxFOV {
		return fmt.Errorf("%w: %v (must be between %v and %v degrees)", ErrFOVOutOfRange, deg, MinFOV, MaxFOV)
	}
	return nil
}

// checkView rejects setups where LookAt has no defined orientation.
func checkView(position, target math.Point3, up math.Vec3) error {
	forward := target.Sub(position)
	if forward.IsZero() {
		return fmt.Errorf("%w: %v", ErrCoincidentTarget, position)
	}
	if forward.Cross(up).IsZero() {
		return fmt.Errorf("%w: up=%v forward=%v", ErrUpParallel, up, forward)
	}
	return nil
}

func checkClipPlanes(near, far float64) error {
	if !(near > 0) || !(far > near) {
		return fmt.Errorf("%w: near=%v far=%v", ErrInvalidClipPlanes, near, far)
	}
	return nil
}
