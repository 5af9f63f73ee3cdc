package camera

import "github.com/Faultbox/perspective-grid/pkg/math"

// Standard returns a camera slightly above and behind the origin, looking at it.
func Standard(distance, fovDeg float64) (*Camera, error) {
	if distance <= 0 {
		return nil, ErrInvalidDistance
	}
	cfg := DefaultConfig()
	cfg.Position = math.Point3{X: 0, Y: 4, Z: distance}
	cfg.FOV = fovDeg
	return New(cfg)
}

// NearOrthographic returns a camera whose 1 degree field of view
// approximates a parallel projection.
func NearOrthographic(distance float64) (*Camera, error) {
	if distance <= 0 {
		return nil, ErrInvalidDistance
	}
	cfg := DefaultConfig()
	cfg.Position = math.Point3{X: 0, Y: 4, Z: distance}
	cfg.FOV = MinFOV
	cfg.Far = distance * 2
	return New(cfg)
}

// LookingAt returns a camera at eye aimed at target.
func LookingAt(eye, target math.Point3, fovDeg, near, far float64) (*Camera, error) {
	cfg := DefaultConfig()
	cfg.Position = eye
	cfg.Target = target
	cfg.FOV = fovDeg
	cfg.Near = near
	cfg.Far = far
	return New(cfg)
}
