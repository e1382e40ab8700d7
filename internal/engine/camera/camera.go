// Package camera provides the orbit camera for the mirror box demo.
package camera

import (
	"github.com/chewxy/math32"

	"mirrorbox/pkg/math"
)

// Orbit constraints. The polar angle stays clear of the poles to avoid the
// look-at singularity; the radius keeps the camera between the skulls and the
// far clip plane.
const (
	MinPolar  = 0.1
	MaxPolar  = math32.Pi - 0.1
	MinRadius = 5.0
	MaxRadius = 150.0
)

// OrbitCamera orbits the world origin on a sphere described by an azimuth
// angle, a polar angle and a radius.
type OrbitCamera struct {
	Azimuth float32 // horizontal angle, radians, unconstrained
	Polar   float32 // vertical angle, radians, clamped to (MinPolar, MaxPolar)
	Radius  float32 // distance from the origin, clamped to [MinRadius, MaxRadius]
}

// New returns an orbit camera at the demo's initial viewpoint.
func New() *OrbitCamera {
	return &OrbitCamera{
		Azimuth: 1.24 * math32.Pi,
		Polar:   0.42 * math32.Pi,
		Radius:  12.0,
	}
}

// Orbit applies azimuth/polar deltas in radians and re-clamps the polar angle.
func (c *OrbitCamera) Orbit(dAzimuth, dPolar float32) {
	c.Azimuth += dAzimuth
	c.Polar = clamp(c.Polar+dPolar, MinPolar, MaxPolar)
}

// Zoom applies a radius delta in world units and re-clamps the radius.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Radius = clamp(c.Radius+delta, MinRadius, MaxRadius)
}

// Position returns the eye position in world space, converting the spherical
// coordinates to Cartesian.
func (c *OrbitCamera) Position() math.Vec3 {
	return math.Vec3{
		X: c.Radius * math32.Sin(c.Polar) * math32.Cos(c.Azimuth),
		Y: c.Radius * math32.Cos(c.Polar),
		Z: c.Radius * math32.Sin(c.Polar) * math32.Sin(c.Azimuth),
	}
}

// ViewMatrix returns the look-at view matrix toward the origin.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
