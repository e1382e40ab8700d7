// Package mirror defines the six reflection sides of the mirror box and the
// world-transform composition for objects reflected in them.
package mirror

import (
	"fmt"

	"mirrorbox/pkg/math"
)

// Side identifies one of the six mirror faces of the room.
type Side int

const (
	Front Side = iota
	Back
	Left
	Right
	Top
	Bottom

	sideCount
)

// Count is the number of reflection sides.
const Count = int(sideCount)

// DrawOrder is the fixed order in which the compositor processes the sides.
var DrawOrder = [Count]Side{Front, Back, Left, Right, Top, Bottom}

// clip axes index the translation component tested against the side's bound.
const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// descriptor binds a side to its plane equation, the translation that places
// the reflected copy onto the physical mirror surface, and the half-space in
// which the reflected copy stays visible.
type descriptor struct {
	name   string
	plane  math.Vec4
	offset math.Vec3
	axis   int
	bound  float32
	// collapse when the tested component exceeds bound (true) or falls
	// below it (false)
	collapseAbove bool
}

var sides = [Count]descriptor{
	Front:  {"Front", math.Vec4{0, 0, 1, 0}, math.Vec3{X: 0, Y: 0, Z: 0}, axisZ, 0, false},
	Back:   {"Back", math.Vec4{0, 0, 1, 0}, math.Vec3{X: 0, Y: 0, Z: 16}, axisZ, 8, true},
	Left:   {"Left", math.Vec4{1, 0, 0, 0}, math.Vec3{X: -8, Y: 0, Z: 0}, axisX, -4, false},
	Right:  {"Right", math.Vec4{1, 0, 0, 0}, math.Vec3{X: 8, Y: 0, Z: 0}, axisX, 4, true},
	Top:    {"Top", math.Vec4{0, 1, 0, 0}, math.Vec3{X: 0, Y: 8, Z: 0}, axisY, 4, true},
	Bottom: {"Bottom", math.Vec4{0, 1, 0, 0}, math.Vec3{X: 0, Y: -8, Z: 0}, axisY, -4, false},
}

func (s Side) desc() descriptor {
	if s < 0 || s >= sideCount {
		panic(fmt.Sprintf("mirror: invalid side %d", int(s)))
	}
	return sides[s]
}

// String returns the side name.
func (s Side) String() string { return s.desc().name }

// Plane returns the side's mirror plane equation (a, b, c, d).
func (s Side) Plane() math.Vec4 { return s.desc().plane }

// Offset returns the translation that repositions the reflected copy onto the
// side's mirror surface.
func (s Side) Offset() math.Vec3 { return s.desc().offset }

// Reflection returns the reflection matrix across the side's plane.
func (s Side) Reflection() math.Mat4 { return math.Reflect(s.desc().plane) }

// VisibilityClip returns a zero-scale matrix when the object's world
// transform has crossed to the wrong side of the mirror's boundary,
// collapsing the reflected copy to a point, and an identity scale otherwise.
// This stands in for true clip-plane rendering on the CPU.
func (s Side) VisibilityClip(world math.Mat4) math.Mat4 {
	d := s.desc()
	t := world.Translation()
	v := [3]float32{t.X, t.Y, t.Z}[d.axis]

	past := v < d.bound
	if d.collapseAbove {
		past = v > d.bound
	}
	if past {
		return math.Scale(0, 0, 0)
	}
	return math.Scale(1, 1, 1)
}

// ReflectedWorld composes the full world transform of a reflected copy:
// the source world transform, reflected across the side's plane, offset onto
// the mirror surface, then visibility-clipped. The multiplication order is
// load-bearing; matrix products do not commute.
func (s Side) ReflectedWorld(world math.Mat4) math.Mat4 {
	d := s.desc()
	reflected := math.Translate(d.offset.X, d.offset.Y, d.offset.Z).
		Mul(math.Reflect(d.plane)).
		Mul(world)
	return s.VisibilityClip(world).Mul(reflected)
}
