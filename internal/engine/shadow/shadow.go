// Package shadow computes planar projected-shadow transforms for objects in
// the mirror box.
package shadow

import "mirrorbox/pkg/math"

// GroundPlane is the plane shadows are flattened onto (the xz plane).
var GroundPlane = math.Vec4{0, 1, 0, 0}

// liftOffset raises flattened geometry slightly above the floor so the shadow
// does not z-fight with it.
const liftOffset = 0.001

// Matrix returns the projection that flattens geometry onto the ground plane
// along the given light direction (the direction light travels, not the
// direction toward the light).
func Matrix(lightDir math.Vec3) math.Mat4 {
	toLight := lightDir.Neg()
	return math.Shadow(GroundPlane, math.Vec4{toLight.X, toLight.Y, toLight.Z, 0})
}

// World composes the world transform of an object's shadow copy: the source
// world transform, flattened onto the ground plane, then lifted by a small
// constant offset against depth fighting.
func World(world math.Mat4, lightDir math.Vec3) math.Mat4 {
	return math.Translate(0, liftOffset, 0).
		Mul(Matrix(lightDir)).
		Mul(world)
}
