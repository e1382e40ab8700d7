// Package lighting defines the fixed light rig of the mirror box scene.
package lighting

import (
	"mirrorbox/internal/engine/frame"
	"mirrorbox/pkg/math"
)

// Ambient is the scene's ambient light color.
var Ambient = [4]float32{0.25, 0.25, 0.35, 1.0}

// PrimaryDirection is the direction the main directional light travels.
// Projected shadows are cast along it.
var PrimaryDirection = math.Vec3{X: 0.57735, Y: -0.57735, Z: 0.57735}

// Rig returns the three scene lights: the main directional light, a red
// point light, and a green spot light.
func Rig() [frame.MaxLights]frame.Light {
	return [frame.MaxLights]frame.Light{
		{
			Direction:    PrimaryDirection,
			Strength:     math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
			FalloffStart: 1,
			FalloffEnd:   10,
		},
		{
			Strength:     math.Vec3{X: 5, Y: 0, Z: 0},
			Position:     math.Vec3{X: 1, Y: -3, Z: -5},
			FalloffStart: 1,
			FalloffEnd:   10,
		},
		{
			Direction:    math.Vec3{X: 0, Y: -1, Z: 0},
			Strength:     math.Vec3{X: 0, Y: 10, Z: 0},
			Position:     math.Vec3{X: 1, Y: 4, Z: -4},
			SpotPower:    100,
			FalloffStart: 1,
			FalloffEnd:   10,
		},
	}
}

// ReflectLights mirrors the directional and positional components of each
// light across the given plane, producing the light rig seen inside a mirror.
func ReflectLights(lights [frame.MaxLights]frame.Light, plane math.Vec4) [frame.MaxLights]frame.Light {
	r := math.Reflect(plane)
	out := lights
	for i := range out {
		out[i].Direction = r.TransformDirection(lights[i].Direction)
		out[i].Position = r.TransformPoint(lights[i].Position)
	}
	return out
}
