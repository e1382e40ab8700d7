// Package frame provides the per-in-flight-frame constant storage ring and
// the GPU completion fence contract it synchronizes against.
package frame

import "mirrorbox/pkg/math"

// Pass constant slots within one frame resource.
const (
	MainPass      = 0
	ReflectedPass = 1

	passCount = 2
)

// ObjectConstants is the per-object uniform block.
type ObjectConstants struct {
	World        math.Mat4
	TexTransform math.Mat4
}

// MaterialConstants is the per-material uniform block.
type MaterialConstants struct {
	DiffuseAlbedo [4]float32
	FresnelR0     math.Vec3
	Roughness     float32
	Transform     math.Mat4
}

// Light describes one light source. Directional lights use Direction and
// Strength; point lights add Position and falloff; spot lights add SpotPower.
type Light struct {
	Strength     math.Vec3
	FalloffStart float32
	Direction    math.Vec3
	FalloffEnd   float32
	Position     math.Vec3
	SpotPower    float32
}

// MaxLights is the number of light slots in the pass constants.
const MaxLights = 3

// PassConstants is the per-draw-pass uniform block, rebuilt from scratch
// every frame.
type PassConstants struct {
	View        math.Mat4
	InvView     math.Mat4
	Proj        math.Mat4
	InvProj     math.Mat4
	ViewProj    math.Mat4
	InvViewProj math.Mat4

	EyePos              math.Vec3
	RenderTargetSize    math.Vec2
	InvRenderTargetSize math.Vec2
	NearZ               float32
	FarZ                float32
	TotalTime           float32
	DeltaTime           float32

	AmbientLight [4]float32
	Lights       [MaxLights]Light
}
