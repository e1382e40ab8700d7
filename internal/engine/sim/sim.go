// Package sim advances the mirror box simulation: it applies input to the
// camera and the selected skull, keeps every derived copy's transform in
// step, and fills the current frame resource's constants.
package sim

import (
	"github.com/chewxy/math32"

	"mirrorbox/internal/engine/camera"
	"mirrorbox/internal/engine/frame"
	"mirrorbox/internal/engine/input"
	"mirrorbox/internal/engine/lighting"
	"mirrorbox/internal/engine/mirror"
	"mirrorbox/internal/engine/scene"
	"mirrorbox/internal/engine/shadow"
	"mirrorbox/pkg/math"
)

// MoveSpeed is the skull movement speed in scene units per second.
const MoveSpeed = 2.0

// Projection parameters.
const (
	fovY = 0.25 * math32.Pi
	near = 1.0
	far  = 1000.0
)

// Sim owns the per-frame update state. All simulation state lives here;
// nothing is package-global.
type Sim struct {
	store   *scene.Store
	handles *scene.Handles
	ring    *frame.Ring
	cam     *camera.OrbitCamera

	proj      math.Mat4
	width     int
	height    int
	selected  int
	totalTime float32
}

// New creates a simulation over an already built scene.
func New(store *scene.Store, handles *scene.Handles, ring *frame.Ring, cam *camera.OrbitCamera) *Sim {
	return &Sim{
		store:   store,
		handles: handles,
		ring:    ring,
		cam:     cam,
	}
}

// Selected returns the index of the currently selected skull.
func (s *Sim) Selected() int {
	return s.selected
}

// Resize updates the projection for a new drawable size.
func (s *Sim) Resize(width, height int) {
	s.width = width
	s.height = height
	aspect := float32(width) / float32(height)
	s.proj = math.Perspective(fovY, aspect, near, far)
}

// Update runs one simulation tick: it advances the frame ring (the only
// blocking point), applies the input sample, refreshes the transforms
// derived from any moved skull, and writes every dirty constant into the
// returned frame resource.
func (s *Sim) Update(in input.Sample, dt float32) *frame.Resource {
	res := s.ring.Advance()

	if in.Resized && in.Width > 0 && in.Height > 0 {
		s.Resize(in.Width, in.Height)
	}

	s.cam.Orbit(in.OrbitX, in.OrbitY)
	s.cam.Zoom(in.Zoom)

	if in.Select != input.NoSelection && in.Select < scene.SkullCount {
		s.selected = in.Select
	}

	if in.Move.X != 0 || in.Move.Y != 0 || in.Move.Z != 0 {
		s.moveSkull(s.selected, in.Move, dt)
	}

	s.totalTime += dt
	s.writeObjectConstants(res)
	s.writeMaterialConstants(res)
	s.writePassConstants(res, dt)

	return res
}

// moveSkull displaces a skull and rebuilds the transforms of the skull item,
// its six reflected copies, and its shadow copy, marking each dirty for every
// in-flight frame.
func (s *Sim) moveSkull(i int, move math.Vec3, dt float32) {
	t := &s.handles.Translations[i]
	t.X += move.X * MoveSpeed * dt
	t.Y += move.Y * MoveSpeed * dt
	t.Z += move.Z * MoveSpeed * dt

	world := scene.SkullWorld(*t)
	depth := s.ring.Depth()

	skull := s.store.Item(s.handles.Skulls[i])
	skull.World = world
	skull.FramesDirty = depth

	for _, side := range mirror.DrawOrder {
		refl := s.store.Item(s.handles.Reflected[side][i])
		refl.World = side.ReflectedWorld(world)
		refl.FramesDirty = depth
	}

	sh := s.store.Item(s.handles.Shadows[i])
	sh.World = shadow.World(world, lighting.PrimaryDirection)
	sh.FramesDirty = depth
}

func (s *Sim) writeObjectConstants(res *frame.Resource) {
	for i := 0; i < s.store.Len(); i++ {
		it := s.store.Item(scene.ItemID(i))
		if it.FramesDirty <= 0 {
			continue
		}
		res.Objects[it.ObjIndex] = frame.ObjectConstants{
			World:        it.World,
			TexTransform: it.TexTransform,
		}
		it.FramesDirty--
	}
}

func (s *Sim) writeMaterialConstants(res *frame.Resource) {
	for _, m := range s.store.Materials() {
		if m.FramesDirty <= 0 {
			continue
		}
		res.Materials[m.CBIndex] = frame.MaterialConstants{
			DiffuseAlbedo: m.DiffuseAlbedo,
			FresnelR0:     m.FresnelR0,
			Roughness:     m.Roughness,
			Transform:     m.Transform,
		}
		m.FramesDirty--
	}
}

// writePassConstants rebuilds both pass slots from scratch. The reflected
// pass carries the light rig mirrored across the front mirror plane so
// reflected geometry is lit from inside the mirror.
func (s *Sim) writePassConstants(res *frame.Resource, dt float32) {
	view := s.cam.ViewMatrix()
	viewProj := s.proj.Mul(view)

	main := frame.PassConstants{
		View:        view,
		InvView:     view.Inverse(),
		Proj:        s.proj,
		InvProj:     s.proj.Inverse(),
		ViewProj:    viewProj,
		InvViewProj: viewProj.Inverse(),

		EyePos:              s.cam.Position(),
		RenderTargetSize:    math.Vec2{X: float32(s.width), Y: float32(s.height)},
		InvRenderTargetSize: math.Vec2{X: 1 / float32(s.width), Y: 1 / float32(s.height)},
		NearZ:               near,
		FarZ:                far,
		TotalTime:           s.totalTime,
		DeltaTime:           dt,

		AmbientLight: lighting.Ambient,
		Lights:       lighting.Rig(),
	}
	res.Pass[frame.MainPass] = main

	reflected := main
	reflected.Lights = lighting.ReflectLights(main.Lights, mirror.Front.Plane())
	res.Pass[frame.ReflectedPass] = reflected
}
