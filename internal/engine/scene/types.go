// Package scene holds the render-item arena, its draw-layer buckets, and the
// builder that populates the mirror box scene.
package scene

import (
	"mirrorbox/internal/engine/mirror"
	"mirrorbox/internal/engine/model"
	"mirrorbox/pkg/math"
)

// Topology selects the primitive type a render item is drawn with.
type Topology int

const (
	TriangleList Topology = iota
	LineList
)

// Material is a CPU-side material record. FramesDirty counts the in-flight
// frame resources that still hold a stale copy of its constants.
type Material struct {
	Name     string
	CBIndex  int
	TexIndex int

	DiffuseAlbedo [4]float32
	FresnelR0     math.Vec3
	Roughness     float32
	Transform     math.Mat4

	FramesDirty int
}

// Geometry pairs a CPU mesh with the GPU buffer handles the backend fills in
// on upload.
type Geometry struct {
	Name string
	Mesh *model.Mesh

	VAO uint32
	VBO uint32
	EBO uint32
}

// Submesh resolves a named index range of the geometry.
func (g *Geometry) Submesh(name string) (model.Submesh, error) {
	sub, ok := g.Mesh.Submeshes[name]
	if !ok {
		return model.Submesh{}, &notFoundError{kind: "submesh", name: g.Name + "/" + name}
	}
	return sub, nil
}

// RenderItem is one drawable record in the arena. Draw arguments are resolved
// from the submesh at creation time so the compositor never touches name maps.
type RenderItem struct {
	Name string

	World        math.Mat4
	TexTransform math.Mat4

	// FramesDirty counts the in-flight frame resources still holding stale
	// object constants for this item.
	FramesDirty int

	// ObjIndex is the item's slot in every frame resource's object buffer.
	ObjIndex int

	Mat *Material
	Geo *Geometry

	IndexCount int
	StartIndex int
	BaseVertex int

	Topology Topology
}

// Layer is a draw bucket. Fixed layers come first; each mirror side then owns
// a mirror-surface bucket and a reflected-copy bucket.
type Layer int

const (
	LayerOpaque Layer = iota
	LayerTransparent
	LayerShadow

	layerFixed
)

// LayerCount is the total number of draw buckets.
const LayerCount = int(layerFixed) + 2*mirror.Count

// MirrorLayer returns the bucket holding the given side's mirror surface.
func MirrorLayer(s mirror.Side) Layer {
	return layerFixed + Layer(s)
}

// ReflectedLayer returns the bucket holding the reflected copies visible in
// the given side.
func ReflectedLayer(s mirror.Side) Layer {
	return layerFixed + Layer(mirror.Count) + Layer(s)
}
