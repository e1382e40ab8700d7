package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"mirrorbox/internal/engine/lighting"
	"mirrorbox/internal/engine/mirror"
	"mirrorbox/internal/engine/shadow"
	"mirrorbox/pkg/math"
)

// Geometry names the builder expects to find registered.
const (
	RoomGeometry  = "roomGeo"
	SkullGeometry = "skullGeo"
)

// SkullCount is the number of movable skulls in the scene.
const SkullCount = 2

// skullTranslations are the skulls' starting positions.
var skullTranslations = [SkullCount]math.Vec3{
	{X: 0, Y: 0, Z: -4},
	{X: 0, Y: 0, Z: 12},
}

// SkullWorld composes a skull's world transform from its translation: the
// shared scale and facing rotation, then the per-skull offset.
func SkullWorld(t math.Vec3) math.Mat4 {
	return math.Translate(t.X, t.Y, t.Z).
		Mul(math.Scale(0.45, 0.45, 0.45)).
		Mul(math.RotateY(0.5 * math32.Pi))
}

// Handles caches the item handles the per-frame update touches: the movable
// skulls, their six reflected copies each, and their shadow copies.
type Handles struct {
	// Skulls holds the selectable skull items.
	Skulls [SkullCount]ItemID

	// Translations mirrors each skull's current position; the world
	// transforms of the skull and all its copies derive from it.
	Translations [SkullCount]math.Vec3

	// Reflected holds, per mirror side, one copy handle per skull.
	Reflected [mirror.Count][SkullCount]ItemID

	// Shadows holds each skull's projected-shadow copy.
	Shadows [SkullCount]ItemID
}

// Build registers the material table and populates the store with the mirror
// box scene: the room faces, the skulls, and the skulls' reflected and shadow
// copies. ringDepth seeds every dirty counter so the first frames upload all
// constants. The room and skull geometries must already be registered.
func Build(store *Store, ringDepth int) (*Handles, error) {
	buildMaterials(store, ringDepth)

	room, err := store.Geometry(RoomGeometry)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	skullGeo, err := store.Geometry(SkullGeometry)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	item := func(name, matName string, geo *Geometry, submesh string, world math.Mat4) (RenderItem, error) {
		mat, err := store.Material(matName)
		if err != nil {
			return RenderItem{}, fmt.Errorf("building item %s: %w", name, err)
		}
		sub, err := geo.Submesh(submesh)
		if err != nil {
			return RenderItem{}, fmt.Errorf("building item %s: %w", name, err)
		}
		return RenderItem{
			Name:         name,
			World:        world,
			TexTransform: math.Identity(),
			FramesDirty:  ringDepth,
			Mat:          mat,
			Geo:          geo,
			IndexCount:   sub.IndexCount,
			StartIndex:   sub.StartIndex,
			BaseVertex:   sub.BaseVertex,
			Topology:     TriangleList,
		}, nil
	}

	// The floor and wall predate the closed box and draw zero indices, but
	// keeping them exercises the empty-range path.
	floor, err := item("floor", "checkertile", room, "floor", math.Identity())
	if err != nil {
		return nil, err
	}
	store.AddItem(floor, LayerOpaque)

	wall, err := item("wall", "bricks", room, "wall", math.Identity())
	if err != nil {
		return nil, err
	}
	store.AddItem(wall, LayerOpaque)

	h := &Handles{Translations: skullTranslations}

	for i := 0; i < SkullCount; i++ {
		t := skullTranslations[i]
		world := SkullWorld(t)

		skull, err := item(fmt.Sprintf("skull%d", i), "skullMat", skullGeo, "skull", world)
		if err != nil {
			return nil, err
		}
		h.Skulls[i] = store.AddItem(skull, LayerOpaque)

		for _, side := range mirror.DrawOrder {
			refl, err := item(fmt.Sprintf("skull%d/%s", i, side), "skullMat", skullGeo, "skull",
				side.ReflectedWorld(world))
			if err != nil {
				return nil, err
			}
			h.Reflected[side][i] = store.AddItem(refl, ReflectedLayer(side))
		}

		shadowItem, err := item(fmt.Sprintf("skull%d/shadow", i), "shadowMat", skullGeo, "skull",
			shadow.World(world, lighting.PrimaryDirection))
		if err != nil {
			return nil, err
		}
		h.Shadows[i] = store.AddItem(shadowItem, LayerShadow)
	}

	for _, side := range mirror.DrawOrder {
		name := "mirror" + side.String()
		face, err := item(name, "icemirror", room, name, math.Identity())
		if err != nil {
			return nil, err
		}
		// Mirror faces draw twice: stencil-marked per side, then blended
		// over the scene as glass.
		store.AddItem(face, MirrorLayer(side), LayerTransparent)
	}

	return h, nil
}

func buildMaterials(store *Store, ringDepth int) {
	mats := []*Material{
		{
			Name: "bricks", CBIndex: 0, TexIndex: 0,
			DiffuseAlbedo: [4]float32{1, 1, 1, 1},
			FresnelR0:     math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
			Roughness:     0.25,
		},
		{
			Name: "checkertile", CBIndex: 1, TexIndex: 1,
			DiffuseAlbedo: [4]float32{1, 1, 1, 1},
			FresnelR0:     math.Vec3{X: 0.07, Y: 0.07, Z: 0.07},
			Roughness:     0.3,
		},
		{
			Name: "icemirror", CBIndex: 2, TexIndex: 2,
			DiffuseAlbedo: [4]float32{1, 1, 1, 0.3},
			FresnelR0:     math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
			Roughness:     0.5,
		},
		{
			Name: "skullMat", CBIndex: 3, TexIndex: 3,
			DiffuseAlbedo: [4]float32{1, 1, 1, 1},
			FresnelR0:     math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
			Roughness:     0.3,
		},
		{
			Name: "shadowMat", CBIndex: 4, TexIndex: 3,
			DiffuseAlbedo: [4]float32{0, 0, 0, 0.5},
			FresnelR0:     math.Vec3{X: 0.001, Y: 0.001, Z: 0.001},
			Roughness:     0,
		},
	}
	for _, m := range mats {
		m.Transform = math.Identity()
		m.FramesDirty = ringDepth
		store.AddMaterial(m)
	}
}
