package scene

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup of a material, geometry, submesh, or item that
// was never registered.
var ErrNotFound = errors.New("not found")

type notFoundError struct {
	kind string
	name string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("scene: %s %q not found", e.kind, e.name)
}

func (e *notFoundError) Unwrap() error { return ErrNotFound }

// ItemID is a stable handle into the render-item arena.
type ItemID int

// NoItem is the zero-value-adjacent invalid handle.
const NoItem ItemID = -1

// Store is the scene's entity arena: render items addressed by stable
// handles, plus the material and geometry registries and per-layer draw
// buckets. Items are only ever appended, so handles stay valid for the life
// of the scene.
type Store struct {
	items      []RenderItem
	materials  map[string]*Material
	geometries map[string]*Geometry
	layers     [LayerCount][]ItemID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		materials:  make(map[string]*Material),
		geometries: make(map[string]*Geometry),
	}
}

// AddGeometry registers a named geometry and returns its record.
func (s *Store) AddGeometry(g *Geometry) *Geometry {
	s.geometries[g.Name] = g
	return g
}

// Geometry looks up a registered geometry by name.
func (s *Store) Geometry(name string) (*Geometry, error) {
	g, ok := s.geometries[name]
	if !ok {
		return nil, &notFoundError{kind: "geometry", name: name}
	}
	return g, nil
}

// Geometries returns all registered geometries.
func (s *Store) Geometries() []*Geometry {
	out := make([]*Geometry, 0, len(s.geometries))
	for _, g := range s.geometries {
		out = append(out, g)
	}
	return out
}

// AddMaterial registers a material and returns its record.
func (s *Store) AddMaterial(m *Material) *Material {
	s.materials[m.Name] = m
	return m
}

// Material looks up a registered material by name.
func (s *Store) Material(name string) (*Material, error) {
	m, ok := s.materials[name]
	if !ok {
		return nil, &notFoundError{kind: "material", name: name}
	}
	return m, nil
}

// Materials returns all registered materials.
func (s *Store) Materials() []*Material {
	out := make([]*Material, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, m)
	}
	return out
}

// MaterialCount returns the number of registered materials.
func (s *Store) MaterialCount() int {
	return len(s.materials)
}

// AddItem appends an item to the arena, assigns it a unique object-constant
// slot, files its handle into the given layers, and returns the handle.
func (s *Store) AddItem(it RenderItem, layers ...Layer) ItemID {
	it.ObjIndex = len(s.items)
	id := ItemID(len(s.items))
	s.items = append(s.items, it)
	for _, l := range layers {
		s.layers[l] = append(s.layers[l], id)
	}
	return id
}

// Item returns the mutable record behind a handle.
func (s *Store) Item(id ItemID) *RenderItem {
	return &s.items[id]
}

// Len returns the number of items in the arena.
func (s *Store) Len() int {
	return len(s.items)
}

// Layer returns the handles filed into a draw bucket, in insertion order.
func (s *Store) Layer(l Layer) []ItemID {
	return s.layers[l]
}
