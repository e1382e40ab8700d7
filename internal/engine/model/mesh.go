// Package model provides CPU-side mesh data: a plain-text mesh loader and
// the procedural room geometry of the mirror box.
package model

import (
	"bufio"
	"fmt"
	"os"

	"mirrorbox/pkg/math"
)

// Vertex is the interleaved vertex layout shared by all geometry.
type Vertex struct {
	Pos    math.Vec3
	Normal math.Vec3
	UV     math.Vec2
}

// Submesh is an index range within a mesh's shared index buffer.
type Submesh struct {
	IndexCount int
	StartIndex int
	BaseVertex int
}

// Mesh holds one shared vertex/index buffer pair and its named submeshes.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Submeshes map[string]Submesh
}

// LoadMesh reads the plain-text mesh format:
//
//	VertexCount: N
//	TriangleCount: M
//	VertexList (pos, normal)
//	{
//	  x y z nx ny nz
//	  ...
//	}
//	TriangleList
//	{
//	  i0 i1 i2
//	  ...
//	}
//
// The format carries no texture coordinates; UVs are zeroed. The whole mesh
// becomes a single submesh named after the submesh argument.
func LoadMesh(path, submesh string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var ignore string
	var vcount, tcount int
	if _, err := fmt.Fscan(r, &ignore, &vcount); err != nil {
		return nil, fmt.Errorf("reading vertex count: %w", err)
	}
	if _, err := fmt.Fscan(r, &ignore, &tcount); err != nil {
		return nil, fmt.Errorf("reading triangle count: %w", err)
	}
	// "VertexList (pos, normal) {"
	if _, err := fmt.Fscan(r, &ignore, &ignore, &ignore, &ignore); err != nil {
		return nil, fmt.Errorf("reading vertex list header: %w", err)
	}

	vertices := make([]Vertex, vcount)
	for i := range vertices {
		v := &vertices[i]
		_, err := fmt.Fscan(r,
			&v.Pos.X, &v.Pos.Y, &v.Pos.Z,
			&v.Normal.X, &v.Normal.Y, &v.Normal.Z)
		if err != nil {
			return nil, fmt.Errorf("reading vertex %d: %w", i, err)
		}
	}

	// "} TriangleList {"
	if _, err := fmt.Fscan(r, &ignore, &ignore, &ignore); err != nil {
		return nil, fmt.Errorf("reading triangle list header: %w", err)
	}

	indices := make([]uint32, 3*tcount)
	for i := range indices {
		if _, err := fmt.Fscan(r, &indices[i]); err != nil {
			return nil, fmt.Errorf("reading index %d: %w", i, err)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Submeshes: map[string]Submesh{
			submesh: {IndexCount: len(indices)},
		},
	}, nil
}
