package model

import "mirrorbox/pkg/math"

func v(x, y, z, nx, ny, nz, u, vv float32) Vertex {
	return Vertex{
		Pos:    math.Vec3{X: x, Y: y, Z: z},
		Normal: math.Vec3{X: nx, Y: ny, Z: nz},
		UV:     math.Vec2{X: u, Y: vv},
	}
}

// Room builds the mirror box: a closed room spanning x,y in [-4,4] and z in
// [0,8] whose six inner faces are all mirror surfaces, one submesh per face.
// The floor and wall submeshes are kept as empty index ranges: the box
// superseded their geometry, but their render items stay valid.
func Room() *Mesh {
	vertices := []Vertex{
		v(-4, -4, 0, 0, 0, -1, 0, 1),
		v(-4, 4, 0, 0, 0, -1, 0, 0),
		v(4, 4, 0, 0, 0, -1, 1, 0),
		v(4, -4, 0, 0, 0, -1, 1, 1),
		v(4, 4, 8, 0, -1, 0, 1, 1),
		v(-4, 4, 8, 0, -1, 0, 0, 1),
		v(-4, -4, 8, -1, 0, 0, 1, 1),
		v(4, -4, 8, 1, 0, 0, 0, 0),
	}

	indices := []uint32{
		// front
		0, 1, 2,
		0, 2, 3,
		// top
		1, 4, 2,
		1, 5, 4,
		// left
		6, 1, 0,
		6, 5, 1,
		// right
		3, 2, 7,
		2, 4, 7,
		// back
		4, 5, 6,
		4, 6, 7,
		// bottom
		0, 3, 6,
		7, 6, 3,
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Submeshes: map[string]Submesh{
			"mirrorFront":  {IndexCount: 6, StartIndex: 0},
			"mirrorTop":    {IndexCount: 6, StartIndex: 6},
			"mirrorLeft":   {IndexCount: 6, StartIndex: 12},
			"mirrorRight":  {IndexCount: 6, StartIndex: 18},
			"mirrorBack":   {IndexCount: 6, StartIndex: 24},
			"mirrorBottom": {IndexCount: 6, StartIndex: 30},
			"floor":        {},
			"wall":         {},
		},
	}
}
