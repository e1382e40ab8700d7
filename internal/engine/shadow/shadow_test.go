package shadow

import (
	"testing"

	"mirrorbox/pkg/math"
)

// primary light of the scene, traveling down and into the room
var lightDir = math.Vec3{X: 0.57735, Y: -0.57735, Z: 0.57735}

func TestWorldFlattensToFloor(t *testing.T) {
	world := math.Translate(0, 1, 0)
	shadowWorld := World(world, lightDir)

	got := shadowWorld.TransformPoint(math.Vec3{})
	want := math.Vec3{X: 1, Y: 0.001, Z: 1}
	if got.Distance(want) > 0.001 {
		t.Errorf("shadow position: got %v, want %v", got, want)
	}
}

func TestWorldAppliesLiftOffset(t *testing.T) {
	world := math.Translate(2, 3, -1)
	got := World(world, lightDir).TransformPoint(math.Vec3{})
	if got.Y <= 0 {
		t.Errorf("shadow should sit above the floor, got y=%f", got.Y)
	}
	if got.Y > 0.01 {
		t.Errorf("lift offset too large: y=%f", got.Y)
	}
}

func TestMatrixKeepsFloorPointsFixed(t *testing.T) {
	m := Matrix(lightDir)
	p := math.Vec3{X: 5, Y: 0, Z: 3}
	got := m.TransformPoint(p)
	if got.Distance(p) > 0.001 {
		t.Errorf("floor point moved: got %v, want %v", got, p)
	}
}
