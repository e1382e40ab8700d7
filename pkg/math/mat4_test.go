package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulOrder(t *testing.T) {
	// m.Mul(other) applies other first: T*S scales, then translates.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	p := m.TransformPoint(Vec3{1, 1, 1})

	want := Vec3{12, 2, 2}
	if p != want {
		t.Errorf("T*S transform: got %v, want %v", p, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if m.Translation() != (Vec3{5, 10, 15}) {
		t.Errorf("Translation(): got %v", m.Translation())
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye position must map to the origin in view space.
	p := m.TransformPoint(eye)
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z) > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", p)
	}
}

func TestDeterminant(t *testing.T) {
	if d := Identity().Determinant(); abs(d-1) > 0.001 {
		t.Errorf("det(I) = %f, want 1", d)
	}
	if d := Scale(2, 3, 4).Determinant(); abs(d-24) > 0.001 {
		t.Errorf("det(Scale(2,3,4)) = %f, want 24", d)
	}
	if d := Scale(0, 0, 0).Determinant(); d != 0 {
		t.Errorf("det(Scale(0,0,0)) = %f, want 0", d)
	}
	// Translation does not change the determinant.
	if d := Translate(5, -2, 9).Determinant(); abs(d-1) > 0.001 {
		t.Errorf("det(Translate) = %f, want 1", d)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.7)).Mul(Scale(2, 2, 2))
	r := m.Mul(m.Inverse())

	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(r[i]-id[i]) > 0.001 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, r[i], id[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
