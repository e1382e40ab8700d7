package math

import "testing"

func TestVec3Add(t *testing.T) {
	v := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	if v != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", v)
	}
}

func TestVec3Dot(t *testing.T) {
	d := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if d != 12 {
		t.Errorf("Dot: got %f, want 12", d)
	}
}

func TestVec3Cross(t *testing.T) {
	v := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if v != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v, want {0 0 1}", v)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if abs(v.Length()-1) > 0.001 {
		t.Errorf("Normalize length: got %f, want 1", v.Length())
	}

	// Zero vector normalizes to zero, not NaN.
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("Normalize zero: got %v", z)
	}
}

func TestVec3Neg(t *testing.T) {
	v := Vec3{1, -2, 3}.Neg()
	if v != (Vec3{-1, 2, -3}) {
		t.Errorf("Neg: got %v", v)
	}
}

func TestVec2Length(t *testing.T) {
	if l := (Vec2{3, 4}).Length(); abs(l-5) > 0.001 {
		t.Errorf("Length: got %f, want 5", l)
	}
}
