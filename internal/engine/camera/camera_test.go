package camera

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPolarClamp(t *testing.T) {
	c := New()

	c.Orbit(0, 1000)
	if c.Polar > MaxPolar {
		t.Errorf("polar exceeded max: %f", c.Polar)
	}

	c.Orbit(0, -2000)
	if c.Polar < MinPolar {
		t.Errorf("polar below min: %f", c.Polar)
	}
}

func TestRadiusClamp(t *testing.T) {
	c := New()

	c.Zoom(1e6)
	if c.Radius != MaxRadius {
		t.Errorf("radius not clamped to max: %f", c.Radius)
	}

	c.Zoom(-1e6)
	if c.Radius != MinRadius {
		t.Errorf("radius not clamped to min: %f", c.Radius)
	}
}

func TestAzimuthUnconstrained(t *testing.T) {
	c := New()
	c.Orbit(100, 0)
	if math32.Abs(c.Azimuth-(1.24*math32.Pi+100)) > 0.001 {
		t.Errorf("azimuth should accumulate freely, got %f", c.Azimuth)
	}
}

func TestPositionRadius(t *testing.T) {
	c := New()
	if d := c.Position().Length() - c.Radius; math32.Abs(d) > 0.001 {
		t.Errorf("eye should sit on the orbit sphere, off by %f", d)
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := New()
	view := c.ViewMatrix()
	p := view.TransformPoint(c.Position())
	if p.Length() > 0.001 {
		t.Errorf("view matrix should map the eye to the origin, got %v", p)
	}
}
