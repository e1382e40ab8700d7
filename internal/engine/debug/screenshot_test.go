package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test")

	// 2x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}

	// GL's bottom row lands at the bottom of the PNG, so row 0 is blue.
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("top-left should be blue after flip, got r=%d b=%d", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Errorf("bottom-left should be red after flip, got r=%d b=%d", r, b)
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}
