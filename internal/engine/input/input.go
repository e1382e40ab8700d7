// Package input samples SDL2 input into a plain per-frame snapshot the
// simulation consumes without touching SDL itself.
package input

import (
	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"

	"mirrorbox/pkg/math"
)

// NoSelection means no selection key was held this frame.
const NoSelection = -1

// Mouse sensitivities: a quarter degree of orbit per pixel dragged with the
// left button, 0.2 scene units of zoom per pixel dragged with the right.
const (
	orbitPerPixel = 0.25 * math32.Pi / 180
	zoomPerPixel  = 0.2
)

// Sample is one frame's worth of input, already mapped to scene actions.
type Sample struct {
	Quit bool

	Resized bool
	Width   int
	Height  int

	// Select is the skull index requested by a held number key, or
	// NoSelection.
	Select int

	// Move is the sum of held movement-key axes, in units of movement speed.
	// Q/E drive x, W/S drive y, D/A drive z.
	Move math.Vec3

	// Orbit deltas in radians and zoom delta in scene units.
	OrbitX float32
	OrbitY float32
	Zoom   float32

	// Screenshot is set on the frame F12 was pressed.
	Screenshot bool
}

// Poller polls SDL events and device state into Samples.
type Poller struct {
	lastX   int32
	lastY   int32
	hasLast bool
}

// NewPoller creates an input poller.
func NewPoller() *Poller {
	return &Poller{}
}

// Sample drains pending SDL events and reads the held mouse and keyboard
// state, producing this frame's snapshot.
func (p *Poller) Sample() Sample {
	s := Sample{Select: NoSelection}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				s.Resized = true
				s.Width = int(e.Data1)
				s.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE:
					s.Quit = true
				case sdl.SCANCODE_F12:
					s.Screenshot = true
				}
			}
		}
	}

	x, y, buttons := sdl.GetMouseState()
	if p.hasLast {
		dx := float32(x - p.lastX)
		dy := float32(y - p.lastY)
		if buttons&sdl.ButtonLMask() != 0 {
			s.OrbitX = dx * orbitPerPixel
			s.OrbitY = dy * orbitPerPixel
		} else if buttons&sdl.ButtonRMask() != 0 {
			s.Zoom = zoomPerPixel * (dx - dy)
		}
	}
	p.lastX, p.lastY, p.hasLast = x, y, true

	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_1] != 0 {
		s.Select = 0
	}
	if keys[sdl.SCANCODE_2] != 0 {
		s.Select = 1
	}
	if keys[sdl.SCANCODE_Q] != 0 {
		s.Move.X += 1
	}
	if keys[sdl.SCANCODE_E] != 0 {
		s.Move.X -= 1
	}
	if keys[sdl.SCANCODE_W] != 0 {
		s.Move.Y += 1
	}
	if keys[sdl.SCANCODE_S] != 0 {
		s.Move.Y -= 1
	}
	if keys[sdl.SCANCODE_D] != 0 {
		s.Move.Z += 1
	}
	if keys[sdl.SCANCODE_A] != 0 {
		s.Move.Z -= 1
	}

	return s
}
