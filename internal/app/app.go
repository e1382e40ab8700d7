// Package app wires the window, renderer, scene, and simulation together and
// runs the main loop.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"mirrorbox/internal/config"
	"mirrorbox/internal/engine/camera"
	"mirrorbox/internal/engine/debug"
	"mirrorbox/internal/engine/frame"
	"mirrorbox/internal/engine/input"
	"mirrorbox/internal/engine/model"
	"mirrorbox/internal/engine/render"
	"mirrorbox/internal/engine/renderer"
	"mirrorbox/internal/engine/scene"
	"mirrorbox/internal/engine/sim"
	"mirrorbox/internal/engine/window"
	"mirrorbox/internal/logger"
)

const title = "Mirror Box"

// App is the running application.
type App struct {
	cfg *config.Config

	window      *window.Window
	renderer    *renderer.Renderer
	poller      *input.Poller
	store       *scene.Store
	ring        *frame.Ring
	sim         *sim.Sim
	compositor  *render.Compositor
	screenshots *debug.ScreenshotCapture

	fenceValue uint64
}

// New builds the full application: window and GL context, renderer, scene,
// frame ring, and simulation.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window; it needs the GL context.
	a.renderer, err = renderer.New(renderer.Config{
		Width:     cfg.Graphics.Width,
		Height:    cfg.Graphics.Height,
		AssetsDir: cfg.Scene.AssetsDir,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.buildScene(); err != nil {
		a.Close()
		return nil, err
	}

	a.poller = input.NewPoller()
	a.screenshots = debug.NewScreenshotCapture("screenshots", "mirrorbox")

	logger.Info("initialized",
		zap.Int("items", a.store.Len()),
		zap.Int("ring_depth", a.ring.Depth()),
		zap.Bool("shadows", cfg.Scene.ShadowsEnabled),
	)
	return a, nil
}

// buildScene registers geometry, populates the scene, and creates the frame
// ring and simulation over it.
func (a *App) buildScene() error {
	a.store = scene.NewStore()
	a.store.AddGeometry(&scene.Geometry{Name: scene.RoomGeometry, Mesh: model.Room()})

	// A missing skull mesh is only a soft error here; scene.Build fails
	// loudly if the geometry never arrives.
	skullPath := filepath.Join(a.cfg.Scene.AssetsDir, a.cfg.Scene.SkullMesh)
	if mesh, err := model.LoadMesh(skullPath, "skull"); err != nil {
		logger.Warn("skull mesh unavailable",
			zap.String("path", skullPath),
			zap.Error(err),
		)
	} else {
		a.store.AddGeometry(&scene.Geometry{Name: scene.SkullGeometry, Mesh: mesh})
	}

	handles, err := scene.Build(a.store, a.cfg.Scene.FrameRingDepth)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	for _, g := range a.store.Geometries() {
		if err := a.renderer.UploadGeometry(g); err != nil {
			return fmt.Errorf("uploading geometry: %w", err)
		}
	}

	a.ring, err = frame.NewRing(a.cfg.Scene.FrameRingDepth,
		a.store.Len(), a.store.MaterialCount(), a.renderer.Fence())
	if err != nil {
		return fmt.Errorf("creating frame ring: %w", err)
	}

	a.sim = sim.New(a.store, handles, a.ring, camera.New())
	a.sim.Resize(a.cfg.Graphics.Width, a.cfg.Graphics.Height)

	a.compositor = render.NewCompositor(a.store, a.cfg.Scene.ShadowsEnabled)
	return nil
}

// Run starts the main loop and blocks until quit.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting main loop")

	for {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		sample := a.poller.Sample()
		if sample.Quit {
			break
		}
		if sample.Resized {
			a.renderer.Resize(sample.Width, sample.Height)
		}

		res := a.sim.Update(sample, dt)

		cl := a.renderer.Begin(res)
		if err := a.compositor.Draw(cl); err != nil {
			return fmt.Errorf("recording frame: %w", err)
		}
		a.renderer.End()

		if sample.Screenshot {
			pixels, w, h := a.renderer.ReadPixels()
			if path, err := a.screenshots.CaptureFromPixels(pixels, w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		a.window.SwapBuffers()

		// Tag the submission so the ring knows when this resource is free.
		a.fenceValue++
		a.renderer.Fence().Signal(a.fenceValue)
		a.ring.Signal(a.fenceValue)

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if sleep := frameBudget - time.Since(now); sleep > 0 {
				time.Sleep(sleep)
			}
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
