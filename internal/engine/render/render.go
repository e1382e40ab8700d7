// Package render sequences the frame's draw passes over an abstract command
// list. The GL backend implements the command list; tests record it.
package render

import (
	"fmt"

	"mirrorbox/internal/engine/frame"
	"mirrorbox/internal/engine/mirror"
	"mirrorbox/internal/engine/scene"
)

// Pipeline names. Each maps to one fixed pipeline state in the backend.
const (
	PipelineOpaque      = "opaque"
	PipelineTransparent = "transparent"
	PipelineMark        = "markStencilMirrors"
	PipelineReflections = "drawStencilReflections"
	PipelineShadow      = "shadow"
)

// CommandList records one frame's draw commands. Implementations bind the
// named pipeline's full render state; unknown names are an error the
// compositor propagates.
type CommandList interface {
	SetPipeline(name string) error
	SetStencilRef(ref uint32)
	SetPass(slot int)
	DrawItem(it *scene.RenderItem)
}

// Compositor draws the scene in fixed pass order: opaque geometry, then per
// mirror side a mark/reflect/clear stencil triad, then the mirror glass
// blended over its reflection, then projected shadows.
type Compositor struct {
	store *scene.Store

	// ShadowsEnabled gates the projected-shadow pass.
	ShadowsEnabled bool
}

// NewCompositor creates a compositor over a built scene.
func NewCompositor(store *scene.Store, shadowsEnabled bool) *Compositor {
	return &Compositor{store: store, ShadowsEnabled: shadowsEnabled}
}

// Draw records the full frame. Every mark is paired with a clear, so the
// stencil buffer is all zeros again when the method returns.
func (c *Compositor) Draw(cl CommandList) error {
	cl.SetPass(frame.MainPass)
	cl.SetStencilRef(0)
	if err := cl.SetPipeline(PipelineOpaque); err != nil {
		return fmt.Errorf("opaque pass: %w", err)
	}
	c.drawLayer(cl, scene.LayerOpaque)

	for _, side := range mirror.DrawOrder {
		if err := c.drawSide(cl, side); err != nil {
			return err
		}
	}

	// Restore main pass state for the glass and shadow passes.
	cl.SetPass(frame.MainPass)
	cl.SetStencilRef(0)

	if err := cl.SetPipeline(PipelineTransparent); err != nil {
		return fmt.Errorf("transparent pass: %w", err)
	}
	c.drawLayer(cl, scene.LayerTransparent)

	if c.ShadowsEnabled {
		if err := cl.SetPipeline(PipelineShadow); err != nil {
			return fmt.Errorf("shadow pass: %w", err)
		}
		c.drawLayer(cl, scene.LayerShadow)
	}

	return nil
}

// drawSide records one mirror side's triad: mark the mirror pixels with
// stencil 1, draw the reflected copies where the stencil matches, then
// re-mark with 0 to hand the next side a clean stencil buffer.
func (c *Compositor) drawSide(cl CommandList, side mirror.Side) error {
	cl.SetStencilRef(1)
	if err := cl.SetPipeline(PipelineMark); err != nil {
		return fmt.Errorf("marking %s mirror: %w", side, err)
	}
	c.drawLayer(cl, scene.MirrorLayer(side))

	cl.SetPass(frame.ReflectedPass)
	if err := cl.SetPipeline(PipelineReflections); err != nil {
		return fmt.Errorf("drawing %s reflections: %w", side, err)
	}
	c.drawLayer(cl, scene.ReflectedLayer(side))

	cl.SetStencilRef(0)
	if err := cl.SetPipeline(PipelineMark); err != nil {
		return fmt.Errorf("clearing %s mirror stencil: %w", side, err)
	}
	c.drawLayer(cl, scene.MirrorLayer(side))

	return nil
}

func (c *Compositor) drawLayer(cl CommandList, l scene.Layer) {
	for _, id := range c.store.Layer(l) {
		cl.DrawItem(c.store.Item(id))
	}
}
