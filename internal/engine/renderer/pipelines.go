package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"mirrorbox/internal/engine/render"
)

// stencilState describes the stencil test of one pipeline. The reference
// value is not part of the pipeline; the command list supplies it.
type stencilState struct {
	enabled  bool
	function uint32
	passOp   uint32
}

// pipelineState is the full fixed-function state bound by SetPipeline.
type pipelineState struct {
	colorWrite bool
	depthWrite bool
	blend      bool
	stencil    stencilState
	frontFace  uint32
}

// pipelines maps the compositor's pipeline names to render state.
//
// Mark writes stencil only: color and depth writes are off, the depth test
// still culls mirror pixels hidden behind opaque geometry. Reflections pass
// only where the stencil equals the reference and flip the front face,
// because reflection reverses triangle winding. Shadows blend and increment
// the stencil on pass so overlapping shadow triangles darken once.
var pipelines = map[string]pipelineState{
	render.PipelineOpaque: {
		colorWrite: true,
		depthWrite: true,
		frontFace:  gl.CCW,
	},
	render.PipelineTransparent: {
		colorWrite: true,
		depthWrite: true,
		blend:      true,
		frontFace:  gl.CCW,
	},
	render.PipelineMark: {
		colorWrite: false,
		depthWrite: false,
		stencil:    stencilState{enabled: true, function: gl.ALWAYS, passOp: gl.REPLACE},
		frontFace:  gl.CCW,
	},
	render.PipelineReflections: {
		colorWrite: true,
		depthWrite: true,
		stencil:    stencilState{enabled: true, function: gl.EQUAL, passOp: gl.KEEP},
		frontFace:  gl.CW,
	},
	render.PipelineShadow: {
		colorWrite: true,
		depthWrite: true,
		blend:      true,
		stencil:    stencilState{enabled: true, function: gl.EQUAL, passOp: gl.INCR},
		frontFace:  gl.CCW,
	},
}

// apply binds the pipeline's state with the given stencil reference.
func (p pipelineState) apply(ref uint32) {
	gl.ColorMask(p.colorWrite, p.colorWrite, p.colorWrite, p.colorWrite)
	gl.DepthMask(p.depthWrite)

	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	if p.stencil.enabled {
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilFunc(p.stencil.function, int32(ref), 0xff)
		gl.StencilOp(gl.KEEP, gl.KEEP, p.stencil.passOp)
		gl.StencilMask(0xff)
	} else {
		gl.Disable(gl.STENCIL_TEST)
	}

	gl.FrontFace(p.frontFace)
}
