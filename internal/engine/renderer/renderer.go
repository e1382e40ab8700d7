// Package renderer is the OpenGL backend: it owns the GL state, the shader
// program, geometry and texture uploads, and the command list the compositor
// records into.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"mirrorbox/internal/engine/frame"
	"mirrorbox/internal/engine/scene"
	"mirrorbox/internal/engine/shader"
	"mirrorbox/internal/logger"
)

// vertexStride is the byte size of one interleaved vertex (pos, normal, uv).
const vertexStride = 8 * 4

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	AssetsDir string
}

// lightLocations caches one light's uniform locations.
type lightLocations struct {
	strength     int32
	falloffStart int32
	direction    int32
	falloffEnd   int32
	position     int32
	spotPower    int32
}

// uniformLocations caches every uniform location of the shared program.
type uniformLocations struct {
	viewProj     int32
	world        int32
	texTransform int32
	matTransform int32

	eyePos  int32
	ambient int32
	lights  [frame.MaxLights]lightLocations

	diffuseAlbedo int32
	fresnelR0     int32
	roughness     int32
	diffuseTex    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program  uint32
	uniforms uniformLocations
	textures [textureCount]uint32

	fence *Fence
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		fence:  NewFence(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	// Light steel blue, the scene's sky color.
	gl.ClearColor(0.69, 0.77, 0.87, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.lookupUniforms()

	r.loadTextures(cfg.AssetsDir)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

func (r *Renderer) lookupUniforms() {
	u := &r.uniforms
	u.viewProj = shader.GetUniform(r.program, "uViewProj")
	u.world = shader.GetUniform(r.program, "uWorld")
	u.texTransform = shader.GetUniform(r.program, "uTexTransform")
	u.matTransform = shader.GetUniform(r.program, "uMatTransform")

	u.eyePos = shader.GetUniform(r.program, "uEyePos")
	u.ambient = shader.GetUniform(r.program, "uAmbientLight")
	for i := range u.lights {
		prefix := fmt.Sprintf("uLights[%d].", i)
		u.lights[i] = lightLocations{
			strength:     shader.GetUniform(r.program, prefix+"Strength"),
			falloffStart: shader.GetUniform(r.program, prefix+"FalloffStart"),
			direction:    shader.GetUniform(r.program, prefix+"Direction"),
			falloffEnd:   shader.GetUniform(r.program, prefix+"FalloffEnd"),
			position:     shader.GetUniform(r.program, prefix+"Position"),
			spotPower:    shader.GetUniform(r.program, prefix+"SpotPower"),
		}
	}

	u.diffuseAlbedo = shader.GetUniform(r.program, "uDiffuseAlbedo")
	u.fresnelR0 = shader.GetUniform(r.program, "uFresnelR0")
	u.roughness = shader.GetUniform(r.program, "uRoughness")
	u.diffuseTex = shader.GetUniform(r.program, "uDiffuseTex")
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, tex := range r.textures {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Fence returns the GPU completion fence the frame ring blocks on.
func (r *Renderer) Fence() *Fence {
	return r.fence
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// UploadGeometry creates GPU buffers for a geometry's mesh and stores the
// handles back on the record.
func (r *Renderer) UploadGeometry(g *scene.Geometry) error {
	mesh := g.Mesh
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("geometry %s has no data", g.Name)
	}

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexStride,
		gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.BindVertexArray(0)

	logger.Debug("geometry uploaded",
		zap.String("name", g.Name),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return nil
}

// Begin clears the frame and returns a command list recording against the
// given frame resource's constants.
func (r *Renderer) Begin(res *frame.Resource) *CommandList {
	gl.ColorMask(true, true, true, true)
	gl.DepthMask(true)
	gl.StencilMask(0xff)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform1i(r.uniforms.diffuseTex, 0)

	return &CommandList{renderer: r, res: res}
}

// End finishes the frame's recording.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// ReadPixels reads back the current framebuffer as RGBA bytes, bottom row
// first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// CommandList executes the compositor's draw stream against OpenGL.
type CommandList struct {
	renderer *Renderer
	res      *frame.Resource

	pipeline pipelineState
	bound    bool
	ref      uint32
}

// SetPipeline binds the named pipeline's full render state.
func (c *CommandList) SetPipeline(name string) error {
	ps, ok := pipelines[name]
	if !ok {
		return fmt.Errorf("unknown pipeline %q", name)
	}
	c.pipeline = ps
	c.bound = true
	ps.apply(c.ref)
	return nil
}

// SetStencilRef sets the stencil reference for subsequent draws.
func (c *CommandList) SetStencilRef(ref uint32) {
	c.ref = ref
	if c.bound {
		c.pipeline.apply(ref)
	}
}

// SetPass uploads the pass constants of the given slot.
func (c *CommandList) SetPass(slot int) {
	pass := &c.res.Pass[slot]
	u := &c.renderer.uniforms

	viewProj := pass.ViewProj
	gl.UniformMatrix4fv(u.viewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(u.eyePos, pass.EyePos.X, pass.EyePos.Y, pass.EyePos.Z)
	gl.Uniform4f(u.ambient,
		pass.AmbientLight[0], pass.AmbientLight[1],
		pass.AmbientLight[2], pass.AmbientLight[3])

	for i := range pass.Lights {
		l := &pass.Lights[i]
		loc := &u.lights[i]
		gl.Uniform3f(loc.strength, l.Strength.X, l.Strength.Y, l.Strength.Z)
		gl.Uniform1f(loc.falloffStart, l.FalloffStart)
		gl.Uniform3f(loc.direction, l.Direction.X, l.Direction.Y, l.Direction.Z)
		gl.Uniform1f(loc.falloffEnd, l.FalloffEnd)
		gl.Uniform3f(loc.position, l.Position.X, l.Position.Y, l.Position.Z)
		gl.Uniform1f(loc.spotPower, l.SpotPower)
	}
}

// DrawItem draws one render item with its object and material constants.
// Items with an empty index range are skipped.
func (c *CommandList) DrawItem(it *scene.RenderItem) {
	if it.IndexCount == 0 {
		return
	}

	u := &c.renderer.uniforms

	obj := &c.res.Objects[it.ObjIndex]
	world := obj.World
	texTransform := obj.TexTransform
	gl.UniformMatrix4fv(u.world, 1, false, world.Ptr())
	gl.UniformMatrix4fv(u.texTransform, 1, false, texTransform.Ptr())

	mat := &c.res.Materials[it.Mat.CBIndex]
	matTransform := mat.Transform
	gl.UniformMatrix4fv(u.matTransform, 1, false, matTransform.Ptr())
	gl.Uniform4f(u.diffuseAlbedo,
		mat.DiffuseAlbedo[0], mat.DiffuseAlbedo[1],
		mat.DiffuseAlbedo[2], mat.DiffuseAlbedo[3])
	gl.Uniform3f(u.fresnelR0, mat.FresnelR0.X, mat.FresnelR0.Y, mat.FresnelR0.Z)
	gl.Uniform1f(u.roughness, mat.Roughness)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.renderer.textures[it.Mat.TexIndex])

	gl.BindVertexArray(it.Geo.VAO)

	mode := uint32(gl.TRIANGLES)
	if it.Topology == scene.LineList {
		mode = gl.LINES
	}
	gl.DrawElementsBaseVertexWithOffset(mode, int32(it.IndexCount), gl.UNSIGNED_INT,
		uintptr(it.StartIndex*4), int32(it.BaseVertex))
}
