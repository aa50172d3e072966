// Package renderer uploads the surface mesh and camera state to OpenGL and
// issues the per-frame draw calls.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/engine/lighting"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/engine/renderer/shaders"
	"github.com/Faultbox/shellview/internal/engine/shader"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/surface"
	"github.com/Faultbox/shellview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Renderer handles all OpenGL rendering. It implements camera.Publisher.
type Renderer struct {
	config Config

	program uint32

	// Uniform locations
	locModelView       int32
	locProjection      int32
	locNormalMatrix    int32
	locAmbientProduct  int32
	locDiffuseProduct  int32
	locSpecularProduct int32
	locLightPosition   int32
	locShininess       int32
	locShadingMode     int32
	locOutline         int32

	vao         uint32
	positionVBO uint32
	normalVBO   uint32

	shading render.ShadingMode
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
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
	// Push filled quads back so outlines drawn on top stay visible.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}
	r.program = program

	required, err := shader.Uniforms(program, "uModelView", "uProjection")
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	r.locModelView = required["uModelView"]
	r.locProjection = required["uProjection"]
	r.locNormalMatrix = r.optionalUniform("uNormalMatrix")
	r.locAmbientProduct = r.optionalUniform("uAmbientProduct")
	r.locDiffuseProduct = r.optionalUniform("uDiffuseProduct")
	r.locSpecularProduct = r.optionalUniform("uSpecularProduct")
	r.locLightPosition = r.optionalUniform("uLightPosition")
	r.locShininess = r.optionalUniform("uShininess")
	r.locShadingMode = r.optionalUniform("uShadingMode")
	r.locOutline = r.optionalUniform("uOutline")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.positionVBO)
	gl.GenBuffers(1, &r.normalVBO)

	logger.Debug("surface program created", zap.Uint32("program", program))
	return r, nil
}

func (r *Renderer) optionalUniform(name string) int32 {
	loc := shader.Uniform(r.program, name)
	if loc < 0 {
		logger.Warn("uniform inactive", zap.String("name", name))
	}
	return loc
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.positionVBO != 0 {
		gl.DeleteBuffers(1, &r.positionVBO)
	}
	if r.normalVBO != 0 {
		gl.DeleteBuffers(1, &r.normalVBO)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
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

// UploadMesh replaces the vertex buffers with the mesh contents.
func (r *Renderer) UploadMesh(mesh *surface.Mesh) {
	positions, normals := mesh.Flatten()

	gl.BindVertexArray(r.vao)

	uploadVec4(r.positionVBO, 0, positions)
	uploadVec4(r.normalVBO, 1, normals)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("quads", mesh.QuadCount()),
	)
}

// uploadVec4 fills buffer with data and binds it to a vec4 attribute.
func uploadVec4(buffer, location uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(location, 4, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(location)
}

// SetView uploads the model-view and normal matrices.
func (r *Renderer) SetView(view math.Mat4, normal math.Mat3) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModelView, 1, false, view.Ptr())
	gl.UniformMatrix3fv(r.locNormalMatrix, 1, false, normal.Ptr())
}

// SetProjection uploads the projection matrix.
func (r *Renderer) SetProjection(projection math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
}

// SetLighting uploads the light and material products.
func (r *Renderer) SetLighting(p lighting.Products) {
	gl.UseProgram(r.program)
	gl.Uniform4fv(r.locAmbientProduct, 1, &p.Ambient[0])
	gl.Uniform4fv(r.locDiffuseProduct, 1, &p.Diffuse[0])
	gl.Uniform4fv(r.locSpecularProduct, 1, &p.Specular[0])
	gl.Uniform4fv(r.locLightPosition, 1, &p.LightPosition[0])
	gl.Uniform1f(r.locShininess, p.Shininess)
}

// SetShading uploads the shading mode selector.
func (r *Renderer) SetShading(mode render.ShadingMode) {
	r.shading = mode
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locShadingMode, int32(mode))
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw issues the planned draw calls against the uploaded mesh.
func (r *Renderer) Draw(cmds []render.DrawCommand) {
	if len(cmds) == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	outline := int32(-1)
	for _, c := range cmds {
		// Lines drawn over a lit surface use the outline color.
		want := int32(0)
		if r.shading.Lit() && c.Primitive != render.TriangleFan {
			want = 1
		}
		if want != outline {
			gl.Uniform1i(r.locOutline, want)
			outline = want
		}
		gl.DrawArrays(primitiveMode(c.Primitive), c.First, c.Count)
	}

	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// ReadPixels reads the current framebuffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func primitiveMode(p render.Primitive) uint32 {
	switch p {
	case render.LineStrip:
		return gl.LINE_STRIP
	case render.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.LINE_LOOP
	}
}
