// Package viewer runs the interactive shell viewer: it maps input to
// commands, keeps the shape and camera state, and drives the renderer.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/engine/camera"
	"github.com/Faultbox/shellview/internal/engine/lighting"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/surface"
)

// Target is the GPU side of the viewer. *renderer.Renderer implements it.
type Target interface {
	camera.Publisher
	UploadMesh(mesh *surface.Mesh)
	SetShading(mode render.ShadingMode)
	SetLighting(p lighting.Products)
	Draw(cmds []render.DrawCommand)
}

// Effect is a side effect a command asks the frame loop to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectScreenshot
)

// SceneConfig is the initial viewer state.
type SceneConfig struct {
	Shape    surface.ShapeParameters
	Camera   camera.OrbitState
	Limits   camera.Limits
	Shading  render.ShadingMode
	Outline  bool
	Lighting lighting.Products
}

// Scene owns the shape, camera and shading state and keeps the target in
// sync with it. It makes no SDL calls.
type Scene struct {
	target  Target
	camera  *camera.Controller
	initial SceneConfig

	shape   surface.ShapeParameters
	mesh    *surface.Mesh
	shading render.ShadingMode
	outline bool
	plan    []render.DrawCommand
}

// NewScene generates the initial mesh and publishes all state to target.
func NewScene(cfg SceneConfig, target Target) (*Scene, error) {
	mesh, err := surface.Generate(cfg.Shape)
	if err != nil {
		return nil, fmt.Errorf("initial shape: %w", err)
	}

	s := &Scene{
		target:  target,
		camera:  camera.NewController(cfg.Camera, cfg.Limits, target),
		initial: cfg,
		shape:   cfg.Shape,
		mesh:    mesh,
		shading: cfg.Shading,
		outline: cfg.Outline,
	}

	target.SetLighting(cfg.Lighting)
	target.UploadMesh(mesh)
	target.SetShading(s.shading)
	s.camera.Publish()
	s.replan()
	return s, nil
}

// Shape returns the current shape parameters.
func (s *Scene) Shape() surface.ShapeParameters {
	return s.shape
}

// Mesh returns the current mesh.
func (s *Scene) Mesh() *surface.Mesh {
	return s.mesh
}

// Camera returns the camera controller.
func (s *Scene) Camera() *camera.Controller {
	return s.camera
}

// Shading returns the current shading mode.
func (s *Scene) Shading() render.ShadingMode {
	return s.shading
}

// Outline reports whether quad outlines are drawn over lit shading.
func (s *Scene) Outline() bool {
	return s.outline
}

// Plan returns the draw calls for the current state.
func (s *Scene) Plan() []render.DrawCommand {
	return s.plan
}

// Execute applies cmd and returns the effect the caller must perform.
func (s *Scene) Execute(cmd Command) Effect {
	switch cmd.Kind {
	case CommandCamera:
		s.camera.Apply(cmd.Camera)

	case CommandShading:
		s.SetShading(cmd.Shading)

	case CommandOutline:
		s.outline = !s.outline
		s.replan()
		logger.Debug("outline toggled", zap.Bool("outline", s.outline))

	case CommandShape:
		next, changed := s.shape.Adjust(cmd.Field, cmd.Steps)
		if !changed {
			logger.Debug("shape parameter at limit", zap.Stringer("field", cmd.Field))
			return EffectNone
		}
		if err := s.SetShape(next); err != nil {
			logger.Warn("shape change rejected", zap.Stringer("command", cmd), zap.Error(err))
		}

	case CommandReset:
		s.reset()

	case CommandScreenshot:
		return EffectScreenshot

	case CommandQuit:
		return EffectQuit
	}
	return EffectNone
}

// SetShading switches the shading mode.
func (s *Scene) SetShading(mode render.ShadingMode) {
	if mode == s.shading {
		return
	}
	s.shading = mode
	s.target.SetShading(mode)
	s.replan()
	logger.Info("shading changed", zap.Stringer("mode", mode))
}

// SetShape regenerates the mesh for p. On error the previous shape and mesh
// stay in place.
func (s *Scene) SetShape(p surface.ShapeParameters) error {
	mesh, err := surface.Generate(p)
	if err != nil {
		return err
	}
	s.shape = p
	s.mesh = mesh
	s.target.UploadMesh(mesh)
	s.replan()
	logger.Debug("mesh regenerated",
		zap.Int("quads", mesh.QuadCount()),
		zap.Float64("a", p.A),
		zap.Float64("k", p.K),
	)
	return nil
}

// Render issues the draw calls for one frame.
func (s *Scene) Render() {
	s.target.Draw(s.plan)
}

// Status is the text shown in the window title.
func (s *Scene) Status() string {
	return fmt.Sprintf("%s | %s | %d quads", s.camera.State(), s.shading, s.mesh.QuadCount())
}

func (s *Scene) reset() {
	s.camera.Reset()
	s.SetShading(s.initial.Shading)
	s.outline = s.initial.Outline
	if err := s.SetShape(s.initial.Shape); err != nil {
		logger.Warn("reset shape rejected", zap.Error(err))
	}
	s.replan()
	logger.Info("view reset")
}

func (s *Scene) replan() {
	s.plan = render.Plan(s.mesh.VertexCount(), s.shading, s.outline)
}
