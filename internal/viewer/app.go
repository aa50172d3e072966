package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/config"
	"github.com/Faultbox/shellview/internal/engine/debug"
	"github.com/Faultbox/shellview/internal/engine/input"
	"github.com/Faultbox/shellview/internal/engine/lighting"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/engine/renderer"
	"github.com/Faultbox/shellview/internal/engine/window"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/surface"
	"github.com/Faultbox/shellview/internal/watcher"
)

// App is the interactive viewer.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *Scene
	bindings Bindings
	shots    *debug.ScreenshotCapture
	reloader *watcher.ConfigReloader

	title string
}

// New creates the window, renderer and scene. configPath is watched for
// shape changes when cfg.Watch.Enabled is set.
func New(cfg *config.Config, configPath string) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	bindings, err := ParseBindings(cfg.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	shading, err := render.ParseShadingMode(cfg.Render.Shading)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   cfg,
		bindings: bindings,
		shots:    debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "shell"),
		title:    cfg.Window.Title,
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = NewScene(SceneConfig{
		Shape:    cfg.Shape,
		Camera:   cfg.Camera.Initial,
		Limits:   cfg.Camera.Limits,
		Shading:  shading,
		Outline:  cfg.Render.Outline,
		Lighting: lighting.Combine(cfg.Render.Light, cfg.Render.Material),
	}, a.renderer)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}

	a.input = input.New()

	if cfg.Watch.Enabled {
		if configPath == "" {
			logger.Warn("watch enabled but no config file in use")
		} else if a.reloader, err = watcher.WatchConfig(configPath, cfg.Watch); err != nil {
			logger.Warn("config watcher disabled", zap.Error(err))
			a.reloader = nil
		}
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run starts the frame loop and blocks until the viewer quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Apply reloaded config
		a.drainReloads()

		// 3. Render
		a.renderer.Begin()
		a.scene.Render()
		a.renderer.End()
		a.updateTitle()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.reloader != nil {
		a.reloader.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		width, height := a.window.DrawableSize()
		a.renderer.Resize(width, height)

	case input.EventKeyDown:
		cmd, ok := a.bindings.Lookup(event.KeyName)
		if !ok {
			return
		}
		// Held keys repeat camera steps only.
		if event.Repeat && cmd.Kind != CommandCamera && cmd.Kind != CommandShape {
			return
		}
		a.perform(a.scene.Execute(cmd))

	case input.EventMouseMove:
		if event.LeftHeld {
			a.scene.Camera().HandleDrag(float32(event.DeltaX), float32(event.DeltaY), a.config.Input.DragStepPixels)
		}

	case input.EventMouseWheel:
		a.scene.Camera().HandleZoom(event.Wheel)
	}
}

func (a *App) perform(effect Effect) {
	switch effect {
	case EffectQuit:
		a.running = false
	case EffectScreenshot:
		// Capture the frame that is currently on screen.
		a.renderer.Begin()
		a.scene.Render()
		pixels, w, h := a.renderer.ReadPixels()
		name, err := a.shots.CaptureFromPixels(pixels, w, h)
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("path", name))
	}
}

func (a *App) drainReloads() {
	if a.reloader == nil {
		return
	}
	for {
		select {
		case shape := <-a.reloader.Shapes():
			a.applyReload(shape)
		default:
			return
		}
	}
}

func (a *App) applyReload(shape surface.ShapeParameters) {
	if err := a.scene.SetShape(shape); err != nil {
		logger.Warn("reloaded shape rejected", zap.Error(err))
		return
	}
	logger.Info("shape reloaded", zap.Int("quads", a.scene.Mesh().QuadCount()))
}

func (a *App) updateTitle() {
	title := a.config.Window.Title + " | " + a.scene.Status()
	if title != a.title {
		a.window.SetTitle(title)
		a.title = title
	}
}
