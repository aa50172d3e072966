package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/pkg/math"
)

// Publisher receives camera matrices whenever they change.
// The renderer implements it by uploading shader uniforms.
type Publisher interface {
	SetView(view math.Mat4, normal math.Mat3)
	SetProjection(projection math.Mat4)
}

// Controller owns the orbit state and republishes derived matrices after
// every accepted action.
type Controller struct {
	state     OrbitState
	initial   OrbitState
	limits    Limits
	publisher Publisher

	// Sub-step drag distance carried between mouse events
	dragX, dragY float32
}

// NewController creates a controller. Call Publish once the publisher is
// ready to receive the initial matrices.
func NewController(state OrbitState, limits Limits, publisher Publisher) *Controller {
	return &Controller{
		state:     state,
		initial:   state,
		limits:    limits,
		publisher: publisher,
	}
}

// State returns the current orbit state.
func (c *Controller) State() OrbitState {
	return c.state
}

// Limits returns the controller limits.
func (c *Controller) Limits() Limits {
	return c.limits
}

// Matrices returns the matrices for the current state.
func (c *Controller) Matrices() Matrices {
	return c.state.Derive(c.limits)
}

// Publish pushes the view and projection matrices to the publisher.
func (c *Controller) Publish() {
	c.publishView()
	c.publishProjection()
}

// Apply performs a and publishes the affected matrix. It returns false if
// the action was rejected.
func (c *Controller) Apply(a Action) bool {
	next, ok := c.state.Apply(a, c.limits)
	if !ok {
		logger.Debug("camera action rejected",
			zap.Stringer("action", a),
			zap.Stringer("state", c.state),
		)
		return false
	}
	c.state = next

	if a.AffectsProjection() {
		c.publishProjection()
	} else {
		c.publishView()
	}
	logger.Debug("camera updated",
		zap.Stringer("action", a),
		zap.Float64("theta", c.state.Theta),
		zap.Float64("phi", c.state.Phi),
		zap.Float64("zoom", c.state.Zoom),
	)
	return true
}

// Reset restores the state the controller was created with.
func (c *Controller) Reset() {
	c.state = c.initial
	c.dragX, c.dragY = 0, 0
	c.Publish()
}

// HandleDrag converts mouse drag deltas into theta/phi steps, one step per
// pixelsPerStep pixels of movement. Returns the number of accepted steps.
func (c *Controller) HandleDrag(deltaX, deltaY, pixelsPerStep float32) int {
	if pixelsPerStep <= 0 {
		return 0
	}
	c.dragX += deltaX
	c.dragY += deltaY

	applied := 0
	for c.dragX >= pixelsPerStep {
		c.dragX -= pixelsPerStep
		if c.Apply(ThetaIncrease) {
			applied++
		}
	}
	for c.dragX <= -pixelsPerStep {
		c.dragX += pixelsPerStep
		if c.Apply(ThetaDecrease) {
			applied++
		}
	}
	// Dragging down tilts the camera towards the top pole.
	for c.dragY >= pixelsPerStep {
		c.dragY -= pixelsPerStep
		if c.Apply(PhiDecrease) {
			applied++
		}
	}
	for c.dragY <= -pixelsPerStep {
		c.dragY += pixelsPerStep
		if c.Apply(PhiIncrease) {
			applied++
		}
	}
	return applied
}

// HandleZoom applies one zoom step per wheel notch.
func (c *Controller) HandleZoom(notches int) int {
	applied := 0
	for ; notches > 0; notches-- {
		if c.Apply(ZoomIn) {
			applied++
		}
	}
	for ; notches < 0; notches++ {
		if c.Apply(ZoomOut) {
			applied++
		}
	}
	return applied
}

func (c *Controller) publishView() {
	if c.publisher == nil {
		return
	}
	view := c.state.ViewMatrix()
	c.publisher.SetView(view, view.Mat3())
}

func (c *Controller) publishProjection() {
	if c.publisher == nil {
		return
	}
	c.publisher.SetProjection(c.state.ProjectionMatrix(c.limits))
}
