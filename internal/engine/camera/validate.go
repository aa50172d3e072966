package camera

import (
	"errors"
	"fmt"
	gomath "math"
)

var (
	// ErrInvalidLimits is returned when limits cannot produce a valid camera.
	ErrInvalidLimits = errors.New("invalid camera limits")
	// ErrInvalidState is returned when an orbit state lies outside the
	// range the camera actions keep it in.
	ErrInvalidState = errors.New("invalid camera state")
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks that the steps are usable and that every zoom between
// MinZoom and the zoom-in limit leaves a positive view extent.
func (l Limits) Validate() error {
	if !finite(l.DegreeStep, l.ZoomStep, l.ProjectionConstant, l.MinZoom, l.Near, l.Far) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidLimits)
	}
	if l.DegreeStep <= 0 || l.DegreeStep >= 90 {
		return fmt.Errorf("%w: degree step %v must be in (0, 90)", ErrInvalidLimits, l.DegreeStep)
	}
	if l.ZoomStep <= 0 || l.ZoomStep >= l.ProjectionConstant {
		return fmt.Errorf("%w: zoom step %v must be in (0, %v)", ErrInvalidLimits, l.ZoomStep, l.ProjectionConstant)
	}
	if l.MinZoom > l.ProjectionConstant-l.ZoomStep {
		return fmt.Errorf("%w: min zoom %v exceeds zoom-in limit %v", ErrInvalidLimits, l.MinZoom, l.ProjectionConstant-l.ZoomStep)
	}
	if l.Near >= l.Far {
		return fmt.Errorf("%w: near %v must be less than far %v", ErrInvalidLimits, l.Near, l.Far)
	}
	return nil
}

// Validate checks s against the invariants Apply maintains under l:
// theta in [0, 360), phi in [DegreeStep, 180-DegreeStep], zoom in
// [MinZoom, ProjectionConstant-ZoomStep] and a positive radius.
func (s OrbitState) Validate(l Limits) error {
	if !finite(s.Theta, s.Phi, s.Radius, s.Zoom) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidState)
	}
	if s.Theta < 0 || s.Theta >= 360 {
		return fmt.Errorf("%w: theta %v must be in [0, 360)", ErrInvalidState, s.Theta)
	}
	if s.Phi < l.DegreeStep || s.Phi > 180-l.DegreeStep {
		return fmt.Errorf("%w: phi %v must be in [%v, %v]", ErrInvalidState, s.Phi, l.DegreeStep, 180-l.DegreeStep)
	}
	if maxZoom := l.ProjectionConstant - l.ZoomStep; s.Zoom < l.MinZoom || s.Zoom > maxZoom {
		return fmt.Errorf("%w: zoom %v must be in [%v, %v]", ErrInvalidState, s.Zoom, l.MinZoom, maxZoom)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidState, s.Radius)
	}
	return nil
}
