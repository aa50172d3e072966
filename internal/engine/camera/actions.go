package camera

import (
	"fmt"
	gomath "math"
)

// Action is a discrete camera change.
type Action int

const (
	ThetaIncrease Action = iota
	ThetaDecrease
	PhiIncrease
	PhiDecrease
	ZoomIn
	ZoomOut
)

func (a Action) String() string {
	switch a {
	case ThetaIncrease:
		return "theta+"
	case ThetaDecrease:
		return "theta-"
	case PhiIncrease:
		return "phi+"
	case PhiDecrease:
		return "phi-"
	case ZoomIn:
		return "zoom+"
	case ZoomOut:
		return "zoom-"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// AffectsProjection reports whether a changes the projection rather than
// the view.
func (a Action) AffectsProjection() bool {
	return a == ZoomIn || a == ZoomOut
}

// Apply returns the state after a. The bool is false when a is rejected
// and the state is returned unchanged.
func (s OrbitState) Apply(a Action, l Limits) (OrbitState, bool) {
	switch a {
	case ThetaIncrease:
		s.Theta = wrapDegrees(s.Theta + l.DegreeStep)
	case ThetaDecrease:
		s.Theta = wrapDegrees(s.Theta - l.DegreeStep)
	case PhiIncrease:
		// Stay a full step away from the pole so LookAt keeps a valid up.
		if s.Phi >= 180-l.DegreeStep {
			return s, false
		}
		s.Phi += l.DegreeStep
	case PhiDecrease:
		if s.Phi <= l.DegreeStep {
			return s, false
		}
		s.Phi -= l.DegreeStep
	case ZoomIn:
		// The view volume must keep a positive extent.
		if s.Zoom >= l.ProjectionConstant-l.ZoomStep {
			return s, false
		}
		s.Zoom += l.ZoomStep
	case ZoomOut:
		if s.Zoom-l.ZoomStep < l.MinZoom {
			return s, false
		}
		s.Zoom -= l.ZoomStep
	default:
		return s, false
	}
	return s, true
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = gomath.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
