// Package camera provides the orbit camera and orthographic projection
// used to view the surface.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/shellview/pkg/math"
)

// Limits holds the step sizes and bounds of the orbit camera.
type Limits struct {
	DegreeStep         float64 `yaml:"degree_step"`         // Theta/phi change per step (degrees)
	ZoomStep           float64 `yaml:"zoom_step"`           // Zoom change per step
	ProjectionConstant float64 `yaml:"projection_constant"` // Half-extent of the view volume at zoom 0
	MinZoom            float64 `yaml:"min_zoom"`            // Lowest zoom reachable by zooming out
	Near               float64 `yaml:"near"`
	Far                float64 `yaml:"far"`
}

// DefaultLimits returns the limits used by the viewer.
func DefaultLimits() Limits {
	return Limits{
		DegreeStep:         15,
		ZoomStep:           0.25,
		ProjectionConstant: 10,
		MinZoom:            -20,
		Near:               -10,
		Far:                10,
	}
}

// OrbitState is the camera position on a sphere around the origin plus the
// zoom applied to the orthographic projection. Angles are in degrees.
type OrbitState struct {
	Theta  float64 `yaml:"theta"`  // Angle from the X axis in the XZ plane
	Phi    float64 `yaml:"phi"`    // Angle from the +Y axis
	Radius float64 `yaml:"radius"` // Distance from the origin
	Zoom   float64 `yaml:"zoom"`
}

// DefaultState looks at the origin from the +X axis.
func DefaultState() OrbitState {
	return OrbitState{
		Theta:  0,
		Phi:    90,
		Radius: 1,
		Zoom:   0,
	}
}

// Eye returns the camera position in world space.
func (s OrbitState) Eye() math.Vec3 {
	st, ct := gomath.Sincos(math.Radians(s.Theta))
	sp, cp := gomath.Sincos(math.Radians(s.Phi))

	return math.Vec3{
		X: float32(s.Radius * ct * sp),
		Y: float32(s.Radius * cp),
		Z: float32(s.Radius * st * sp),
	}
}

// ViewMatrix returns the view matrix looking at the origin with +Y up.
func (s OrbitState) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(s.Eye(), math.Vec3{}, up)
}

// NormalMatrix returns the rotation part of the view matrix. The view
// transform is rigid, so no inverse-transpose is needed.
func (s OrbitState) NormalMatrix() math.Mat3 {
	return s.ViewMatrix().Mat3()
}

// Extent returns the half-width of the view volume at the current zoom.
func (s OrbitState) Extent(l Limits) float64 {
	return l.ProjectionConstant - s.Zoom
}

// ProjectionMatrix returns the orthographic projection for the current zoom.
func (s OrbitState) ProjectionMatrix(l Limits) math.Mat4 {
	h := float32(s.Extent(l))
	return math.Ortho(-h, h, -h, h, float32(l.Near), float32(l.Far))
}

// Matrices bundles everything derived from an OrbitState.
type Matrices struct {
	Eye        math.Vec3
	View       math.Mat4
	Normal     math.Mat3
	Projection math.Mat4
}

// Derive computes all camera matrices.
func (s OrbitState) Derive(l Limits) Matrices {
	return Matrices{
		Eye:        s.Eye(),
		View:       s.ViewMatrix(),
		Normal:     s.NormalMatrix(),
		Projection: s.ProjectionMatrix(l),
	}
}

func (s OrbitState) String() string {
	return fmt.Sprintf("theta %g° phi %g° zoom %g", s.Theta, s.Phi, s.Zoom)
}
