package camera

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsValidate(t *testing.T) {
	require.NoError(t, DefaultLimits().Validate())

	tests := []struct {
		name   string
		mutate func(*Limits)
	}{
		{"zero degree step", func(l *Limits) { l.DegreeStep = 0 }},
		{"degree step 90", func(l *Limits) { l.DegreeStep = 90 }},
		{"zoom step reaches constant", func(l *Limits) { l.ZoomStep = 10 }},
		{"min zoom above zoom-in limit", func(l *Limits) { l.MinZoom = 9.8 }},
		{"near equals far", func(l *Limits) { l.Near = l.Far }},
		{"nan step", func(l *Limits) { l.ZoomStep = gomath.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLimits()
			tt.mutate(&l)
			assert.ErrorIs(t, l.Validate(), ErrInvalidLimits)
		})
	}
}

func TestOrbitStateValidate(t *testing.T) {
	l := DefaultLimits()
	require.NoError(t, DefaultState().Validate(l))

	tests := []struct {
		name  string
		state OrbitState
	}{
		{"phi at top pole", OrbitState{Phi: 0, Radius: 1}},
		{"phi below one step", OrbitState{Phi: 10, Radius: 1}},
		{"phi at bottom pole", OrbitState{Phi: 180, Radius: 1}},
		{"zoom at projection constant", OrbitState{Phi: 90, Radius: 1, Zoom: 10}},
		{"zoom below min", OrbitState{Phi: 90, Radius: 1, Zoom: -20.5}},
		{"zero radius", OrbitState{Phi: 90, Radius: 0}},
		{"negative theta", OrbitState{Theta: -15, Phi: 90, Radius: 1}},
		{"infinite zoom", OrbitState{Phi: 90, Radius: 1, Zoom: gomath.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.state.Validate(l), ErrInvalidState)
		})
	}
}

// Every state reachable from the default by actions validates and derives
// finite matrices.
func TestReachableStatesValidate(t *testing.T) {
	l := DefaultLimits()
	actions := []Action{ThetaIncrease, ThetaDecrease, PhiIncrease, PhiDecrease, ZoomIn, ZoomOut}

	for _, a := range actions {
		s := DefaultState()
		for i := 0; i < 200; i++ {
			s, _ = s.Apply(a, l)
			require.NoError(t, s.Validate(l), "%s step %d", a, i)
		}
		m := s.Derive(l)
		for i, v := range append(m.View[:], m.Projection[:]...) {
			f := float64(v)
			require.False(t, gomath.IsNaN(f) || gomath.IsInf(f, 0), "%s element %d = %v", a, i, v)
		}
	}
}
