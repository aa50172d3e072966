package math

import (
	"testing"
)

func TestOrtho(t *testing.T) {
	m := Ortho(-10, 10, -10, 10, -10, 10)

	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{Vec3{10, 10, 0}, Vec3{1, 1, 0}},
		{Vec3{-10, -10, 0}, Vec3{-1, -1, 0}},
		{Vec3{5, -5, 0}, Vec3{0.5, -0.5, 0}},
		// Depth is flipped: -near maps to -1.
		{Vec3{0, 0, 10}, Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		got := m.TransformPoint(tt.in)
		if !near3(got, tt.want) {
			t.Errorf("Ortho(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye lands at the view-space origin.
	if got := m.TransformPoint(eye); !near3(got, Vec3{}) {
		t.Errorf("LookAt eye in view space = %v, want origin", got)
	}
	// The target lies straight down -Z.
	if got := m.TransformPoint(center); !near3(got, Vec3{0, 0, -5}) {
		t.Errorf("LookAt center in view space = %v, want (0, 0, -5)", got)
	}
}

func TestLookAtFromPositiveX(t *testing.T) {
	m := LookAt(Vec3{1, 0, 0}, Vec3{}, Vec3{0, 1, 0})

	// World +Y stays up, world -X becomes the viewing direction.
	// The eye maps to the origin, so points one unit from it read as directions.
	if got := m.TransformPoint(Vec3{1, 1, 0}); !near3(got, Vec3{0, 1, 0}) {
		t.Errorf("up in view space = %v, want (0, 1, 0)", got)
	}
	if got := m.TransformPoint(Vec3{0, 0, 0}); !near3(got, Vec3{0, 0, -1}) {
		t.Errorf("forward in view space = %v, want (0, 0, -1)", got)
	}
}

func TestMat3(t *testing.T) {
	m := LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{0, 1, 0})
	n := m.Mat3()

	// Columns 0-2 are copied, the translation column is dropped.
	want := Mat3{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}
	if n != want {
		t.Errorf("Mat3() = %v, want %v", n, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near3(a, b Vec3) bool {
	const eps = 1e-5
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}
