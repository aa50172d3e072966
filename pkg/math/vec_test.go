package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got := a.Min(b); got != (Vec3{1, -1, -2}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, 0}) {
		t.Errorf("Max() = %v", got)
	}
}

func TestVec3Homogeneous(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := v.Point(); got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Point() = %v", got)
	}
}

func TestVec4Mul(t *testing.T) {
	light := Vec4{0.2, 0.2, 0.2, 1}
	material := Vec4{1, 0, 1, 1}
	got := light.Mul(material)
	want := Vec4{0.2, 0, 0.2, 1}
	if got != want {
		t.Errorf("Vec4.Mul() = %v, want %v", got, want)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
