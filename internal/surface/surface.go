package surface

import (
	gomath "math"

	"github.com/Faultbox/shellview/pkg/math"
)

// degenerateEpsilon is the tangent cross product length below which the
// normal is considered undefined.
const degenerateEpsilon = 1e-12

// fallbackNormal is used where the two tangents are parallel or vanish.
var fallbackNormal = [3]float64{0, 0, 1}

// position evaluates the surface at (u, v) in float64.
func (p ShapeParameters) position(u, v float64) [3]float64 {
	au := gomath.Pow(p.A, u)
	ring := p.OuterRadius + p.InnerRadius*gomath.Cos(v)
	sju, cju := gomath.Sincos(p.J * u)

	return [3]float64{
		ring * au * cju,
		ring * (-au * sju),
		-p.C*(p.B+p.InnerRadius*gomath.Sin(v))*au*p.K + p.Offset,
	}
}

// tangents returns the analytic partial derivatives dP/du and dP/dv.
func (p ShapeParameters) tangents(u, v float64) (tu, tv [3]float64) {
	au := gomath.Pow(p.A, u)
	lna := gomath.Log(p.A)
	sv, cv := gomath.Sincos(v)
	sju, cju := gomath.Sincos(p.J * u)
	ring := p.OuterRadius + p.InnerRadius*cv
	height := p.B + p.InnerRadius*sv

	// d(a^u)/du = a^u ln a, product rule across cos(ju) / sin(ju).
	tu = [3]float64{
		ring * au * (lna*cju - p.J*sju),
		-ring * au * (lna*sju + p.J*cju),
		-p.C * p.K * height * au * lna,
	}
	tv = [3]float64{
		-p.InnerRadius * sv * au * cju,
		p.InnerRadius * sv * au * sju,
		-p.C * p.K * p.InnerRadius * cv * au,
	}
	return tu, tv
}

// normal returns normalize(T_u x T_v). For positive parameters this points
// away from the tube centre line.
func (p ShapeParameters) normal(u, v float64) [3]float64 {
	tu, tv := p.tangents(u, v)
	n := [3]float64{
		tu[1]*tv[2] - tu[2]*tv[1],
		tu[2]*tv[0] - tu[0]*tv[2],
		tu[0]*tv[1] - tu[1]*tv[0],
	}
	l := gomath.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l < degenerateEpsilon || gomath.IsNaN(l) {
		return fallbackNormal
	}
	return [3]float64{n[0] / l, n[1] / l, n[2] / l}
}

// Evaluate returns the homogeneous position (w = 1) and unit normal (w = 0)
// of the surface at parameter (u, v). It does not validate p.
func Evaluate(p ShapeParameters, u, v float64) (pos, normal math.Vec4) {
	x := p.position(u, v)
	n := p.normal(u, v)
	return math.Vec4{float32(x[0]), float32(x[1]), float32(x[2]), 1},
		math.Vec4{float32(n[0]), float32(n[1]), float32(n[2]), 0}
}
