// Package surface tessellates the parametric shell surface into quads with
// analytic per-vertex normals.
package surface

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewSegments is returned when a segment count is below 2.
	ErrTooFewSegments = errors.New("segment count must be at least 2")
	// ErrNonPositiveBase is returned when the spiral base a is not positive.
	ErrNonPositiveBase = errors.New("spiral base a must be positive")
	// ErrNotFinite is returned when a parameter is NaN or infinite.
	ErrNotFinite = errors.New("parameter must be finite")
)

// ShapeParameters fully determine the topology and geometry of a mesh.
type ShapeParameters struct {
	A              float64 `yaml:"a"`
	B              float64 `yaml:"b"`
	C              float64 `yaml:"c"`
	J              float64 `yaml:"j"`
	K              float64 `yaml:"k"`
	OuterRadius    float64 `yaml:"outer_radius"`
	InnerRadius    float64 `yaml:"inner_radius"`
	Offset         float64 `yaml:"offset"` // Fixed z offset added to every vertex
	RowSegments    int     `yaml:"row_segments"`
	ColumnSegments int     `yaml:"column_segments"`
}

// DefaultParameters returns the shape shown at startup.
func DefaultParameters() ShapeParameters {
	return ShapeParameters{
		A:              1.2,
		B:              3,
		C:              1,
		J:              2,
		K:              1,
		OuterRadius:    1.375,
		InnerRadius:    1,
		RowSegments:    40,
		ColumnSegments: 40,
	}
}

// Validate reports whether the parameters can be tessellated.
func (p ShapeParameters) Validate() error {
	if p.RowSegments < 2 {
		return fmt.Errorf("row segments %d: %w", p.RowSegments, ErrTooFewSegments)
	}
	if p.ColumnSegments < 2 {
		return fmt.Errorf("column segments %d: %w", p.ColumnSegments, ErrTooFewSegments)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"a", p.A}, {"b", p.B}, {"c", p.C}, {"j", p.J}, {"k", p.K},
		{"outer radius", p.OuterRadius}, {"inner radius", p.InnerRadius}, {"offset", p.Offset},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s = %v: %w", f.name, f.v, ErrNotFinite)
		}
	}
	if p.A <= 0 {
		return fmt.Errorf("a = %v: %w", p.A, ErrNonPositiveBase)
	}
	return nil
}

// QuadCount returns the number of quads Generate emits for p.
func (p ShapeParameters) QuadCount() int {
	if p.RowSegments < 2 || p.ColumnSegments < 2 {
		return 0
	}
	return (p.RowSegments - 1) * (p.ColumnSegments - 1)
}
