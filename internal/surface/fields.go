package surface

import (
	"fmt"
	"math"
	"strings"
)

// Field identifies one adjustable shape parameter.
type Field int

const (
	FieldA Field = iota
	FieldB
	FieldC
	FieldJ
	FieldK
	FieldOuterRadius
	FieldInnerRadius
	FieldOffset
	FieldRowSegments
	FieldColumnSegments
)

var fieldNames = [...]string{
	FieldA:              "a",
	FieldB:              "b",
	FieldC:              "c",
	FieldJ:              "j",
	FieldK:              "k",
	FieldOuterRadius:    "outer_radius",
	FieldInnerRadius:    "inner_radius",
	FieldOffset:         "offset",
	FieldRowSegments:    "row_segments",
	FieldColumnSegments: "column_segments",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField looks a field up by its config name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape field %q", name)
}

// Range is the inclusive interval a field may take when edited
// interactively, with the step applied per key press.
type Range struct {
	Min, Max, Step float64
}

// Ranges returns the interactive editing range of every field.
func Ranges() map[Field]Range {
	return map[Field]Range{
		FieldA:              {1.1, 1.3, 0.01},
		FieldB:              {3, 16, 1},
		FieldC:              {1, 2, 0.1},
		FieldJ:              {2, 12, 1},
		FieldK:              {0, 3, 0.25},
		FieldOuterRadius:    {1, 2, 0.125},
		FieldInnerRadius:    {1, 2, 0.125},
		FieldOffset:         {-3, 3, 0.5},
		FieldRowSegments:    {2, 200, 1},
		FieldColumnSegments: {2, 200, 1},
	}
}

// Get returns the value of f as a float.
func (p ShapeParameters) Get(f Field) float64 {
	switch f {
	case FieldA:
		return p.A
	case FieldB:
		return p.B
	case FieldC:
		return p.C
	case FieldJ:
		return p.J
	case FieldK:
		return p.K
	case FieldOuterRadius:
		return p.OuterRadius
	case FieldInnerRadius:
		return p.InnerRadius
	case FieldOffset:
		return p.Offset
	case FieldRowSegments:
		return float64(p.RowSegments)
	case FieldColumnSegments:
		return float64(p.ColumnSegments)
	}
	return 0
}

// Set returns a copy of p with f set to v. Segment counts are rounded and
// saturate at the int32 range.
func (p ShapeParameters) Set(f Field, v float64) ShapeParameters {
	switch f {
	case FieldA:
		p.A = v
	case FieldB:
		p.B = v
	case FieldC:
		p.C = v
	case FieldJ:
		p.J = v
	case FieldK:
		p.K = v
	case FieldOuterRadius:
		p.OuterRadius = v
	case FieldInnerRadius:
		p.InnerRadius = v
	case FieldOffset:
		p.Offset = v
	case FieldRowSegments:
		p.RowSegments = segmentCount(v)
	case FieldColumnSegments:
		p.ColumnSegments = segmentCount(v)
	}
	return p
}

// IsCount reports whether f holds an integer segment count.
func (f Field) IsCount() bool {
	return f == FieldRowSegments || f == FieldColumnSegments
}

// segmentCount rounds v into the int32 range. NaN maps to 0 so Validate
// rejects it.
func segmentCount(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(v))
}

// Adjust steps f by steps increments of its range step and clamps the result
// into the range. The bool is false when the value did not change.
func (p ShapeParameters) Adjust(f Field, steps int) (ShapeParameters, bool) {
	r, ok := Ranges()[f]
	if !ok {
		return p, false
	}
	old := p.Get(f)
	v := old + float64(steps)*r.Step
	// Snap to the step grid so repeated float steps do not drift.
	v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	v = math.Max(r.Min, math.Min(r.Max, v))
	next := p.Set(f, v)
	if next.Get(f) == old {
		return p, false
	}
	return next, true
}
