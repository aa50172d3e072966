package surface

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/shellview/pkg/math"
)

// VerticesPerQuad is the number of corners each quad contributes.
const VerticesPerQuad = 4

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is an ordered list of quads. Quad q occupies entries
// [4q, 4q+4) of Positions and Normals in the corner order
// (u1,v1), (u2,v1), (u2,v2), (u1,v2).
type Mesh struct {
	Positions []math.Vec4
	Normals   []math.Vec4
	Bounds    Bounds
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.Positions) / VerticesPerQuad
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Triangle is one half of a quad, with per-corner normals.
type Triangle struct {
	Positions [3]math.Vec3
	Normals   [3]math.Vec3
}

// Triangles splits every quad along its (u1,v1)-(u2,v2) diagonal,
// preserving the quad winding.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, m.QuadCount()*2)
	for q := 0; q < m.QuadCount(); q++ {
		base := q * VerticesPerQuad
		for _, idx := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
			var t Triangle
			for i, c := range idx {
				t.Positions[i] = m.Positions[base+c].XYZ()
				t.Normals[i] = m.Normals[base+c].XYZ()
			}
			tris = append(tris, t)
		}
	}
	return tris
}

// Flatten returns positions and normals as tightly packed float slices,
// four floats per vertex, ready for buffer upload.
func (m *Mesh) Flatten() (positions, normals []float32) {
	positions = make([]float32, 0, len(m.Positions)*4)
	normals = make([]float32, 0, len(m.Normals)*4)
	for i := range m.Positions {
		positions = append(positions, m.Positions[i][:]...)
		normals = append(normals, m.Normals[i][:]...)
	}
	return positions, normals
}

// Generate tessellates the surface over u, v in [0, 2pi]. The u domain is
// split into RowSegments-1 steps and the v domain into ColumnSegments-1
// steps; every cell emits one quad.
func Generate(p ShapeParameters) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("generate surface: %w", err)
	}

	rows, cols := p.RowSegments, p.ColumnSegments
	du := 2 * gomath.Pi / float64(rows-1)
	dv := 2 * gomath.Pi / float64(cols-1)

	// Each grid point is shared by up to four quads; evaluate once.
	grid := make([][2]math.Vec4, rows*cols)
	for i := 0; i < rows; i++ {
		u := float64(i) * du
		for k := 0; k < cols; k++ {
			v := float64(k) * dv
			pos, n := Evaluate(p, u, v)
			grid[i*cols+k] = [2]math.Vec4{pos, n}
		}
	}

	n := p.QuadCount() * VerticesPerQuad
	mesh := &Mesh{
		Positions: make([]math.Vec4, 0, n),
		Normals:   make([]math.Vec4, 0, n),
		Bounds: Bounds{
			Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
			Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
		},
	}

	for i := 0; i < rows-1; i++ {
		for k := 0; k < cols-1; k++ {
			corners := [VerticesPerQuad]int{
				i*cols + k,           // u1 v1
				(i+1)*cols + k,       // u2 v1
				(i+1)*cols + (k + 1), // u2 v2
				i*cols + (k + 1),     // u1 v2
			}
			for _, c := range corners {
				pos, nrm := grid[c][0], grid[c][1]
				mesh.Positions = append(mesh.Positions, pos)
				mesh.Normals = append(mesh.Normals, nrm)
				mesh.Bounds.Min = mesh.Bounds.Min.Min(pos.XYZ())
				mesh.Bounds.Max = mesh.Bounds.Max.Max(pos.XYZ())
			}
		}
	}

	return mesh, nil
}
