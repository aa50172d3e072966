package export

import (
	"encoding/binary"
	"fmt"
	"io"
	gomath "math"

	"github.com/Faultbox/shellview/internal/surface"
	"github.com/Faultbox/shellview/pkg/math"
)

const stlHeaderSize = 80

// facetNormal averages the corner normals of t. When they cancel out the
// geometric normal from the winding is used instead.
func facetNormal(t surface.Triangle) math.Vec3 {
	n := t.Normals[0].Add(t.Normals[1]).Add(t.Normals[2])
	if n.Length() > 1e-6 {
		return n.Normalize()
	}
	e1 := t.Positions[1].Sub(t.Positions[0])
	e2 := t.Positions[2].Sub(t.Positions[0])
	return e1.Cross(e2).Normalize()
}

// WriteSTLBinary writes mesh as a little-endian binary STL.
func WriteSTLBinary(w io.Writer, name string, mesh *surface.Mesh) error {
	header := make([]byte, stlHeaderSize)
	copy(header, name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	tris := mesh.Triangles()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	// normal, three vertices, attribute byte count
	var rec [50]byte
	for i, t := range tris {
		putVec3(rec[0:12], facetNormal(t))
		putVec3(rec[12:24], t.Positions[0])
		putVec3(rec[24:36], t.Positions[1])
		putVec3(rec[36:48], t.Positions[2])
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	return nil
}

func putVec3(b []byte, v math.Vec3) {
	binary.LittleEndian.PutUint32(b[0:4], gomath.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:8], gomath.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:12], gomath.Float32bits(v.Z))
}

// WriteSTLASCII writes mesh as an ASCII STL solid.
func WriteSTLASCII(w io.Writer, name string, mesh *surface.Mesh) error {
	ew := &errWriter{w: w}
	ew.printf("solid %s\n", name)
	for _, t := range mesh.Triangles() {
		n := facetNormal(t)
		ew.printf("  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		ew.printf("    outer loop\n")
		for _, p := range t.Positions {
			ew.printf("      vertex %e %e %e\n", p.X, p.Y, p.Z)
		}
		ew.printf("    endloop\n")
		ew.printf("  endfacet\n")
	}
	ew.printf("endsolid %s\n", name)
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
