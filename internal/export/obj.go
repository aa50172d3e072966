package export

import (
	"io"

	"github.com/Faultbox/shellview/internal/surface"
)

// WriteOBJ writes mesh as a Wavefront OBJ object with one quad face per
// mesh quad and per-vertex normals.
func WriteOBJ(w io.Writer, name string, mesh *surface.Mesh) error {
	ew := &errWriter{w: w}
	ew.printf("# shellview surface: %d quads\n", mesh.QuadCount())
	ew.printf("o %s\n", name)
	for _, p := range mesh.Positions {
		ew.printf("v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, n := range mesh.Normals {
		ew.printf("vn %g %g %g\n", n[0], n[1], n[2])
	}
	for q := 0; q < mesh.QuadCount(); q++ {
		// OBJ indices are 1-based.
		base := q*surface.VerticesPerQuad + 1
		ew.printf("f %d//%d %d//%d %d//%d %d//%d\n",
			base, base, base+1, base+1, base+2, base+2, base+3, base+3)
	}
	return ew.err
}
