package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shellview/internal/surface"
)

func testMesh(t *testing.T) *surface.Mesh {
	t.Helper()
	p := surface.DefaultParameters()
	p.RowSegments = 4
	p.ColumnSegments = 4
	mesh, err := surface.Generate(p)
	require.NoError(t, err)
	return mesh
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{STLBinary, STLASCII, OBJ} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("ply")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/shell.STL")
	require.NoError(t, err)
	assert.Equal(t, STLBinary, f)

	f, err = FormatFromPath("shell.obj")
	require.NoError(t, err)
	assert.Equal(t, OBJ, f)

	_, err = FormatFromPath("shell.txt")
	assert.Error(t, err)
}

func TestWriteSTLBinary(t *testing.T) {
	mesh := testMesh(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSTLBinary(&buf, "shell", mesh))

	tris := len(mesh.Triangles())
	assert.Equal(t, 18, tris)
	assert.Equal(t, stlHeaderSize+4+50*tris, buf.Len())

	data := buf.Bytes()
	assert.Equal(t, "shell", string(bytes.TrimRight(data[:stlHeaderSize], "\x00")))
	assert.Equal(t, uint32(tris), binary.LittleEndian.Uint32(data[stlHeaderSize:]))

	// First facet: unit normal, first vertex equals the mesh's first position.
	rec := data[stlHeaderSize+4:]
	var n [3]float64
	for i := range n {
		n[i] = float64(gomath.Float32frombits(binary.LittleEndian.Uint32(rec[i*4:])))
	}
	assert.InDelta(t, 1.0, gomath.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2]), 1e-5)
	x := gomath.Float32frombits(binary.LittleEndian.Uint32(rec[12:]))
	assert.Equal(t, mesh.Positions[0][0], x)
}

func TestWriteSTLASCII(t *testing.T) {
	mesh := testMesh(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSTLASCII(&buf, "shell", mesh))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "solid shell\n"))
	assert.True(t, strings.HasSuffix(out, "endsolid shell\n"))
	assert.Equal(t, 18, strings.Count(out, "facet normal"))
	assert.Equal(t, 54, strings.Count(out, "vertex "))
}

func TestWriteOBJ(t *testing.T) {
	mesh := testMesh(t)
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, "shell", mesh))

	counts := map[string]int{}
	var last string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			counts[fields[0]]++
			if fields[0] == "f" {
				last = sc.Text()
			}
		}
	}
	assert.Equal(t, 36, counts["v"])
	assert.Equal(t, 36, counts["vn"])
	assert.Equal(t, 9, counts["f"])
	assert.Equal(t, 1, counts["o"])
	assert.Equal(t, "f 33//33 34//34 35//35 36//36", last)
}

func TestFacetNormalFallsBackToWinding(t *testing.T) {
	var tri surface.Triangle
	tri.Positions[1].X = 1
	tri.Positions[2].Y = 1
	// Corner normals cancel.
	tri.Normals[0].Z = 1
	tri.Normals[1].Z = -1

	n := facetNormal(tri)
	assert.InDelta(t, 1.0, float64(n.Z), 1e-6)
}

func TestWriteFile(t *testing.T) {
	mesh := testMesh(t)
	path := filepath.Join(t.TempDir(), "shell.stl")
	require.NoError(t, WriteFile(path, STLBinary, "shell", mesh))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(stlHeaderSize+4+50*18), info.Size())

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.obj"), OBJ, "shell", mesh)
	assert.Error(t, err)
}
