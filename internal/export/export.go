// Package export writes generated meshes to STL and Wavefront OBJ files.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/shellview/internal/surface"
)

// Format is a mesh file format.
type Format int

const (
	STLBinary Format = iota
	STLASCII
	OBJ
)

var formatNames = [...]string{
	STLBinary: "stl",
	STLASCII:  "stl-ascii",
	OBJ:       "obj",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses a format name ("stl", "stl-ascii" or "obj").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown export format %q", s)
}

// FormatFromPath guesses the format from the file extension. STL files
// default to the binary layout.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return STLBinary, nil
	case ".obj":
		return OBJ, nil
	}
	return 0, fmt.Errorf("cannot infer export format from %q", path)
}

// Write encodes mesh to w in format f. name is stored in the file header.
func Write(w io.Writer, f Format, name string, mesh *surface.Mesh) error {
	switch f {
	case STLBinary:
		return WriteSTLBinary(w, name, mesh)
	case STLASCII:
		return WriteSTLASCII(w, name, mesh)
	case OBJ:
		return WriteOBJ(w, name, mesh)
	}
	return fmt.Errorf("unsupported export format %v", f)
}

// WriteFile encodes mesh to the file at path.
func WriteFile(path string, f Format, name string, mesh *surface.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := Write(bw, f, name, mesh); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", f, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}
