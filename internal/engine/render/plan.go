// Package render turns a quad mesh and a shading mode into the list of draw
// calls the renderer issues each frame.
package render

import (
	"fmt"
	"strings"
)

// ShadingMode selects how the surface is shaded. The numeric value is the
// selector uploaded to the shader.
type ShadingMode int

const (
	Wireframe ShadingMode = iota
	PerVertex
	PerFragment
)

var shadingNames = [...]string{
	Wireframe:   "wireframe",
	PerVertex:   "per_vertex",
	PerFragment: "per_fragment",
}

func (m ShadingMode) String() string {
	if m < 0 || int(m) >= len(shadingNames) {
		return fmt.Sprintf("ShadingMode(%d)", int(m))
	}
	return shadingNames[m]
}

// Lit reports whether the mode fills the quads.
func (m ShadingMode) Lit() bool {
	return m == PerVertex || m == PerFragment
}

// ParseShadingMode parses a config name such as "per_fragment".
func ParseShadingMode(s string) (ShadingMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range shadingNames {
		if n == name {
			return ShadingMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shading mode %q", s)
}

// Primitive is the topology of a draw call.
type Primitive int

const (
	LineLoop Primitive = iota
	LineStrip
	TriangleFan
)

func (p Primitive) String() string {
	switch p {
	case LineLoop:
		return "line_loop"
	case LineStrip:
		return "line_strip"
	case TriangleFan:
		return "triangle_fan"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// DrawCommand draws Count vertices starting at First.
type DrawCommand struct {
	Primitive Primitive
	First     int32
	Count     int32
}

// quadSize is the number of vertices per quad in the uploaded buffers.
const quadSize = 4

// Plan returns the draw calls for a mesh of vertexCount vertices laid out as
// consecutive quads. Wireframe draws each quad as a line loop; lit modes
// draw each quad as a triangle fan, followed by line strips over each
// corner pair when outline is set.
func Plan(vertexCount int, mode ShadingMode, outline bool) []DrawCommand {
	quads := vertexCount / quadSize
	if quads == 0 {
		return nil
	}

	if !mode.Lit() {
		cmds := make([]DrawCommand, 0, quads)
		for q := 0; q < quads; q++ {
			cmds = append(cmds, DrawCommand{Primitive: LineLoop, First: int32(q * quadSize), Count: quadSize})
		}
		return cmds
	}

	n := quads
	if outline {
		n += quads * 2
	}
	cmds := make([]DrawCommand, 0, n)
	for q := 0; q < quads; q++ {
		cmds = append(cmds, DrawCommand{Primitive: TriangleFan, First: int32(q * quadSize), Count: quadSize})
	}
	if outline {
		for q := 0; q < quads; q++ {
			first := int32(q * quadSize)
			cmds = append(cmds,
				DrawCommand{Primitive: LineStrip, First: first, Count: 2},
				DrawCommand{Primitive: LineStrip, First: first + 2, Count: 2},
			)
		}
	}
	return cmds
}
