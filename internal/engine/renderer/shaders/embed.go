// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader transforms the surface and computes per-vertex
// lighting when Gouraud shading is selected.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader outputs wire colors, interpolated per-vertex
// lighting or per-fragment Phong lighting.
//
//go:embed surface.frag
var SurfaceFragmentShader string
