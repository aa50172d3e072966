// Package lighting holds the light and material used to shade the surface
// and the per-channel products uploaded to the shader.
package lighting

import (
	"github.com/Faultbox/shellview/pkg/math"
)

// Light is a single light source. A position with w = 0 is a directional
// light.
type Light struct {
	Position math.Vec4 `yaml:"position"`
	Ambient  math.Vec4 `yaml:"ambient"`
	Diffuse  math.Vec4 `yaml:"diffuse"`
	Specular math.Vec4 `yaml:"specular"`
}

// Material is the surface reflectance.
type Material struct {
	Ambient   math.Vec4 `yaml:"ambient"`
	Diffuse   math.Vec4 `yaml:"diffuse"`
	Specular  math.Vec4 `yaml:"specular"`
	Shininess float32   `yaml:"shininess"`
}

// DefaultLight is a white directional light from (1, 1, 1).
func DefaultLight() Light {
	return Light{
		Position: math.Vec4{1, 1, 1, 0},
		Ambient:  math.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  math.Vec4{1, 1, 1, 1},
		Specular: math.Vec4{1, 1, 1, 1},
	}
}

// DefaultMaterial is magenta ambient, amber diffuse, white highlights.
func DefaultMaterial() Material {
	return Material{
		Ambient:   math.Vec4{1, 0, 1, 1},
		Diffuse:   math.Vec4{1, 0.8, 0, 1},
		Specular:  math.Vec4{1, 1, 1, 1},
		Shininess: 20,
	}
}

// Products are the uniform values the shader consumes.
type Products struct {
	Ambient       math.Vec4
	Diffuse       math.Vec4
	Specular      math.Vec4
	LightPosition math.Vec4
	Shininess     float32
}

// Combine multiplies each light term with the matching material term.
func Combine(l Light, m Material) Products {
	return Products{
		Ambient:       l.Ambient.Mul(m.Ambient),
		Diffuse:       l.Diffuse.Mul(m.Diffuse),
		Specular:      l.Specular.Mul(m.Specular),
		LightPosition: l.Position,
		Shininess:     m.Shininess,
	}
}
