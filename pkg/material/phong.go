package material

import (
	"errors"
	"fmt"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// ErrInvalidMaterial is returned when a material parameter is out of range
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong reflectance coefficients of a surface
type Material struct {
	Ambient    core.Vec3 // Per-channel ambient reflectance in [0,1]
	Diffuse    core.Vec3 // Per-channel diffuse reflectance in [0,1]
	Specular   core.Vec3 // Per-channel specular reflectance in [0,1]
	Shininess  float64   // Specular exponent, > 0
	Reflection float64   // Mirror reflection weight in [0,1]
}

// New creates a validated Phong material
func New(ambient, diffuse, specular core.Vec3, shininess, reflection float64) (Material, error) {
	m := Material{
		Ambient:    ambient,
		Diffuse:    diffuse,
		Specular:   specular,
		Shininess:  shininess,
		Reflection: reflection,
	}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// NewMirror creates a black, fully reflective material with a tight highlight
func NewMirror(specular core.Vec3) (Material, error) {
	return New(core.Vec3{}, core.Vec3{}, specular, 1000, 1)
}

// Validate checks every coefficient against its allowed range
func (m Material) Validate() error {
	channels := []struct {
		name  string
		value core.Vec3
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
	}
	for _, c := range channels {
		if !inUnitRange(c.value.X) || !inUnitRange(c.value.Y) || !inUnitRange(c.value.Z) {
			return fmt.Errorf("%s %v outside [0,1]: %w", c.name, c.value, ErrInvalidMaterial)
		}
	}
	if !(m.Shininess > 0) {
		return fmt.Errorf("shininess %g must be positive: %w", m.Shininess, ErrInvalidMaterial)
	}
	if !inUnitRange(m.Reflection) {
		return fmt.Errorf("reflection %g outside [0,1]: %w", m.Reflection, ErrInvalidMaterial)
	}
	return nil
}

// IsReflective reports whether the surface spawns reflection rays
func (m Material) IsReflective() bool {
	return m.Reflection != 0
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
