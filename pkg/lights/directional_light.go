package lights

import (
	"fmt"
	"math"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// DirectionalLight is an infinitely distant light, like the sun
type DirectionalLight struct {
	intensity core.Vec3
	direction core.Vec3 // Unit direction the light travels in
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(intensity, direction core.Vec3) (*DirectionalLight, error) {
	if direction.IsZero() || !direction.IsFinite() {
		return nil, fmt.Errorf("directional light direction %v: %w", direction, ErrInvalidLight)
	}
	return &DirectionalLight{
		intensity: intensity,
		direction: direction.Normalize(),
	}, nil
}

// LightRay points back against the light's direction of travel
func (dl *DirectionalLight) LightRay(point core.Vec3) core.Ray {
	return core.NewRay(point, dl.direction.Negate())
}

// DistanceFrom is infinite for every point
func (dl *DirectionalLight) DistanceFrom(core.Vec3) float64 {
	return math.Inf(1)
}

// IntensityAt is constant for every point
func (dl *DirectionalLight) IntensityAt(core.Vec3) core.Vec3 {
	return dl.intensity
}

// Direction returns the unit direction the light travels in
func (dl *DirectionalLight) Direction() core.Vec3 {
	return dl.direction
}
