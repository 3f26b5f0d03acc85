package lights

import (
	"fmt"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// PointLight emits equally in all directions from a position
type PointLight struct {
	intensity   core.Vec3
	position    core.Vec3
	attenuation Attenuation
}

// NewPointLight creates a point light with distance attenuation
func NewPointLight(intensity, position core.Vec3, attenuation Attenuation) (*PointLight, error) {
	if err := attenuation.Validate(); err != nil {
		return nil, fmt.Errorf("point light: %w", err)
	}
	return &PointLight{
		intensity:   intensity,
		position:    position,
		attenuation: attenuation,
	}, nil
}

// LightRay returns a ray from the point toward the light position
func (pl *PointLight) LightRay(point core.Vec3) core.Ray {
	return core.NewRay(point, directionTo(pl.position, point))
}

// DistanceFrom returns the Euclidean distance to the light
func (pl *PointLight) DistanceFrom(point core.Vec3) float64 {
	return point.Subtract(pl.position).Length()
}

// IntensityAt returns intensity / (kc + kl·d + kq·d²)
func (pl *PointLight) IntensityAt(point core.Vec3) core.Vec3 {
	factor := pl.attenuation.Factor(pl.DistanceFrom(point))
	if factor <= 0 {
		// Only reachable at the light position with kc = 0
		return core.Vec3{}
	}
	return pl.intensity.Multiply(1 / factor)
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// directionTo returns the unit vector from point to target. A point sitting
// exactly on the light has no direction; straight up is used so callers never see NaN.
func directionTo(target, point core.Vec3) core.Vec3 {
	toLight := target.Subtract(point)
	if toLight.IsZero() {
		return core.NewVec3(0, 1, 0)
	}
	return toLight.Normalize()
}
