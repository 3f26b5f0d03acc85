package lights

import (
	"fmt"
	"math"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// SpotLight is a point light whose intensity falls off away from its axis
type SpotLight struct {
	PointLight
	direction core.Vec3 // Unit cone axis, pointing from the light into the scene
}

// NewSpotLight creates a spot light at position aimed along direction
func NewSpotLight(intensity, position, direction core.Vec3, attenuation Attenuation) (*SpotLight, error) {
	if direction.IsZero() || !direction.IsFinite() {
		return nil, fmt.Errorf("spot light direction %v: %w", direction, ErrInvalidLight)
	}
	point, err := NewPointLight(intensity, position, attenuation)
	if err != nil {
		return nil, fmt.Errorf("spot light: %w", err)
	}
	return &SpotLight{
		PointLight: *point,
		direction:  direction.Normalize(),
	}, nil
}

// IntensityAt scales the attenuated intensity by the cosine between the
// cone axis and the direction from the light to the point. Points behind
// the light receive nothing.
func (sl *SpotLight) IntensityAt(point core.Vec3) core.Vec3 {
	if point == sl.position {
		return core.Vec3{}
	}
	toLight := directionTo(sl.position, point)
	cone := math.Max(0, toLight.Dot(sl.direction.Negate()))
	return sl.PointLight.IntensityAt(point).Multiply(cone)
}

// Direction returns the unit cone axis
func (sl *SpotLight) Direction() core.Vec3 {
	return sl.direction
}
