package lights

import (
	"errors"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// ErrInvalidLight is returned when a light is constructed with unusable parameters
var ErrInvalidLight = errors.New("invalid light")

// Light interface for sources that illuminate a surface point
type Light interface {
	// LightRay returns a ray from the point toward the light with a unit direction
	LightRay(point core.Vec3) core.Ray

	// DistanceFrom returns the distance between the point and the light (+Inf for directional lights)
	DistanceFrom(point core.Vec3) float64

	// IntensityAt returns the light arriving at the point, before any surface response
	IntensityAt(point core.Vec3) core.Vec3
}
