package geometry

import (
	"fmt"
	"math"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}, nil
}

// Intersect tests if a ray intersects with the sphere.
// Only the near root is considered: a ray starting inside the sphere misses.
func (s *Sphere) Intersect(ray core.Ray) (HitRecord, bool) {
	centerOffset := s.Center.Subtract(ray.Origin)

	// Distance along the ray to the point of closest approach
	projection := centerOffset.Dot(ray.Direction)
	perpendicularSq := centerOffset.LengthSquared() - projection*projection

	radiusSq := s.Radius * s.Radius
	if perpendicularSq > radiusSq {
		return HitRecord{}, false
	}

	halfChord := math.Sqrt(radiusSq - perpendicularSq)
	t := projection - halfChord
	if t <= 0 {
		return HitRecord{}, false
	}

	point := ray.At(t)
	return HitRecord{
		T:        t,
		Point:    point,
		Normal:   s.NormalAt(point),
		Material: s.material,
	}, true
}

// NormalAt returns point - center. The result has length Radius, not 1.
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center)
}
