package geometry

import (
	"fmt"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// planeEpsilon keeps the plane equation finite for rays parallel to the plane
const planeEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	surface
	Normal core.Vec3 // Unit normal
	Point  core.Vec3 // A point on the plane
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(normal, point core.Vec3) (*Plane, error) {
	if normal.IsZero() || !normal.IsFinite() {
		return nil, fmt.Errorf("plane normal %v: %w", normal, ErrDegenerate)
	}
	return &Plane{
		Normal: normal.Normalize(),
		Point:  point,
	}, nil
}

// Intersect tests if a ray intersects with the plane in front of its origin
func (p *Plane) Intersect(ray core.Ray) (HitRecord, bool) {
	t, ok := planeDistance(p.Point, p.Normal, ray)
	if !ok {
		return HitRecord{}, false
	}

	return HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.material,
	}, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// planeDistance solves t = (point - origin)·n / (n·d + ε) and accepts only t > 0.
// Rays nearly parallel to the plane yield huge t values rather than a division by zero.
func planeDistance(point, normal core.Vec3, ray core.Ray) (float64, bool) {
	t := point.Subtract(ray.Origin).Dot(normal) / (normal.Dot(ray.Direction) + planeEpsilon)
	return t, t > 0
}
