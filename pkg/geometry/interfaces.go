package geometry

import (
	"errors"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

var (
	// ErrDegenerate is returned for primitives without a well-defined surface
	ErrDegenerate = errors.New("degenerate primitive")
	// ErrInvalidRadius is returned for spheres with a non-positive radius
	ErrInvalidRadius = errors.New("invalid sphere radius")
)

// Primitive interface for objects that can be hit by rays.
// There is no per-point normal query: the surface normal is returned in
// HitRecord.Normal, which for a Pyramid is the normal of the face that was
// hit. Plane, Triangle and Sphere also offer NormalAt(point).
type Primitive interface {
	// Intersect returns the hit closest to the ray origin with t > 0, if any
	Intersect(ray core.Ray) (HitRecord, bool)
	GetMaterial() *material.Material
	SetMaterial(m material.Material)
}

// HitRecord contains information about a ray-primitive intersection.
// The normal belongs to the surface that was actually hit, so composite
// primitives report the normal of the face that produced the hit.
type HitRecord struct {
	T        float64            // Distance along the ray
	Point    core.Vec3          // Point of intersection
	Normal   core.Vec3          // Surface normal at Point (not unit length for spheres)
	Material *material.Material // Material of the hit surface, nil if never set
}

// surface carries the material shared by all primitive kinds
type surface struct {
	material *material.Material
}

// GetMaterial returns the material, or nil until SetMaterial has been called
func (s *surface) GetMaterial() *material.Material {
	return s.material
}

// SetMaterial attaches a material to the primitive
func (s *surface) SetMaterial(m material.Material) {
	s.material = &m
}
