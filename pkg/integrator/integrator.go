package integrator

import (
	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/lights"
)

// Scene is the read-only view of the world an integrator traces against
type Scene interface {
	GetAmbient() core.Vec3
	GetLights() []lights.Light
	GetPrimitives() []geometry.Primitive
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclamped color seen along a primary ray.
	// Counters for the rays cast are added to stats.
	RayColor(ray core.Ray, stats *TraceStats) core.Vec3
}

// TraceStats counts the rays cast while computing colors.
// Each worker owns one; results are combined with Merge.
type TraceStats struct {
	PrimaryRays     int // Rays cast from the camera
	PrimaryHits     int // Primary rays that hit a primitive
	ShadowRays      int // Rays cast toward lights
	OccludedRays    int // Shadow rays blocked before reaching their light
	ReflectionRays  int // Mirror rays spawned by reflective surfaces
	MaxDepthReached int // Deepest recursion level shaded
}

// Merge adds the counters of other into s
func (s *TraceStats) Merge(other TraceStats) {
	s.PrimaryRays += other.PrimaryRays
	s.PrimaryHits += other.PrimaryHits
	s.ShadowRays += other.ShadowRays
	s.OccludedRays += other.OccludedRays
	s.ReflectionRays += other.ReflectionRays
	s.MaxDepthReached = max(s.MaxDepthReached, other.MaxDepthReached)
}
