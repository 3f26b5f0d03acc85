package integrator

import (
	"math"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/lights"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

// SurfaceOffset is how far secondary rays start above the surface, to keep
// them from hitting the surface they leave
const SurfaceOffset = 1e-2

// WhittedIntegrator implements recursive Whitted ray tracing with Phong
// shading, hard shadows and mirror reflections
type WhittedIntegrator struct {
	ambient    core.Vec3
	lights     []lights.Light
	primitives []geometry.Primitive
	maxDepth   int
}

// NewWhittedIntegrator creates an integrator over a snapshot of the scene.
// maxDepth bounds the number of surfaces shaded along one camera ray.
func NewWhittedIntegrator(scene Scene, maxDepth int) *WhittedIntegrator {
	return &WhittedIntegrator{
		ambient:    scene.GetAmbient(),
		lights:     scene.GetLights(),
		primitives: scene.GetPrimitives(),
		maxDepth:   maxDepth,
	}
}

// RayColor returns the color along a primary ray, or black on a miss
func (wi *WhittedIntegrator) RayColor(ray core.Ray, stats *TraceStats) core.Vec3 {
	if stats == nil {
		stats = &TraceStats{}
	}
	stats.PrimaryRays++

	hit, isHit := geometry.NearestIntersection(ray, wi.primitives)
	if !isHit {
		return core.Vec3{}
	}
	stats.PrimaryHits++

	return wi.GetColor(hit, ray, 0, stats)
}

// GetColor shades a hit: ambient, then diffuse and specular from each
// unoccluded light, then the reflected color while depth+1 < maxDepth.
// The result is not clamped.
func (wi *WhittedIntegrator) GetColor(hit geometry.HitRecord, ray core.Ray, depth int, stats *TraceStats) core.Vec3 {
	m := hit.Material
	if m == nil {
		return core.Vec3{}
	}
	if stats == nil {
		stats = &TraceStats{}
	}
	stats.MaxDepthReached = max(stats.MaxDepthReached, depth)

	normal := hit.Normal.Normalize()
	point := hit.Point.Add(normal.Multiply(SurfaceOffset))
	viewDirection := ray.Origin.Subtract(point).Normalize()

	color := m.Ambient.MultiplyVec(wi.ambient)

	for _, light := range wi.lights {
		color = color.Add(wi.directLight(light, m, point, normal, viewDirection, stats))
	}

	if depth+1 < wi.maxDepth && m.IsReflective() {
		reflected := core.NewRay(point, ray.Direction.Reflect(normal))
		stats.ReflectionRays++

		if next, isHit := geometry.NearestIntersection(reflected, wi.primitives); isHit {
			reflectedColor := wi.GetColor(next, reflected, depth+1, stats)
			color = color.Add(reflectedColor.Multiply(m.Reflection))
		}
	}

	return color
}

// directLight returns the diffuse and specular contribution of one light,
// or black when something lies strictly between the point and the light
func (wi *WhittedIntegrator) directLight(light lights.Light, m *material.Material, point, normal, viewDirection core.Vec3, stats *TraceStats) core.Vec3 {
	lightRay := light.LightRay(point)
	stats.ShadowRays++

	blocker, _ := geometry.NearestIntersection(lightRay, wi.primitives)
	if blocker.T < light.DistanceFrom(point) {
		stats.OccludedRays++
		return core.Vec3{}
	}

	intensity := light.IntensityAt(point)
	lightDirection := lightRay.Direction

	diffuse := m.Diffuse.MultiplyVec(intensity).
		Multiply(math.Max(0, normal.Dot(lightDirection)))

	reflectedLight := lightDirection.Negate().Reflect(normal)
	specular := m.Specular.MultiplyVec(intensity).
		Multiply(math.Pow(math.Max(0, viewDirection.Dot(reflectedLight)), m.Shininess))

	return diffuse.Add(specular)
}
