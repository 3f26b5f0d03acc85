package geometry

import (
	"math"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// NearestIntersection scans every primitive and returns the closest hit.
// On a miss the record has T = +Inf and ok is false. Exact distance ties
// keep the primitive that appears first in the slice.
func NearestIntersection(ray core.Ray, primitives []Primitive) (HitRecord, bool) {
	hit, _, ok := NearestPrimitive(ray, primitives)
	return hit, ok
}

// NearestPrimitive is NearestIntersection that also reports which primitive
// was hit, or nil on a miss
func NearestPrimitive(ray core.Ray, primitives []Primitive) (HitRecord, Primitive, bool) {
	closest := HitRecord{T: math.Inf(1)}
	var nearest Primitive

	for _, primitive := range primitives {
		if hit, isHit := primitive.Intersect(ray); isHit && hit.T < closest.T {
			closest = hit
			nearest = primitive
		}
	}

	return closest, nearest, nearest != nil
}
