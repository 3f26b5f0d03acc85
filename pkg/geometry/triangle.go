package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

const (
	// barycentricEpsilon is the allowed drift of alpha+beta+gamma from 1
	barycentricEpsilon = 1e-6
	// minTwiceArea rejects triangles whose edges are (nearly) collinear
	minTwiceArea = 1e-12
)

// Triangle represents a single triangle defined by three vertices.
//
//	    C
//	    /\
//	   /  \
//	A /____\ B
//
// The front face is the A -> B -> C winding.
type Triangle struct {
	surface
	A, B, C   core.Vec3
	normal    core.Vec3 // Cached unit normal, fixed at construction
	twiceArea float64   // Cached |(B-A) × (C-A)|
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Vec3) (*Triangle, error) {
	edgeCross := r3.Cross(r3.Sub(b.R3(), a.R3()), r3.Sub(c.R3(), a.R3()))
	twiceArea := r3.Norm(edgeCross)
	if !(twiceArea > minTwiceArea) {
		return nil, fmt.Errorf("triangle %v %v %v has no area: %w", a, b, c, ErrDegenerate)
	}

	return &Triangle{
		A:         a,
		B:         b,
		C:         c,
		normal:    core.FromR3(r3.Unit(edgeCross)),
		twiceArea: twiceArea,
	}, nil
}

// Intersect tests the supporting plane first, then keeps the hit only if
// its barycentric coordinates place it inside the triangle
func (tr *Triangle) Intersect(ray core.Ray) (HitRecord, bool) {
	t, ok := planeDistance(tr.A, tr.normal, ray)
	if !ok {
		return HitRecord{}, false
	}

	point := ray.At(t)
	if !tr.Contains(point) {
		return HitRecord{}, false
	}

	return HitRecord{
		T:        t,
		Point:    point,
		Normal:   tr.normal,
		Material: tr.material,
	}, true
}

// Barycentric returns the weights of A, B and C for point p, computed as
// ratios of sub-triangle areas to the full area. The weights are unsigned,
// so they only sum to 1 when p lies inside the triangle.
func (tr *Triangle) Barycentric(p core.Vec3) (alpha, beta, gamma float64) {
	a, b, c, q := tr.A.R3(), tr.B.R3(), tr.C.R3(), p.R3()

	alpha = r3.Norm(r3.Cross(r3.Sub(q, b), r3.Sub(q, c))) / tr.twiceArea
	beta = r3.Norm(r3.Cross(r3.Sub(q, c), r3.Sub(q, a))) / tr.twiceArea
	gamma = r3.Norm(r3.Cross(r3.Sub(q, a), r3.Sub(q, b))) / tr.twiceArea
	return alpha, beta, gamma
}

// Contains reports whether p, assumed to lie on the supporting plane, is inside the triangle
func (tr *Triangle) Contains(p core.Vec3) bool {
	alpha, beta, gamma := tr.Barycentric(p)
	return inUnitInterval(alpha) && inUnitInterval(beta) && inUnitInterval(gamma) &&
		scalar.EqualWithinAbs(alpha+beta+gamma, 1, barycentricEpsilon)
}

// GetNormal returns the triangle's normal vector
func (tr *Triangle) GetNormal() core.Vec3 {
	return tr.normal
}

// NormalAt returns the triangle normal, which is the same everywhere
func (tr *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return tr.normal
}

func inUnitInterval(v float64) bool {
	return v >= 0 && v <= 1
}
