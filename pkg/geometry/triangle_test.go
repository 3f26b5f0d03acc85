package geometry

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

func newTestTriangle(t *testing.T) *Triangle {
	t.Helper()
	tri, err := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Failed to create triangle: %v", err)
	}
	return tri
}

func TestTriangle_NormalFollowsWinding(t *testing.T) {
	tri := newTestTriangle(t)
	if !vecNear(tri.GetNormal(), core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected normal (0,0,1) for counter-clockwise winding, got %v", tri.GetNormal())
	}

	reversed, err := NewTriangle(tri.A, tri.C, tri.B)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !vecNear(reversed.GetNormal(), core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected normal (0,0,-1) for clockwise winding, got %v", reversed.GetNormal())
	}
}

func TestTriangle_Intersect_Centroid(t *testing.T) {
	tri := newTestTriangle(t)
	centroid := tri.A.Add(tri.B).Add(tri.C).Multiply(1.0 / 3.0)

	origin := centroid.Add(core.NewVec3(0, 0, 5))
	ray := core.NewRay(origin, core.NewVec3(0, 0, -1))

	hit, isHit := tri.Intersect(ray)
	if !isHit {
		t.Fatal("Expected ray through centroid to hit")
	}
	if !scalar.EqualWithinAbs(hit.T, 5.0, 1e-4) {
		t.Errorf("Expected t≈5, got %f", hit.T)
	}
	if hit.Normal != tri.GetNormal() {
		t.Errorf("Expected triangle normal %v, got %v", tri.GetNormal(), hit.Normal)
	}

	alpha, beta, gamma := tri.Barycentric(hit.Point)
	for name, w := range map[string]float64{"alpha": alpha, "beta": beta, "gamma": gamma} {
		if !scalar.EqualWithinAbs(w, 1.0/3.0, 1e-5) {
			t.Errorf("Expected %s≈1/3, got %f", name, w)
		}
	}
}

func TestTriangle_Intersect_OutsideProjection(t *testing.T) {
	tri := newTestTriangle(t)

	tests := []struct {
		name   string
		target core.Vec3
	}{
		{"beyond apex", core.NewVec3(0, 1.5, 0)},
		{"past edge AB", core.NewVec3(0, -1.2, 0)},
		{"far corner", core.NewVec3(2, 2, 0)},
		{"left of AC", core.NewVec3(-0.9, 0.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.target.Add(core.NewVec3(0, 0, 3)), core.NewVec3(0, 0, -1))

			// The supporting plane is hit...
			if _, ok := planeDistance(tri.A, tri.GetNormal(), ray); !ok {
				t.Fatal("Expected the supporting plane to be hit")
			}
			// ...but the triangle must report a miss
			if hit, isHit := tri.Intersect(ray); isHit {
				t.Errorf("Expected miss, got hit at %v", hit.Point)
			}
		})
	}
}

func TestTriangle_Intersect_BehindOrigin(t *testing.T) {
	tri := newTestTriangle(t)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1))
	if _, isHit := tri.Intersect(ray); isHit {
		t.Error("Expected miss for triangle behind the ray origin")
	}
}

func TestTriangle_Intersect_Oblique(t *testing.T) {
	tri := newTestTriangle(t)

	// Aim at an interior point from an oblique angle
	target := core.NewVec3(0.2, -0.5, 0)
	origin := core.NewVec3(3, 2, 4)
	ray := core.NewRay(origin, target.Subtract(origin).Normalize())

	hit, isHit := tri.Intersect(ray)
	if !isHit {
		t.Fatal("Expected oblique ray to hit")
	}
	if !vecNear(hit.Point, target, 1e-4) {
		t.Errorf("Expected hit near %v, got %v", target, hit.Point)
	}
}

func TestNewTriangle_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c core.Vec3
	}{
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
		{"repeated vertex", core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{"single point", core.NewVec3(3, 3, 3), core.NewVec3(3, 3, 3), core.NewVec3(3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangle(tt.a, tt.b, tt.c)
			if !errors.Is(err, ErrDegenerate) {
				t.Errorf("Expected ErrDegenerate, got %v", err)
			}
		})
	}
}
