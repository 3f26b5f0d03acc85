package geometry

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func testMaterial(t *testing.T, grey float64) material.Material {
	t.Helper()
	c := core.NewVec3(grey, grey, grey)
	m, err := material.New(c, c, c, 10, 0)
	if err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}
	return m
}
