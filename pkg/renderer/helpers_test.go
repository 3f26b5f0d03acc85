package renderer

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/lights"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// testScene is a minimal Scene for renderer tests
type testScene struct {
	camera     core.Vec3
	ambient    core.Vec3
	lights     []lights.Light
	primitives []geometry.Primitive
}

func (s *testScene) GetCamera() core.Vec3                { return s.camera }
func (s *testScene) GetAmbient() core.Vec3               { return s.ambient }
func (s *testScene) GetLights() []lights.Light           { return s.lights }
func (s *testScene) GetPrimitives() []geometry.Primitive { return s.primitives }

// createSphereScene builds a lit sphere in front of a camera at z=1
func createSphereScene(t *testing.T) *testScene {
	t.Helper()

	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5)
	if err != nil {
		t.Fatalf("Failed to create sphere: %v", err)
	}
	m, err := material.New(
		core.NewVec3(0.1, 0, 0.1),
		core.NewVec3(0.7, 0, 0.7),
		core.NewVec3(1, 1, 1),
		100, 0,
	)
	if err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}
	sphere.SetMaterial(m)

	plane, err := geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -0.5, 0))
	if err != nil {
		t.Fatalf("Failed to create plane: %v", err)
	}
	floor, err := material.New(
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(0.2, 0.2, 0.2),
		10, 0.3,
	)
	if err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}
	plane.SetMaterial(floor)

	sun, err := lights.NewDirectionalLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1))
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}

	return &testScene{
		camera:     core.NewVec3(0, 0, 1),
		ambient:    core.NewVec3(1, 1, 1),
		lights:     []lights.Light{sun},
		primitives: []geometry.Primitive{sphere, plane},
	}
}

// createSphereOnlyScene drops the floor so the image corners see nothing
func createSphereOnlyScene(t *testing.T) *testScene {
	t.Helper()
	scene := createSphereScene(t)
	scene.primitives = scene.primitives[:1]
	return scene
}
