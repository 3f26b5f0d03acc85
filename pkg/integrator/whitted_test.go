package integrator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/lights"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

// testScene implements Scene for testing
type testScene struct {
	ambient    core.Vec3
	lights     []lights.Light
	primitives []geometry.Primitive
}

func (s testScene) GetAmbient() core.Vec3               { return s.ambient }
func (s testScene) GetLights() []lights.Light           { return s.lights }
func (s testScene) GetPrimitives() []geometry.Primitive { return s.primitives }

func vecNear(a, b core.Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func grey(v float64) core.Vec3 {
	return core.NewVec3(v, v, v)
}

func mustMaterial(t *testing.T, ambient, diffuse, specular core.Vec3, shininess, reflection float64) material.Material {
	t.Helper()
	m, err := material.New(ambient, diffuse, specular, shininess, reflection)
	if err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}
	return m
}

func mustPlane(t *testing.T, normal, point core.Vec3, m material.Material) *geometry.Plane {
	t.Helper()
	p, err := geometry.NewPlane(normal, point)
	if err != nil {
		t.Fatalf("Failed to create plane: %v", err)
	}
	p.SetMaterial(m)
	return p
}

func mustSphere(t *testing.T, center core.Vec3, radius float64, m material.Material) *geometry.Sphere {
	t.Helper()
	s, err := geometry.NewSphere(center, radius)
	if err != nil {
		t.Fatalf("Failed to create sphere: %v", err)
	}
	s.SetMaterial(m)
	return s
}

func TestWhitted_Miss(t *testing.T) {
	wi := NewWhittedIntegrator(testScene{ambient: grey(1)}, 3)
	stats := &TraceStats{}

	color := wi.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), stats)
	if color != (core.Vec3{}) {
		t.Errorf("Expected black on miss, got %v", color)
	}
	if stats.PrimaryRays != 1 || stats.PrimaryHits != 0 {
		t.Errorf("Expected 1 primary ray and no hits, got %+v", *stats)
	}
}

func TestWhitted_AmbientOnly(t *testing.T) {
	m := mustMaterial(t, grey(0.5), grey(0.9), grey(0.9), 10, 0)
	sphere := mustSphere(t, core.NewVec3(0, 0, -3), 1, m)
	scene := testScene{
		ambient:    core.NewVec3(0.2, 0.4, 1),
		primitives: []geometry.Primitive{sphere},
	}

	color := NewWhittedIntegrator(scene, 1).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), nil)
	if !vecNear(color, core.NewVec3(0.1, 0.2, 0.5), 1e-12) {
		t.Errorf("Expected ambient product (0.1,0.2,0.5), got %v", color)
	}
}

func TestWhitted_ShadowRemovesOnlyBlockedLight(t *testing.T) {
	floorMaterial := mustMaterial(t, grey(0.5), grey(0.8), grey(0), 10, 0)
	floor := mustPlane(t, core.NewVec3(0, 1, 0), core.Vec3{}, floorMaterial)
	blocker := mustSphere(t, core.NewVec3(0, 2.5, 0), 0.5, floorMaterial)
	beyondLight := mustSphere(t, core.NewVec3(0, 8, 0), 0.5, floorMaterial)

	overhead, err := lights.NewPointLight(grey(1), core.NewVec3(0, 5, 0), lights.NoAttenuation)
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}
	spot, err := lights.NewSpotLight(grey(1), core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), lights.NoAttenuation)
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}
	slanted, err := lights.NewDirectionalLight(grey(1), core.NewVec3(-1, -1, 0))
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}

	camera := core.NewVec3(0, 1, 3)
	ray := core.NewRay(camera, core.NewVec3(0, 0, 0).Subtract(camera).Normalize())
	ambient := grey(0.2)
	ambientTerm := grey(0.1)

	tests := []struct {
		name       string
		primitives []geometry.Primitive
		lights     []lights.Light
		expected   core.Vec3
		occluded   int
	}{
		{
			name:       "unblocked overhead light",
			primitives: []geometry.Primitive{floor},
			lights:     []lights.Light{overhead},
			expected:   ambientTerm.Add(grey(0.8)),
		},
		{
			name:       "blocked overhead light keeps ambient",
			primitives: []geometry.Primitive{floor, blocker},
			lights:     []lights.Light{overhead},
			expected:   ambientTerm,
			occluded:   1,
		},
		{
			name:       "object beyond point light casts no shadow",
			primitives: []geometry.Primitive{floor, beyondLight},
			lights:     []lights.Light{overhead},
			expected:   ambientTerm.Add(grey(0.8)),
		},
		{
			name:       "object beyond spot light casts no shadow",
			primitives: []geometry.Primitive{floor, beyondLight},
			lights:     []lights.Light{spot},
			expected:   ambientTerm.Add(grey(0.8)),
		},
		{
			name:       "light between two objects is blocked by the nearer one",
			primitives: []geometry.Primitive{floor, beyondLight, blocker},
			lights:     []lights.Light{overhead},
			expected:   ambientTerm,
			occluded:   1,
		},
		{
			name:       "blocked light does not cancel other lights",
			primitives: []geometry.Primitive{floor, blocker},
			lights:     []lights.Light{slanted, overhead},
			expected:   ambientTerm.Add(grey(0.8 * math.Sqrt2 / 2)),
			occluded:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := testScene{ambient: ambient, lights: tt.lights, primitives: tt.primitives}
			stats := &TraceStats{}

			color := NewWhittedIntegrator(scene, 1).RayColor(ray, stats)
			if !vecNear(color, tt.expected, 1e-4) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
			if stats.OccludedRays != tt.occluded {
				t.Errorf("Expected %d occluded shadow rays, got %d", tt.occluded, stats.OccludedRays)
			}
			if stats.ShadowRays != len(tt.lights) {
				t.Errorf("Expected %d shadow rays, got %d", len(tt.lights), stats.ShadowRays)
			}
		})
	}
}

func TestWhitted_SpecularHighlight(t *testing.T) {
	shiny := mustMaterial(t, grey(0), grey(0), grey(1), 50, 0)
	floor := mustPlane(t, core.NewVec3(0, 1, 0), core.Vec3{}, shiny)
	sun, err := lights.NewDirectionalLight(core.NewVec3(1, 0.5, 0.25), core.NewVec3(0, -1, 0))
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}

	scene := testScene{lights: []lights.Light{sun}, primitives: []geometry.Primitive{floor}}
	wi := NewWhittedIntegrator(scene, 1)

	// Looking straight down, the mirrored light direction lines up with the view
	color := wi.RayColor(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), nil)
	if !vecNear(color, core.NewVec3(1, 0.5, 0.25), 1e-6) {
		t.Errorf("Expected full highlight (1,0.5,0.25), got %v", color)
	}

	// Off the mirror direction the tight highlight vanishes
	oblique := core.NewVec3(0, -1, -1).Normalize()
	color = wi.RayColor(core.NewRay(core.NewVec3(0, 5, 5), oblique), nil)
	if color.X > 1e-6 {
		t.Errorf("Expected no highlight at 45 degrees with shininess 50, got %v", color)
	}
}

func TestWhitted_DiffuseClampedForBackFacingLight(t *testing.T) {
	m := mustMaterial(t, grey(0), grey(1), grey(0), 10, 0)
	below, err := lights.NewDirectionalLight(grey(1), core.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatalf("Failed to create light: %v", err)
	}

	// No primitives, so nothing can occlude: only the clamp keeps this at zero
	wi := NewWhittedIntegrator(testScene{}, 1)
	contribution := wi.directLight(below, &m, core.Vec3{}, core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), &TraceStats{})
	if contribution != (core.Vec3{}) {
		t.Errorf("Expected no contribution from a light behind the surface, got %v", contribution)
	}
}

func TestWhitted_ParallelMirrorsBounceBound(t *testing.T) {
	mirror := mustMaterial(t, grey(0), grey(0), grey(0), 10, 1)
	back := mustPlane(t, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), mirror)
	front := mustPlane(t, core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), mirror)
	scene := testScene{primitives: []geometry.Primitive{back, front}}

	for _, maxDepth := range []int{1, 2, 3, 5, 10, 25} {
		stats := &TraceStats{}
		NewWhittedIntegrator(scene, maxDepth).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), stats)

		if stats.ReflectionRays != maxDepth-1 {
			t.Errorf("maxDepth=%d: expected %d reflection rays, got %d", maxDepth, maxDepth-1, stats.ReflectionRays)
		}
		if stats.MaxDepthReached != maxDepth-1 {
			t.Errorf("maxDepth=%d: expected deepest level %d, got %d", maxDepth, maxDepth-1, stats.MaxDepthReached)
		}
	}
}

func TestWhitted_ReflectionAccumulates(t *testing.T) {
	halfMirror := mustMaterial(t, grey(0.5), grey(0), grey(0), 10, 0.5)
	matte := mustMaterial(t, grey(0.2), grey(0), grey(0), 10, 0)
	back := mustPlane(t, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), halfMirror)
	front := mustPlane(t, core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), matte)
	scene := testScene{ambient: grey(1), primitives: []geometry.Primitive{back, front}}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	tests := []struct {
		maxDepth int
		expected float64
	}{
		{1, 0.5},           // no recursion
		{2, 0.5 + 0.5*0.2}, // one bounce onto the matte plane
		{5, 0.5 + 0.5*0.2}, // matte plane stops the chain
	}

	for _, tt := range tests {
		stats := &TraceStats{}
		color := NewWhittedIntegrator(scene, tt.maxDepth).RayColor(ray, stats)
		if !vecNear(color, grey(tt.expected), 1e-12) {
			t.Errorf("maxDepth=%d: expected %f, got %v", tt.maxDepth, tt.expected, color)
		}
		if tt.maxDepth > 1 && stats.ReflectionRays != 1 {
			t.Errorf("maxDepth=%d: expected 1 reflection ray, got %d", tt.maxDepth, stats.ReflectionRays)
		}
	}
}

func TestWhitted_NilMaterialIsBlack(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -3), 1)
	if err != nil {
		t.Fatalf("Failed to create sphere: %v", err)
	}
	scene := testScene{ambient: grey(1), primitives: []geometry.Primitive{sphere}}

	color := NewWhittedIntegrator(scene, 2).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), nil)
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for a primitive without material, got %v", color)
	}
}

func TestTraceStats_Merge(t *testing.T) {
	a := TraceStats{PrimaryRays: 2, PrimaryHits: 1, ShadowRays: 3, OccludedRays: 1, ReflectionRays: 4, MaxDepthReached: 2}
	b := TraceStats{PrimaryRays: 1, PrimaryHits: 1, ShadowRays: 1, ReflectionRays: 1, MaxDepthReached: 5}
	a.Merge(b)

	expected := TraceStats{PrimaryRays: 3, PrimaryHits: 2, ShadowRays: 4, OccludedRays: 1, ReflectionRays: 5, MaxDepthReached: 5}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
}
