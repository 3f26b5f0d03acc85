package scene

import (
	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/lights"
	"github.com/jeremzan/ray-tracing/pkg/renderer"
)

var defaultCamera = core.NewVec3(0, 0, 1)

// NewDefaultScene creates two spheres over a reflective floor, lit by a
// directional and a point light
func NewDefaultScene() (*Scene, error) {
	b := newBuilder("default", defaultCamera, core.NewVec3(1, 1, 1), renderer.DefaultConfig())

	red := b.material(core.NewVec3(0.1, 0, 0), core.NewVec3(0.7, 0.1, 0.1), core.NewVec3(1, 1, 1), 100, 0.1)
	blue := b.material(core.NewVec3(0, 0, 0.1), core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(0.6, 0.6, 0.6), 50, 0.4)
	floor := b.material(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0.3, 0.3, 0.3), 1000, 0.5)
	wall := b.material(core.NewVec3(0.05, 0.08, 0.1), core.NewVec3(0.2, 0.25, 0.3), core.NewVec3(0, 0, 0), 10, 0)

	b.sphere(core.NewVec3(-0.5, 0.2, -1), 0.5, red)
	b.sphere(core.NewVec3(0.6, 0.5, -0.5), 0.4, blue)
	b.plane(core.NewVec3(0, 1, 0), core.NewVec3(0, -0.3, 0), floor)
	b.plane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -3), wall)

	b.directional(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, -1, -1))
	b.point(core.NewVec3(1, 1, 1), core.NewVec3(1, 1.5, 1), lights.Attenuation{Constant: 0.1, Linear: 0.1, Quadratic: 0.1})

	return b.build()
}

// NewMirrorsScene places a sphere between two parallel mirrors so that
// the reflections repeat up to the configured depth
func NewMirrorsScene() (*Scene, error) {
	config := renderer.DefaultConfig()
	config.MaxDepth = 8
	b := newBuilder("mirrors", defaultCamera, core.NewVec3(0.4, 0.4, 0.4), config)

	glass := b.mirror(core.NewVec3(1, 1, 1))
	ball := b.material(core.NewVec3(0.2, 0.05, 0), core.NewVec3(0.9, 0.4, 0.1), core.NewVec3(1, 1, 1), 80, 0)
	floor := b.material(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.3, 0.5, 0.3), core.NewVec3(0.1, 0.1, 0.1), 10, 0)

	b.plane(core.NewVec3(1, 0, 0), core.NewVec3(-1.2, 0, 0), glass)
	b.plane(core.NewVec3(-1, 0, 0), core.NewVec3(1.2, 0, 0), glass)
	b.plane(core.NewVec3(0, 1, 0), core.NewVec3(0, -0.6, 0), floor)
	b.sphere(core.NewVec3(0.3, -0.2, -2), 0.4, ball)

	b.point(core.NewVec3(1, 1, 1), core.NewVec3(0, 1.5, -1), lights.Attenuation{Constant: 0.5, Linear: 0.05, Quadratic: 0.02})
	b.directional(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0, -1, -0.2))

	return b.build()
}

// NewPyramidScene shows a double pyramid standing in front of a mirror
// ball under a spot light
func NewPyramidScene() (*Scene, error) {
	config := renderer.DefaultConfig()
	config.MaxDepth = 4
	b := newBuilder("pyramid", defaultCamera, core.NewVec3(1, 1, 1), config)

	gold := b.material(core.NewVec3(0.1, 0.08, 0), core.NewVec3(0.8, 0.6, 0.1), core.NewVec3(1, 0.9, 0.5), 40, 0.2)
	chrome := b.material(core.NewVec3(0, 0, 0), core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(1, 1, 1), 500, 0.9)
	floor := b.material(core.NewVec3(0.05, 0.05, 0.08), core.NewVec3(0.4, 0.4, 0.5), core.NewVec3(0.2, 0.2, 0.2), 20, 0.3)

	// Outward facing winding: A, B, C on the equator, D on top, E below
	offset := core.NewVec3(-0.5, 0.1, -3)
	scale := 0.8
	vertices := [5]core.Vec3{
		core.NewVec3(1, 0, -1),
		core.NewVec3(-1, 0, -1),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1.5, 0),
		core.NewVec3(0, -1.5, 0),
	}
	for i, v := range vertices {
		vertices[i] = v.Multiply(scale).Add(offset)
	}
	b.pyramid(vertices, gold)

	b.sphere(core.NewVec3(1, -0.3, -2.5), 0.6, chrome)
	b.plane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1.2, 0), floor)

	b.spot(core.NewVec3(1, 1, 1), core.NewVec3(0, 2.5, -1), core.NewVec3(-0.2, -1, -0.8),
		lights.Attenuation{Constant: 0.3, Linear: 0.05, Quadratic: 0.01})
	b.directional(core.NewVec3(0.2, 0.2, 0.25), core.NewVec3(-1, -1, -1))

	return b.build()
}

// NewSpotlightScene lights a sphere and a triangle with two colored spot lights
// and no ambient light, so only the cones are visible
func NewSpotlightScene() (*Scene, error) {
	b := newBuilder("spotlight", defaultCamera, core.NewVec3(0, 0, 0), renderer.DefaultConfig())

	white := b.material(core.NewVec3(0, 0, 0), core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.5, 0.5, 0.5), 30, 0)
	panel := b.material(core.NewVec3(0, 0, 0), core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.8, 0.8, 0.8), 200, 0.5)

	b.plane(core.NewVec3(0, 1, 0), core.NewVec3(0, -0.5, 0), white)
	b.sphere(core.NewVec3(0, 0, -1.5), 0.5, white)
	b.triangle(
		core.NewVec3(-2, -0.5, -3),
		core.NewVec3(2, -0.5, -3),
		core.NewVec3(0, 1.5, -3.2),
		panel,
	)

	attenuation := lights.Attenuation{Constant: 0.2, Linear: 0.1, Quadratic: 0.05}
	b.spot(core.NewVec3(1, 0.2, 0.2), core.NewVec3(-1.5, 1.5, 0), core.NewVec3(1, -1, -1), attenuation)
	b.spot(core.NewVec3(0.2, 0.3, 1), core.NewVec3(1.5, 1.5, 0), core.NewVec3(-1, -1, -1), attenuation)

	return b.build()
}
