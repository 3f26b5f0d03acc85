package scene

import (
	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/lights"
	"github.com/jeremzan/ray-tracing/pkg/material"
	"github.com/jeremzan/ray-tracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Camera     core.Vec3            // Eye position; the screen lies on z = 0
	Ambient    core.Vec3            // Global ambient light color
	Lights     []lights.Light       // Lights in the scene
	Primitives []geometry.Primitive // Objects in the scene
	Config     renderer.Config      // Preferred render settings
}

// GetCamera returns the camera position
func (s *Scene) GetCamera() core.Vec3 { return s.Camera }

// GetAmbient returns the global ambient color
func (s *Scene) GetAmbient() core.Vec3 { return s.Ambient }

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light { return s.Lights }

// GetPrimitives returns the scene objects
func (s *Scene) GetPrimitives() []geometry.Primitive { return s.Primitives }

// GetPrimitiveCount returns the total number of primitive objects in the scene,
// counting each pyramid face separately
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, p := range s.Primitives {
		if pyramid, ok := p.(*geometry.Pyramid); ok {
			count += len(pyramid.Triangles())
			continue
		}
		count++
	}
	return count
}

// builder accumulates scene parts and keeps the first construction error,
// so preset code reads as a flat list of objects
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string, camera, ambient core.Vec3, config renderer.Config) *builder {
	return &builder{scene: &Scene{
		Name:    name,
		Camera:  camera,
		Ambient: ambient,
		Config:  config,
	}}
}

func (b *builder) material(ambient, diffuse, specular core.Vec3, shininess, reflection float64) material.Material {
	if b.err != nil {
		return material.Material{}
	}
	m, err := material.New(ambient, diffuse, specular, shininess, reflection)
	b.err = err
	return m
}

func (b *builder) mirror(specular core.Vec3) material.Material {
	if b.err != nil {
		return material.Material{}
	}
	m, err := material.NewMirror(specular)
	b.err = err
	return m
}

func (b *builder) add(p geometry.Primitive, err error, m material.Material) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	p.SetMaterial(m)
	b.scene.Primitives = append(b.scene.Primitives, p)
}

func (b *builder) sphere(center core.Vec3, radius float64, m material.Material) {
	s, err := geometry.NewSphere(center, radius)
	b.add(s, err, m)
}

func (b *builder) plane(normal, point core.Vec3, m material.Material) {
	p, err := geometry.NewPlane(normal, point)
	b.add(p, err, m)
}

func (b *builder) triangle(a, c, d core.Vec3, m material.Material) {
	tr, err := geometry.NewTriangle(a, c, d)
	b.add(tr, err, m)
}

func (b *builder) pyramid(vertices [5]core.Vec3, m material.Material) {
	p, err := geometry.NewPyramid(vertices)
	b.add(p, err, m)
}

func (b *builder) light(l lights.Light, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.scene.Lights = append(b.scene.Lights, l)
}

func (b *builder) directional(intensity, direction core.Vec3) {
	l, err := lights.NewDirectionalLight(intensity, direction)
	b.light(l, err)
}

func (b *builder) point(intensity, position core.Vec3, attenuation lights.Attenuation) {
	l, err := lights.NewPointLight(intensity, position, attenuation)
	b.light(l, err)
}

func (b *builder) spot(intensity, position, direction core.Vec3, attenuation lights.Attenuation) {
	l, err := lights.NewSpotLight(intensity, position, direction, attenuation)
	b.light(l, err)
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}
