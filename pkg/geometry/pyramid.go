package geometry

import (
	"fmt"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/material"
)

// pyramidFaces lists the vertex indices of each face, front face winding first.
// Vertices are A, B, C, D (apex up) and E (apex down).
var pyramidFaces = [6][3]int{
	{0, 1, 3}, // A -> B -> D
	{1, 2, 3}, // B -> C -> D
	{0, 3, 2}, // A -> D -> C
	{4, 1, 0}, // E -> B -> A
	{4, 2, 1}, // E -> C -> B
	{2, 4, 0}, // C -> E -> A
}

// Pyramid is a closed double pyramid built from six triangles
type Pyramid struct {
	surface
	Vertices  [5]core.Vec3
	triangles [6]*Triangle
}

// NewPyramid creates a pyramid from vertices A, B, C, D and E
func NewPyramid(vertices [5]core.Vec3) (*Pyramid, error) {
	p := &Pyramid{Vertices: vertices}

	for i, face := range pyramidFaces {
		tri, err := NewTriangle(vertices[face[0]], vertices[face[1]], vertices[face[2]])
		if err != nil {
			return nil, fmt.Errorf("pyramid face %d: %w", i, err)
		}
		p.triangles[i] = tri
	}

	return p, nil
}

// SetMaterial attaches the material to the pyramid and all of its faces
func (p *Pyramid) SetMaterial(m material.Material) {
	p.surface.SetMaterial(m)
	for _, tri := range p.triangles {
		tri.SetMaterial(m)
	}
}

// Intersect returns the closest face hit. The record carries that face's
// normal, so concurrent queries never share mutable state.
func (p *Pyramid) Intersect(ray core.Ray) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false

	for _, tri := range p.triangles {
		hit, isHit := tri.Intersect(ray)
		if !isHit {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Triangles returns the six faces of the pyramid
func (p *Pyramid) Triangles() []*Triangle {
	return p.triangles[:]
}
