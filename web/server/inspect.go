package server

import (
	"errors"
	"net/http"

	"github.com/jeremzan/ray-tracing/pkg/core"
	"github.com/jeremzan/ray-tracing/pkg/geometry"
	"github.com/jeremzan/ray-tracing/pkg/integrator"
	"github.com/jeremzan/ray-tracing/pkg/material"
	"github.com/jeremzan/ray-tracing/pkg/renderer"
	"github.com/jeremzan/ray-tracing/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// inspectResult holds the primary ray of one pixel and what it hit
type inspectResult struct {
	ray       core.Ray
	hit       geometry.HitRecord
	primitive geometry.Primitive
	color     core.Vec3
}

// inspectPixel casts the primary ray for one pixel and shades it the way
// the renderer would
func inspectPixel(sceneObj *scene.Scene, row, col int) (inspectResult, bool) {
	camera := renderer.NewCamera(sceneObj.Camera, sceneObj.Config.Width, sceneObj.Config.Height)
	result := inspectResult{ray: camera.GetRay(row, col)}

	hit, primitive, ok := geometry.NearestPrimitive(result.ray, sceneObj.Primitives)
	if !ok {
		return result, false
	}
	result.hit = hit
	result.primitive = primitive

	whitted := integrator.NewWhittedIntegrator(sceneObj, sceneObj.Config.MaxDepth)
	result.color = whitted.GetColor(hit, result.ray, 0, nil).Clamp(0, 1)
	return result, true
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	if mat == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{
		"ambient":    vec(mat.Ambient),
		"diffuse":    vec(mat.Diffuse),
		"specular":   vec(mat.Specular),
		"shininess":  mat.Shininess,
		"reflection": mat.Reflection,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point)
		properties["normal"] = vec(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["a"] = vec(geom.A)
		properties["b"] = vec(geom.B)
		properties["c"] = vec(geom.C)
		return "triangle", properties

	case *geometry.Pyramid:
		vertices := make([][3]float64, len(geom.Vertices))
		for i, v := range geom.Vertices {
			vertices[i] = vec(v)
		}
		properties["vertices"] = vertices
		return "pyramid", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests for one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, errors.New("x and y are required"))
		return
	}
	col, err := parseIntParam(query, "x", 0, 0, sceneObj.Config.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	row, err := parseIntParam(query, "y", 0, 0, sceneObj.Config.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, ok := inspectPixel(sceneObj, row, col)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.primitive)
	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec(result.hit.Point),
		Normal:       vec(result.hit.Normal.Normalize()),
		Distance:     result.hit.T,
		Color:        vec(result.color),
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"material": extractMaterialInfo(result.hit.Material),
		},
	}
	writeJSON(w, http.StatusOK, response)
}
