package renderer

import (
	"testing"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

func TestCamera_ScreenPoint(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		row, col      int
		expected      core.Vec3
	}{
		{"square top left", 3, 3, 0, 0, core.NewVec3(-1, 1, 0)},
		{"square center", 3, 3, 1, 1, core.NewVec3(0, 0, 0)},
		{"square bottom right", 3, 3, 2, 2, core.NewVec3(1, -1, 0)},
		{"wide top right", 4, 2, 0, 3, core.NewVec3(1, 0.5, 0)},
		{"wide bottom left", 4, 2, 1, 0, core.NewVec3(-1, -0.5, 0)},
		{"tall bottom", 2, 4, 3, 1, core.NewVec3(1, -2, 0)},
		{"single pixel", 1, 1, 0, 0, core.NewVec3(-1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 0, 1), tt.width, tt.height)
			p := camera.ScreenPoint(tt.row, tt.col)
			if !vecNear(p, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, p)
			}
		})
	}
}

func TestCamera_GetRay(t *testing.T) {
	position := core.NewVec3(0, 0, 1)
	camera := NewCamera(position, 5, 5)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			ray := camera.GetRay(row, col)
			if ray.Origin != position {
				t.Fatalf("Expected origin %v, got %v", position, ray.Origin)
			}
			if !vecNear(core.NewVec3(ray.Direction.Length(), 0, 0), core.NewVec3(1, 0, 0), tolerance) {
				t.Fatalf("Expected unit direction at (%d,%d), got length %f", row, col, ray.Direction.Length())
			}
		}
	}

	// The middle pixel looks straight down the z axis
	center := camera.GetRay(2, 2)
	if !vecNear(center.Direction, core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected (0,0,-1) through the center, got %v", center.Direction)
	}
}
