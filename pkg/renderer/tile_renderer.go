package renderer

import (
	"context"
	"image"

	"github.com/jeremzan/ray-tracing/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given camera and integrator
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTileBounds traces one primary ray per pixel within bounds and stores
// the clamped colors in img. Tiles never overlap, so concurrent calls on
// distinct bounds need no locking. The context is checked once per row.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, img *Image, stats *integrator.TraceStats) error {
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			ray := tr.camera.GetRay(row, col)
			color := tr.integrator.RayColor(ray, stats)
			img.Set(row, col, color.Clamp(0, 1))
		}
	}
	return nil
}
