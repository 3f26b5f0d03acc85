package renderer

import (
	"github.com/jeremzan/ray-tracing/pkg/core"
)

// Camera generates primary rays through a virtual screen on the z=0 plane.
// The screen spans x in [-1, 1] and y in [-1/ratio, 1/ratio], ratio = width/height.
type Camera struct {
	position      core.Vec3
	width, height int
	left, right   float64
	top, bottom   float64
}

// NewCamera creates a camera at position looking through a width x height screen
func NewCamera(position core.Vec3, width, height int) *Camera {
	ratio := float64(width) / float64(height)
	return &Camera{
		position: position,
		width:    width,
		height:   height,
		left:     -1,
		right:    1,
		top:      1 / ratio,
		bottom:   -1 / ratio,
	}
}

// ScreenPoint returns the point on the screen plane for the pixel at (row, col).
// Row 0 is the top of the image and column 0 the left edge.
func (c *Camera) ScreenPoint(row, col int) core.Vec3 {
	return core.NewVec3(
		linspace(c.left, c.right, c.width, col),
		linspace(c.top, c.bottom, c.height, row),
		0,
	)
}

// GetRay generates the primary ray through the pixel at (row, col)
func (c *Camera) GetRay(row, col int) core.Ray {
	direction := c.ScreenPoint(row, col).Subtract(c.position).Normalize()
	return core.NewRay(c.position, direction)
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// linspace returns the i-th of n evenly spaced samples covering [start, stop]
// inclusive. A single sample sits at start.
func linspace(start, stop float64, n, i int) float64 {
	if n <= 1 {
		return start
	}
	return start + (stop-start)*float64(i)/float64(n-1)
}
