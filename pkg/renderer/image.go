package renderer

import (
	"image"
	"image/color"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// Image is a height x width grid of linear RGB colors, stored row-major
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at (row, col)
func (img *Image) At(row, col int) core.Vec3 {
	return img.Pixels[row*img.Width+col]
}

// Set stores the color at (row, col)
func (img *Image) Set(row, col int, c core.Vec3) {
	img.Pixels[row*img.Width+col] = c
}

// Row returns the colors of one row. The slice aliases the image.
func (img *Image) Row(row int) []core.Vec3 {
	return img.Pixels[row*img.Width : (row+1)*img.Width]
}

// ToRGBA converts to an 8-bit image. Components are clamped to [0,1] first.
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			rgba.SetRGBA(col, row, vec3ToColor(img.At(row, col)))
		}
	}
	return rgba
}

// AverageLuminance returns the mean perceptual luminance over all pixels
func (img *Image) AverageLuminance() float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(img.Pixels))
}

// vec3ToColor converts a Vec3 color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
