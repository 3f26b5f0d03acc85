package output

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// JPEGQuality is used whenever an image is written as JPEG
const JPEGQuality = 95

// Save writes img to filename. The extension picks the format
// (png, jpg, jpeg, gif, tif, tiff, bmp).
func Save(img image.Image, filename string) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("cannot save %s: %w", filename, err)
	}
	if err := imaging.Save(img, filename, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// EncodePNG returns img as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping pixel edges sharp. A factor of 1 or less returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	return resize.Resize(uint(bounds.Dx()*factor), uint(bounds.Dy()*factor), img, resize.NearestNeighbor)
}
