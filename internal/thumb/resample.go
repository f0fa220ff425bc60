package thumb

import (
	"image"

	"golang.org/x/image/draw"
)

// Size returns the thumbnail dimensions for an image of width x height fitting maxWidth.
func Size(width, height, maxWidth int) (int, int) {
	if width <= maxWidth || width <= 0 || height <= 0 {
		return width, height
	}

	h := int(float64(height) * float64(maxWidth) / float64(width))

	if h < 1 {
		h = 1
	}

	return maxWidth, h
}

// Resample downscales img to maxWidth, smaller images are returned unchanged.
func Resample(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()

	w, h := Size(bounds.Dx(), bounds.Dy(), maxWidth)

	if w == bounds.Dx() && h == bounds.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
