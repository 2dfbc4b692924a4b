package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer holds linear RGB pixels in row-major order, top row first. Channels are
// nominally in [0,1]; values outside that range are kept until conversion.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the position of pixel (col, row) in Pixels
func (fb *Framebuffer) Index(col, row int) int {
	return row*fb.Width + col
}

// At returns the color of pixel (col, row)
func (fb *Framebuffer) At(col, row int) core.Vec3 {
	return fb.Pixels[fb.Index(col, row)]
}

// Set stores the color of pixel (col, row)
func (fb *Framebuffer) Set(col, row int, c core.Vec3) {
	fb.Pixels[fb.Index(col, row)] = c
}

// ToRGBA converts the whole framebuffer to an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	return fb.RegionRGBA(image.Rect(0, 0, fb.Width, fb.Height))
}

// RegionRGBA converts the pixels inside bounds to an 8-bit image whose origin is
// bounds.Min
func (fb *Framebuffer) RegionRGBA(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			img.SetRGBA(col-bounds.Min.X, row-bounds.Min.Y, Vec3ToColor(fb.At(col, row)))
		}
	}
	return img
}

// Vec3ToColor clamps each channel to [0,1] and scales it to a byte, truncating
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = core.Clamp(colorVec, 0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X()),
		G: uint8(255 * colorVec.Y()),
		B: uint8(255 * colorVec.Z()),
		A: 255,
	}
}
