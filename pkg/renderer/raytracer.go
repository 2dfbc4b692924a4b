package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene one pixel at a time on the calling goroutine
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{
		scene:      s,
		camera:     NewCamera(s.Config),
		integrator: integrator.New(s),
	}
}

// TracePixel returns the color of pixel (col, row)
func (rt *Raytracer) TracePixel(col, row int) core.Vec3 {
	return rt.integrator.RayColor(rt.camera.GetRay(col, row))
}

// PrimaryRay returns the camera ray through pixel (col, row)
func (rt *Raytracer) PrimaryRay(col, row int) core.Ray {
	return rt.camera.GetRay(col, row)
}

// RenderBounds traces every pixel inside bounds into fb, rows top to bottom
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *Framebuffer) {
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			fb.Set(col, row, rt.TracePixel(col, row))
		}
	}
}

// RayStats returns the rays this raytracer has cast so far
func (rt *Raytracer) RayStats() integrator.RayStats {
	return rt.integrator.Stats()
}

// Render traces the full image in row-major order. This is the reference scan that
// parallel renders must reproduce exactly.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	width, height := rt.scene.Config.Width, rt.scene.Config.Height
	fb := NewFramebuffer(width, height)

	startTime := time.Now()
	before := rt.integrator.Stats()
	rt.RenderBounds(image.Rect(0, 0, width, height), fb)
	after := rt.integrator.Stats()

	return fb, RenderStats{
		TotalPixels:      width * height,
		Bands:            1,
		Workers:          1,
		Rays:             after.Sub(before),
		Duration:         time.Since(startTime),
		AverageLuminance: CalculateAverageLuminance(fb.ToRGBA()),
	}
}
