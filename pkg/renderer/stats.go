package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int                 // Total number of pixels rendered
	Bands       int                 // Number of row bands the image was split into
	Workers     int                 // Goroutines that rendered bands, 1 for the sequential scan
	Rays        integrator.RayStats // Rays cast, merged across workers
	Duration    time.Duration       // Wall-clock render time

	AverageLuminance float64 // Mean luminance of the 8-bit output
}

// HitRatio returns the fraction of primary rays that hit a sphere
func (s RenderStats) HitRatio() float64 {
	if s.Rays.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Rays.PrimaryHits) / float64(s.Rays.PrimaryRays)
}

// statsPrinter groups large counts with thousands separators
var statsPrinter = message.NewPrinter(language.English)

// Summary returns a one-line human readable description of the render
func (s RenderStats) Summary() string {
	return statsPrinter.Sprintf("%d pixels, %d rays (%d primary, %d secondary, %d shadow), %.1f%% hits, %d bands on %d workers in %v, average luminance %.3f",
		s.TotalPixels, s.Rays.TotalRays(), s.Rays.PrimaryRays, s.Rays.SecondaryRays, s.Rays.ShadowRays,
		100*s.HitRatio(), s.Bands, s.Workers, s.Duration.Round(time.Millisecond), s.AverageLuminance)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image, with
// channels normalized to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += core.Luminance(core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff))
		}
	}
	return total / float64(pixelCount)
}
