package renderer

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 = 1.0, averaged over 4 pixels
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestRenderStatsHitRatio(t *testing.T) {
	if ratio := (RenderStats{}).HitRatio(); ratio != 0 {
		t.Errorf("Expected 0 hit ratio without rays, got %f", ratio)
	}

	stats := RenderStats{Rays: integrator.RayStats{PrimaryRays: 8, PrimaryHits: 2}}
	if ratio := stats.HitRatio(); ratio != 0.25 {
		t.Errorf("Expected hit ratio 0.25, got %f", ratio)
	}
}

func TestRenderStatsSummary(t *testing.T) {
	stats := RenderStats{
		TotalPixels: 786432,
		Bands:       48,
		Workers:     8,
		Rays:        integrator.RayStats{PrimaryRays: 786432, PrimaryHits: 196608, SecondaryRays: 1200, ShadowRays: 3000},
		Duration:    1500 * time.Millisecond,

		AverageLuminance: 0.25,
	}

	summary := stats.Summary()
	for _, want := range []string{"786,432 pixels", "790,632 rays", "25.0% hits", "48 bands on 8 workers", "1.5s", "average luminance 0.250"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected summary to contain %q, got %q", want, summary)
		}
	}
}
