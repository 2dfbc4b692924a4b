package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ParallelConfig contains configuration for parallel rendering
type ParallelConfig struct {
	BandHeight int // Rows per band
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		BandHeight: 16,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// BandCompletion describes a finished band for progress callbacks
type BandCompletion struct {
	Band        *Band
	Image       *image.RGBA // Pixels of just this band
	BandNumber  int         // Bands finished so far, including this one (1-based)
	TotalBands  int
	Framebuffer *Framebuffer
}

// ParallelRaytracer splits the image into row bands and traces them on a worker pool
type ParallelRaytracer struct {
	scene  *scene.Scene
	config ParallelConfig
	logger core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(s *scene.Scene, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &ParallelRaytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces every band and joins the workers. onBand, if not nil, is called from
// the calling goroutine after each band completes, in completion order. If ctx is
// cancelled, remaining bands are skipped and ctx.Err() is returned. A nil ctx is
// treated as context.Background().
func (pr *ParallelRaytracer) Render(ctx context.Context, onBand func(BandCompletion)) (*Framebuffer, RenderStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	width, height := pr.scene.Config.Width, pr.scene.Config.Height
	fb := NewFramebuffer(width, height)
	bands := NewBandGrid(width, height, pr.config.BandHeight)

	pool := NewWorkerPool(pr.scene, len(bands), pr.config.NumWorkers)
	pr.logger.Printf("Rendering %dx%d in %d bands using %d workers...\n",
		width, height, len(bands), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	defer pool.Stop()

	for i, band := range bands {
		pool.SubmitTask(BandTask{
			Ctx:         ctx,
			Band:        band,
			TaskID:      i,
			Framebuffer: fb,
		})
	}

	var rays integrator.RayStats
	var firstErr error
	for i := 0; i < len(bands); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		rays = rays.Add(result.Rays)

		if onBand != nil && firstErr == nil {
			band := bands[result.TaskID]
			onBand(BandCompletion{
				Band:        band,
				Image:       fb.RegionRGBA(band.Bounds),
				BandNumber:  i + 1,
				TotalBands:  len(bands),
				Framebuffer: fb,
			})
		}
	}

	if firstErr != nil {
		pr.logger.Printf("Rendering cancelled: %v\n", firstErr)
		return nil, RenderStats{}, firstErr
	}

	stats := RenderStats{
		TotalPixels:      width * height,
		Bands:            len(bands),
		Workers:          pool.GetNumWorkers(),
		Rays:             rays,
		Duration:         time.Since(startTime),
		AverageLuminance: CalculateAverageLuminance(fb.ToRGBA()),
	}
	pr.logger.Printf("Render completed in %v\n", stats.Duration)
	return fb, stats, nil
}
