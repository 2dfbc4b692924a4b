package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestParallelRender_MatchesSequential(t *testing.T) {
	config := scene.RenderConfig{Width: 64, Height: 48}
	tests := []struct {
		name    string
		scene   *scene.Scene
		workers int
		rows    int
	}{
		{"default 4 workers", scene.NewDefaultScene(config), 4, 5},
		{"default 1 worker", scene.NewDefaultScene(config), 1, 16},
		{"lit auto workers", scene.NewLitScene(config), 0, 7},
		{"flat 3 workers", scene.NewFlatScene(config), 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, seqStats := NewRaytracer(tt.scene).Render()

			pr := NewParallelRaytracer(tt.scene, ParallelConfig{BandHeight: tt.rows, NumWorkers: tt.workers}, core.NopLogger{})
			fb, stats, err := pr.Render(context.Background(), nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			for i := range expected.Pixels {
				if fb.Pixels[i] != expected.Pixels[i] {
					t.Fatalf("Pixel %d differs: parallel %v, sequential %v", i, fb.Pixels[i], expected.Pixels[i])
				}
			}
			if stats.AverageLuminance != seqStats.AverageLuminance {
				t.Errorf("Expected average luminance %f, got %f", seqStats.AverageLuminance, stats.AverageLuminance)
			}
			if stats.Rays != seqStats.Rays {
				t.Errorf("Expected ray stats %+v, got %+v", seqStats.Rays, stats.Rays)
			}
			if stats.TotalPixels != 64*48 {
				t.Errorf("Expected %d pixels, got %d", 64*48, stats.TotalPixels)
			}
		})
	}
}

func TestParallelRender_BandCallback(t *testing.T) {
	s := scene.NewDefaultScene(scene.RenderConfig{Width: 32, Height: 20})
	pr := NewParallelRaytracer(s, ParallelConfig{BandHeight: 4, NumWorkers: 2}, nil)

	var numbers []int
	seen := make(map[int]bool)
	_, stats, err := pr.Render(context.Background(), func(bc BandCompletion) {
		numbers = append(numbers, bc.BandNumber)
		seen[bc.Band.ID] = true
		if bc.TotalBands != 5 {
			t.Errorf("Expected 5 total bands, got %d", bc.TotalBands)
		}
		if bc.Image.Bounds().Dx() != 32 || bc.Image.Bounds().Dy() != bc.Band.Bounds.Dy() {
			t.Errorf("Band image size %v does not match band %v", bc.Image.Bounds(), bc.Band.Bounds)
		}
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(numbers) != 5 || len(seen) != 5 {
		t.Fatalf("Expected 5 distinct band callbacks, got %v", numbers)
	}
	for i, n := range numbers {
		if n != i+1 {
			t.Errorf("Expected band number %d, got %d", i+1, n)
		}
	}
	if stats.Bands != 5 || stats.Workers != 2 {
		t.Errorf("Expected 5 bands on 2 workers, got %d on %d", stats.Bands, stats.Workers)
	}
}

func TestParallelRender_Cancelled(t *testing.T) {
	s := scene.NewDefaultScene(scene.RenderConfig{Width: 32, Height: 32})
	pr := NewParallelRaytracer(s, DefaultParallelConfig(), core.NopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	fb, _, err := pr.Render(ctx, func(BandCompletion) { called = true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if fb != nil {
		t.Error("Expected no framebuffer from a cancelled render")
	}
	if called {
		t.Error("Expected no band callbacks after cancellation")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	s := scene.NewSingleSphereScene(scene.RenderConfig{Width: 8, Height: 8})
	pool := NewWorkerPool(s, 1, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}

	pool.Start()
	fb := NewFramebuffer(8, 8)
	pool.SubmitTask(BandTask{Ctx: context.Background(), Band: NewBandGrid(8, 8, 8)[0], TaskID: 7, Framebuffer: fb})
	result, ok := pool.GetResult()
	pool.Stop()

	if !ok || result.Error != nil || result.TaskID != 7 {
		t.Fatalf("Unexpected result %+v (ok=%v)", result, ok)
	}
	if result.Rays.PrimaryRays != 64 {
		t.Errorf("Expected 64 primary rays, got %d", result.Rays.PrimaryRays)
	}
}

func TestParallelRender_NilContext(t *testing.T) {
	s := scene.NewSingleSphereScene(scene.RenderConfig{Width: 16, Height: 12})
	pr := NewParallelRaytracer(s, ParallelConfig{BandHeight: 4, NumWorkers: 2}, nil)

	var ctx context.Context
	fb, stats, err := pr.Render(ctx, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fb == nil || stats.Rays.PrimaryRays != 16*12 {
		t.Errorf("Expected a full render, got %+v", stats)
	}
}
