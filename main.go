package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the parsed command line options
type Config struct {
	SceneType string
	Width     int     // 0 keeps the scene default
	Height    int     // 0 keeps the scene default
	FOV       float64 // Degrees, 0 keeps the scene default
	MaxDepth  int     // Negative keeps the scene default
	Workers   int     // 0 renders sequentially, negative uses every CPU
	Headless  bool
	List      bool
	Help      bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}
	if config.List {
		listScenes()
		return
	}

	logger := core.NewDefaultLogger()
	if err := run(config, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&config.FOV, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", -1, "Maximum reflection/refraction depth (-1 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Parallel workers (0 = sequential scan, <0 = all CPUs)")
	flag.BoolVar(&config.Headless, "headless", false, "Render and report stats without opening a window")
	flag.BoolVar(&config.List, "list", false, "List available scenes")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	listScenes()
	fmt.Println()
	fmt.Println("The image is shown in a window; press Escape or close it to exit.")
}

func listScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
}

func run(config Config, logger core.Logger) error {
	s, err := createScene(config)
	if err != nil {
		return err
	}

	logger.Printf("Rendering scene %q (%d spheres, %d lights) at %dx%d...\n",
		s.Name, len(s.Spheres), len(s.Lights), s.Config.Width, s.Config.Height)

	fb, stats, err := renderScene(context.Background(), s, config.Workers, logger)
	if err != nil {
		return err
	}
	logger.Printf("Render completed: %s\n", stats.Summary())

	if config.Headless {
		return nil
	}
	return display.Show(fb, "Whitted Raytracer - "+s.Name)
}

// createScene builds the requested scene with command line overrides applied
func createScene(config Config) (*scene.Scene, error) {
	overrides := scene.RenderConfig{
		Width:  config.Width,
		Height: config.Height,
	}
	if config.FOV != 0 {
		overrides.FOV = config.FOV * math.Pi / 180
	}

	s, err := scene.Create(config.SceneType, overrides)
	if err != nil {
		return nil, err
	}

	// A depth of zero is meaningful, so it cannot go through the zero-means-default merge
	if config.MaxDepth >= 0 {
		s.Config.MaxDepth = config.MaxDepth
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", config.SceneType, err)
	}
	return s, nil
}

// renderScene runs the sequential reference scan or the parallel band renderer
func renderScene(ctx context.Context, s *scene.Scene, workers int, logger core.Logger) (*renderer.Framebuffer, renderer.RenderStats, error) {
	if workers == 0 {
		fb, stats := renderer.NewRaytracer(s).Render()
		return fb, stats, nil
	}

	parallelConfig := renderer.DefaultParallelConfig()
	if workers > 0 {
		parallelConfig.NumWorkers = workers
	}
	pr := renderer.NewParallelRaytracer(s, parallelConfig, logger)
	return pr.Render(ctx, nil)
}
