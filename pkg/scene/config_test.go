package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*RenderConfig)
		expectError bool
	}{
		{"defaults", func(c *RenderConfig) {}, false},
		{"zero width", func(c *RenderConfig) { c.Width = 0 }, true},
		{"negative height", func(c *RenderConfig) { c.Height = -1 }, true},
		{"zero fov", func(c *RenderConfig) { c.FOV = 0 }, true},
		{"fov of pi", func(c *RenderConfig) { c.FOV = math.Pi }, true},
		{"negative depth", func(c *RenderConfig) { c.MaxDepth = -1 }, true},
		{"zero depth", func(c *RenderConfig) { c.MaxDepth = 0 }, false},
		{"negative bias", func(c *RenderConfig) { c.Bias = -0.1 }, true},
		{"zero max distance", func(c *RenderConfig) { c.MaxDistance = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected validation error, got none")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultRenderConfig(t *testing.T) {
	config := DefaultRenderConfig()

	if config.Width != 1024 || config.Height != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", config.Width, config.Height)
	}
	if config.FOV != math.Pi/2 {
		t.Errorf("Expected FOV pi/2, got %f", config.FOV)
	}
	if config.MaxDepth != 4 {
		t.Errorf("Expected max depth 4, got %d", config.MaxDepth)
	}
	if config.Background != core.NewVec3(0.2, 0.7, 0.8) {
		t.Errorf("Expected background (0.2,0.7,0.8), got %v", config.Background)
	}
	if math.Abs(config.AspectRatio()-4.0/3.0) > 1e-12 {
		t.Errorf("Expected aspect ratio 4/3, got %f", config.AspectRatio())
	}
}

func TestMergeRenderConfig(t *testing.T) {
	base := DefaultRenderConfig()
	merged := MergeRenderConfig(base, RenderConfig{
		Width:      320,
		Height:     240,
		Background: core.NewVec3(0.5, 0.8, 0.9),
	})

	if merged.Width != 320 || merged.Height != 240 {
		t.Errorf("Expected overridden size 320x240, got %dx%d", merged.Width, merged.Height)
	}
	if merged.Background != core.NewVec3(0.5, 0.8, 0.9) {
		t.Errorf("Expected overridden background, got %v", merged.Background)
	}
	if merged.FOV != base.FOV || merged.MaxDepth != base.MaxDepth || merged.Bias != base.Bias {
		t.Errorf("Zero override fields should keep base values, got %+v", merged)
	}
}

func TestMergeRenderConfig_ZeroKeepsBase(t *testing.T) {
	base := DefaultRenderConfig()
	merged := MergeRenderConfig(base, RenderConfig{Background: core.NewVec3(0, 0, 0), MaxDepth: 0})

	if merged.Background != base.Background {
		t.Errorf("Expected black override to keep base background %v, got %v", base.Background, merged.Background)
	}
	if merged.MaxDepth != base.MaxDepth {
		t.Errorf("Expected zero depth override to keep %d, got %d", base.MaxDepth, merged.MaxDepth)
	}

	// Black is still reachable by setting the field after the merge
	merged.Background = core.Vec3{}
	if err := merged.Validate(); err != nil {
		t.Errorf("Expected black background to be valid, got %v", err)
	}
}
