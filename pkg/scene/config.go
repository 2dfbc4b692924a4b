package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width       int       // Image width in pixels
	Height      int       // Image height in pixels
	FOV         float64   // Vertical field of view in radians
	MaxDepth    int       // Deepest recursion level traced; the primary ray is depth 0
	Background  core.Vec3 // Color returned for rays that escape the scene
	Bias        float64   // Offset applied to secondary ray origins along the normal
	MaxDistance float64   // Hits at or beyond this distance count as misses
}

// DefaultBackground is the sky color returned for rays that hit nothing
var DefaultBackground = core.NewVec3(0.2, 0.7, 0.8)

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:       1024,
		Height:      768,
		FOV:         math.Pi / 2,
		MaxDepth:    4,
		Background:  DefaultBackground,
		Bias:        1e-3,
		MaxDistance: 1000,
	}
}

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid render config")

// Validate checks that the configuration can produce an image
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return fmt.Errorf("%w: field of view %f must be in (0, pi)", ErrInvalidConfig, c.FOV)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Bias < 0 {
		return fmt.Errorf("%w: bias %f must not be negative", ErrInvalidConfig, c.Bias)
	}
	if c.MaxDistance <= 0 {
		return fmt.Errorf("%w: max distance %f must be positive", ErrInvalidConfig, c.MaxDistance)
	}
	return nil
}

// AspectRatio returns width / height
func (c RenderConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// MergeRenderConfig applies non-zero override fields on top of base. A zero field
// always keeps the base value, so a black Background or a MaxDepth of 0 cannot be
// requested through an override; set those on the merged config directly.
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if !core.IsZero(override.Background) {
		result.Background = override.Background
	}
	if override.Bias != 0 {
		result.Bias = override.Bias
	}
	if override.MaxDistance != 0 {
		result.MaxDistance = override.MaxDistance
	}
	return result
}
