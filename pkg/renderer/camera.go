package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera is a pinhole camera at the world origin looking down -Z
type Camera struct {
	width, height int
	halfHeight    float64 // tan(fov/2): half the image plane height at z = -1
	aspectRatio   float64
	origin        core.Vec3
}

// NewCamera creates a camera for the image size and vertical field of view in config
func NewCamera(config scene.RenderConfig) *Camera {
	return &Camera{
		width:       config.Width,
		height:      config.Height,
		halfHeight:  math.Tan(config.FOV / 2),
		aspectRatio: config.AspectRatio(),
		origin:      core.NewVec3(0, 0, 0),
	}
}

// GetRay returns the primary ray through the center of pixel (col, row). Row 0 is the
// top of the image.
func (c *Camera) GetRay(col, row int) core.Ray {
	x := (2*(float64(col)+0.5)/float64(c.width) - 1) * c.halfHeight * c.aspectRatio
	y := -(2*(float64(row)+0.5)/float64(c.height) - 1) * c.halfHeight
	direction := core.NewVec3(x, y, -1).Normalize()
	return core.NewRay(c.origin, direction)
}
