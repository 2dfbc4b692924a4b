package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitesimal light source. Intensity is a plain scalar multiplier
// and does not fall off with distance.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Illuminate returns the unit direction from point towards the light and the distance
// between them
func (l PointLight) Illuminate(point core.Vec3) (direction core.Vec3, distance float64) {
	toLight := l.Position.Sub(point)
	return toLight.Normalize(), toLight.Len()
}
