package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Flat paints each sphere in its diffuse color with no lighting
type Flat struct {
	scene *scene.Scene
	stats RayStats
}

// NewFlat creates a flat integrator for the scene
func NewFlat(s *scene.Scene) *Flat {
	return &Flat{scene: s}
}

// RayColor returns the diffuse color of the nearest sphere or the background
func (f *Flat) RayColor(ray core.Ray) core.Vec3 {
	f.stats.PrimaryRays++
	hit, isHit := f.scene.Intersect(ray)
	if !isHit {
		return f.scene.Config.Background
	}
	f.stats.PrimaryHits++
	return hit.Material.DiffuseColor
}

// Stats returns the rays cast so far
func (f *Flat) Stats() RayStats {
	return f.stats
}
