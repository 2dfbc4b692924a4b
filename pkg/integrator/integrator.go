package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray) core.Vec3
	// Stats returns the rays counted since the integrator was created
	Stats() RayStats
}

// RayStats counts the rays cast by an integrator. An integrator and its stats belong to
// a single goroutine; workers merge their counts after the render.
type RayStats struct {
	PrimaryRays   int // Camera rays
	PrimaryHits   int // Camera rays that hit a sphere
	SecondaryRays int // Reflection and refraction rays
	ShadowRays    int // Visibility tests towards lights
}

// Add returns the sum of two stats
func (s RayStats) Add(other RayStats) RayStats {
	return RayStats{
		PrimaryRays:   s.PrimaryRays + other.PrimaryRays,
		PrimaryHits:   s.PrimaryHits + other.PrimaryHits,
		SecondaryRays: s.SecondaryRays + other.SecondaryRays,
		ShadowRays:    s.ShadowRays + other.ShadowRays,
	}
}

// Sub returns the counts in s that are not in other
func (s RayStats) Sub(other RayStats) RayStats {
	return RayStats{
		PrimaryRays:   s.PrimaryRays - other.PrimaryRays,
		PrimaryHits:   s.PrimaryHits - other.PrimaryHits,
		SecondaryRays: s.SecondaryRays - other.SecondaryRays,
		ShadowRays:    s.ShadowRays - other.ShadowRays,
	}
}

// TotalRays returns the number of rays of every kind
func (s RayStats) TotalRays() int {
	return s.PrimaryRays + s.SecondaryRays + s.ShadowRays
}

// New creates the integrator a scene asks for
func New(s *scene.Scene) Integrator {
	switch s.Integrator {
	case scene.IntegratorFlat:
		return NewFlat(s)
	default:
		return NewWhitted(s)
	}
}
