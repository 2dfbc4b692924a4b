package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// IntegratorKind selects the light transport used for a scene
type IntegratorKind string

const (
	IntegratorWhitted IntegratorKind = "whitted" // Phong shading, shadows, reflection and refraction
	IntegratorFlat    IntegratorKind = "flat"    // Diffuse color on hit, background on miss
)

// Scene contains all the elements needed for rendering. It is built once and must not
// be modified while a render is in progress.
type Scene struct {
	Name       string
	Spheres    []geometry.Sphere   // Objects in the scene, in a fixed order
	Lights     []lights.PointLight // Lights in the scene
	Config     RenderConfig
	Integrator IntegratorKind
}

// NewScene creates an empty scene with the given configuration
func NewScene(name string, config RenderConfig) *Scene {
	return &Scene{
		Name:       name,
		Spheres:    make([]geometry.Sphere, 0),
		Lights:     make([]lights.PointLight, 0),
		Config:     config,
		Integrator: IntegratorWhitted,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, mat))
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// Intersect finds the nearest sphere hit by ray. Every sphere is tested; on an exact
// tie the sphere that comes first wins. Hits at or beyond Config.MaxDistance are
// reported as misses.
func (s *Scene) Intersect(ray core.Ray) (geometry.HitRecord, bool) {
	closest := math.MaxFloat64
	index := -1

	for i, sphere := range s.Spheres {
		if dist, isHit := sphere.Intersect(ray); isHit && dist < closest {
			closest = dist
			index = i
		}
	}

	if index < 0 || closest >= s.Config.MaxDistance {
		return geometry.HitRecord{}, false
	}
	return geometry.NewHitRecord(ray, closest, s.Spheres[index], index), true
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
