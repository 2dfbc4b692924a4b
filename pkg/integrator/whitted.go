package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Whitted implements recursive ray tracing: Phong shading with hard shadows plus
// mirror reflection and refraction, cut off at Config.MaxDepth
type Whitted struct {
	scene *scene.Scene
	stats RayStats
}

// NewWhitted creates a Whitted integrator for the scene
func NewWhitted(s *scene.Scene) *Whitted {
	return &Whitted{scene: s}
}

// RayColor traces a primary ray
func (w *Whitted) RayColor(ray core.Ray) core.Vec3 {
	w.stats.PrimaryRays++
	return w.Trace(ray, 0)
}

// Stats returns the rays cast so far
func (w *Whitted) Stats() RayStats {
	return w.stats
}

// Trace returns the color seen along ray. depth counts bounces from the camera; once
// it passes Config.MaxDepth the background is returned without testing geometry.
func (w *Whitted) Trace(ray core.Ray, depth int) core.Vec3 {
	config := &w.scene.Config
	if depth > config.MaxDepth {
		return config.Background
	}

	hit, isHit := w.scene.Intersect(ray)
	if !isHit {
		return config.Background
	}
	if depth == 0 {
		w.stats.PrimaryHits++
	}

	mat := hit.Material
	result := w.Shade(hit.Point, hit.Normal, ray.Direction, mat)

	if weight := mat.ReflectionWeight(); weight != 0 {
		reflectColor := w.reflected(ray.Direction, hit.Point, hit.Normal, depth)
		result = result.Add(reflectColor.Mul(weight))
	}
	if weight := mat.RefractionWeight(); weight != 0 {
		refractColor := w.refracted(ray.Direction, hit.Point, hit.Normal, mat.RefractiveIndex, depth)
		result = result.Add(refractColor.Mul(weight))
	}

	return result
}

// reflected traces the mirror bounce of direction off the surface
func (w *Whitted) reflected(direction, point, normal core.Vec3, depth int) core.Vec3 {
	reflectDir := core.Reflect(direction, normal).Normalize()
	reflectOrig := core.OffsetOrigin(point, normal, reflectDir, w.scene.Config.Bias)

	w.stats.SecondaryRays++
	return w.Trace(core.NewRay(reflectOrig, reflectDir), depth+1)
}

// refracted traces the transmitted ray. Total internal reflection contributes black
// rather than an extra reflected ray.
func (w *Whitted) refracted(direction, point, normal core.Vec3, refractiveIndex float64, depth int) core.Vec3 {
	refractDir := core.Refract(direction, normal, refractiveIndex)
	if core.IsZero(refractDir) {
		return core.Vec3{}
	}
	refractDir = refractDir.Normalize()
	refractOrig := core.OffsetOrigin(point, normal, refractDir, w.scene.Config.Bias)

	w.stats.SecondaryRays++
	return w.Trace(core.NewRay(refractOrig, refractDir), depth+1)
}

// Shade computes local illumination at a surface point: the diffuse color scaled by
// summed Lambert terms plus white highlights scaled by summed Phong terms, each
// weighted by the material albedo. Lights blocked by geometry contribute nothing.
func (w *Whitted) Shade(point, normal, viewDir core.Vec3, mat material.Material) core.Vec3 {
	diffuseIntensity, specularIntensity := 0.0, 0.0

	for _, light := range w.scene.Lights {
		diffuse, specular, _ := w.LightContribution(light, point, normal, viewDir, mat.SpecularExponent)
		diffuseIntensity += diffuse
		specularIntensity += specular
	}

	return mat.DiffuseColor.Mul(diffuseIntensity * mat.DiffuseWeight()).
		Add(core.White.Mul(specularIntensity * mat.SpecularWeight()))
}

// LightContribution returns the unweighted diffuse and specular intensity one light
// adds at point, and whether the light is occluded
func (w *Whitted) LightContribution(light lights.PointLight, point, normal, viewDir core.Vec3, specularExponent float64) (diffuse, specular float64, occluded bool) {
	lightDir, lightDistance := light.Illuminate(point)

	shadowOrig := core.OffsetOrigin(point, normal, lightDir, w.scene.Config.Bias)
	w.stats.ShadowRays++
	if shadowHit, isHit := w.scene.Intersect(core.NewRay(shadowOrig, lightDir)); isHit {
		if shadowHit.Point.Sub(shadowOrig).Len() < lightDistance {
			return 0, 0, true
		}
	}

	diffuse = light.Intensity * math.Max(0, lightDir.Dot(normal))
	reflected := core.Reflect(lightDir.Mul(-1), normal)
	specular = light.Intensity * math.Pow(math.Max(0, -reflected.Dot(viewDir)), specularExponent)
	return diffuse, specular, false
}
