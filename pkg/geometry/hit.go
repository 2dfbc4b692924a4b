package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// HitRecord contains information about a ray-sphere intersection
type HitRecord struct {
	Point       core.Vec3         // Point of intersection
	Normal      core.Vec3         // Unit outward normal at the intersection
	Distance    float64           // Parameter t along the ray
	Material    material.Material // Material of the sphere that was hit
	SphereIndex int               // Position of the sphere in the scene
}

// NewHitRecord builds the hit record for sphere s hit by ray at distance t
func NewHitRecord(ray core.Ray, t float64, s Sphere, index int) HitRecord {
	point := ray.At(t)
	return HitRecord{
		Point:       point,
		Normal:      s.NormalAt(point),
		Distance:    t,
		Material:    s.Material,
		SphereIndex: index,
	}
}
