package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light under the Phong + Whitted model.
// Albedo weights the diffuse, specular, reflected and refracted contributions, in that
// order. The weights are not normalized and need not sum to 1.
type Material struct {
	DiffuseColor     core.Vec3 // Base color scaled by diffuse lighting
	SpecularExponent float64   // Phong exponent, higher is a tighter highlight
	Albedo           core.Vec4 // Weights: diffuse, specular, reflection, refraction
	RefractiveIndex  float64   // Relative index for Snell's law, 1.0 means no bending
}

// NewMaterial creates a new material
func NewMaterial(refractiveIndex float64, albedo core.Vec4, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
		Albedo:           albedo,
		RefractiveIndex:  refractiveIndex,
	}
}

// NewDiffuse creates a purely diffuse material. Only the first albedo weight is set.
func NewDiffuse(color core.Vec3) Material {
	return NewMaterial(1.0, core.NewVec4(1, 0, 0, 0), color, 0)
}

// DiffuseWeight returns the albedo weight of the diffuse term
func (m Material) DiffuseWeight() float64 { return m.Albedo[0] }

// SpecularWeight returns the albedo weight of the specular term
func (m Material) SpecularWeight() float64 { return m.Albedo[1] }

// ReflectionWeight returns the albedo weight of the mirror-reflected ray
func (m Material) ReflectionWeight() float64 { return m.Albedo[2] }

// RefractionWeight returns the albedo weight of the transmitted ray
func (m Material) RefractionWeight() float64 { return m.Albedo[3] }

// WithoutTransport returns a copy with the reflection and refraction weights zeroed,
// leaving only local illumination
func (m Material) WithoutTransport() Material {
	m.Albedo[2] = 0
	m.Albedo[3] = 0
	return m
}
