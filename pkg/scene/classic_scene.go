package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// addClassicSpheres adds the four-sphere layout of ivory and red rubber shared by
// the flat and lit scenes
func addClassicSpheres(s *Scene, ivory, redRubber material.Material) {
	s.AddSphere(core.NewVec3(-3, 0, -16), 2, ivory)
	s.AddSphere(core.NewVec3(-1.0, -1.5, -12), 2, redRubber)
	s.AddSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber)
	s.AddSphere(core.NewVec3(7, 5, -18), 4, ivory)
}

// NewFlatScene creates the four classic spheres rendered with flat diffuse color and
// no lighting at all. Materials carry only their diffuse color.
func NewFlatScene(configOverrides ...RenderConfig) *Scene {
	config := DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene("flat", config)
	s.Integrator = IntegratorFlat
	addClassicSpheres(s, material.NewDiffuse(material.Ivory.DiffuseColor), material.NewDiffuse(material.RedRubber.DiffuseColor))
	return s
}

// NewLitScene creates the four classic spheres with Phong shading and shadows from
// three lights, but with reflection and refraction switched off
func NewLitScene(configOverrides ...RenderConfig) *Scene {
	config := DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene("lit", config)
	addClassicSpheres(s, material.Ivory.WithoutTransport(), material.RedRubber.WithoutTransport())

	s.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	s.AddLight(core.NewVec3(30, 50, -25), 1.8)
	s.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return s
}
