package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the full Whitted scene: ivory, glass, red rubber and mirror
// spheres lit by three point lights
func NewDefaultScene(configOverrides ...RenderConfig) *Scene {
	config := DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene("default", config)

	s.AddSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory)
	s.AddSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass)
	s.AddSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber)
	s.AddSphere(core.NewVec3(7, 5, -18), 4, material.Mirror)

	s.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	s.AddLight(core.NewVec3(30, 50, -25), 1.8)
	s.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return s
}
