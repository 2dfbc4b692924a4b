package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSingleSphereScene creates one ivory sphere with no lights. Every hit shades to
// black, so the image is a dark disc on the background.
func NewSingleSphereScene(configOverrides ...RenderConfig) *Scene {
	config := DefaultRenderConfig()
	if len(configOverrides) > 0 {
		config = MergeRenderConfig(config, configOverrides[0])
	}

	s := NewScene("single", config)
	s.AddSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory)
	return s
}
