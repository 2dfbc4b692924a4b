package integrator

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestFlat_RayColor(t *testing.T) {
	s := scene.NewFlatScene()
	f := NewFlat(s)

	tests := []struct {
		name     string
		dir      core.Vec3
		expected core.Vec3
	}{
		{"large ivory sphere", core.NewVec3(7, 5, -18).Normalize(), material.Ivory.DiffuseColor},
		{"red rubber sphere", core.NewVec3(-1, -1.5, -12).Normalize(), material.RedRubber.DiffuseColor},
		{"background", core.NewVec3(0, 1, 0), s.Config.Background},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.dir))
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}

	if f.Stats().PrimaryRays != 3 || f.Stats().PrimaryHits != 2 {
		t.Errorf("Expected 3 rays with 2 hits, got %+v", f.Stats())
	}
}
