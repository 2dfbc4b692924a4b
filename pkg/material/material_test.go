package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestMaterial_Weights(t *testing.T) {
	m := NewMaterial(1.5, core.NewVec4(0.1, 0.2, 0.3, 0.4), core.NewVec3(1, 0, 0), 10)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"diffuse", m.DiffuseWeight(), 0.1},
		{"specular", m.SpecularWeight(), 0.2},
		{"reflection", m.ReflectionWeight(), 0.3},
		{"refraction", m.RefractionWeight(), 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %s weight %f, got %f", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestMaterial_WithoutTransportIsACopy(t *testing.T) {
	original := Glass
	local := original.WithoutTransport()

	if local.ReflectionWeight() != 0 || local.RefractionWeight() != 0 {
		t.Errorf("Expected zero transport weights, got %v", local.Albedo)
	}
	if local.DiffuseWeight() != original.DiffuseWeight() || local.SpecularWeight() != original.SpecularWeight() {
		t.Errorf("Local weights should be preserved, got %v", local.Albedo)
	}
	if Glass.RefractionWeight() != 0.8 {
		t.Errorf("Preset must not be modified, got refraction weight %f", Glass.RefractionWeight())
	}
}

func TestNewDiffuse(t *testing.T) {
	m := NewDiffuse(core.NewVec3(0.3, 0.1, 0.1))

	if m.DiffuseWeight() != 1 || m.SpecularWeight() != 0 || m.ReflectionWeight() != 0 || m.RefractionWeight() != 0 {
		t.Errorf("Expected diffuse-only albedo, got %v", m.Albedo)
	}
	if m.RefractiveIndex != 1.0 {
		t.Errorf("Expected refractive index 1.0, got %f", m.RefractiveIndex)
	}
}

func TestPresetName(t *testing.T) {
	tests := []struct {
		material Material
		expected string
	}{
		{Ivory, "ivory"},
		{Glass, "glass"},
		{RedRubber, "red-rubber"},
		{Mirror, "mirror"},
		{NewDiffuse(core.NewVec3(1, 1, 1)), "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := PresetName(tt.material); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
