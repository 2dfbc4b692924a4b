package core

import (
	"math"
	"testing"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on bounce",
			incident: NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degree bounce off floor",
			incident: NewVec3(1, -1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:     "Grazing ray is unchanged",
			incident: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.incident, tt.normal)

			const tolerance = 1e-9
			if result.Sub(tt.expected).Len() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	tests := []struct {
		name   string
		normal Vec3
	}{
		{"Entering", NewVec3(0, 0, 1)},
		{"Exiting", NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident := NewVec3(0, 0, -1)
			result := Refract(incident, tt.normal, 1.5)

			if result.Sub(incident).Len() > 1e-9 {
				t.Errorf("Normal incidence should pass straight through, got %v", result)
			}
		})
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)
	eta := 1.5

	result := Refract(incident, normal, eta)

	// sin(theta_t) = sin(45deg) / 1.5
	expectedSin := math.Sin(math.Pi/4) / eta
	if math.Abs(result.X()-expectedSin) > 1e-9 {
		t.Errorf("Expected sin(theta_t)=%f, got %f", expectedSin, result.X())
	}
	if result.Y() >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", result)
	}
	if math.Abs(result.Len()-1) > 1e-9 {
		t.Errorf("Refracted direction should stay unit length, got %f", result.Len())
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a grazing angle, past the critical angle of ~41.8 degrees
	incident := NewVec3(1, 0.1, 0).Normalize()
	outwardNormal := NewVec3(0, 1, 0)

	result := Refract(incident, outwardNormal, 1.5)
	if !IsZero(result) {
		t.Errorf("Expected zero vector on total internal reflection, got %v", result)
	}
}

func TestOffsetOrigin(t *testing.T) {
	point := NewVec3(0, 1, 0)
	normal := NewVec3(0, 1, 0)
	bias := 1e-3

	above := OffsetOrigin(point, normal, NewVec3(0, 1, 0), bias)
	if math.Abs(above.Y()-(1+bias)) > 1e-12 {
		t.Errorf("Outgoing direction should push origin outward, got %v", above)
	}

	below := OffsetOrigin(point, normal, NewVec3(0, -1, 0), bias)
	if math.Abs(below.Y()-(1-bias)) > 1e-12 {
		t.Errorf("Inward direction should push origin inside, got %v", below)
	}
}

func TestClamp(t *testing.T) {
	result := Clamp(NewVec3(-0.5, 0.25, 3), 0, 1)
	expected := NewVec3(0, 0.25, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	if got := ray.At(2); got != NewVec3(1, 2, 1) {
		t.Errorf("Expected (1,2,1), got %v", got)
	}
}
