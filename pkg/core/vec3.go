package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3D vector used for points, directions and RGB colors
type Vec3 = mgl64.Vec3

// Vec4 is a 4-component vector, used for albedo weights
type Vec4 = mgl64.Vec4

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// White is the unit color used to tint specular highlights
var White = Vec3{1, 1, 1}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float64) Vec3 {
	return Vec3{
		max(minVal, min(maxVal, v[0])),
		max(minVal, min(maxVal, v[1])),
		max(minVal, min(maxVal, v[2])),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses Rec. 709 weights: 0.2126*R + 0.7152*G + 0.0722*B
func Luminance(v Vec3) float64 {
	return 0.2126*v[0] + 0.7152*v[1] + 0.0722*v[2]
}

// IsZero reports whether every component is exactly zero
func IsZero(v Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Reflect mirrors incident about normal: i - n*2(i·n). normal must be unit length.
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}

// Refract bends incident through a surface with the given normal using Snell's law.
// etaT is the index of the medium on the far side of the surface, the other medium
// is assumed to be air (1.0). When the ray leaves the medium the indices are swapped
// and the normal flipped. Total internal reflection returns the zero vector.
func Refract(incident, normal Vec3, etaT float64) Vec3 {
	cosi := -mgl64.Clamp(incident.Dot(normal), -1, 1)
	etaI := 1.0
	n := normal
	if cosi < 0 {
		// inside the object
		cosi = -cosi
		etaI, etaT = etaT, etaI
		n = normal.Mul(-1)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Vec3{}
	}
	return incident.Mul(eta).Add(n.Mul(eta*cosi - math.Sqrt(k)))
}

// OffsetOrigin nudges point off a surface by bias along normal, onto the side
// that direction leaves from. Secondary rays start here so they do not hit the
// surface they were spawned on.
func OffsetOrigin(point, normal, direction Vec3, bias float64) Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Sub(normal.Mul(bias))
	}
	return point.Add(normal.Mul(bias))
}
