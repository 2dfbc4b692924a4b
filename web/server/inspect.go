package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	SphereIndex  int                    `json:"sphereIndex"`
	MaterialType string                 `json:"materialType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced color of the pixel, hit or miss
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the sphere hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord geometry.HitRecord
	Sphere    geometry.Sphere
	Color     core.Vec3
}

// extractMaterialInfo describes a material's Phong parameters and albedo weights
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	properties["diffuseColor"] = vecToArray(mat.DiffuseColor)
	properties["color"] = hexColor(mat.DiffuseColor)
	properties["specularExponent"] = mat.SpecularExponent
	properties["refractiveIndex"] = mat.RefractiveIndex
	properties["albedo"] = map[string]float64{
		"diffuse":    mat.DiffuseWeight(),
		"specular":   mat.SpecularWeight(),
		"reflection": mat.ReflectionWeight(),
		"refraction": mat.RefractionWeight(),
	}
	return material.PresetName(mat), properties
}

// extractGeometryInfo describes a sphere
func (s *Server) extractGeometryInfo(sphere geometry.Sphere) map[string]interface{} {
	return map[string]interface{}{
		"center": vecToArray(sphere.Center),
		"radius": sphere.Radius,
	}
}

// inspectPixel casts the primary ray through the given pixel and returns the nearest
// sphere it hits along with the traced color
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	raytracer := renderer.NewRaytracer(sceneObj)
	ray := raytracer.PrimaryRay(pixelX, pixelY)
	color := raytracer.TracePixel(pixelX, pixelY)

	hit, isHit := sceneObj.Intersect(ray)
	if !isHit {
		return InspectResult{Hit: false, Color: color}
	}

	return InspectResult{
		Hit:       true,
		HitRecord: hit,
		Sphere:    sceneObj.Spheres[hit.SphereIndex],
		Color:     color,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Validate pixel coordinates against the effective image size
	if pixelX < 0 || pixelX >= sceneObj.Config.Width || pixelY < 0 || pixelY >= sceneObj.Config.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)

	if !result.Hit {
		response := InspectResponse{Hit: false, SphereIndex: -1, Color: vecToArray(result.Color)}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
		return
	}

	materialType, materialProps := s.extractMaterialInfo(result.HitRecord.Material)
	response := InspectResponse{
		Hit:          true,
		SphereIndex:  result.HitRecord.SphereIndex,
		MaterialType: materialType,
		Point:        vecToArray(result.HitRecord.Point),
		Normal:       vecToArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.Distance,
		Color:        vecToArray(result.Color),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": s.extractGeometryInfo(result.Sphere),
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func vecToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

// hexColor formats a [0,1] color as #rrggbb using the output conversion
func hexColor(v core.Vec3) string {
	c := renderer.Vec3ToColor(v)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
