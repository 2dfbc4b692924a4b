package server

import (
	"image"
	"image/png"
	"log"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"golang.org/x/image/draw"
)

// handleRenderPNG renders a scene and returns it as a PNG, optionally downscaled
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	scale, err := parseFloatParam(r.URL.Query(), "scale", 1.0, MinScale, MaxScale)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer := renderer.NewParallelRaytracer(sceneObj, renderer.DefaultParallelConfig(), nil)
	fb, stats, err := raytracer.Render(r.Context(), nil)
	if err != nil {
		log.Printf("Render of %s aborted: %v", sceneObj.Name, err)
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	log.Printf("Rendered %s: %s", sceneObj.Name, stats.Summary())

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, scaleImage(fb.ToRGBA(), scale)); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// scaleImage resamples img by factor with Catmull-Rom filtering. A factor of 1 returns
// img unchanged.
func scaleImage(img *image.RGBA, factor float64) image.Image {
	if factor >= 1 {
		return img
	}

	bounds := img.Bounds()
	width := max(1, int(float64(bounds.Dx())*factor))
	height := max(1, int(float64(bounds.Dy())*factor))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
