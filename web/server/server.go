package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request parameter limits
const (
	MinImageSize  = 16
	MaxImageSize  = 2000
	MinFOVDegrees = 1.0
	MaxFOVDegrees = 179.0
	MaxDepthLimit = 10
	MinScale      = 0.05
	MaxScale      = 1.0
	MinBandHeight = 1
	MaxBandHeight = 256
)

// DefaultBandHeight is the number of rows streamed per SSE band update
const DefaultBandHeight = 16

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client. Zero values keep the
// scene's own defaults.
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Scene name (e.g., "default")
	Width      int     `json:"width"`      // Image width
	Height     int     `json:"height"`     // Image height
	FOV        float64 `json:"fov"`        // Vertical field of view in degrees
	MaxDepth   int     `json:"maxDepth"`   // Recursion depth, -1 keeps the scene default
	BandHeight int     `json:"bandHeight"` // Rows per band for streamed renders
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render.png", s.handleRenderPNG)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scene.ListScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.Config
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":       config.Width,
			"height":      config.Height,
			"fov":         config.FOV * 180 / math.Pi,
			"maxDepth":    config.MaxDepth,
			"background":  vecToArray(config.Background),
			"bias":        config.Bias,
			"maxDistance": config.MaxDistance,
			"integrator":  sceneObj.Integrator,
			"spheres":     len(sceneObj.Spheres),
			"lights":      len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":      map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":     map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"fov":        map[string]float64{"min": MinFOVDegrees, "max": MaxFOVDegrees},
			"maxDepth":   map[string]int{"min": 0, "max": MaxDepthLimit},
			"scale":      map[string]float64{"min": MinScale, "max": MaxScale},
			"bandHeight": map[string]int{"min": MinBandHeight, "max": MaxBandHeight},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseCommonSceneParams parses the parameters shared by every rendering endpoint
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.FOV, err = parseFloatParam(query, "fov", 0, MinFOVDegrees, MaxFOVDegrees); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", -1, 0, MaxDepthLimit); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with the request's overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	overrides := scene.RenderConfig{
		Width:  req.Width,
		Height: req.Height,
		FOV:    req.FOV * math.Pi / 180,
	}

	sceneObj, err := scene.Create(req.Scene, overrides)
	if err != nil {
		return nil, err
	}
	if req.MaxDepth >= 0 {
		sceneObj.Config.MaxDepth = req.MaxDepth
	}
	return sceneObj, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeJSONError writes {"error": message} with the given status
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
