package scene

import (
	"errors"
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string         `json:"id"`          // Unique identifier
	DisplayName string         `json:"displayName"` // UI display name
	Description string         `json:"description"` // Optional description
	Integrator  IntegratorKind `json:"integrator"`  // Light transport used
}

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

type sceneEntry struct {
	info    SceneInfo
	factory func(...RenderConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Whitted Spheres",
			Description: "Ivory, glass, rubber and mirror spheres with three lights",
			Integrator:  IntegratorWhitted,
		},
		factory: NewDefaultScene,
	},
	"lit": {
		info: SceneInfo{
			ID:          "lit",
			DisplayName: "Lit Spheres",
			Description: "Phong shading and hard shadows without reflection or refraction",
			Integrator:  IntegratorWhitted,
		},
		factory: NewLitScene,
	},
	"flat": {
		info: SceneInfo{
			ID:          "flat",
			DisplayName: "Flat Spheres",
			Description: "Unlit diffuse colors against the background",
			Integrator:  IntegratorFlat,
		},
		factory: NewFlatScene,
	},
	"single": {
		info: SceneInfo{
			ID:          "single",
			DisplayName: "Single Sphere",
			Description: "One ivory sphere and no lights",
			Integrator:  IntegratorWhitted,
		},
		factory: NewSingleSphereScene,
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene with optional config overrides
func Create(name string, configOverrides ...RenderConfig) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s := entry.factory(configOverrides...)
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return s, nil
}
