package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Preset materials for the built-in scenes
var (
	Ivory     = NewMaterial(1.0, core.NewVec4(0.6, 0.3, 0.1, 0.0), core.NewVec3(0.4, 0.4, 0.3), 50)
	Glass     = NewMaterial(1.5, core.NewVec4(0.0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
	RedRubber = NewMaterial(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), core.NewVec3(0.3, 0.1, 0.1), 10)
	Mirror    = NewMaterial(1.0, core.NewVec4(0.0, 10.0, 0.8, 0.0), core.NewVec3(1.0, 1.0, 1.0), 1425)
)

// Presets maps preset names to materials, used for inspection output
var Presets = map[string]Material{
	"ivory":      Ivory,
	"glass":      Glass,
	"red-rubber": RedRubber,
	"mirror":     Mirror,
}

// PresetName returns the name of the preset equal to m, or "custom"
func PresetName(m Material) string {
	for name, preset := range Presets {
		if preset == m {
			return name
		}
	}
	return "custom"
}
