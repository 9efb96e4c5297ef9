package material

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Block material names used by the built-in worlds and world files
const (
	Dirt      = "dirt"
	Stone     = "stone"
	Wood      = "wood"
	Leaves    = "leaves"
	Water     = "water"
	Lava      = "lava"
	Obsidian  = "obsidian"
	Glowstone = "glowstone"
	Diamond   = "diamond"
	Iron      = "iron"
	Chest     = "chest"
	Grass     = "grass"
	Ice       = "ice"
	Portal    = "portal"
)

// The albedo of each preset is the tint used when no texture is bound;
// textured blocks replace it with the sampled texel.
var presets = map[string]Params{
	Dirt: {
		Albedo: core.NewVec3(0.85, 0.76, 0.6), SpecularStrength: 0.02, Shininess: 10, IOR: 1,
	},
	Stone: {
		Albedo: core.NewVec3(0.95, 0.95, 0.95), SpecularStrength: 0.18, Shininess: 40,
		Reflectivity: 0.05, IOR: 1,
	},
	Wood: {
		Albedo: core.NewVec3(1.0, 0.98, 0.92), SpecularStrength: 0.04, Shininess: 18,
		Reflectivity: 0.01, IOR: 1,
	},
	Leaves: {
		Albedo: core.NewVec3(0.7, 1.0, 0.75), SpecularStrength: 0.05, Shininess: 12,
		Reflectivity: 0.03, Transparency: 0.15, IOR: 1.2,
	},
	Water: {
		Albedo: core.NewVec3(0.85, 0.9, 1.0), SpecularStrength: 0.14, Shininess: 85,
		Reflectivity: 0.08, Transparency: 0.92, IOR: 1.333,
	},
	Lava: {
		Albedo: core.NewVec3(1.0, 0.9, 0.85), SpecularStrength: 0.2, Shininess: 35,
		Reflectivity: 0.08, IOR: 1, Emissive: core.NewVec3(2.2, 0.9, 0.25),
	},
	Obsidian: {
		Albedo: core.NewVec3(0.6, 0.65, 0.8), SpecularStrength: 0.18, Shininess: 70,
		Reflectivity: 0.08, IOR: 1.46,
	},
	Glowstone: {
		Albedo: core.NewVec3(1.0, 0.95, 0.8), SpecularStrength: 0.22, Shininess: 28,
		Reflectivity: 0.02, IOR: 1, Emissive: core.NewVec3(3.5, 3.2, 2.6),
	},
	Diamond: {
		Albedo: core.NewVec3(1, 1, 1), SpecularStrength: 0.85, Shininess: 110,
		Reflectivity: 0.15, IOR: 2.4,
	},
	Iron: {
		Albedo: core.NewVec3(0.95, 0.95, 0.98), SpecularStrength: 0.4, Shininess: 75,
		Reflectivity: 0.1, IOR: 1,
	},
	Chest: {
		Albedo: core.NewVec3(1.0, 0.95, 0.85), SpecularStrength: 0.06, Shininess: 18,
		Reflectivity: 0.01, IOR: 1,
	},
	Grass: {
		Albedo: core.NewVec3(0.95, 1.0, 0.95), SpecularStrength: 0.08, Shininess: 20,
		Reflectivity: 0.01, IOR: 1,
	},
	Ice: {
		Albedo: core.NewVec3(0.8, 0.9, 1.0), SpecularStrength: 0.2, Shininess: 70,
		Reflectivity: 0.08, Transparency: 0.6, IOR: 1.31,
	},
	Portal: {
		Albedo: core.NewVec3(1.0, 0.4, 1.2), SpecularStrength: 0.6, Shininess: 60,
		Reflectivity: 0.12, Transparency: 0.55, IOR: 1.6, Emissive: core.NewVec3(1.5, 0.3, 1.8),
	},
}

// Preset returns the named block material
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns all preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
