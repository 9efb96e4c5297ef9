package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

var builtins = []struct {
	info  SceneInfo
	build func(Assets) *Scene
}{
	{
		info:  SceneInfo{ID: "overworld", DisplayName: "Overworld", Description: "Grass island with pond, tree, ores and portal"},
		build: NewOverworld,
	},
	{
		info:  SceneInfo{ID: "nether", DisplayName: "Nether", Description: "Obsidian platform around a lava pool lit by glowstone"},
		build: NewNether,
	},
	{
		info:  SceneInfo{ID: "single-box", DisplayName: "Single Box", Description: "One diffuse unit box at the origin"},
		build: func(Assets) *Scene { return NewSingleBoxScene() },
	},
	{
		info:  SceneInfo{ID: "mirror", DisplayName: "Mirror", Description: "A mirror block reflecting colored blocks"},
		build: func(Assets) *Scene { return NewMirrorScene() },
	},
	{
		info:  SceneInfo{ID: "glass", DisplayName: "Glass", Description: "Refractive blocks in front of a striped wall"},
		build: func(Assets) *Scene { return NewGlassScene() },
	},
}

// ListBuiltin returns the built-in scenes in display order
func ListBuiltin() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}

// Build creates a built-in scene by ID
func Build(id string, assets Assets) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.build(assets), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// NewSingleBoxScene creates a red unit box at the origin viewed from +Z
func NewSingleBoxScene() *Scene {
	s := New("single-box")
	s.Add(geometry.NewUnitBox(core.NewVec3(0, 0, 0), material.NewDiffuse(core.NewVec3(0.9, 0.15, 0.15))))
	s.Light = core.NewVec3(2, 2, 2)
	s.View = View{
		Target: core.NewVec3(0, 0, 0),
		Radius: 3,
		FovY:   60,
	}
	return s
}

// NewMirrorScene creates a mirror block on a floor surrounded by colored blocks
func NewMirrorScene() *Scene {
	s := New("mirror")

	floor := material.NewDiffuse(core.NewVec3(0.75, 0.75, 0.7))
	floor.SpecularStrength = 0.05
	s.Add(geometry.NewSolidBox(core.NewVec3(-4, -1, -4), core.NewVec3(4, -0.5, 4), floor))

	s.Add(geometry.NewSolidBox(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 1.5, 0.5), material.NewMirror()))

	colors := []core.Vec3{
		core.NewVec3(0.9, 0.2, 0.2),
		core.NewVec3(0.2, 0.8, 0.3),
		core.NewVec3(0.2, 0.3, 0.9),
		core.NewVec3(0.9, 0.8, 0.2),
	}
	offsets := []core.Vec3{
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(-2, 0, 0),
		core.NewVec3(0, 0, -2),
	}
	for i, offset := range offsets {
		mat := material.NewDiffuse(colors[i])
		mat.SpecularStrength = 0.3
		mat.Shininess = 32
		s.Add(geometry.NewUnitBox(offset, mat))
	}

	s.Light = core.NewVec3(3, 4, 3)
	s.View = View{Target: core.NewVec3(0, 0.5, 0), Yaw: 0.4, Pitch: 0.35, Radius: 6, FovY: 60}
	return s
}

// NewGlassScene creates glass and water blocks in front of a striped wall
func NewGlassScene() *Scene {
	s := New("glass")

	s.Add(geometry.NewSolidBox(core.NewVec3(-4, -1, -4), core.NewVec3(4, -0.5, 4), material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))))
	for i := -4; i < 4; i++ {
		albedo := core.NewVec3(0.9, 0.9, 0.9)
		if i%2 == 0 {
			albedo = core.NewVec3(0.15, 0.15, 0.6)
		}
		x := float64(i)
		s.Add(geometry.NewSolidBox(core.NewVec3(x, -0.5, -3), core.NewVec3(x+1, 2.5, -2.5), material.NewDiffuse(albedo)))
	}

	s.Add(geometry.NewUnitBox(core.NewVec3(-0.8, 0, 0), material.NewGlass(1.5)))
	water, _ := material.Preset(material.Water)
	s.Add(geometry.NewUnitBox(core.NewVec3(0.8, 0, 0), water))

	s.Light = core.NewVec3(1, 4, 3)
	s.View = View{Target: core.NewVec3(0, 0.5, -1), Yaw: 0.15, Pitch: 0.2, Radius: 5, FovY: 60}
	return s
}
