package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WorldFile is the YAML description of a block world
type WorldFile struct {
	Name      string                  `yaml:"name"`
	Base      string                  `yaml:"base"` // "", "none", "overworld" or "nether"
	Light     Triple                  `yaml:"light"`
	View      *ViewSpec               `yaml:"view"`
	Sky       *SkySpec                `yaml:"sky"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Blocks    []BlockSpec             `yaml:"blocks"`
	Boxes     []BoxSpec               `yaml:"boxes"`
}

// Triple is a three component vector written as a YAML sequence
type Triple []float64

// ViewSpec overrides the orbit camera
type ViewSpec struct {
	Target Triple   `yaml:"target"`
	Yaw    *float64 `yaml:"yaw"`
	Pitch  *float64 `yaml:"pitch"`
	Radius *float64 `yaml:"radius"`
	FovY   *float64 `yaml:"fov"`
}

// SkySpec selects the environment
type SkySpec struct {
	Kind    string `yaml:"kind"` // "gradient", "nether" or "skybox"
	Zenith  Triple `yaml:"zenith"`
	Horizon Triple `yaml:"horizon"`
	Tint    Triple `yaml:"tint"`
}

// MaterialSpec defines a named material, optionally starting from a preset
type MaterialSpec struct {
	Base         string   `yaml:"base"`
	Albedo       Triple   `yaml:"albedo"`
	Specular     *float64 `yaml:"specular"`
	Shininess    *float64 `yaml:"shininess"`
	Reflectivity *float64 `yaml:"reflectivity"`
	Transparency *float64 `yaml:"transparency"`
	IOR          *float64 `yaml:"ior"`
	Emissive     Triple   `yaml:"emissive"`
	Texture      string   `yaml:"texture"` // Block texture name to bind
}

// BlockSpec places unit blocks on the grid. Exactly one of At, From/To or
// Cover must be set.
type BlockSpec struct {
	Block     string  `yaml:"block"`
	At        []int   `yaml:"at"`
	From      []int   `yaml:"from"`
	To        []int   `yaml:"to"`
	Cover     []int   `yaml:"cover"`
	Thickness float64 `yaml:"thickness"`
}

// BoxSpec places a free axis-aligned box
type BoxSpec struct {
	Material string `yaml:"material"`
	Min      Triple `yaml:"min"`
	Max      Triple `yaml:"max"`
}

// defaultCoverThickness matches the grass cover of the built-in overworld
const defaultCoverThickness = 0.18

// ParseWorldFile decodes a world file, rejecting unknown keys
func ParseWorldFile(r io.Reader) (*WorldFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var wf WorldFile
	if err := dec.Decode(&wf); err != nil {
		if errors.Is(err, io.EOF) {
			return &wf, nil
		}
		return nil, fmt.Errorf("failed to parse world file: %w", err)
	}
	return &wf, nil
}

// LoadWorldFile reads a world file and builds the scene it describes
func LoadWorldFile(filename string, assets scene.Assets) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open world file: %w", err)
	}
	defer file.Close()

	wf, err := ParseWorldFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	s, err := wf.Build(assets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Build creates the scene described by the world file
func (wf *WorldFile) Build(assets scene.Assets) (*scene.Scene, error) {
	var s *scene.Scene
	switch wf.Base {
	case "", "none":
		s = scene.New("world")
	default:
		kind, err := scene.ParseWorldKind(wf.Base)
		if err != nil {
			return nil, err
		}
		s = scene.NewWorld(kind, assets)
	}
	if wf.Name != "" {
		s.Name = wf.Name
	}

	if wf.Light != nil {
		light, err := wf.Light.Vec3("light")
		if err != nil {
			return nil, err
		}
		s.Light = light
	}
	if err := wf.View.apply(&s.View); err != nil {
		return nil, err
	}
	if err := wf.Sky.apply(s, assets); err != nil {
		return nil, err
	}

	b := scene.NewBuilder(assets.Textures)
	blocks, err := wf.blocks(b)
	if err != nil {
		return nil, err
	}

	for i, spec := range wf.Blocks {
		block, ok := blocks[spec.Block]
		if !ok {
			block = b.Block(spec.Block)
		}
		if err := spec.place(b, block); err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
	}
	s.Add(b.Objects()...)

	for i, spec := range wf.Boxes {
		box, err := spec.build(b, blocks)
		if err != nil {
			return nil, fmt.Errorf("boxes[%d]: %w", i, err)
		}
		s.Add(box)
	}
	return s, nil
}

// blocks resolves the named materials into blocks
func (wf *WorldFile) blocks(b *scene.Builder) (map[string]scene.Block, error) {
	blocks := make(map[string]scene.Block, len(wf.Materials))
	for name, spec := range wf.Materials {
		block, err := spec.block(b, name)
		if err != nil {
			return nil, fmt.Errorf("materials.%s: %w", name, err)
		}
		blocks[name] = block
	}
	return blocks, nil
}

func (m MaterialSpec) block(b *scene.Builder, name string) (scene.Block, error) {
	base := name
	if m.Base != "" {
		if _, ok := material.Preset(m.Base); !ok {
			return scene.Block{}, fmt.Errorf("unknown base material %q", m.Base)
		}
		base = m.Base
	}
	block := b.Block(base)
	block.Name = name
	if m.Texture != "" {
		block.Texture = b.Block(m.Texture).Texture
	}

	p := &block.Params
	if m.Albedo != nil {
		albedo, err := m.Albedo.Vec3("albedo")
		if err != nil {
			return scene.Block{}, err
		}
		p.Albedo = albedo
	}
	if m.Emissive != nil {
		emissive, err := m.Emissive.Vec3("emissive")
		if err != nil {
			return scene.Block{}, err
		}
		p.Emissive = emissive
	}
	setFloat(&p.SpecularStrength, m.Specular)
	setFloat(&p.Shininess, m.Shininess)
	setFloat(&p.Reflectivity, m.Reflectivity)
	setFloat(&p.Transparency, m.Transparency)
	setFloat(&p.IOR, m.IOR)

	if p.IOR <= 0 {
		return scene.Block{}, fmt.Errorf("ior must be positive, got %g", p.IOR)
	}
	return block, nil
}

func (bs BlockSpec) place(b *scene.Builder, block scene.Block) error {
	set := 0
	for _, v := range [][]int{bs.At, bs.From, bs.Cover} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return errors.New("exactly one of at, from/to or cover is required")
	}

	switch {
	case bs.At != nil:
		cell, err := toCell("at", bs.At)
		if err != nil {
			return err
		}
		b.Place(block, cell, 0)
	case bs.From != nil:
		from, err := toCell("from", bs.From)
		if err != nil {
			return err
		}
		to, err := toCell("to", bs.To)
		if err != nil {
			return err
		}
		b.Fill(block, from, to, 0)
	default:
		cell, err := toCell("cover", bs.Cover)
		if err != nil {
			return err
		}
		thickness := bs.Thickness
		if thickness == 0 {
			thickness = defaultCoverThickness
		}
		if thickness < 0 || thickness > 1 {
			return fmt.Errorf("cover thickness must be in (0,1], got %g", thickness)
		}
		b.PlaceCover(block, cell, thickness)
	}
	return nil
}

func (bs BoxSpec) build(b *scene.Builder, blocks map[string]scene.Block) (geometry.Intersectable, error) {
	lo, err := bs.Min.Vec3("min")
	if err != nil {
		return nil, err
	}
	hi, err := bs.Max.Vec3("max")
	if err != nil {
		return nil, err
	}
	if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
		return nil, fmt.Errorf("min %v exceeds max %v", lo, hi)
	}

	block, ok := blocks[bs.Material]
	if !ok {
		block = b.Block(bs.Material)
	}
	if block.Textured() {
		return geometry.NewTexturedBox(lo, hi, block.Params, block.Texture), nil
	}
	return geometry.NewSolidBox(lo, hi, block.Params), nil
}

func (v *ViewSpec) apply(view *scene.View) error {
	if v == nil {
		return nil
	}
	if v.Target != nil {
		target, err := v.Target.Vec3("view.target")
		if err != nil {
			return err
		}
		view.Target = target
	}
	setFloat(&view.Yaw, v.Yaw)
	setFloat(&view.Pitch, v.Pitch)
	setFloat(&view.Radius, v.Radius)
	setFloat(&view.FovY, v.FovY)
	if view.FovY <= 0 || view.FovY >= 180 {
		return fmt.Errorf("view.fov must be in (0,180), got %g", view.FovY)
	}
	*view = view.Clamp()
	return nil
}

func (sk *SkySpec) apply(s *scene.Scene, assets scene.Assets) error {
	if sk == nil {
		return nil
	}
	switch sk.Kind {
	case "gradient", "":
		g := lights.DefaultGradient()
		if sk.Zenith != nil {
			zenith, err := sk.Zenith.Vec3("sky.zenith")
			if err != nil {
				return err
			}
			g.Zenith = zenith
		}
		if sk.Horizon != nil {
			horizon, err := sk.Horizon.Vec3("sky.horizon")
			if err != nil {
				return err
			}
			g.Horizon = horizon
		}
		s.Skybox, s.Sky = nil, &g
	case "nether":
		g := lights.NetherGradient()
		s.Skybox, s.Sky = nil, &g
	case "skybox":
		if assets.OverworldSky == nil {
			return errors.New("sky.kind skybox requires a loaded cubemap")
		}
		sky := assets.OverworldSky
		if sk.Tint != nil {
			tint, err := sk.Tint.Vec3("sky.tint")
			if err != nil {
				return err
			}
			sky = sky.WithTint(tint)
		}
		s.Skybox = sky
	default:
		return fmt.Errorf("unknown sky kind %q", sk.Kind)
	}
	return nil
}

// Vec3 converts the triple, naming the field in errors
func (t Triple) Vec3(field string) (core.Vec3, error) {
	if len(t) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(t))
	}
	return core.NewVec3(t[0], t[1], t[2]), nil
}

func toCell(field string, v []int) (scene.Cell, error) {
	if len(v) != 3 {
		return scene.Cell{}, fmt.Errorf("%s: expected 3 integers, got %d", field, len(v))
	}
	return scene.Cell{X: v[0], Y: v[1], Z: v[2]}, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
