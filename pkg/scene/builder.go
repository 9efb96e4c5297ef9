package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Block pairs block material parameters with an optional texture
type Block struct {
	Name    string
	Params  material.Params
	Texture *material.Texture
}

// Textured reports whether the block samples its albedo from a texture
func (b Block) Textured() bool {
	return b.Texture.Valid()
}

// box creates the primitive for a block spanning min to max
func (b Block) box(min, max core.Vec3) geometry.Intersectable {
	if b.Textured() {
		return geometry.NewTexturedBox(min, max, b.Params, b.Texture)
	}
	return geometry.NewSolidBox(min, max, b.Params)
}

// Cell addresses a unit block by integer coordinates; the block occupies
// [x-0.5, x+0.5] on each axis
type Cell struct {
	X, Y, Z int
}

type cellKey struct {
	Cell
	Layer int
}

// Builder places blocks on an integer grid and collects the resulting
// primitives in placement order
type Builder struct {
	textures map[string]*material.Texture
	objects  []geometry.Intersectable
	used     map[cellKey]struct{}
}

// NewBuilder creates a builder that binds textures by block name
func NewBuilder(textures map[string]*material.Texture) *Builder {
	return &Builder{
		textures: textures,
		used:     make(map[cellKey]struct{}),
	}
}

// Block returns the named preset with its texture bound when one was loaded.
// Unknown names fall back to a plain grey diffuse block.
func (b *Builder) Block(name string) Block {
	params, ok := material.Preset(name)
	if !ok {
		params = material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	}
	return Block{Name: name, Params: params, Texture: b.textures[name]}
}

// Place inserts a unit block at the cell unless the cell is already taken on
// the same layer. It reports whether a block was inserted.
func (b *Builder) Place(block Block, cell Cell, layer int) bool {
	key := cellKey{Cell: cell, Layer: layer}
	if _, taken := b.used[key]; taken {
		return false
	}
	b.used[key] = struct{}{}

	center := core.NewVec3(float64(cell.X), float64(cell.Y), float64(cell.Z))
	half := core.NewVec3(0.5, 0.5, 0.5)
	b.objects = append(b.objects, block.box(center.Subtract(half), center.Add(half)))
	return true
}

// Occupied reports whether a block was placed at the cell on the layer
func (b *Builder) Occupied(cell Cell, layer int) bool {
	_, taken := b.used[cellKey{Cell: cell, Layer: layer}]
	return taken
}

// PlaceCover inserts the top slab of a cell with the given thickness, used to
// lay grass over dirt. Covers are not de-duplicated.
func (b *Builder) PlaceCover(block Block, cell Cell, thickness float64) {
	top := float64(cell.Y) + 0.5
	min := core.NewVec3(float64(cell.X)-0.5, top-thickness, float64(cell.Z)-0.5)
	max := core.NewVec3(float64(cell.X)+0.5, top, float64(cell.Z)+0.5)
	b.objects = append(b.objects, block.box(min, max))
}

// Fill places blocks in every cell of the inclusive cuboid between two corners
func (b *Builder) Fill(block Block, from, to Cell, layer int) int {
	placed := 0
	for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
		for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
			for z := min(from.Z, to.Z); z <= max(from.Z, to.Z); z++ {
				if b.Place(block, Cell{x, y, z}, layer) {
					placed++
				}
			}
		}
	}
	return placed
}

// Objects returns the primitives placed so far
func (b *Builder) Objects() []geometry.Intersectable {
	return b.objects
}
