package scene

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// WorldKind selects one of the built-in block dioramas
type WorldKind int

const (
	Overworld WorldKind = iota
	Nether
)

func (w WorldKind) String() string {
	switch w {
	case Overworld:
		return "overworld"
	case Nether:
		return "nether"
	}
	return fmt.Sprintf("WorldKind(%d)", int(w))
}

// Toggle switches between the overworld and the nether
func (w WorldKind) Toggle() WorldKind {
	if w == Overworld {
		return Nether
	}
	return Overworld
}

// ParseWorldKind parses a world name, ignoring case
func ParseWorldKind(name string) (WorldKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "overworld":
		return Overworld, nil
	case "nether":
		return Nether, nil
	}
	return Overworld, fmt.Errorf("unknown world %q", name)
}

// Assets holds decoded textures shared by every scene built from them.
// Any field may be empty; blocks without a texture use their preset albedo.
type Assets struct {
	Textures     map[string]*material.Texture // Keyed by block name
	OverworldSky *lights.Skybox
	NetherSky    *lights.Skybox
}

// netherTint recolors the overworld cubemap when no nether cubemap is available
var netherTint = core.NewVec3(1.3, 0.4, 0.4)

// skyboxFor picks the environment for a world kind
func (a Assets) skyboxFor(kind WorldKind) *lights.Skybox {
	if kind == Overworld {
		return a.OverworldSky
	}
	if a.NetherSky != nil {
		return a.NetherSky
	}
	if a.OverworldSky != nil {
		return a.OverworldSky.WithTint(netherTint)
	}
	return nil
}

// NewWorld builds the diorama for the given world kind
func NewWorld(kind WorldKind, assets Assets) *Scene {
	if kind == Nether {
		return NewNether(assets)
	}
	return NewOverworld(assets)
}

// Island footprint shared by both worlds: x in [-3,3], z in [-2,2]
const (
	islandMinX, islandMaxX = -3, 3
	islandMinZ, islandMaxZ = -2, 2
)

const (
	groundLayer = iota
	featureLayer
)

// placePortal builds an obsidian frame in the z=-2 row with portal blocks inside
func placePortal(b *Builder) {
	obsidian := b.Block(material.Obsidian)
	portal := b.Block(material.Portal)

	const left, right, top, z = 1, 3, 4, islandMinZ
	for y := 0; y <= top; y++ {
		b.Place(obsidian, Cell{left, y, z}, featureLayer)
		b.Place(obsidian, Cell{right, y, z}, featureLayer)
	}
	for x := left; x <= right; x++ {
		b.Place(obsidian, Cell{x, -1, z}, featureLayer)
		b.Place(obsidian, Cell{x, 0, z}, featureLayer)
		b.Place(obsidian, Cell{x, top, z}, featureLayer)
	}
	b.Fill(portal, Cell{left + 1, 1, z}, Cell{right - 1, top - 1, z}, featureLayer)
}

// NewOverworld builds a floating grass island with a pond, a lava pocket,
// a tree, two ore pedestals, a chest and a portal
func NewOverworld(assets Assets) *Scene {
	b := NewBuilder(assets.Textures)

	water := b.Block(material.Water)
	stone := b.Block(material.Stone)

	// Pond with a waterfall spilling off the south edge
	for _, c := range []Cell{{0, 0, 1}, {1, 0, 1}} {
		b.Place(water, c, featureLayer)
		b.Place(stone, Cell{c.X, -1, c.Z}, featureLayer)
	}
	for y := 0; y >= -3; y-- {
		b.Place(water, Cell{1, y, islandMaxZ}, featureLayer)
	}
	b.Place(stone, Cell{1, -4, islandMaxZ}, featureLayer)

	b.Place(b.Block(material.Ice), Cell{2, 0, 1}, featureLayer)
	b.Place(stone, Cell{2, -1, 1}, featureLayer)

	b.Place(b.Block(material.Lava), Cell{-2, 0, 1}, featureLayer)
	b.Place(stone, Cell{-2, -1, 1}, featureLayer)

	// Tree
	wood := b.Block(material.Wood)
	leaves := b.Block(material.Leaves)
	trunk := Cell{-2, 0, -1}
	for y := 1; y <= 3; y++ {
		b.Place(wood, Cell{trunk.X, y, trunk.Z}, featureLayer)
	}
	b.Fill(leaves, Cell{trunk.X - 1, 3, trunk.Z - 1}, Cell{trunk.X + 1, 4, trunk.Z + 1}, featureLayer)

	// Ore pedestals
	b.Place(stone, Cell{0, 1, -1}, featureLayer)
	b.Place(b.Block(material.Diamond), Cell{0, 2, -1}, featureLayer)
	b.Place(stone, Cell{-1, 1, 0}, featureLayer)
	b.Place(b.Block(material.Iron), Cell{-1, 2, 0}, featureLayer)

	b.Place(b.Block(material.Chest), Cell{-1, 1, 2}, featureLayer)

	placePortal(b)

	// Ground fills every cell the features above left free
	dirt := b.Block(material.Dirt)
	grass := b.Block(material.Grass)
	for x := islandMinX; x <= islandMaxX; x++ {
		for z := islandMinZ; z <= islandMaxZ; z++ {
			cell := Cell{x, 0, z}
			if b.Occupied(cell, featureLayer) {
				continue
			}
			b.Place(dirt, cell, groundLayer)
			if !b.Occupied(Cell{x, 1, z}, featureLayer) {
				b.PlaceCover(grass, cell, 0.18)
			}
		}
	}

	s := New(Overworld.String())
	s.Add(b.Objects()...)
	s.Skybox = assets.skyboxFor(Overworld)
	return s
}

// NewNether builds an obsidian-rimmed platform around a lava pool, lit by
// glowstone, with the return portal
func NewNether(assets Assets) *Scene {
	b := NewBuilder(assets.Textures)

	obsidian := b.Block(material.Obsidian)
	lava := b.Block(material.Lava)
	glowstone := b.Block(material.Glowstone)

	// Lava pool with a second layer below it
	b.Fill(lava, Cell{-1, 0, 0}, Cell{0, 0, 1}, featureLayer)
	b.Place(lava, Cell{-1, -1, 0}, featureLayer)
	b.Place(lava, Cell{0, -1, 1}, featureLayer)

	// Pillars topped with glowstone, plus two glowstone blocks on the floor
	for _, c := range []Cell{{-2, 0, -1}, {2, 0, 1}} {
		b.Fill(obsidian, Cell{c.X, 1, c.Z}, Cell{c.X, 3, c.Z}, featureLayer)
		b.Place(glowstone, Cell{c.X, 4, c.Z}, featureLayer)
	}
	b.Place(glowstone, Cell{-2, 1, 1}, featureLayer)
	b.Place(glowstone, Cell{2, 1, -1}, featureLayer)

	b.Place(b.Block(material.Diamond), Cell{-1, 1, 2}, featureLayer)
	b.Place(b.Block(material.Iron), Cell{0, 1, -1}, featureLayer)

	placePortal(b)

	// Obsidian floor with a raised rim
	for x := islandMinX; x <= islandMaxX; x++ {
		for z := islandMinZ; z <= islandMaxZ; z++ {
			rim := x == islandMinX || x == islandMaxX || z == islandMinZ || z == islandMaxZ
			if !b.Occupied(Cell{x, -1, z}, featureLayer) {
				b.Place(obsidian, Cell{x, -1, z}, groundLayer)
			}
			if rim && !b.Occupied(Cell{x, 0, z}, featureLayer) {
				b.Place(obsidian, Cell{x, 0, z}, groundLayer)
			}
		}
	}

	s := New(Nether.String())
	s.Add(b.Objects()...)
	s.Skybox = assets.skyboxFor(Nether)
	if s.Skybox == nil {
		sky := lights.NetherGradient()
		s.Sky = &sky
	}
	s.Light = core.NewVec3(0.5, 4.5, 1.5)
	return s
}
