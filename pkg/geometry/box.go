package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SolidBox is an axis-aligned box with a constant material
type SolidBox struct {
	Bounds   core.AABB
	Material material.Params
}

// NewSolidBox creates a box spanning min to max
func NewSolidBox(min, max core.Vec3, mat material.Params) *SolidBox {
	return &SolidBox{
		Bounds:   core.NewAABB(min, max),
		Material: mat,
	}
}

// NewUnitBox creates a 1x1x1 box centered at the given point
func NewUnitBox(center core.Vec3, mat material.Params) *SolidBox {
	return &SolidBox{
		Bounds:   core.NewAABBFromCenter(center, core.NewVec3(0.5, 0.5, 0.5)),
		Material: mat,
	}
}

// Intersect tests the ray against the box slabs
func (b *SolidBox) Intersect(ray core.Ray) (float64, bool) {
	return b.Bounds.Intersect(ray)
}

// NormalAt returns the outward normal of the face containing the point
func (b *SolidBox) NormalAt(point core.Vec3) core.Vec3 {
	return b.Bounds.FaceNormal(point)
}

// MaterialAt returns the box material, which is the same everywhere
func (b *SolidBox) MaterialAt(point core.Vec3) material.Params {
	return b.Material
}

// TexturedBox is a box whose albedo is sampled per face from a texture.
// The texture is borrowed and may be shared by any number of boxes.
type TexturedBox struct {
	SolidBox
	Texture *material.Texture
}

// NewTexturedBox creates a textured box spanning min to max.
// The albedo of mat is used wherever the texture cannot be sampled.
func NewTexturedBox(min, max core.Vec3, mat material.Params, texture *material.Texture) *TexturedBox {
	return &TexturedBox{
		SolidBox: SolidBox{
			Bounds:   core.NewAABB(min, max),
			Material: mat,
		},
		Texture: texture,
	}
}

// MaterialAt replaces the albedo with the texel under the point
func (b *TexturedBox) MaterialAt(point core.Vec3) material.Params {
	u, v := b.UV(point)
	texel, ok := b.Texture.Sample(u, v)
	if !ok {
		return b.Material
	}
	return b.Material.WithAlbedo(texel)
}

// UV maps a surface point to face-relative texture coordinates.
// Each face uses its two in-plane axes, oriented so textures read upright
// on the sides and consistently on the top and bottom.
func (b *TexturedBox) UV(point core.Vec3) (float64, float64) {
	n := b.Bounds.FaceNormal(point)
	lo, hi := b.Bounds.Min, b.Bounds.Max
	size := b.Bounds.Size()

	switch {
	case n.X > 0.5:
		return (point.Z - lo.Z) / size.Z, (point.Y - lo.Y) / size.Y
	case n.X < -0.5:
		return (hi.Z - point.Z) / size.Z, (point.Y - lo.Y) / size.Y
	case n.Y > 0.5:
		return (point.X - lo.X) / size.X, (hi.Z - point.Z) / size.Z
	case n.Y < -0.5:
		return (point.X - lo.X) / size.X, (point.Z - lo.Z) / size.Z
	case n.Z > 0.5:
		return (hi.X - point.X) / size.X, (point.Y - lo.Y) / size.Y
	default:
		return (point.X - lo.X) / size.X, (point.Y - lo.Y) / size.Y
	}
}
