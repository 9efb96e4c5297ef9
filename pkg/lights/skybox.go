package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Face identifies one side of a cubemap
type Face int

const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// FaceNames lists the conventional file stem of each face, indexed by Face
var FaceNames = [6]string{"px", "nx", "py", "ny", "pz", "nz"}

func (f Face) String() string {
	if f < PositiveX || f > NegativeZ {
		return "unknown"
	}
	return FaceNames[f]
}

// missingTexel is returned for faces whose buffer cannot be sampled
var missingTexel = core.NewVec3(0.5, 0.7, 1.0)

// Skybox is a cubemap environment with a color multiplier
type Skybox struct {
	Faces [6]*material.Texture // Indexed by Face
	Tint  core.Vec3
}

// NewSkybox creates a skybox from six textures in px, nx, py, ny, pz, nz order
func NewSkybox(faces [6]*material.Texture, tint core.Vec3) *Skybox {
	return &Skybox{Faces: faces, Tint: tint}
}

// WithTint returns a skybox sharing the same face textures with another tint
func (s *Skybox) WithTint(tint core.Vec3) *Skybox {
	return &Skybox{Faces: s.Faces, Tint: tint}
}

// FaceUV selects the cube face hit by a direction and returns face-local UV
// coordinates in [0,1]. The face is chosen by the dominant axis, with X
// winning ties over Y and Y over Z.
func FaceUV(dir core.Vec3) (Face, float64, float64) {
	d := dir.Normalize()
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	var face Face
	var u, v float64
	switch {
	case ax >= ay && ax >= az:
		if d.X > 0 {
			face, u, v = PositiveX, -d.Z/ax, d.Y/ax
		} else {
			face, u, v = NegativeX, d.Z/ax, d.Y/ax
		}
	case ay >= az:
		if d.Y > 0 {
			face, u, v = PositiveY, d.X/ay, -d.Z/ay
		} else {
			face, u, v = NegativeY, d.X/ay, d.Z/ay
		}
	default:
		if d.Z > 0 {
			face, u, v = PositiveZ, d.X/az, d.Y/az
		} else {
			face, u, v = NegativeZ, -d.X/az, d.Y/az
		}
	}

	return face, (u + 1) * 0.5, (v + 1) * 0.5
}

// Sample returns the tinted cubemap color along a direction
func (s *Skybox) Sample(dir core.Vec3) core.Vec3 {
	face, u, v := FaceUV(dir)
	texel, ok := s.Faces[face].Sample(u, v)
	if !ok {
		texel = missingTexel
	}
	return texel.MultiplyVec(s.Tint)
}
