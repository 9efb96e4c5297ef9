package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Params holds the shading parameters sampled at a single surface point.
// Reflectivity and Transparency are energy weights and are not normalized
// against each other: a sum above 1 over-brightens the surface.
type Params struct {
	Albedo           core.Vec3 // Base color in [0,1] per channel
	SpecularStrength float64   // Phong specular weight in [0,1]
	Shininess        float64   // Phong exponent, >= 1
	Reflectivity     float64   // Weight of the mirror reflection in [0,1]
	Transparency     float64   // Weight of the refracted ray in [0,1]
	IOR              float64   // Index of refraction, 1.0 is vacuum
	Emissive         core.Vec3 // Self-emitted light, >= 0
}

// NewDiffuse returns opaque, non-reflective parameters for the given albedo
func NewDiffuse(albedo core.Vec3) Params {
	return Params{
		Albedo:    albedo,
		Shininess: 16,
		IOR:       1,
	}
}

// NewMirror returns a perfect mirror with no local contribution
func NewMirror() Params {
	return Params{
		Albedo:       core.NewVec3(1, 1, 1),
		Shininess:    1,
		Reflectivity: 1,
		IOR:          1,
	}
}

// NewGlass returns a clear refractive material with the given index of refraction
func NewGlass(ior float64) Params {
	return Params{
		Albedo:           core.NewVec3(1, 1, 1),
		SpecularStrength: 0.5,
		Shininess:        96,
		Reflectivity:     0.05,
		Transparency:     0.9,
		IOR:              ior,
	}
}

// WithAlbedo returns a copy of the parameters with the albedo replaced
func (p Params) WithAlbedo(albedo core.Vec3) Params {
	p.Albedo = albedo
	return p
}

// IsEmissive reports whether the material emits light
func (p Params) IsEmissive() bool {
	return p.Emissive.X > 0 || p.Emissive.Y > 0 || p.Emissive.Z > 0
}
