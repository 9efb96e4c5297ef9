package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	MaxDepth   int     // Maximum number of reflection/refraction bounces
	NumWorkers int     // Number of row bands (0 = available parallelism)
	Ambient    float64 // Light added to every surface regardless of shadowing
	Bias       float64 // Offset applied to secondary ray origins
}

// DefaultConfig returns the settings used by the interactive viewers
func DefaultConfig() Config {
	return Config{
		MaxDepth:   4,
		NumWorkers: 0,
		Ambient:    0.1,
		Bias:       1e-3,
	}
}

// Raytracer evaluates Whitted-style recursive shading against a scene.
// It holds no mutable state and is safe for concurrent use.
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:  s,
		config: config,
	}
}

// Hit is the nearest intersection of a ray. It lives for a single trace call.
type Hit struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Params
	Index    int // Position of the object in the scene
}

// NearestHit finds the nearest forward intersection over every object
func (rt *Raytracer) NearestHit(ray core.Ray) (Hit, bool) {
	closest := math.Inf(1)
	nearest := -1

	for i, obj := range rt.scene.Objects {
		if t, ok := obj.Intersect(ray); ok && t > 0 && t < closest {
			closest = t
			nearest = i
		}
	}
	if nearest < 0 {
		return Hit{}, false
	}

	obj := rt.scene.Objects[nearest]
	point := ray.At(closest)
	return Hit{
		T:        closest,
		Point:    point,
		Normal:   obj.NormalAt(point),
		Material: obj.MaterialAt(point),
		Index:    nearest,
	}, true
}

// occluded reports whether any object lies between origin and the light
func (rt *Raytracer) occluded(origin, lightPos core.Vec3) bool {
	toLight := lightPos.Subtract(origin)
	distance := toLight.Length()
	ray := core.NewRay(origin, toLight.Normalize())

	for _, obj := range rt.scene.Objects {
		if t, ok := obj.Intersect(ray); ok && t > 0 && t < distance {
			return true
		}
	}
	return false
}

// Trace returns the linear RGB color seen along a ray, recursing into
// reflection and refraction until depth reaches zero
func (rt *Raytracer) Trace(ray core.Ray, lightPos core.Vec3, depth int) core.Vec3 {
	dir := ray.Direction.Normalize()
	ray = core.NewRay(ray.Origin, dir)

	h, ok := rt.NearestHit(ray)
	if !ok {
		return rt.scene.Background(dir)
	}

	mat := h.Material
	bias := rt.config.Bias
	local := rt.shade(h, dir, lightPos)

	if depth <= 0 {
		return local
	}

	weight := 1.0
	accum := core.Vec3{}

	// Normal facing the incoming ray; eta is n_incident/n_transmitted
	n := h.Normal
	eta := 1 / mat.IOR
	if dir.Dot(n) > 0 {
		n = n.Negate()
		eta = mat.IOR
	}

	if mat.Transparency > 0 {
		// Total internal reflection spawns no transmitted ray
		if tdir, ok := lights.Refract(dir, n, eta); ok {
			refracted := core.NewRay(h.Point.Add(tdir.Multiply(bias)), tdir)
			accum = accum.Add(rt.Trace(refracted, lightPos, depth-1).Multiply(mat.Transparency))
			weight -= mat.Transparency
		}
	}

	if mat.Reflectivity > 0 && weight > 0 {
		rdir := lights.Reflect(dir, n)
		reflected := core.NewRay(h.Point.Add(n.Multiply(bias)), rdir)
		accum = accum.Add(rt.Trace(reflected, lightPos, depth-1).Multiply(mat.Reflectivity))
		weight -= mat.Reflectivity
	}

	return local.Multiply(math.Max(weight, 0)).Add(accum)
}

// shade computes ambient, diffuse, Phong specular and emission at a hit
func (rt *Raytracer) shade(h Hit, dir, lightPos core.Vec3) core.Vec3 {
	mat := h.Material
	l := lightPos.Subtract(h.Point).Normalize()
	shadowed := rt.occluded(h.Point.Add(h.Normal.Multiply(rt.config.Bias)), lightPos)

	nDotL := h.Normal.Dot(l)
	diffuse := 0.0
	if !shadowed {
		diffuse = math.Max(0, nDotL)
	}
	local := mat.Albedo.Multiply(rt.config.Ambient + diffuse)

	if !shadowed && nDotL > 0 && mat.SpecularStrength > 0 {
		r := lights.Reflect(l.Negate(), h.Normal)
		s := lights.SpecularPhong(r, dir.Negate(), mat.SpecularStrength, mat.Shininess)
		local = local.Add(core.NewVec3(s, s, s))
	}

	return local.Add(mat.Emissive)
}

// ToRGBA quantizes a linear color to 8 bits per channel with opaque alpha.
// Channels are clamped to [0,1] and truncated.
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp01()
	return color.RGBA{
		R: uint8(c.X * 255),
		G: uint8(c.Y * 255),
		B: uint8(c.Z * 255),
		A: 255,
	}
}
