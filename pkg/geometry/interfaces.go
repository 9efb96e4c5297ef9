package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersectable is any primitive the tracer can hit.
// Implementations must be safe for concurrent reads: the renderer shares a
// single scene across all workers without synchronization.
type Intersectable interface {
	// Intersect returns the ray parameter of the nearest forward hit
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the outward unit normal at a surface point
	NormalAt(point core.Vec3) core.Vec3
	// MaterialAt returns the shading parameters at a surface point
	MaterialAt(point core.Vec3) material.Params
}
