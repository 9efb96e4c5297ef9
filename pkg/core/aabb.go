package core

import "math"

// FaceEpsilon is the tolerance used to decide which face a surface point lies on
const FaceEpsilon = 1e-3

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates an AABB from its center and half extents
func NewAABBFromCenter(center, halfSize Vec3) AABB {
	return AABB{Min: center.Subtract(halfSize), Max: center.Add(halfSize)}
}

// invDirection returns 1/d, treating an exactly zero component as +Inf
func invDirection(d float64) float64 {
	if d != 0 {
		return 1.0 / d
	}
	return math.Inf(1)
}

// slab returns the ordered entry/exit parameters of a ray against one pair of planes
func slab(min, max, origin, inv float64) (float64, float64) {
	t0 := (min - origin) * inv
	t1 := (max - origin) * inv
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}

// Intersect tests a ray against the box using the slab method.
// It returns the smallest non-negative ray parameter: the entry point when the
// origin is outside the box, the exit point when the origin is inside.
func (aabb AABB) Intersect(ray Ray) (float64, bool) {
	tMin, tMax := slab(aabb.Min.X, aabb.Max.X, ray.Origin.X, invDirection(ray.Direction.X))

	tyMin, tyMax := slab(aabb.Min.Y, aabb.Max.Y, ray.Origin.Y, invDirection(ray.Direction.Y))
	if tMin > tyMax || tyMin > tMax {
		return 0, false
	}
	if tyMin > tMin {
		tMin = tyMin
	}
	if tyMax < tMax {
		tMax = tyMax
	}

	tzMin, tzMax := slab(aabb.Min.Z, aabb.Max.Z, ray.Origin.Z, invDirection(ray.Direction.Z))
	if tMin > tzMax || tzMin > tMax {
		return 0, false
	}
	if tzMin > tMin {
		tMin = tzMin
	}
	if tzMax < tMax {
		tMax = tzMax
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin >= 0 {
		return tMin, true
	}
	return tMax, true
}

// FaceNormal returns the outward unit normal of the face the point lies on.
// Faces are tested in X, Y, Z order so points on edges resolve to the first axis.
func (aabb AABB) FaceNormal(p Vec3) Vec3 {
	switch {
	case math.Abs(p.X-aabb.Min.X) < FaceEpsilon:
		return NewVec3(-1, 0, 0)
	case math.Abs(aabb.Max.X-p.X) < FaceEpsilon:
		return NewVec3(1, 0, 0)
	case math.Abs(p.Y-aabb.Min.Y) < FaceEpsilon:
		return NewVec3(0, -1, 0)
	case math.Abs(aabb.Max.Y-p.Y) < FaceEpsilon:
		return NewVec3(0, 1, 0)
	case math.Abs(p.Z-aabb.Min.Z) < FaceEpsilon:
		return NewVec3(0, 0, -1)
	case math.Abs(aabb.Max.Z-p.Z) < FaceEpsilon:
		return NewVec3(0, 0, 1)
	}
	// Points off the surface default to +Z
	return NewVec3(0, 0, 1)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
