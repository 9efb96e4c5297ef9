package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors the incident direction about the normal and normalizes the result
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal))).Normalize()
}

// Refract bends a unit incident direction through a surface using Snell's law.
// The normal must face the incident side and eta is n_incident/n_transmitted.
// It returns false on total internal reflection.
func Refract(incident, normal core.Vec3, eta float64) (core.Vec3, bool) {
	cosI := math.Max(-1, math.Min(1, incident.Negate().Dot(normal)))
	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Vec3{}, false
	}
	cosT := math.Sqrt(1 - sin2T)
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosI - cosT)).Normalize(), true
}

// SpecularPhong returns the scalar Phong highlight for a reflected light
// direction r and view direction v. Shininess below 1 is treated as 1.
func SpecularPhong(r, v core.Vec3, strength, shininess float64) float64 {
	rv := math.Max(0, r.Dot(v))
	return strength * math.Pow(rv, math.Max(1, shininess))
}
