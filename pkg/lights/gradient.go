package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Gradient is a two-tone procedural sky blended by the vertical component of
// the view direction
type Gradient struct {
	Zenith  core.Vec3 // Color looking straight up
	Horizon core.Vec3 // Color at the horizon and below
}

// DefaultGradient returns the daylight sky used when a scene has no skybox
func DefaultGradient() Gradient {
	return Gradient{
		Zenith:  core.NewVec3(0.1, 0.3, 0.7),
		Horizon: core.NewVec3(0.8, 0.85, 0.9),
	}
}

// NetherGradient returns a dim red sky for scenes without a nether skybox
func NetherGradient() Gradient {
	return Gradient{
		Zenith:  core.NewVec3(0.25, 0.04, 0.03),
		Horizon: core.NewVec3(0.55, 0.18, 0.1),
	}
}

// Sample returns the sky color along a direction
func (g Gradient) Sample(dir core.Vec3) core.Vec3 {
	y := math.Max(-1, math.Min(1, dir.Normalize().Y))
	t := 0.5 * (y + 1.0)
	return g.Zenith.Multiply(t).Add(g.Horizon.Multiply(1.0 - t))
}

// Sky samples the default daylight gradient
func Sky(dir core.Vec3) core.Vec3 {
	return DefaultGradient().Sample(dir)
}
