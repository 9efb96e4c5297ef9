package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera is a pinhole camera generating primary rays. The basis is computed
// once at construction and the camera is read-only afterwards.
type Camera struct {
	eye     core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	scale   float64 // tan(fovY/2)
}

// NewCamera creates a camera at eye looking at target. The up vector must not
// be parallel to the viewing direction.
func NewCamera(eye, target, up core.Vec3, fovY float64) *Camera {
	forward := target.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return &Camera{
		eye:     eye,
		forward: forward,
		right:   right,
		up:      trueUp,
		scale:   math.Tan(fovY * math.Pi / 180 / 2),
	}
}

// NewOrbitCamera creates a camera on the clamped orbit described by the view
func NewOrbitCamera(view scene.View) *Camera {
	view = view.Clamp()
	return NewCamera(view.Eye(), view.Target, core.NewVec3(0, 1, 0), view.FovY)
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 {
	return c.eye
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// MakeRay returns the primary ray for normalized screen coordinates, with
// u=0 at the left edge and v=0 at the top edge
func (c *Camera) MakeRay(u, v, aspect float64) core.Ray {
	x := (2*u - 1) * aspect * c.scale
	y := (1 - 2*v) * c.scale

	direction := c.right.Multiply(x).
		Add(c.up.Multiply(y)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.eye, direction)
}
