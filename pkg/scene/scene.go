package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains everything the tracer reads during a render.
// It is built once and must not be modified while a render is in progress.
type Scene struct {
	Name    string
	Objects []geometry.Intersectable // Scanned linearly in order
	Skybox  *lights.Skybox           // Optional cubemap environment
	Sky     *lights.Gradient         // Gradient used when Skybox is nil; nil means daylight

	Light core.Vec3 // Suggested light position
	View  View      // Suggested orbit camera
}

// New creates an empty scene with the default light and view
func New(name string) *Scene {
	return &Scene{
		Name:    name,
		Objects: make([]geometry.Intersectable, 0),
		Light:   core.NewVec3(2.5, 3.0, 2.5),
		View:    DefaultView(),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Intersectable) {
	s.Objects = append(s.Objects, objects...)
}

// Background returns the environment color seen along a direction that
// escapes the scene
func (s *Scene) Background(dir core.Vec3) core.Vec3 {
	if s.Skybox != nil {
		return s.Skybox.Sample(dir)
	}
	if s.Sky != nil {
		return s.Sky.Sample(dir)
	}
	return lights.Sky(dir)
}

// View describes an orbit camera around a target point
type View struct {
	Target core.Vec3
	Yaw    float64 // Radians around the Y axis
	Pitch  float64 // Radians above the XZ plane
	Radius float64 // Distance from the target
	FovY   float64 // Vertical field of view in degrees
}

const (
	maxPitch  = math.Pi * 0.49
	minRadius = 1.2
)

// DefaultView returns the starting orbit used by the interactive viewers
func DefaultView() View {
	return View{
		Target: core.NewVec3(0, 0.5, 0),
		Yaw:    0.6,
		Pitch:  0.25,
		Radius: 4,
		FovY:   60,
	}
}

// Clamp keeps the pitch away from the poles and the radius outside the target
func (v View) Clamp() View {
	v.Pitch = math.Max(-maxPitch, math.Min(maxPitch, v.Pitch))
	v.Radius = math.Max(minRadius, v.Radius)
	return v
}

// Eye returns the camera position for the orbit
func (v View) Eye() core.Vec3 {
	return core.NewVec3(
		v.Radius*math.Sin(v.Yaw)*math.Cos(v.Pitch),
		v.Radius*math.Sin(v.Pitch),
		v.Radius*math.Cos(v.Yaw)*math.Cos(v.Pitch),
	).Add(v.Target)
}

// ClampLight keeps an interactively moved light inside the region around the
// built-in worlds
func ClampLight(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		math.Max(-1, math.Min(6, p.X)),
		math.Max(0.3, math.Min(6.5, p.Y)),
		math.Max(-1, math.Min(6, p.Z)),
	)
}
