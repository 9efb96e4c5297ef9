package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCameraCenterRayLooksForward(t *testing.T) {
	tests := []struct {
		name   string
		eye    core.Vec3
		target core.Vec3
		up     core.Vec3
		fov    float64
		aspect float64
	}{
		{"down -Z", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60, 1},
		{"oblique", core.NewVec3(3, 2, 4), core.NewVec3(0, 0.5, 0), core.NewVec3(0, 1, 0), 45, 16.0 / 9.0},
		{"tilted up vector", core.NewVec3(-1, -2, 0.5), core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0), 90, 0.5},
		{"looking along +X", core.NewVec3(0, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(0, 0, 1), 30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.eye, tt.target, tt.up, tt.fov)
			ray := camera.MakeRay(0.5, 0.5, tt.aspect)
			expected := tt.target.Subtract(tt.eye).Normalize()

			if !vecNear(ray.Direction, expected, 1e-12) {
				t.Errorf("Expected center direction %v, got %v", expected, ray.Direction)
			}
			if ray.Origin != tt.eye {
				t.Errorf("Expected ray origin %v, got %v", tt.eye, ray.Origin)
			}
		})
	}
}

func TestCameraScreenOrientation(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60)

	topLeft := camera.MakeRay(0, 0, 2).Direction
	bottomRight := camera.MakeRay(1, 1, 2).Direction

	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected u=0,v=0 to point left and up, got %v", topLeft)
	}
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected u=1,v=1 to point right and down, got %v", bottomRight)
	}

	// Top edge ray makes half the vertical fov with the forward axis
	top := camera.MakeRay(0.5, 0, 1).Direction
	angle := math.Acos(top.Dot(camera.Forward())) * 180 / math.Pi
	if math.Abs(angle-30) > 1e-9 {
		t.Errorf("Expected 30 degrees from forward, got %f", angle)
	}

	// Aspect ratio widens the horizontal extent only
	wide := camera.MakeRay(1, 0.5, 2).Direction
	narrow := camera.MakeRay(1, 0.5, 1).Direction
	if wide.X/-wide.Z <= narrow.X/-narrow.Z {
		t.Errorf("Expected wider aspect to spread rays further, got %v vs %v", wide, narrow)
	}

	for _, d := range []core.Vec3{topLeft, bottomRight, top, wide} {
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Errorf("Expected unit direction, got length %f", d.Length())
		}
	}
}

func TestNewOrbitCamera(t *testing.T) {
	view := scene.View{Target: core.NewVec3(1, 0, 1), Pitch: 5, Radius: 0.1, FovY: 60}
	camera := NewOrbitCamera(view)

	clamped := view.Clamp()
	if !vecNear(camera.Eye(), clamped.Eye(), 1e-12) {
		t.Errorf("Expected eye on the clamped orbit %v, got %v", clamped.Eye(), camera.Eye())
	}
	if d := camera.Eye().Subtract(view.Target).Length(); math.Abs(d-1.2) > 1e-9 {
		t.Errorf("Expected minimum radius 1.2, got %f", d)
	}

	center := camera.MakeRay(0.5, 0.5, 1).Direction
	expected := view.Target.Subtract(camera.Eye()).Normalize()
	if !vecNear(center, expected, 1e-12) {
		t.Errorf("Expected center ray toward the target %v, got %v", expected, center)
	}
}
