package core

import (
	"math"
	"testing"
)

func unitBox() AABB {
	return NewAABB(NewVec3(-0.5, -0.5, -0.5), NewVec3(0.5, 0.5, 0.5))
}

func TestAABB_Intersect(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name      string
		ray       Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray from +Z aimed at center",
			ray:       NewRay(NewVec3(0, 0, 3), NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 2.5,
		},
		{
			name:      "Unnormalized direction scales t",
			ray:       NewRay(NewVec3(0, 0, 3), NewVec3(0, 0, -2)),
			shouldHit: true,
			expectedT: 1.25,
		},
		{
			name:      "Ray from -X aimed at center",
			ray:       NewRay(NewVec3(-4, 0, 0), NewVec3(1, 0, 0)),
			shouldHit: true,
			expectedT: 3.5,
		},
		{
			name:      "Diagonal ray toward center",
			ray:       NewRay(NewVec3(2, 2, 2), NewVec3(-1, -1, -1)),
			shouldHit: true,
			expectedT: 1.5,
		},
		{
			name:      "Ray aimed away from box",
			ray:       NewRay(NewVec3(0, 0, 3), NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray passing beside box",
			ray:       NewRay(NewVec3(2, 0, 3), NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Ray inside box returns exit",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)),
			shouldHit: true,
			expectedT: 0.5,
		},
		{
			name:      "Axis-aligned ray outside slab misses",
			ray:       NewRay(NewVec3(0, 1, 3), NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, hit := box.Intersect(tt.ray)
			if hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.shouldHit, hit, tHit)
			}
			if !hit {
				return
			}
			if tHit < 0 {
				t.Errorf("Expected non-negative t, got %f", tHit)
			}
			if math.Abs(tHit-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, tHit)
			}
		})
	}
}

func TestAABB_FaceNormal(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name     string
		point    Vec3
		expected Vec3
	}{
		{"Min X face", NewVec3(-0.5, 0.1, 0.2), NewVec3(-1, 0, 0)},
		{"Max X face", NewVec3(0.5, 0.1, 0.2), NewVec3(1, 0, 0)},
		{"Min Y face", NewVec3(0.1, -0.5, 0.2), NewVec3(0, -1, 0)},
		{"Max Y face", NewVec3(0.1, 0.5, 0.2), NewVec3(0, 1, 0)},
		{"Min Z face", NewVec3(0.1, 0.2, -0.5), NewVec3(0, 0, -1)},
		{"Max Z face", NewVec3(0.1, 0.2, 0.5), NewVec3(0, 0, 1)},
		{"Within epsilon", NewVec3(0.4995, 0.1, 0.2), NewVec3(1, 0, 0)},
		{"Edge resolves to X first", NewVec3(0.5, 0.5, 0), NewVec3(1, 0, 0)},
		{"Y before Z on edge", NewVec3(0, 0.5, 0.5), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.FaceNormal(tt.point); got != tt.expected {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(1, 2, 3), NewVec3(0.5, 0.5, 0.5))
	if box.Min != NewVec3(0.5, 1.5, 2.5) || box.Max != NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounds %v", box)
	}
	if box.Center() != NewVec3(1, 2, 3) {
		t.Errorf("Expected center (1,2,3), got %v", box.Center())
	}
	if !box.IsValid() {
		t.Error("Expected valid box")
	}
}
