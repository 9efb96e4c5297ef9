package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp01", NewVec3(-0.5, 0.5, 1.5).Clamp01(), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !vecNear(v, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}

	zero := Vec3{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Normalizing zero vector should return it unchanged, got %v", got)
	}
	for _, c := range []float64{zero.Normalize().X, zero.Normalize().Y, zero.Normalize().Z} {
		if math.IsNaN(c) {
			t.Fatal("Normalizing zero vector produced NaN")
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewVec3(1, 1, -2) {
		t.Errorf("Expected (1, 1, -2), got %v", got)
	}
}
