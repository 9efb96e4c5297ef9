package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// checkerboard returns a 2x2 texture:
//
//	white black
//	black white
func checkerboard() *Texture {
	return NewTexture(2, 2, []uint8{
		255, 255, 255, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 255, 255, 255, 255,
	})
}

func TestTextureSample(t *testing.T) {
	texture := checkerboard()
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		// V is flipped: v=0 addresses the bottom image row
		{"Bottom-left", 0.1, 0.1, black},
		{"Bottom-right", 0.9, 0.1, white},
		{"Top-left", 0.1, 0.9, white},
		{"Top-right", 0.9, 0.9, black},
		{"Clamped below zero", -3, -3, black},
		{"Clamped above one", 7, 7, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := texture.Sample(tt.u, tt.v)
			if !ok {
				t.Fatal("Expected sample to succeed")
			}
			if got != tt.expected {
				t.Errorf("UV(%v,%v): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}

func TestTextureSample_MalformedBuffer(t *testing.T) {
	tests := []struct {
		name    string
		texture *Texture
	}{
		{"Nil texture", nil},
		{"Short buffer", NewTexture(4, 4, make([]uint8, 12))},
		{"Zero width", NewTexture(0, 4, nil)},
		{"Long buffer", NewTexture(1, 1, make([]uint8, 8))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.texture.Sample(0.5, 0.5); ok {
				t.Error("Expected malformed texture to report a fallback")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	if len(names) != 14 {
		t.Fatalf("Expected 14 presets, got %d", len(names))
	}

	for _, name := range names {
		p, ok := Preset(name)
		if !ok {
			t.Fatalf("Preset %q listed but not found", name)
		}
		if p.IOR <= 0 {
			t.Errorf("%s: IOR must be positive, got %f", name, p.IOR)
		}
		if p.Shininess < 1 {
			t.Errorf("%s: shininess must be >= 1, got %f", name, p.Shininess)
		}
	}

	lava, _ := Preset(Lava)
	if !lava.IsEmissive() {
		t.Error("Expected lava to be emissive")
	}
	stone, _ := Preset(Stone)
	if stone.IsEmissive() {
		t.Error("Expected stone not to be emissive")
	}
	if _, ok := Preset("bedrock"); ok {
		t.Error("Expected unknown preset lookup to fail")
	}
}
