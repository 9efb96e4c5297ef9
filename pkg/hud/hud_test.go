package hud

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

func TestAnnotateDrawsPanel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	white := color.RGBA{255, 255, 255, 255}
	fill(img, white)

	Annotate(img, []string{"scene: overworld", "depth 4"})

	// Panel darkens the top-left corner
	corner := img.RGBAAt(int(margin)+1, int(margin)+1)
	if corner.R >= 200 {
		t.Errorf("Expected darkened panel pixel, got %v", corner)
	}

	// Far corner is untouched
	if got := img.RGBAAt(199, 79); got != white {
		t.Errorf("Expected untouched pixel outside the panel, got %v", got)
	}
}

func TestAnnotateNoLines(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	fill(img, color.RGBA{10, 20, 30, 255})
	before := append([]uint8(nil), img.Pix...)

	Annotate(img, nil)

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("Expected image to be unchanged at byte %d", i)
		}
	}
}

func TestLines(t *testing.T) {
	lines := Lines("nether", scene.DefaultView(), core.NewVec3(0.5, 4.5, 1.5), 3)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "nether") || !strings.Contains(lines[0], "3") {
		t.Errorf("Expected scene and depth in %q", lines[0])
	}
	if !strings.Contains(lines[2], "4.5") {
		t.Errorf("Expected light position in %q", lines[2])
	}
}
