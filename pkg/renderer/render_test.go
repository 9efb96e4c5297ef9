package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

type testLogger struct {
	messages []string
}

func (tl *testLogger) Printf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, fmt.Sprintf(format, args...))
}

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		bands    int
		expected [][2]int
	}{
		{"even split", 8, 4, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"last band absorbs remainder", 10, 4, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 10}}},
		{"single band", 5, 1, [][2]int{{0, 5}}},
		{"more bands than rows", 3, 16, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"zero bands", 4, 0, [][2]int{{0, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := PartitionRows(7, tt.height, tt.bands)
			if len(rects) != len(tt.expected) {
				t.Fatalf("Expected %d bands, got %d", len(tt.expected), len(rects))
			}
			for i, r := range rects {
				if r.Min.Y != tt.expected[i][0] || r.Max.Y != tt.expected[i][1] {
					t.Errorf("Band %d: expected rows [%d,%d), got [%d,%d)", i, tt.expected[i][0], tt.expected[i][1], r.Min.Y, r.Max.Y)
				}
				if r.Min.X != 0 || r.Max.X != 7 {
					t.Errorf("Band %d: expected full width, got %v", i, r)
				}
			}
		})
	}

	if rects := PartitionRows(7, 0, 4); rects != nil {
		t.Errorf("Expected no bands for an empty image, got %v", rects)
	}
}

func TestPartitionRowsCoversEveryRowOnce(t *testing.T) {
	for height := 1; height <= 40; height++ {
		for bands := 1; bands <= 12; bands++ {
			seen := make([]int, height)
			for _, r := range PartitionRows(1, height, bands) {
				for y := r.Min.Y; y < r.Max.Y; y++ {
					seen[y]++
				}
			}
			for y, count := range seen {
				if count != 1 {
					t.Fatalf("height %d bands %d: row %d covered %d times", height, bands, y, count)
				}
			}
		}
	}
}

func TestRenderSingleBoxScenario(t *testing.T) {
	s := scene.NewSingleBoxScene()
	camera := NewOrbitCamera(s.View)
	const width, height = 3, 3

	frame := make([]uint8, width*height*4)
	if err := Render(frame, width, height, camera, s.Light, s, 0); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	pixel := func(x, y int) color.RGBA {
		i := (y*width + x) * 4
		return color.RGBA{frame[i], frame[i+1], frame[i+2], frame[i+3]}
	}

	// Center pixel sees the lit +Z face
	albedo := s.Objects[0].MaterialAt(core.NewVec3(0, 0, 0.5)).Albedo
	nDotL := core.NewVec3(2, 2, 1.5).Normalize().Z
	expectedCenter := ToRGBA(albedo.Multiply(0.1 + nDotL))
	if got := pixel(1, 1); got != expectedCenter {
		t.Errorf("Center pixel: expected %v, got %v", expectedCenter, got)
	}

	// Top-left pixel misses the box and sees the upper sky
	dir := camera.MakeRay(0.5/width, 0.5/height, 1).Direction
	if dir.Y <= 0 {
		t.Fatalf("Expected top-left ray to point upward, got %v", dir)
	}
	sky := lights.Sky(dir)
	got := pixel(0, 0)
	expectedSky := ToRGBA(sky)
	if absDiff(got.R, expectedSky.R) > 1 || absDiff(got.G, expectedSky.G) > 1 || absDiff(got.B, expectedSky.B) > 1 {
		t.Errorf("Top-left pixel: expected sky %v, got %v", expectedSky, got)
	}
	// Nearer the zenith red than the horizon red
	g := lights.DefaultGradient()
	midRed := ToRGBA(g.Zenith.Add(g.Horizon).Multiply(0.5)).R
	if got.R >= midRed {
		t.Errorf("Expected a zenith-ward tone, got %v", got)
	}

	for i := 3; i < len(frame); i += 4 {
		if frame[i] != 255 {
			t.Fatalf("Expected opaque alpha at byte %d, got %d", i, frame[i])
		}
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	s := scene.NewOverworld(scene.Assets{})
	camera := NewOrbitCamera(s.View)
	const width, height = 48, 31

	render := func(workers int) []uint8 {
		config := DefaultConfig()
		config.NumWorkers = workers
		frame := make([]uint8, width*height*4)
		stats, err := NewRenderer(config, nil).Render(frame, width, height, camera, s.Light, s)
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		if stats.TotalPixels != width*height {
			t.Errorf("Expected %d pixels, got %d", width*height, stats.TotalPixels)
		}
		return frame
	}

	sequential := render(1)
	for _, workers := range []int{2, 7, 64} {
		if parallel := render(workers); !bytes.Equal(sequential, parallel) {
			t.Errorf("Expected %d-worker output to match the single-worker output", workers)
		}
	}
}

func TestRenderInvalidFrame(t *testing.T) {
	s := scene.NewSingleBoxScene()
	camera := NewOrbitCamera(s.View)
	r := NewRenderer(DefaultConfig(), nil)

	tests := []struct {
		name          string
		frame         []uint8
		width, height int
		camera        *Camera
		scene         *scene.Scene
	}{
		{"zero width", make([]uint8, 16), 0, 2, camera, s},
		{"negative height", make([]uint8, 16), 2, -1, camera, s},
		{"short buffer", make([]uint8, 15), 2, 2, camera, s},
		{"nil camera", make([]uint8, 16), 2, 2, nil, s},
		{"nil scene", make([]uint8, 16), 2, 2, camera, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.frame, tt.width, tt.height, tt.camera, s.Light, tt.scene)
			if !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("Expected ErrInvalidFrame, got %v", err)
			}
		})
	}
}

func TestRenderImageAndStats(t *testing.T) {
	s := scene.NewMirrorScene()
	logger := &testLogger{}
	config := DefaultConfig()
	config.NumWorkers = 4

	img, stats, err := NewRenderer(config, logger).RenderImage(20, 10, NewOrbitCamera(s.View), s.Light, s)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Errorf("Expected 20x10 image, got %v", img.Bounds())
	}
	if stats.Bands != 4 || stats.Workers != 4 {
		t.Errorf("Expected 4 bands and workers, got %d and %d", stats.Bands, stats.Workers)
	}
	if stats.TotalPixels != 200 {
		t.Errorf("Expected 200 pixels, got %d", stats.TotalPixels)
	}
	if stats.SlowestBand > stats.Elapsed {
		t.Errorf("Slowest band %v exceeds frame time %v", stats.SlowestBand, stats.Elapsed)
	}
	if len(logger.messages) != 1 {
		t.Errorf("Expected one summary line, got %v", logger.messages)
	}
}

func TestAvailableParallelism(t *testing.T) {
	if n := AvailableParallelism(); n < 1 {
		t.Errorf("Expected at least 1, got %d", n)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black average to (0.2126+0.7152+0.0722)/4
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}

	if lum := CalculateAverageLuminance(image.NewRGBA(image.Rectangle{})); lum != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", lum)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
