package renderer

import (
	"fmt"
	"image"
	"time"
)

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	Width       int
	Height      int
	Bands       int           // Number of row bands
	Workers     int           // Parallelism requested before capping to the row count
	TotalPixels int           // Pixels written across all bands
	Elapsed     time.Duration // Wall time of the whole frame
	SlowestBand time.Duration // Longest single band
}

func newRenderStats(width, height, bands, workers int) RenderStats {
	return RenderStats{
		Width:   width,
		Height:  height,
		Bands:   bands,
		Workers: workers,
	}
}

// addBand folds a band result into the frame statistics
func (s *RenderStats) addBand(result BandResult) {
	s.TotalPixels += result.Pixels
	s.SlowestBand = max(s.SlowestBand, result.Elapsed)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d in %v (%d bands, %d workers, slowest band %v)",
		s.Width, s.Height, s.Elapsed.Round(time.Millisecond), s.Bands, s.Workers,
		s.SlowestBand.Round(time.Millisecond))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
