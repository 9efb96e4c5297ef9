package renderer

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidFrame is returned when the frame buffer or its dimensions cannot
// hold the requested image
var ErrInvalidFrame = errors.New("invalid frame")

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PartitionRows splits [0,height) into bands contiguous row ranges of equal
// size, with the last band absorbing the remainder. bands is clamped to
// [1,height].
func PartitionRows(width, height, bands int) []image.Rectangle {
	if height <= 0 {
		return nil
	}
	bands = max(1, min(bands, height))
	rows := height / bands

	rects := make([]image.Rectangle, bands)
	for i := range rects {
		y0 := i * rows
		y1 := y0 + rows
		if i == bands-1 {
			y1 = height
		}
		rects[i] = image.Rect(0, y0, width, y1)
	}
	return rects
}

// Renderer drives the parallel band renderer
type Renderer struct {
	config Config
	logger core.Logger // May be nil
}

// NewRenderer creates a renderer. A nil logger disables the per-frame summary.
func NewRenderer(config Config, logger core.Logger) *Renderer {
	return &Renderer{
		config: config,
		logger: logger,
	}
}

// Render traces every pixel of a width x height image into frame, a tightly
// packed row-major RGBA8 buffer. Rows are split into one band per worker and
// each band writes only its own rows. Render returns after every band is done.
func (r *Renderer) Render(frame []uint8, width, height int, camera *Camera, lightPos core.Vec3, s *scene.Scene) (RenderStats, error) {
	if width <= 0 || height <= 0 {
		return RenderStats{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, width, height)
	}
	if len(frame) < width*height*4 {
		return RenderStats{}, fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrInvalidFrame, len(frame), width*height*4)
	}
	if camera == nil || s == nil {
		return RenderStats{}, fmt.Errorf("%w: missing camera or scene", ErrInvalidFrame)
	}

	start := time.Now()
	workers := r.config.NumWorkers
	if workers <= 0 {
		workers = AvailableParallelism()
	}
	bands := PartitionRows(width, height, workers)

	rt := NewRaytracer(s, r.config)
	aspect := float64(width) / float64(height)
	depth := r.config.MaxDepth

	renderBand := func(bounds image.Rectangle) {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			v := (float64(y) + 0.5) / float64(height)
			row := frame[y*width*4 : (y+1)*width*4]
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				u := (float64(x) + 0.5) / float64(width)
				c := ToRGBA(rt.Trace(camera.MakeRay(u, v, aspect), lightPos, depth))
				row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = c.R, c.G, c.B, c.A
			}
		}
	}

	// One worker per band
	pool := NewWorkerPool(len(bands), len(bands), renderBand)
	pool.Start()
	for i, bounds := range bands {
		pool.SubmitTask(BandTask{Bounds: bounds, TaskID: i})
	}
	pool.Wait()

	stats := newRenderStats(width, height, len(bands), workers)
	for result := range pool.Results() {
		stats.addBand(result)
	}
	stats.Elapsed = time.Since(start)

	if r.logger != nil {
		r.logger.Printf("Rendered %s\n", stats)
	}
	return stats, nil
}

// RenderImage renders into a newly allocated image
func (r *Renderer) RenderImage(width, height int, camera *Camera, lightPos core.Vec3, s *scene.Scene) (*image.RGBA, RenderStats, error) {
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats, err := r.Render(img.Pix, width, height, camera, lightPos, s)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}

// Render traces a frame with the default configuration and the given
// recursion depth, using one band per available CPU
func Render(frame []uint8, width, height int, camera *Camera, lightPos core.Vec3, s *scene.Scene, maxDepth int) error {
	config := DefaultConfig()
	config.MaxDepth = maxDepth
	_, err := NewRenderer(config, nil).Render(frame, width, height, camera, lightPos, s)
	return err
}
