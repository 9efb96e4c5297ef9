package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture is an immutable RGBA8 pixel buffer shared read-only by all render workers
type Texture struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major RGBA8: Pixels[(y*Width+x)*4 : +4]
}

// NewTexture creates a texture over an existing RGBA8 buffer without copying it
func NewTexture(width, height int, pixels []uint8) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Valid reports whether the declared dimensions match the buffer length
func (t *Texture) Valid() bool {
	return t != nil && t.Width > 0 && t.Height > 0 && len(t.Pixels) == t.Width*t.Height*4
}

// Sample returns the nearest texel for UV coordinates clamped to [0,1].
// V=0 is the bottom row of the image. The second result is false when the
// buffer is malformed or the computed index falls outside it; callers
// substitute their own fallback color.
func (t *Texture) Sample(u, v float64) (core.Vec3, bool) {
	if !t.Valid() {
		return core.Vec3{}, false
	}

	u = math.Max(0, math.Min(1, u))
	v = math.Max(0, math.Min(1, v))

	px := int(math.Round(u * float64(t.Width-1)))
	py := int(math.Round((1.0 - v) * float64(t.Height-1)))

	idx := (py*t.Width + px) * 4
	if idx < 0 || idx+3 >= len(t.Pixels) {
		return core.Vec3{}, false
	}

	return core.NewVec3(
		float64(t.Pixels[idx])/255.0,
		float64(t.Pixels[idx+1])/255.0,
		float64(t.Pixels[idx+2])/255.0,
	), true
}
