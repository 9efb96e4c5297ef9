package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ImageExtensions lists the file extensions tried when looking up an image by
// stem, in order of preference
var ImageExtensions = []string{".jpg", ".png", ".jpeg", ".bmp", ".tiff", ".webp", ".gif"}

// ErrImageNotFound is returned when no file with a known extension exists for a stem
var ErrImageNotFound = errors.New("image not found")

// LoadTexture decodes an image file into an RGBA8 texture
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage converts any decoded image to an RGBA8 texture with
// straight (non-premultiplied) alpha
func TextureFromImage(img image.Image) *material.Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]uint8, width*height*4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			i := (y*width + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return material.NewTexture(width, height, pixels)
}

// FindImage returns the first existing file dir/stem+ext over ImageExtensions
func FindImage(dir, stem string) (string, error) {
	for _, ext := range ImageExtensions {
		path := filepath.Join(dir, stem+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s in %s: %w", stem, dir, ErrImageNotFound)
}

// LoadTextures loads one texture per name from dir. Names without a matching
// file are skipped; a file that exists but fails to decode is an error.
func LoadTextures(dir string, names []string) (map[string]*material.Texture, error) {
	textures := make(map[string]*material.Texture)
	for _, name := range names {
		path, err := FindImage(dir, name)
		if errors.Is(err, ErrImageNotFound) {
			continue
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, err
		}
		textures[name] = tex
	}
	return textures, nil
}

// LoadCubemap loads the six faces px, nx, py, ny, pz, nz from dir. Every
// face must be present.
func LoadCubemap(dir string, tint core.Vec3) (*lights.Skybox, error) {
	var faces [6]*material.Texture
	for i, stem := range lights.FaceNames {
		path, err := FindImage(dir, stem)
		if err != nil {
			return nil, fmt.Errorf("cubemap face: %w", err)
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("cubemap face %s: %w", stem, err)
		}
		faces[i] = tex
	}
	return lights.NewSkybox(faces, tint), nil
}
