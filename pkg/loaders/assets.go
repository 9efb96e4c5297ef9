package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Asset directory layout, relative to the assets root
const (
	TexturesDir     = "textures"
	OverworldSkyDir = "skybox"
	NetherSkyDir    = "skybox_nether"
)

// LoadAssets loads block textures and cubemaps from an assets root. Missing
// directories and files are tolerated and reported through the logger; the
// affected blocks and worlds fall back to preset colors and gradients.
func LoadAssets(root string, logger core.Logger) (scene.Assets, error) {
	var assets scene.Assets

	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Printf("Assets directory %s not found, using preset colors\n", root)
			return assets, nil
		}
		return assets, fmt.Errorf("failed to read assets directory: %w", err)
	}

	textures, err := LoadTextures(filepath.Join(root, TexturesDir), material.PresetNames())
	if err != nil {
		return assets, err
	}
	assets.Textures = textures
	logger.Printf("Loaded %d block textures\n", len(textures))

	white := core.NewVec3(1, 1, 1)
	assets.OverworldSky, err = loadOptionalCubemap(filepath.Join(root, OverworldSkyDir), white)
	if err != nil {
		return assets, err
	}
	assets.NetherSky, err = loadOptionalCubemap(filepath.Join(root, NetherSkyDir), white)
	if err != nil {
		return assets, err
	}
	logger.Printf("Overworld cubemap: %t, nether cubemap: %t\n", assets.OverworldSky != nil, assets.NetherSky != nil)

	return assets, nil
}

// loadOptionalCubemap returns nil without error when a face is missing
func loadOptionalCubemap(dir string, tint core.Vec3) (*lights.Skybox, error) {
	sky, err := LoadCubemap(dir, tint)
	if errors.Is(err, ErrImageNotFound) {
		return nil, nil
	}
	return sky, err
}
