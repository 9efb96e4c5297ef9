package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/hud"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	worldFile string
	assetsDir string
	width     int
	height    int
	depth     int
	workers   int
	yaw       float64
	pitch     float64
	radius    float64
	light     string
	hud       bool
	outputDir string
	set       map[string]bool // Flags given explicitly on the command line
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "overworld", "Built-in scene: overworld, nether, single-box, mirror or glass")
	flag.StringVar(&opts.worldFile, "world", "", "YAML world file to render instead of a built-in scene")
	flag.StringVar(&opts.assetsDir, "assets", "assets", "Directory holding textures/, skybox/ and skybox_nether/")
	flag.IntVar(&opts.width, "width", 640, "Image width in pixels")
	flag.IntVar(&opts.height, "height", 360, "Image height in pixels")
	flag.IntVar(&opts.depth, "depth", 4, "Maximum reflection/refraction depth")
	flag.IntVar(&opts.workers, "workers", 0, "Number of row bands (0 = number of CPUs)")
	flag.Float64Var(&opts.yaw, "yaw", 0, "Orbit yaw in radians (default: scene view)")
	flag.Float64Var(&opts.pitch, "pitch", 0, "Orbit pitch in radians (default: scene view)")
	flag.Float64Var(&opts.radius, "radius", 0, "Orbit radius (default: scene view)")
	flag.StringVar(&opts.light, "light", "", "Light position as x,y,z (default: scene light)")
	flag.BoolVar(&opts.hud, "hud", false, "Draw the scene and camera overlay")
	flag.StringVar(&opts.outputDir, "output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltin() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// run renders one frame and writes it as a PNG
func run(opts options, logger core.Logger) error {
	logger.Printf("Starting Whitted Raytracer...\n")

	assets, err := loaders.LoadAssets(opts.assetsDir, logger)
	if err != nil {
		return err
	}

	s, err := createScene(opts.sceneName, opts.worldFile, assets)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d objects)\n", s.Name, len(s.Objects))

	view := applyViewOverrides(s.View, opts)
	light := s.Light
	if opts.light != "" {
		if light, err = parseVec3(opts.light); err != nil {
			return fmt.Errorf("invalid -light: %w", err)
		}
		light = scene.ClampLight(light)
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = opts.depth
	config.NumWorkers = opts.workers

	img, _, err := renderer.NewRenderer(config, logger).
		RenderImage(opts.width, opts.height, renderer.NewOrbitCamera(view), light, s)
	if err != nil {
		return err
	}
	if opts.hud {
		hud.Annotate(img, hud.Lines(s.Name, view, light, opts.depth))
	}

	filename := outputPath(opts.outputDir, s.Name, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene loads the world file when given, otherwise a built-in scene
func createScene(sceneName, worldFile string, assets scene.Assets) (*scene.Scene, error) {
	if worldFile != "" {
		return loaders.LoadWorldFile(worldFile, assets)
	}
	return scene.Build(sceneName, assets)
}

// applyViewOverrides replaces the orbit parameters given on the command line
func applyViewOverrides(view scene.View, opts options) scene.View {
	if opts.set["yaw"] {
		view.Yaw = opts.yaw
	}
	if opts.set["pitch"] {
		view.Pitch = opts.pitch
	}
	if opts.set["radius"] {
		view.Radius = opts.radius
	}
	return view.Clamp()
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// outputPath returns output/<scene>/render_<timestamp>.png
func outputPath(dir, sceneName string, now time.Time) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}
