package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/hud"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest holds the validated frame parameters of a request
type RenderRequest struct {
	Scene  string
	Width  int
	Height int
	Depth  int
	Yaw    *float64   // nil keeps the scene's view
	Pitch  *float64   // nil keeps the scene's view
	Radius *float64   // nil keeps the scene's view
	Light  *core.Vec3 // nil keeps the scene's light
	HUD    bool
}

// Frame is a request resolved against its scene
type Frame struct {
	Scene  *scene.Scene
	Camera *renderer.Camera
	View   scene.View
	Light  core.Vec3
}

// parseRenderRequest parses and validates query parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}

	if world := values.Get("world"); world != "" {
		kind, err := scene.ParseWorldKind(world)
		if err != nil {
			return nil, err
		}
		req.Scene = kind.String()
	}
	if req.Scene == "" {
		req.Scene = scene.Overworld.String()
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 480, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 270, 1, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", 4, 0, 10); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseOptionalFloatParam(values, "yaw", -1000, 1000); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseOptionalFloatParam(values, "pitch", -10, 10); err != nil {
		return nil, err
	}
	if req.Radius, err = parseOptionalFloatParam(values, "radius", 0, 100); err != nil {
		return nil, err
	}
	if req.Light, err = parseLightParams(values); err != nil {
		return nil, err
	}
	if hudValue := values.Get("hud"); hudValue != "" {
		if req.HUD, err = strconv.ParseBool(hudValue); err != nil {
			return nil, fmt.Errorf("invalid hud: %s", hudValue)
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseOptionalFloatParam parses a float parameter, returning nil when absent
func parseOptionalFloatParam(values url.Values, key string, min, max float64) (*float64, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return nil, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
	}
	return &parsed, nil
}

// parseLightParams reads lx, ly and lz, which must be given together
func parseLightParams(values url.Values) (*core.Vec3, error) {
	var components [3]*float64
	given := 0
	for i, key := range []string{"lx", "ly", "lz"} {
		v, err := parseOptionalFloatParam(values, key, -100, 100)
		if err != nil {
			return nil, err
		}
		if v != nil {
			given++
		}
		components[i] = v
	}
	switch given {
	case 0:
		return nil, nil
	case 3:
		light := scene.ClampLight(core.NewVec3(*components[0], *components[1], *components[2]))
		return &light, nil
	}
	return nil, fmt.Errorf("lx, ly and lz must be given together")
}

// resolveFrame builds the scene and applies the request's camera and light
func (s *Server) resolveFrame(req *RenderRequest) (*Frame, error) {
	sc, err := scene.Build(req.Scene, s.assets)
	if err != nil {
		return nil, err
	}

	view := sc.View
	if req.Yaw != nil {
		view.Yaw = *req.Yaw
	}
	if req.Pitch != nil {
		view.Pitch = *req.Pitch
	}
	if req.Radius != nil {
		view.Radius = *req.Radius
	}
	view = view.Clamp()

	light := sc.Light
	if req.Light != nil {
		light = *req.Light
	}

	return &Frame{
		Scene:  sc,
		Camera: renderer.NewOrbitCamera(view),
		View:   view,
		Light:  light,
	}, nil
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request: "+err.Error())
	}
	frame, err := s.resolveFrame(req)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	config := s.config
	config.MaxDepth = req.Depth
	logger := NewWebLogger(s.nextRenderID(), s.console)

	img, stats, err := renderer.NewRenderer(config, logger).
		RenderImage(req.Width, req.Height, frame.Camera, frame.Light, frame.Scene)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	if req.HUD {
		hud.Annotate(img, hud.Lines(frame.Scene.Name, frame.View, frame.Light, req.Depth))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errorJSON(c, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
	}

	c.Response().Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	c.Response().Header().Set("X-Render-Bands", strconv.Itoa(stats.Bands))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
