package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ObjectIndex  int                    `json:"objectIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced linear color of the pixel
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// materialProperties flattens material parameters for display
func materialProperties(mat material.Params) map[string]interface{} {
	c := renderer.ToRGBA(mat.Albedo)
	return map[string]interface{}{
		"albedo":           toArray(mat.Albedo),
		"color":            fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		"specularStrength": mat.SpecularStrength,
		"shininess":        mat.Shininess,
		"reflectivity":     mat.Reflectivity,
		"transparency":     mat.Transparency,
		"ior":              mat.IOR,
		"emissive":         toArray(mat.Emissive),
	}
}

// geometryType names the primitive variant
func geometryType(obj geometry.Intersectable) string {
	switch obj.(type) {
	case *geometry.TexturedBox:
		return "textured-box"
	case *geometry.SolidBox:
		return "solid-box"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

// inspectPixel casts the primary ray through a pixel of the frame
func inspectPixel(frame *Frame, width, height, pixelX, pixelY, depth int) InspectResponse {
	u := (float64(pixelX) + 0.5) / float64(width)
	v := (float64(pixelY) + 0.5) / float64(height)
	ray := frame.Camera.MakeRay(u, v, float64(width)/float64(height))

	rt := renderer.NewRaytracer(frame.Scene, renderer.DefaultConfig())
	response := InspectResponse{
		ObjectIndex: -1,
		Color:       toArray(rt.Trace(ray, frame.Light, depth)),
	}

	h, ok := rt.NearestHit(ray)
	if !ok {
		return response
	}

	response.Hit = true
	response.GeometryType = geometryType(frame.Scene.Objects[h.Index])
	response.ObjectIndex = h.Index
	response.Point = toArray(h.Point)
	response.Normal = toArray(h.Normal)
	response.Distance = h.T
	response.Properties = materialProperties(h.Material)
	return response
}

// handleInspect reports what the primary ray through pixel (x, y) hits
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
	}

	pixelX, err := parseIntParam(c.QueryParams(), "x", -1, 0, req.Width-1)
	if err != nil || pixelX < 0 {
		return errorJSON(c, http.StatusBadRequest, "Invalid x coordinate")
	}
	pixelY, err := parseIntParam(c.QueryParams(), "y", -1, 0, req.Height-1)
	if err != nil || pixelY < 0 {
		return errorJSON(c, http.StatusBadRequest, "Invalid y coordinate")
	}

	frame, err := s.resolveFrame(req)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, inspectPixel(frame, req.Width, req.Height, pixelX, pixelY, req.Depth))
}
