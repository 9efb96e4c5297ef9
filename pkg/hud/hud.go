// Package hud draws a text overlay onto rendered frames.
package hud

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	margin  = 6.0
	padding = 4.0
)

// Annotate draws the lines in the top-left corner of img over a translucent
// panel. The image is modified in place.
func Annotate(img *image.RGBA, lines []string) {
	if len(lines) == 0 || img.Bounds().Empty() {
		return
	}

	dc := gg.NewContextForRGBA(img)
	lineHeight := dc.FontHeight() * 1.4

	width := 0.0
	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		width = max(width, w)
	}
	height := lineHeight * float64(len(lines))

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(margin, margin, width+2*padding, height+2*padding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	for i, line := range lines {
		y := margin + padding + lineHeight*float64(i+1) - (lineHeight-dc.FontHeight())/2
		dc.DrawString(line, margin+padding, y)
	}
}

// Lines returns the standard overlay for a frame
func Lines(sceneName string, view scene.View, light core.Vec3, depth int) []string {
	return []string{
		fmt.Sprintf("scene: %s  depth: %d", sceneName, depth),
		fmt.Sprintf("yaw %.2f  pitch %.2f  radius %.2f", view.Yaw, view.Pitch, view.Radius),
		fmt.Sprintf("light (%.1f, %.1f, %.1f)", light.X, light.Y, light.Z),
	}
}
