// Package layers turns a Selection into a Scene. Each customizable category
// has a string-based variant type with one rendering function per variant;
// the fixed structural layers (background, pattern, shadow, body, snout)
// live here.
package layers

import (
	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Canvas is the side length of the square scene in user units.
const Canvas = 400

const (
	ink       = "#111827"
	black     = "#000"
	white     = "#fff"
	snoutFill = "#FDE68A"

	patternDots    = 12
	patternOpacity = 0.06
	shadowOpacity  = 0.08
)

// outlined fills with fill and strokes with the accent color.
func outlined(fill string, width int) scene.Style {
	return scene.Style{Fill: fill, Stroke: avatar.Accent, StrokeWidth: width}
}

// curve strokes a path without filling it.
func curve(width int) scene.Style {
	return scene.Style{Fill: scene.NoPaint, Stroke: avatar.Accent, StrokeWidth: width, LineCap: "round"}
}

func backgroundLayer(color string) scene.Layer {
	return scene.Layer{Name: scene.LayerBackground, Shapes: []scene.Shape{
		scene.Rect{W: Canvas, H: Canvas, Style: scene.Style{Fill: color}},
	}}
}

// patternLayer scatters faint dots along two alternating rows. Positions
// derive from the dot index only.
func patternLayer() scene.Layer {
	dots := make([]scene.Shape, patternDots)
	for i := range dots {
		dots[i] = scene.Circle{CX: 20 + i*35, CY: 20 + (i%2)*20, R: 6, Style: scene.Style{Fill: ink}}
	}
	return scene.Layer{Name: scene.LayerPattern, Shapes: []scene.Shape{
		scene.Group{Children: dots, Style: scene.Style{Opacity: patternOpacity}},
	}}
}

func shadowLayer() scene.Layer {
	return scene.Layer{Name: scene.LayerShadow, Shapes: []scene.Shape{
		scene.Ellipse{CX: 200, CY: 330, RX: 120, RY: 22, Style: scene.Style{Fill: black, Opacity: shadowOpacity}},
	}}
}

// bodyLayer draws body, neck and face in the fur color.
func bodyLayer(fur string) scene.Layer {
	return scene.Layer{Name: scene.LayerBody, Shapes: []scene.Shape{
		scene.Ellipse{CX: 200, CY: 250, RX: 90, RY: 90, Style: outlined(fur, 3)},
		scene.Rect{X: 180, Y: 180, W: 40, H: 60, RX: 12, Style: outlined(fur, 3)},
		scene.Ellipse{CX: 200, CY: 140, RX: 70, RY: 60, Style: outlined(fur, 3)},
	}}
}

func snoutLayer() scene.Layer {
	return scene.Layer{Name: scene.LayerSnout, Shapes: []scene.Shape{
		scene.Ellipse{CX: 220, CY: 185, RX: 30, RY: 20, Style: outlined(snoutFill, 3)},
		scene.Circle{CX: 212, CY: 182, R: 3, Style: scene.Style{Fill: avatar.Accent}},
		scene.Circle{CX: 228, CY: 182, R: 3, Style: scene.Style{Fill: avatar.Accent}},
	}}
}
