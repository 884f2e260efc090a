package layers

import (
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Ears is the ear-shape variant.
type Ears string

const (
	EarsPointy Ears = "pointy"
	EarsRound  Ears = "round"
	EarsFloppy Ears = "floppy"
)

var earRenderers = map[Ears]func(fur string) []scene.Shape{
	EarsPointy: pointyEars,
	EarsRound:  roundEars,
	EarsFloppy: floppyEars,
}

// Render draws the ears. Unknown variants are drawn pointy.
func (e Ears) Render(fur string) scene.Layer {
	render, ok := earRenderers[e]
	if !ok {
		render = pointyEars
	}
	return scene.Layer{Name: scene.LayerEars, Shapes: render(fur)}
}

// KnownEars reports whether v has a dedicated ear renderer.
func KnownEars(v string) bool {
	_, ok := earRenderers[Ears(v)]
	return ok
}

func pointyEars(fur string) []scene.Shape {
	return []scene.Shape{
		scene.Polygon{Points: []scene.Point{{X: 100, Y: 85}, {X: 130, Y: 20}, {X: 150, Y: 95}}, Style: outlined(fur, 3)},
		scene.Polygon{Points: []scene.Point{{X: 300, Y: 85}, {X: 270, Y: 20}, {X: 250, Y: 95}}, Style: outlined(fur, 3)},
	}
}

func roundEars(fur string) []scene.Shape {
	return []scene.Shape{
		scene.Ellipse{CX: 120, CY: 85, RX: 28, RY: 22, Style: outlined(fur, 3)},
		scene.Ellipse{CX: 280, CY: 85, RX: 28, RY: 22, Style: outlined(fur, 3)},
	}
}

// floppyEars are drawn as thick accent strokes and ignore the fur color.
func floppyEars(string) []scene.Shape {
	return []scene.Shape{
		scene.Path{Segments: []scene.Segment{scene.MoveTo(100, 80), scene.QuadBy(-30, 40, 10, 50)}, Style: curve(10)},
		scene.Path{Segments: []scene.Segment{scene.MoveTo(300, 80), scene.QuadBy(30, 40, -10, 50)}, Style: curve(10)},
	}
}

// Hair is the hairstyle variant.
type Hair string

const (
	HairPoof   Hair = "poof"
	HairBangs  Hair = "bangs"
	HairMohawk Hair = "mohawk"
	HairNone   Hair = "none"
)

var hairRenderers = map[Hair]func(fur string) []scene.Shape{
	HairPoof:   poofHair,
	HairBangs:  bangsHair,
	HairMohawk: mohawkHair,
	HairNone:   func(string) []scene.Shape { return nil },
}

// Render draws the hairstyle. Unknown variants are drawn as a mohawk.
func (h Hair) Render(fur string) scene.Layer {
	render, ok := hairRenderers[h]
	if !ok {
		render = mohawkHair
	}
	return scene.Layer{Name: scene.LayerHair, Shapes: render(fur)}
}

// KnownHair reports whether v has a dedicated hair renderer.
func KnownHair(v string) bool {
	_, ok := hairRenderers[Hair(v)]
	return ok
}

func poofHair(fur string) []scene.Shape {
	return []scene.Shape{
		scene.Circle{CX: 200, CY: 95, R: 34, Style: outlined(fur, 3)},
		scene.Circle{CX: 165, CY: 100, R: 30, Style: outlined(fur, 3)},
		scene.Circle{CX: 235, CY: 100, R: 30, Style: outlined(fur, 3)},
	}
}

func bangsHair(fur string) []scene.Shape {
	return []scene.Shape{
		scene.Path{
			Segments: []scene.Segment{scene.MoveTo(150, 110), scene.QuadBy(30, -30, 50, 0), scene.QuadBy(30, -30, 50, 0)},
			Style:    outlined(fur, 3),
		},
	}
}

func mohawkHair(fur string) []scene.Shape {
	return []scene.Shape{
		scene.Rect{X: 185, Y: 60, W: 30, H: 70, RX: 10, Style: outlined(fur, 3)},
	}
}
