package layers

import (
	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Clothes is the clothing variant.
type Clothes string

const (
	ClothesNone   Clothes = "none"
	ClothesScarf  Clothes = "scarf"
	ClothesHoodie Clothes = "hoodie"
	ClothesTee    Clothes = "tee"
)

const (
	scarfFill    = "#38BDF8"
	hoodieFill   = "#A78BFA"
	hoodTrimFill = "#C4B5FD"
	teeFill      = "#60A5FA"
	lensFill     = "#111827"
	earringFill  = "#F59E0B"
)

var clothesRenderers = map[Clothes]func() []scene.Shape{
	ClothesNone:   func() []scene.Shape { return nil },
	ClothesScarf:  scarf,
	ClothesHoodie: hoodie,
	ClothesTee:    tee,
}

// Render draws the clothing. Unknown variants are drawn as a tee.
func (c Clothes) Render() scene.Layer {
	render, ok := clothesRenderers[c]
	if !ok {
		render = tee
	}
	return scene.Layer{Name: scene.LayerClothes, Shapes: render()}
}

// KnownClothes reports whether v has a dedicated clothes renderer.
func KnownClothes(v string) bool {
	_, ok := clothesRenderers[Clothes(v)]
	return ok
}

func scarf() []scene.Shape {
	return []scene.Shape{
		scene.Path{Segments: []scene.Segment{scene.MoveTo(140, 240), scene.QuadBy(60, -20, 120, 0)}, Style: outlined(scarfFill, 3)},
		scene.Rect{X: 195, Y: 238, W: 24, H: 60, RX: 6, Style: outlined(scarfFill, 3)},
	}
}

func hoodie() []scene.Shape {
	return []scene.Shape{
		scene.Rect{X: 120, Y: 230, W: 160, H: 80, RX: 20, Style: outlined(hoodieFill, 3)},
		scene.Path{Segments: []scene.Segment{scene.MoveTo(130, 230), scene.QuadBy(70, -30, 140, 0)}, Style: outlined(hoodTrimFill, 3)},
	}
}

func tee() []scene.Shape {
	return []scene.Shape{
		scene.Rect{X: 130, Y: 250, W: 140, H: 50, RX: 12, Style: outlined(teeFill, 3)},
	}
}

// Accessory is the accessory variant.
type Accessory string

const (
	AccessoryNone         Accessory = "none"
	AccessoryRoundGlasses Accessory = "round-glasses"
	AccessorySunnies      Accessory = "sunnies"
	AccessoryEarring      Accessory = "earring"
)

var accessoryRenderers = map[Accessory]func() []scene.Shape{
	AccessoryNone:         func() []scene.Shape { return nil },
	AccessoryRoundGlasses: roundGlasses,
	AccessorySunnies:      sunnies,
	AccessoryEarring:      earring,
}

// Render draws the accessory. Unknown variants are drawn as an earring.
func (a Accessory) Render() scene.Layer {
	render, ok := accessoryRenderers[a]
	if !ok {
		render = earring
	}
	return scene.Layer{Name: scene.LayerAccessory, Shapes: render()}
}

// KnownAccessory reports whether v has a dedicated accessory renderer.
func KnownAccessory(v string) bool {
	_, ok := accessoryRenderers[Accessory(v)]
	return ok
}

func roundGlasses() []scene.Shape {
	return []scene.Shape{
		scene.Group{
			Style: scene.Style{Fill: scene.NoPaint, Stroke: avatar.Accent, StrokeWidth: 4},
			Children: []scene.Shape{
				scene.Circle{CX: 180, CY: 160, R: 18},
				scene.Circle{CX: 260, CY: 160, R: 18},
				scene.Line{X1: 198, Y1: 160, X2: 242, Y2: 160},
			},
		},
	}
}

func sunnies() []scene.Shape {
	return []scene.Shape{
		scene.Rect{X: 162, Y: 148, W: 36, H: 22, RX: 4, Style: scene.Style{Fill: lensFill}},
		scene.Rect{X: 242, Y: 148, W: 36, H: 22, RX: 4, Style: scene.Style{Fill: lensFill}},
		scene.Rect{X: 198, Y: 156, W: 44, H: 6, RX: 3, Style: scene.Style{Fill: lensFill}},
	}
}

func earring() []scene.Shape {
	return []scene.Shape{
		scene.Circle{CX: 290, CY: 200, R: 6, Style: outlined(earringFill, 2)},
	}
}
