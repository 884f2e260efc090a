package layers

import (
	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// PaintOrder lists the layer slots back to front. Ears sit under hair so
// hairstyles can cover where ears attach, and clothes go last so outerwear
// covers the body outline.
var PaintOrder = []scene.LayerName{
	scene.LayerBackground,
	scene.LayerPattern,
	scene.LayerShadow,
	scene.LayerBody,
	scene.LayerEars,
	scene.LayerHair,
	scene.LayerSnout,
	scene.LayerEyes,
	scene.LayerMouth,
	scene.LayerAccessory,
	scene.LayerClothes,
}

// Compose renders a selection into a scene. It is a pure function: equal
// selections produce equal scenes. Every slot of PaintOrder is present,
// possibly empty.
func Compose(sel avatar.Selection) scene.Scene {
	fur := sel.Get(avatar.Fur)

	return scene.Scene{
		Width:  Canvas,
		Height: Canvas,
		Layers: []scene.Layer{
			backgroundLayer(sel.Get(avatar.Background)),
			patternLayer(),
			shadowLayer(),
			bodyLayer(fur),
			Ears(sel.Get(avatar.Ears)).Render(fur),
			Hair(sel.Get(avatar.Hair)).Render(fur),
			snoutLayer(),
			Eyes(sel.Get(avatar.Eyes)).Render(),
			Mouth(sel.Get(avatar.Mouth)).Render(),
			Accessory(sel.Get(avatar.Accessory)).Render(),
			Clothes(sel.Get(avatar.Clothes)).Render(),
		},
	}
}

// Known reports whether the category has a dedicated renderer for id.
// Background and Fur accept any color, so every id is known for them.
func Known(c avatar.Category, id string) bool {
	switch c {
	case avatar.Ears:
		return KnownEars(id)
	case avatar.Hair:
		return KnownHair(id)
	case avatar.Eyes:
		return KnownEyes(id)
	case avatar.Mouth:
		return KnownMouth(id)
	case avatar.Clothes:
		return KnownClothes(id)
	case avatar.Accessory:
		return KnownAccessory(id)
	default:
		return true
	}
}
