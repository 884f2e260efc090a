package layers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

func layer(t *testing.T, s scene.Scene, name scene.LayerName) scene.Layer {
	t.Helper()
	l, ok := s.Layer(name)
	require.True(t, ok, "missing layer %s", name)
	return l
}

func TestComposeFollowsPaintOrder(t *testing.T) {
	t.Parallel()

	s := Compose(avatar.DefaultSelection())
	require.Equal(t, PaintOrder, s.Names())
	require.Equal(t, Canvas, s.Width)
	require.Equal(t, Canvas, s.Height)
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	src := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		sel := avatar.Randomize(src)
		require.Equal(t, Compose(sel), Compose(sel))
	}
}

func TestDefaultScene(t *testing.T) {
	t.Parallel()

	s := Compose(avatar.DefaultSelection())

	bg := layer(t, s, scene.LayerBackground)
	require.Equal(t, []scene.Shape{scene.Rect{W: 400, H: 400, Style: scene.Style{Fill: "#F1F5F9"}}}, bg.Shapes)

	body := layer(t, s, scene.LayerBody)
	face := body.Shapes[2].(scene.Ellipse)
	assert.Equal(t, "#F4E1C1", face.Style.Fill)
	assert.Equal(t, avatar.Accent, face.Style.Stroke)

	assert.Equal(t, EarsPointy.Render("#F4E1C1"), layer(t, s, scene.LayerEars))
	assert.Equal(t, HairPoof.Render("#F4E1C1"), layer(t, s, scene.LayerHair))
	assert.Equal(t, EyesHappy.Render(), layer(t, s, scene.LayerEyes))
	assert.Equal(t, MouthSmile.Render(), layer(t, s, scene.LayerMouth))
	assert.True(t, layer(t, s, scene.LayerClothes).Empty())
	assert.True(t, layer(t, s, scene.LayerAccessory).Empty())

	_, isPolygon := layer(t, s, scene.LayerEars).Shapes[0].(scene.Polygon)
	assert.True(t, isPolygon)
	assert.Len(t, layer(t, s, scene.LayerHair).Shapes, 3)
}

func TestPickingEyesOnlyChangesEyes(t *testing.T) {
	t.Parallel()

	base := Compose(avatar.DefaultSelection())
	winky := Compose(avatar.Pick(avatar.DefaultSelection(), avatar.Eyes, "winky"))

	for i, name := range PaintOrder {
		if name == scene.LayerEyes {
			require.NotEqual(t, base.Layers[i], winky.Layers[i])
			continue
		}
		require.Equal(t, base.Layers[i], winky.Layers[i], "layer %s changed", name)
	}
}

func TestNoneVariantsAreEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, HairNone.Render("#fff").Empty())
	assert.True(t, ClothesNone.Render().Empty())
	assert.True(t, AccessoryNone.Render().Empty())
}

func TestClothesPaintLast(t *testing.T) {
	t.Parallel()

	sel := avatar.Pick(avatar.DefaultSelection(), avatar.Clothes, "hoodie")
	sel = avatar.Pick(sel, avatar.Accessory, "sunnies")
	s := Compose(sel)

	var last scene.LayerName
	s.Walk(func(l scene.LayerName, _ scene.Shape) bool {
		last = l
		return true
	})
	require.Equal(t, scene.LayerClothes, last)
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EarsPointy.Render("#abc"), Ears("antlers").Render("#abc"))
	assert.Equal(t, MouthSmile.Render(), Mouth("grimace").Render())
	assert.Equal(t, EyesHappy.Render(), Eyes("").Render())
	assert.Equal(t, HairMohawk.Render("#abc"), Hair("dreads").Render("#abc"))
	assert.Equal(t, ClothesTee.Render(), Clothes("cape").Render())
	assert.Equal(t, AccessoryEarring.Render(), Accessory("monocle").Render())
}

func TestEveryRegisteredOptionHasRenderer(t *testing.T) {
	t.Parallel()

	for _, c := range avatar.Categories() {
		for _, opt := range avatar.OptionsFor(c) {
			assert.True(t, Known(c, opt.ID), "%s/%s has no renderer", c, opt.ID)
		}
	}
	assert.False(t, Known(avatar.Eyes, "cyclops"))
}

func TestFurAppliedWithoutValidation(t *testing.T) {
	t.Parallel()

	sel := avatar.Raw(map[avatar.Category]string{avatar.Fur: "hotpink", avatar.Background: "url(#x)"})
	s := Compose(sel)

	bg := layer(t, s, scene.LayerBackground).Shapes[0].(scene.Rect)
	require.Equal(t, "url(#x)", bg.Style.Fill)

	for _, sh := range layer(t, s, scene.LayerEars).Shapes {
		require.Equal(t, "hotpink", sh.ShapeStyle().Fill)
	}
}

func TestFloppyEarsIgnoreFur(t *testing.T) {
	t.Parallel()

	l := EarsFloppy.Render("#F4E1C1")
	require.Len(t, l.Shapes, 2)
	for _, sh := range l.Shapes {
		p := sh.(scene.Path)
		require.Equal(t, scene.NoPaint, p.Style.Fill)
		require.Equal(t, 10, p.Style.StrokeWidth)
	}
	require.Equal(t, "M100 80 q-30 40 10 50", l.Shapes[0].(scene.Path).D())
}

func TestPatternIsIndexDerived(t *testing.T) {
	t.Parallel()

	g := patternLayer().Shapes[0].(scene.Group)
	require.Len(t, g.Children, 12)
	require.InDelta(t, 0.06, g.Style.Opacity, 1e-9)
	require.Equal(t, scene.Circle{CX: 20, CY: 20, R: 6, Style: scene.Style{Fill: "#111827"}}, g.Children[0])
	require.Equal(t, scene.Circle{CX: 55, CY: 40, R: 6, Style: scene.Style{Fill: "#111827"}}, g.Children[1])
	require.Equal(t, scene.Circle{CX: 405, CY: 40, R: 6, Style: scene.Style{Fill: "#111827"}}, g.Children[11])
}

func TestTongueExtendsOpenMouth(t *testing.T) {
	t.Parallel()

	tongue := MouthTongue.Render().Shapes
	open := MouthOpen.Render().Shapes
	require.Len(t, tongue, 2)
	require.Equal(t, open[0], tongue[0])
	require.Equal(t, "#F87171", tongue[1].ShapeStyle().Fill)
}
