package layers

import (
	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Eyes is the eye-style variant.
type Eyes string

const (
	EyesHappy  Eyes = "happy"
	EyesSleepy Eyes = "sleepy"
	EyesRound  Eyes = "round"
	EyesWinky  Eyes = "winky"
)

var eyeRenderers = map[Eyes]func() []scene.Shape{
	EyesHappy:  happyEyes,
	EyesSleepy: sleepyEyes,
	EyesRound:  roundEyes,
	EyesWinky:  winkyEyes,
}

// Render draws the eyes. Unknown variants get the happy dots.
func (e Eyes) Render() scene.Layer {
	render, ok := eyeRenderers[e]
	if !ok {
		render = happyEyes
	}
	return scene.Layer{Name: scene.LayerEyes, Shapes: render()}
}

// KnownEyes reports whether v has a dedicated eye renderer.
func KnownEyes(v string) bool {
	_, ok := eyeRenderers[Eyes(v)]
	return ok
}

func happyEyes() []scene.Shape {
	return []scene.Shape{
		scene.Circle{CX: 180, CY: 160, R: 8, Style: scene.Style{Fill: black}},
		scene.Circle{CX: 260, CY: 160, R: 8, Style: scene.Style{Fill: black}},
		scene.Circle{CX: 176, CY: 156, R: 3, Style: scene.Style{Fill: white}},
		scene.Circle{CX: 256, CY: 156, R: 3, Style: scene.Style{Fill: white}},
	}
}

// sleepyEyes leaves the lid fill unset so the default black fill shades
// the area under each lid.
func sleepyEyes() []scene.Shape {
	return []scene.Shape{
		scene.Group{
			Style: scene.Style{Stroke: avatar.Accent, StrokeWidth: 6, LineCap: "round"},
			Children: []scene.Shape{
				scene.Path{Segments: []scene.Segment{scene.MoveTo(160, 160), scene.QuadBy(20, -10, 40, 0)}},
				scene.Path{Segments: []scene.Segment{scene.MoveTo(240, 160), scene.QuadBy(20, -10, 40, 0)}},
			},
		},
	}
}

func roundEyes() []scene.Shape {
	return []scene.Shape{
		scene.Circle{CX: 180, CY: 160, R: 12, Style: scene.Style{Fill: black}},
		scene.Circle{CX: 260, CY: 160, R: 12, Style: scene.Style{Fill: black}},
	}
}

func winkyEyes() []scene.Shape {
	return []scene.Shape{
		scene.Circle{CX: 180, CY: 160, R: 10, Style: scene.Style{Fill: black}},
		scene.Path{
			Segments: []scene.Segment{scene.MoveTo(245, 160), scene.QuadBy(15, -10, 30, 0)},
			Style:    scene.Style{Stroke: avatar.Accent, StrokeWidth: 6, LineCap: "round"},
		},
	}
}

// Mouth is the mouth-style variant.
type Mouth string

const (
	MouthSmile  Mouth = "smile"
	MouthSmirk  Mouth = "smirk"
	MouthOpen   Mouth = "open"
	MouthTongue Mouth = "tongue"
)

const tongueFill = "#F87171"

var mouthRenderers = map[Mouth]func() []scene.Shape{
	MouthSmile:  smileMouth,
	MouthSmirk:  smirkMouth,
	MouthOpen:   openMouth,
	MouthTongue: tongueMouth,
}

// Render draws the mouth. Unknown variants smile.
func (m Mouth) Render() scene.Layer {
	render, ok := mouthRenderers[m]
	if !ok {
		render = smileMouth
	}
	return scene.Layer{Name: scene.LayerMouth, Shapes: render()}
}

// KnownMouth reports whether v has a dedicated mouth renderer.
func KnownMouth(v string) bool {
	_, ok := mouthRenderers[Mouth(v)]
	return ok
}

func smileMouth() []scene.Shape {
	return []scene.Shape{
		scene.Path{Segments: []scene.Segment{scene.MoveTo(200, 205), scene.QuadBy(30, 15, 60, 0)}, Style: curve(6)},
	}
}

func smirkMouth() []scene.Shape {
	return []scene.Shape{
		scene.Path{Segments: []scene.Segment{scene.MoveTo(210, 205), scene.QuadBy(25, 15, 50, 0)}, Style: curve(6)},
	}
}

func openMouth() []scene.Shape {
	return []scene.Shape{
		scene.Path{Segments: []scene.Segment{scene.MoveTo(200, 200), scene.QuadBy(30, 20, 60, 0)}, Style: curve(6)},
	}
}

func tongueMouth() []scene.Shape {
	return append(openMouth(),
		scene.Path{Segments: []scene.Segment{scene.MoveTo(230, 200), scene.QuadBy(15, 20, 30, 0)}, Style: scene.Style{Fill: tongueFill}},
	)
}
