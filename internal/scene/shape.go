package scene

import (
	"strconv"
	"strings"
)

// NoPaint disables a fill or stroke.
const NoPaint = "none"

// Style carries inline presentation attributes. Empty fields are inherited
// from the enclosing group or fall back to vector defaults (black fill, no
// stroke). A zero Opacity means fully opaque.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth int
	LineCap     string
	Opacity     float64
}

// CSS renders the style as a declaration list, e.g. "fill:#fff;stroke:#000".
// Values are emitted verbatim.
func (s Style) CSS() string {
	var decls []string
	if s.Fill != "" {
		decls = append(decls, "fill:"+s.Fill)
	}
	if s.Stroke != "" {
		decls = append(decls, "stroke:"+s.Stroke)
	}
	if s.StrokeWidth > 0 {
		decls = append(decls, "stroke-width:"+strconv.Itoa(s.StrokeWidth))
	}
	if s.LineCap != "" {
		decls = append(decls, "stroke-linecap:"+s.LineCap)
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		decls = append(decls, "opacity:"+strconv.FormatFloat(s.Opacity, 'f', -1, 64))
	}
	return strings.Join(decls, ";")
}

// Inherit fills the empty fields of s from parent. Opacity multiplies.
func (s Style) Inherit(parent Style) Style {
	if s.Fill == "" {
		s.Fill = parent.Fill
	}
	if s.Stroke == "" {
		s.Stroke = parent.Stroke
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = parent.StrokeWidth
	}
	if s.LineCap == "" {
		s.LineCap = parent.LineCap
	}
	s.Opacity = s.EffectiveOpacity() * parent.EffectiveOpacity()
	return s
}

// EffectiveOpacity returns Opacity with the zero value read as 1.
func (s Style) EffectiveOpacity() float64 {
	if s.Opacity <= 0 {
		return 1
	}
	return s.Opacity
}

// Shape is one drawable element. The set of shapes is closed.
type Shape interface {
	ShapeStyle() Style
	isShape()
}

// Point is a vertex in user units.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H int
	RX         int
	Style      Style
}

// Circle is centered on (CX, CY).
type Circle struct {
	CX, CY, R int
	Style     Style
}

// Ellipse is centered on (CX, CY) with radii RX and RY.
type Ellipse struct {
	CX, CY, RX, RY int
	Style          Style
}

// Polygon is a closed polyline.
type Polygon struct {
	Points []Point
	Style  Style
}

// Line is a single straight segment.
type Line struct {
	X1, Y1, X2, Y2 int
	Style          Style
}

// Segment is one path command. Upper-case commands are absolute and
// lower-case relative to the current point, as in SVG path data.
//
//	M/m x y, L/l x y, Q/q cx cy x y, Z
type Segment struct {
	Cmd  byte
	Args []int
}

// Path is a sequence of segments.
type Path struct {
	Segments []Segment
	Style    Style
}

// Group applies Style to its children.
type Group struct {
	Children []Shape
	Style    Style
}

func (r Rect) ShapeStyle() Style {
	return r.Style
}

func (c Circle) ShapeStyle() Style {
	return c.Style
}

func (e Ellipse) ShapeStyle() Style {
	return e.Style
}

func (p Polygon) ShapeStyle() Style {
	return p.Style
}

func (l Line) ShapeStyle() Style {
	return l.Style
}

func (p Path) ShapeStyle() Style {
	return p.Style
}

func (g Group) ShapeStyle() Style {
	return g.Style
}

func (Rect) isShape() {}

func (Circle) isShape() {}

func (Ellipse) isShape() {}

func (Polygon) isShape() {}

func (Line) isShape() {}

func (Path) isShape() {}

func (Group) isShape() {}

// D renders the path as SVG path data, e.g. "M100 80 q-30 40 10 50".
func (p Path) D() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(seg.Cmd)
		for j, arg := range seg.Args {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(arg))
		}
	}
	return b.String()
}

// Coords splits the points into parallel x and y slices.
func (p Polygon) Coords() (xs, ys []int) {
	xs = make([]int, len(p.Points))
	ys = make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	return xs, ys
}

// MoveTo starts a path at an absolute position.
func MoveTo(x, y int) Segment {
	return Segment{Cmd: 'M', Args: []int{x, y}}
}

// QuadBy appends a quadratic curve relative to the current point.
func QuadBy(cx, cy, x, y int) Segment {
	return Segment{Cmd: 'q', Args: []int{cx, cy, x, y}}
}
