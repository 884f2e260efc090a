package export

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Serialize writes the scene as a self-contained SVG document. Every layer
// becomes a group named after its slot; styles are written inline. Color
// values are copied as given, so a malformed value yields a malformed
// document rather than an error here.
func Serialize(s scene.Scene) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	for _, layer := range s.Layers {
		canvas.Gid(string(layer.Name))
		for _, shape := range layer.Shapes {
			writeShape(canvas, shape)
		}
		canvas.Gend()
	}
	canvas.End()
	return buf.Bytes()
}

func writeShape(canvas *svg.SVG, shape scene.Shape) {
	style := styleAttr(shape.ShapeStyle())

	switch sh := shape.(type) {
	case scene.Rect:
		if sh.RX > 0 {
			canvas.Roundrect(sh.X, sh.Y, sh.W, sh.H, sh.RX, sh.RX, style...)
			return
		}
		canvas.Rect(sh.X, sh.Y, sh.W, sh.H, style...)
	case scene.Circle:
		canvas.Circle(sh.CX, sh.CY, sh.R, style...)
	case scene.Ellipse:
		canvas.Ellipse(sh.CX, sh.CY, sh.RX, sh.RY, style...)
	case scene.Polygon:
		xs, ys := sh.Coords()
		canvas.Polygon(xs, ys, style...)
	case scene.Line:
		canvas.Line(sh.X1, sh.Y1, sh.X2, sh.Y2, style...)
	case scene.Path:
		canvas.Path(sh.D(), style...)
	case scene.Group:
		canvas.Gstyle(sh.Style.CSS())
		for _, child := range sh.Children {
			writeShape(canvas, child)
		}
		canvas.Gend()
	}
}

func styleAttr(st scene.Style) []string {
	css := st.CSS()
	if css == "" {
		return nil
	}
	return []string{css}
}
