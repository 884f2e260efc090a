package preview

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

// Rasterize draws the scene into a size×size bitmap. The scene is scaled
// uniformly from its own canvas. Colors that cannot be parsed are left
// unpainted rather than failing, since the preview must keep up with any
// selection the studio can hold.
func Rasterize(s scene.Scene, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("preview size must be positive, got %d", size)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene has no canvas (%dx%d)", s.Width, s.Height)
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()

	p := painter{
		dc: dc,
		kx: float64(size) / float64(s.Width),
		ky: float64(size) / float64(s.Height),
	}

	var errs []error
	for _, layer := range s.Layers {
		for _, shape := range layer.Shapes {
			if err := p.draw(shape, scene.Style{}); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", layer.Name, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

type painter struct {
	dc     *gg.Context
	kx, ky float64
}

func (p painter) x(v int) float64 { return float64(v) * p.kx }
func (p painter) y(v int) float64 { return float64(v) * p.ky }

func (p painter) draw(shape scene.Shape, parent scene.Style) error {
	st := shape.ShapeStyle().Inherit(parent)

	switch sh := shape.(type) {
	case scene.Group:
		for _, child := range sh.Children {
			if err := p.draw(child, st); err != nil {
				return err
			}
		}
		return nil
	case scene.Rect:
		if sh.RX > 0 {
			p.dc.DrawRoundedRectangle(p.x(sh.X), p.y(sh.Y), p.x(sh.W), p.y(sh.H), p.x(sh.RX))
		} else {
			p.dc.DrawRectangle(p.x(sh.X), p.y(sh.Y), p.x(sh.W), p.y(sh.H))
		}
	case scene.Circle:
		p.dc.DrawEllipse(p.x(sh.CX), p.y(sh.CY), p.x(sh.R), p.y(sh.R))
	case scene.Ellipse:
		p.dc.DrawEllipse(p.x(sh.CX), p.y(sh.CY), p.x(sh.RX), p.y(sh.RY))
	case scene.Polygon:
		for i, pt := range sh.Points {
			if i == 0 {
				p.dc.MoveTo(p.x(pt.X), p.y(pt.Y))
				continue
			}
			p.dc.LineTo(p.x(pt.X), p.y(pt.Y))
		}
		p.dc.ClosePath()
	case scene.Line:
		p.dc.DrawLine(p.x(sh.X1), p.y(sh.Y1), p.x(sh.X2), p.y(sh.Y2))
		// Lines have no interior.
		st.Fill = scene.NoPaint
	case scene.Path:
		if err := p.tracePath(sh); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported shape %T", shape)
	}

	return p.paint(st)
}

func (p painter) tracePath(path scene.Path) error {
	var cx, cy int
	for _, seg := range path.Segments {
		args := seg.Args
		switch seg.Cmd {
		case 'M', 'm', 'L', 'l':
			if len(args) != 2 {
				return fmt.Errorf("path command %c wants 2 args, got %d", seg.Cmd, len(args))
			}
			x, y := args[0], args[1]
			if seg.Cmd == 'm' || seg.Cmd == 'l' {
				x, y = cx+x, cy+y
			}
			if seg.Cmd == 'M' || seg.Cmd == 'm' {
				p.dc.MoveTo(p.x(x), p.y(y))
			} else {
				p.dc.LineTo(p.x(x), p.y(y))
			}
			cx, cy = x, y
		case 'Q', 'q':
			if len(args) != 4 {
				return fmt.Errorf("path command %c wants 4 args, got %d", seg.Cmd, len(args))
			}
			qx, qy, x, y := args[0], args[1], args[2], args[3]
			if seg.Cmd == 'q' {
				qx, qy, x, y = cx+qx, cy+qy, cx+x, cy+y
			}
			p.dc.QuadraticTo(p.x(qx), p.y(qy), p.x(x), p.y(y))
			cx, cy = x, y
		case 'Z', 'z':
			p.dc.ClosePath()
		default:
			return fmt.Errorf("unsupported path command %q", seg.Cmd)
		}
	}
	return nil
}

// paint fills then strokes the traced path and clears it. An unset fill is
// black and an unset stroke is none, as in SVG.
func (p painter) paint(st scene.Style) error {
	defer p.dc.ClearPath()

	opacity := st.EffectiveOpacity()

	fill := st.Fill
	if fill == "" {
		fill = "#000"
	}
	if c, ok := parseColor(fill); ok {
		p.dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
		if err := p.dc.FillPreserve(); err != nil {
			return err
		}
	}

	if c, ok := parseColor(st.Stroke); ok {
		width := st.StrokeWidth
		if width == 0 {
			width = 1
		}
		p.dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
		p.dc.SetLineWidth(float64(width) * p.kx)
		if st.LineCap == "round" {
			p.dc.SetLineCap(gg.LineCapRound)
		} else {
			p.dc.SetLineCap(gg.LineCapButt)
		}
		if err := p.dc.StrokePreserve(); err != nil {
			return err
		}
	}
	return nil
}

// parseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and CSS color names.
func parseColor(v string) (gg.RGBA, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == scene.NoPaint {
		return gg.RGBA{}, false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return gg.RGBA{}, false
		}
		for i := 0; i < len(hex); i++ {
			if !isHexDigit(hex[i]) {
				return gg.RGBA{}, false
			}
		}
		return gg.Hex(v), true
	}

	named, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return gg.RGBA{}, false
	}
	return gg.RGBA{
		R: float64(named.R) / 255,
		G: float64(named.G) / 255,
		B: float64(named.B) / 255,
		A: float64(named.A) / 255,
	}, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
