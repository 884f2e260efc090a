// Package scene holds the declarative vector model produced by the layer
// renderers: an ordered list of named layers, each an ordered list of
// shapes with inline styles. Coordinates are integer user units.
package scene

// LayerName identifies a paint slot of the composed avatar.
type LayerName string

const (
	LayerBackground LayerName = "background"
	LayerPattern    LayerName = "pattern"
	LayerShadow     LayerName = "shadow"
	LayerBody       LayerName = "body"
	LayerEars       LayerName = "ears"
	LayerHair       LayerName = "hair"
	LayerSnout      LayerName = "snout"
	LayerEyes       LayerName = "eyes"
	LayerMouth      LayerName = "mouth"
	LayerAccessory  LayerName = "accessory"
	LayerClothes    LayerName = "clothes"
)

// Layer is one stacked fragment of the scene. A layer without shapes
// contributes nothing.
type Layer struct {
	Name   LayerName
	Shapes []Shape
}

// Empty reports whether the layer draws nothing.
func (l Layer) Empty() bool {
	return len(l.Shapes) == 0
}

// Scene is a complete composition on a Width x Height canvas. Layers are
// painted in slice order, back to front.
type Scene struct {
	Width  int
	Height int
	Layers []Layer
}

// Layer returns the layer with the given name.
func (s Scene) Layer(name LayerName) (Layer, bool) {
	for _, l := range s.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Names returns the layer names in paint order.
func (s Scene) Names() []LayerName {
	names := make([]LayerName, len(s.Layers))
	for i, l := range s.Layers {
		names[i] = l.Name
	}
	return names
}

// Walk visits every shape in paint order, descending into groups after
// visiting the group itself. Returning false stops the walk.
func (s Scene) Walk(fn func(layer LayerName, shape Shape) bool) {
	for _, l := range s.Layers {
		for _, sh := range l.Shapes {
			if !walkShape(l.Name, sh, fn) {
				return
			}
		}
	}
}

func walkShape(layer LayerName, sh Shape, fn func(LayerName, Shape) bool) bool {
	if !fn(layer, sh) {
		return false
	}
	if g, ok := sh.(Group); ok {
		for _, child := range g.Children {
			if !walkShape(layer, child, fn) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy so that the result shares no slices with s.
func (s Scene) Clone() Scene {
	out := Scene{Width: s.Width, Height: s.Height, Layers: make([]Layer, len(s.Layers))}
	for i, l := range s.Layers {
		out.Layers[i] = Layer{Name: l.Name, Shapes: cloneShapes(l.Shapes)}
	}
	return out
}

func cloneShapes(in []Shape) []Shape {
	if in == nil {
		return nil
	}
	out := make([]Shape, len(in))
	for i, sh := range in {
		switch v := sh.(type) {
		case Group:
			v.Children = cloneShapes(v.Children)
			out[i] = v
		case Polygon:
			v.Points = append([]Point(nil), v.Points...)
			out[i] = v
		case Path:
			segs := make([]Segment, len(v.Segments))
			for j, seg := range v.Segments {
				segs[j] = Segment{Cmd: seg.Cmd, Args: append([]int(nil), seg.Args...)}
			}
			v.Segments = segs
			out[i] = v
		default:
			out[i] = sh
		}
	}
	return out
}
