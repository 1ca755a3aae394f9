package backdrop

import "image/color"

// Point is a 2D position in surface pixels.
type Point struct {
	X, Y float64
}

// LinearGradient is a vertical color ramp from From at Y0 to To at Y1.
type LinearGradient struct {
	Y0, Y1   float64
	From, To color.NRGBA
}

// At returns the gradient color at height y.
func (g LinearGradient) At(y float64) color.NRGBA {
	if g.Y1 == g.Y0 {
		return g.From
	}
	t := (y - g.Y0) / (g.Y1 - g.Y0)
	return lerpColor(g.From, g.To, t)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Canvas is the set of 2D drawing primitives the fields use.
type Canvas interface {
	Clear()
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillPolygon(pts []Point, c color.NRGBA)
	StrokePolygon(pts []Point, width float64, c color.NRGBA)
	FillGradientPolygon(pts []Point, g LinearGradient)
	// FillRadialGradient fills a disc fading from inner at the center to
	// outer at radius r.
	FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA)
}

// Surface is a Canvas whose backing store can be resized.
type Surface interface {
	Canvas
	Resize(w, h int)
}

// Container reports the pixel size of the element hosting a surface.
// ok is false when the element is absent.
type Container interface {
	Size() (w, h int, ok bool)
}

// ContainerFunc adapts a function to Container.
type ContainerFunc func() (w, h int, ok bool)

func (f ContainerFunc) Size() (int, int, bool) { return f() }

// Fixed returns a Container that always reports w×h.
func Fixed(w, h int) Container {
	return ContainerFunc(func() (int, int, bool) { return w, h, true })
}

// surfaceSync keeps a surface sized to its parent container.
type surfaceSync struct {
	surface Surface
	parent  Container
	width   int
	height  int
	sized   bool
}

// sync re-reads the parent size and resizes the surface. It reports false,
// leaving everything untouched, when the parent is absent.
func (s *surfaceSync) sync() bool {
	if s.parent == nil {
		return false
	}
	w, h, ok := s.parent.Size()
	if !ok {
		return false
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.width, s.height = w, h
	s.surface.Resize(w, h)
	s.sized = true
	return true
}
