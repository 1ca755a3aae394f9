package backdrop

import (
	"image/color"
	"math"
	"math/rand"
	"strings"
)

// ShapeKind selects which outlines the floating-shapes overlay draws.
type ShapeKind string

const (
	Bubbles   ShapeKind = "bubbles"
	Squares   ShapeKind = "squares"
	Triangles ShapeKind = "triangles"
	Mixed     ShapeKind = "mixed"
)

// DefaultShapeCount is used when a non-positive count is requested.
const DefaultShapeCount = 15

const (
	shapeFPS         = 60.0
	shapeRiseY       = -30.0
	shapeDriftX      = 15.0
	shapeBorderWidth = 2.0
	triangleSize     = 60.0
)

var (
	shapeFill     = color.NRGBA{R: 45, G: 212, B: 191, A: 26}
	triangleFill  = color.NRGBA{R: 45, G: 212, B: 191, A: 51}
	shapeOutline  = color.NRGBA{R: 20, G: 184, B: 166, A: 77}
	concreteKinds = []ShapeKind{Bubbles, Squares, Triangles}
)

// ParseShapeKind maps s to a kind. Unknown names map to Mixed.
func ParseShapeKind(s string) ShapeKind {
	switch k := ShapeKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Bubbles, Squares, Triangles:
		return k
	}
	return Mixed
}

// Shape is one floating outline. Left and Top are percentages of the
// container; Duration and Delay are seconds; Rotation is degrees.
type Shape struct {
	Kind     ShapeKind
	Size     float64
	Left     float64
	Top      float64
	Duration float64
	Delay    float64
	Opacity  float64
	Rotation float64
}

// Offset returns the keyframe displacement and rotation of s at time t.
// Each cycle eases 0 -> peak -> 0 over Duration seconds after Delay.
func (s Shape) Offset(t float64) (dx, dy, deg float64) {
	if t < s.Delay || s.Duration <= 0 {
		return 0, 0, 0
	}
	p := math.Mod(t-s.Delay, s.Duration) / s.Duration
	var k float64
	if p < 0.5 {
		k = easeInOut(p * 2)
	} else {
		k = 1 - easeInOut((p-0.5)*2)
	}
	return shapeDriftX * k, shapeRiseY * k, s.Rotation * k
}

func easeInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// ShapeField is the page-wide overlay of slowly floating outlines.
type ShapeField struct {
	kind   ShapeKind
	count  int
	width  float64
	height float64
	Frame  uint64
	Shapes []Shape
}

func NewShapeField(kind ShapeKind, count int) *ShapeField {
	if count <= 0 {
		count = DefaultShapeCount
	}
	return &ShapeField{kind: kind, count: count}
}

// Reset scatters the shapes on the first call. Shapes are placed in
// percentages of the container, so later calls only rescale them.
func (f *ShapeField) Reset(w, h int, rng *rand.Rand) {
	f.width, f.height = float64(w), float64(h)
	if len(f.Shapes) == f.count {
		return
	}
	f.Shapes = make([]Shape, 0, f.count)
	for i := 0; i < f.count; i++ {
		s := Shape{
			Size:     rng.Float64()*60 + 20,
			Left:     rng.Float64() * 100,
			Top:      rng.Float64() * 100,
			Duration: rng.Float64()*20 + 10,
			Delay:    rng.Float64() * 5,
			Opacity:  rng.Float64()*0.15 + 0.05,
			Rotation: rng.Float64() * 360,
			Kind:     f.kind,
		}
		if f.kind == Mixed {
			s.Kind = concreteKinds[rng.Intn(len(concreteKinds))]
		}
		f.Shapes = append(f.Shapes, s)
	}
}

func (f *ShapeField) Step(c Canvas) {
	c.Clear()
	t := float64(f.Frame) / shapeFPS
	for _, s := range f.Shapes {
		dx, dy, deg := s.Offset(t)
		x := s.Left/100*f.width + dx
		y := s.Top/100*f.height + dy
		f.draw(c, s, x, y, deg*math.Pi/180)
	}
	f.Frame++
}

// draw renders s inside its size×size box at (x, y), rotated by rad around
// the box center.
func (f *ShapeField) draw(c Canvas, s Shape, x, y, rad float64) {
	half := s.Size / 2
	cx, cy := x+half, y+half
	border := fade(shapeOutline, s.Opacity)

	switch s.Kind {
	case Bubbles:
		c.FillCircle(cx, cy, half, fade(shapeFill, s.Opacity))
		c.StrokeCircle(cx, cy, half-shapeBorderWidth/2, shapeBorderWidth, border)
	case Squares:
		box := rotate([]Point{{x, y}, {x + s.Size, y}, {x + s.Size, y + s.Size}, {x, y + s.Size}}, cx, cy, rad)
		c.FillPolygon(box, fade(shapeFill, s.Opacity))
		c.StrokePolygon(box, shapeBorderWidth, border)
	case Triangles:
		tri := rotate([]Point{
			{x + triangleSize/2, y},
			{x + triangleSize, y + triangleSize},
			{x, y + triangleSize},
		}, cx, cy, rad)
		c.FillPolygon(tri, fade(triangleFill, s.Opacity))
	}
}

func rotate(pts []Point, cx, cy, rad float64) []Point {
	sin, cos := math.Sincos(rad)
	for i, p := range pts {
		dx, dy := p.X-cx, p.Y-cy
		pts[i] = Point{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return pts
}

func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = alpha(float64(c.A) / 255 * opacity)
	return c
}
