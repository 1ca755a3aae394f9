package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/achmichael/next-porto/internal/backdrop"
)

const radialSegments = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface is a backdrop.Surface drawing onto an offscreen ebiten image
// that the game composites onto the screen.
type surface struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func newSurface() backdrop.Surface {
	return &surface{}
}

func (s *surface) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
}

func (s *surface) Image() *ebiten.Image { return s.img }

func (s *surface) Clear() { s.img.Clear() }

func (s *surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *surface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func pathOf(pts []backdrop.Point) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
	return &p
}

func (s *surface) FillPolygon(pts []backdrop.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	s.vs, s.is = pathOf(pts).AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paint(func(float32) color.NRGBA { return c }, ebiten.FillRuleNonZero)
}

func (s *surface) StrokePolygon(pts []backdrop.Point, width float64, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	s.vs, s.is = pathOf(pts).AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	s.paint(func(float32) color.NRGBA { return c }, ebiten.FillRuleFillAll)
}

func (s *surface) FillGradientPolygon(pts []backdrop.Point, g backdrop.LinearGradient) {
	if len(pts) < 3 {
		return
	}
	s.vs, s.is = pathOf(pts).AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paint(func(y float32) color.NRGBA { return g.At(float64(y)) }, ebiten.FillRuleNonZero)
}

// FillRadialGradient draws a triangle fan whose center vertex carries the
// inner color and whose rim carries the outer color.
func (s *surface) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA) {
	s.vs, s.is = appendFan(s.vs[:0], s.is[:0], cx, cy, r, inner, outer)
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// appendFan appends a closed fan of radialSegments triangles around
// (cx, cy). Vertex 0 is the center; the rim repeats its first vertex.
func appendFan(vs []ebiten.Vertex, is []uint16, cx, cy, r float64, inner, outer color.NRGBA) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	vs = append(vs, vertex(float32(cx), float32(cy), inner))
	for i := 0; i <= radialSegments; i++ {
		a := 2 * math.Pi * float64(i) / radialSegments
		vs = append(vs, vertex(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)), outer))
		if i > 0 {
			is = append(is, base, base+uint16(i), base+uint16(i+1))
		}
	}
	return vs, is
}

// paint colors every vertex by its y coordinate and draws the triangles.
func (s *surface) paint(colorAt func(y float32) color.NRGBA, rule ebiten.FillRule) {
	tint(s.vs, colorAt)
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

// tint points every vertex at the white source pixel and sets its color
// from colorAt(DstY).
func tint(vs []ebiten.Vertex, colorAt func(y float32) color.NRGBA) {
	for i := range vs {
		vs[i] = vertex(vs[i].DstX, vs[i].DstY, colorAt(vs[i].DstY))
	}
}

func vertex(x, y float32, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}
