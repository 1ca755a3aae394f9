package backdrop

import "image/color"

// recorder is a Surface that counts drawing calls.
type recorder struct {
	w, h      int
	resizes   int
	clears    int
	circles   []circleCall
	lines     int
	polygons  int
	gradients [][]Point
	radials   int
}

type circleCall struct {
	x, y, r float64
	c       color.NRGBA
}

func (r *recorder) Resize(w, h int) { r.w, r.h = w, h; r.resizes++ }

func (r *recorder) Clear() {
	r.clears++
	r.circles = r.circles[:0]
	r.gradients = r.gradients[:0]
}

func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.circles = append(r.circles, circleCall{x, y, rad, c})
}

func (r *recorder) StrokeCircle(x, y, rad, _ float64, c color.NRGBA) {
	r.circles = append(r.circles, circleCall{x, y, rad, c})
}

func (r *recorder) StrokeLine(_, _, _, _, _ float64, _ color.NRGBA) { r.lines++ }

func (r *recorder) FillPolygon(_ []Point, _ color.NRGBA) { r.polygons++ }
func (r *recorder) StrokePolygon(_ []Point, _ float64, _ color.NRGBA) { r.polygons++ }

func (r *recorder) FillGradientPolygon(pts []Point, _ LinearGradient) {
	r.gradients = append(r.gradients, append([]Point(nil), pts...))
}

func (r *recorder) FillRadialGradient(_, _, _ float64, _, _ color.NRGBA) { r.radials++ }

// draws returns the total number of drawing calls made so far.
func (r *recorder) draws() int {
	return r.clears + len(r.circles) + r.lines + r.polygons + len(r.gradients) + r.radials
}
