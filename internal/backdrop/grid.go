package backdrop

import (
	"math"
	"math/rand"
)

const (
	GridSpacing = 30

	gridLineWidth   = 0.8
	gridLineOpacity = 0.15
	gridDotOpacity  = 0.4
	gridFrequency   = 0.01
)

// GridDotSize returns the dot radius at an intersection distance units
// from the surface center on the given frame.
func GridDotSize(frame uint64, distance float64) float64 {
	return 1.5 + math.Sin(float64(frame)*gridFrequency+distance*gridFrequency)*1.5
}

// GridField draws a fixed line grid with dots breathing outward from the
// center.
type GridField struct {
	palette Palette
	width   int
	height  int
	Frame   uint64
}

func NewGridField(p Palette) *GridField {
	return &GridField{palette: p}
}

// Reset only records the new size; the phase survives resizes.
func (f *GridField) Reset(w, h int, _ *rand.Rand) {
	f.width, f.height = w, h
}

func (f *GridField) Step(c Canvas) {
	c.Clear()

	w, h := float64(f.width), float64(f.height)
	line := f.palette.Color(gridLineOpacity)
	for x := 0; x <= f.width; x += GridSpacing {
		c.StrokeLine(float64(x), 0, float64(x), h, gridLineWidth, line)
	}
	for y := 0; y <= f.height; y += GridSpacing {
		c.StrokeLine(0, float64(y), w, float64(y), gridLineWidth, line)
	}

	dot := f.palette.Color(gridDotOpacity)
	for x := 0; x <= f.width; x += GridSpacing {
		for y := 0; y <= f.height; y += GridSpacing {
			dist := math.Hypot(float64(x)-w/2, float64(y)-h/2)
			if size := GridDotSize(f.Frame, dist); size > 0 {
				c.FillCircle(float64(x), float64(y), size, dot)
			}
		}
	}

	f.Frame++
}
