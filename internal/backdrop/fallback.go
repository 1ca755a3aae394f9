package backdrop

import (
	"math"
	"math/rand"
)

// GradientField is the static backdrop shown for unrecognized variants: a
// soft radial glow centered at 30% of the width and height.
type GradientField struct {
	palette Palette
	width   float64
	height  float64
}

func NewGradientField(p Palette) *GradientField {
	return &GradientField{palette: p}
}

func (f *GradientField) Reset(w, h int, _ *rand.Rand) {
	f.width, f.height = float64(w), float64(h)
}

// Center returns the glow center and radius.
func (f *GradientField) Center() (cx, cy, r float64) {
	cx, cy = f.width*0.3, f.height*0.3
	farthest := math.Hypot(math.Max(cx, f.width-cx), math.Max(cy, f.height-cy))
	return cx, cy, farthest * 0.7
}

func (f *GradientField) Step(c Canvas) {
	c.Clear()
	cx, cy, r := f.Center()
	if r <= 0 {
		return
	}
	c.FillRadialGradient(cx, cy, r, f.palette.Color(0.2), f.palette.Color(0))
}
