package backdrop

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	circlesArea  = 50000.0
	circlesExtra = 5

	PulseMinRadius = 10.0
	PulseMaxRadius = 50.0
)

// Pulse is one breathing circle of a PulseField.
type Pulse struct {
	X, Y      float64
	Radius    float64
	Opacity   float64
	Color     color.NRGBA
	Expanding bool
	Speed     float64
}

// advance grows or shrinks the radius by Speed and turns around at the
// bounds, clamping so the radius never leaves [PulseMinRadius, PulseMaxRadius].
func (p *Pulse) advance() {
	if p.Expanding {
		p.Radius += p.Speed
		if p.Radius >= PulseMaxRadius {
			p.Radius = PulseMaxRadius
			p.Expanding = false
		}
		return
	}
	p.Radius -= p.Speed
	if p.Radius <= PulseMinRadius {
		p.Radius = PulseMinRadius
		p.Expanding = true
	}
}

// PulseField scatters translucent circles that slowly grow and shrink.
type PulseField struct {
	palette Palette
	density Density
	Pulses  []Pulse
}

func NewPulseField(p Palette, d Density) *PulseField {
	return &PulseField{palette: p, density: d}
}

// PulseCount returns the number of circles for a w×h surface.
func PulseCount(w, h int, d Density) int {
	return int(math.Floor(float64(w)*float64(h)/(circlesArea/d.Multiplier()))) + circlesExtra
}

func (f *PulseField) Reset(w, h int, rng *rand.Rand) {
	n := PulseCount(w, h, f.density)
	f.Pulses = make([]Pulse, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		radius := rng.Float64()*20 + 10
		opacity := rng.Float64()*0.15 + 0.1
		f.Pulses = append(f.Pulses, Pulse{
			X:         x,
			Y:         y,
			Radius:    radius,
			Opacity:   opacity,
			Color:     f.palette.Color(opacity),
			Expanding: rng.Float64() > 0.5,
			Speed:     rng.Float64()*0.3 + 0.1,
		})
	}
}

func (f *PulseField) Step(c Canvas) {
	c.Clear()
	for i := range f.Pulses {
		p := &f.Pulses[i]
		c.FillCircle(p.X, p.Y, p.Radius, p.Color)
		p.advance()
	}
}
