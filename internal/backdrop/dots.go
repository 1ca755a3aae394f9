package backdrop

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	dotsArea        = 10000.0
	dotsLinkDist    = 120.0
	dotsLinkOpacity = 0.15
	dotsLinkWidth   = 0.8
)

// Particle is one dot of a ParticleField.
type Particle struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
	VX, VY float64
}

// ParticleField drifts dots across the surface and links nearby pairs.
type ParticleField struct {
	palette   Palette
	density   Density
	width     float64
	height    float64
	Particles []Particle
}

func NewParticleField(p Palette, d Density) *ParticleField {
	return &ParticleField{palette: p, density: d}
}

// ParticleCount returns the number of dots for a w×h surface.
func ParticleCount(w, h int, d Density) int {
	return int(math.Floor(float64(w) * float64(h) / (dotsArea / d.Multiplier())))
}

func (f *ParticleField) Reset(w, h int, rng *rand.Rand) {
	f.width, f.height = float64(w), float64(h)
	n := ParticleCount(w, h, f.density)
	f.Particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		f.Particles = append(f.Particles, Particle{
			X:      rng.Float64() * f.width,
			Y:      rng.Float64() * f.height,
			Radius: rng.Float64()*2.5 + 1.5,
			Color:  f.palette.Color(rng.Float64()*0.5 + 0.3),
			VX:     rng.Float64()*0.5 - 0.25,
			VY:     rng.Float64()*0.5 - 0.25,
		})
	}
}

func (f *ParticleField) Step(c Canvas) {
	c.Clear()
	for i := range f.Particles {
		p := &f.Particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, p.Color)

		for j := range f.Particles {
			if i == j {
				continue
			}
			q := &f.Particles[j]
			d := math.Hypot(p.X-q.X, p.Y-q.Y)
			if d < dotsLinkDist {
				c.StrokeLine(p.X, p.Y, q.X, q.Y, dotsLinkWidth, f.palette.Color(dotsLinkOpacity*(1-d/dotsLinkDist)))
			}
		}

		p.X, p.VX = reflect(p.X+p.VX, p.VX, f.width)
		p.Y, p.VY = reflect(p.Y+p.VY, p.VY, f.height)
	}
}

// reflect mirrors pos back into [0, limit] and flips v when it left.
func reflect(pos, v, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		pos, v = -pos, -v
	case pos > limit:
		pos, v = 2*limit-pos, -v
	}
	return math.Max(0, math.Min(pos, limit)), v
}
