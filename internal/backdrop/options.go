// Package backdrop implements the animated section backgrounds: particle
// dots, pulsing circles, an animated grid and flowing waves, plus a
// floating-shapes overlay. Each animator owns its entities and draws onto
// a Surface supplied by the host, one Step per display refresh.
package backdrop

import (
	"image/color"
	"math"
	"strings"
)

// Variant selects the field algorithm of an animator.
type Variant string

const (
	Dots    Variant = "dots"
	Circles Variant = "circles"
	Grid    Variant = "grid"
	Waves   Variant = "waves"
)

// Variants lists the canvas variants in display order.
var Variants = []Variant{Dots, Circles, Grid, Waves}

// Valid reports whether v names a canvas field.
func (v Variant) Valid() bool {
	switch v {
	case Dots, Circles, Grid, Waves:
		return true
	}
	return false
}

// Palette names one of the fixed hues used by every field.
type Palette string

const (
	Teal   Palette = "teal"
	Blue   Palette = "blue"
	Purple Palette = "purple"
	Orange Palette = "orange"
)

// Palettes lists the supported palettes, default first.
var Palettes = []Palette{Teal, Blue, Purple, Orange}

// ParsePalette maps s to a palette. Unknown names map to Teal.
func ParsePalette(s string) Palette {
	switch p := Palette(strings.ToLower(strings.TrimSpace(s))); p {
	case Blue, Purple, Orange:
		return p
	}
	return Teal
}

// RGB returns the palette's base color.
func (p Palette) RGB() (r, g, b uint8) {
	switch p {
	case Blue:
		return 59, 130, 246
	case Purple:
		return 139, 92, 246
	case Orange:
		return 249, 115, 22
	default:
		return 20, 184, 166
	}
}

// Color returns the palette color at the given opacity (0-1).
func (p Palette) Color(opacity float64) color.NRGBA {
	r, g, b := p.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: alpha(opacity)}
}

func alpha(opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(math.Round(opacity * 255))
}

// Density scales the number of entities a field creates.
type Density string

const (
	Low    Density = "low"
	Medium Density = "medium"
	High   Density = "high"
)

// Densities lists the supported densities from sparse to dense.
var Densities = []Density{Low, Medium, High}

// ParseDensity maps s to a density. Unknown names map to Medium.
func ParseDensity(s string) Density {
	switch d := Density(strings.ToLower(strings.TrimSpace(s))); d {
	case Low, High:
		return d
	}
	return Medium
}

// Multiplier returns the entity-count multiplier of d.
func (d Density) Multiplier() float64 {
	switch d {
	case Low:
		return 0.5
	case High:
		return 2.5
	default:
		return 1
	}
}

// Options configures one animator instance.
type Options struct {
	Variant Variant
	Color   Palette
	Density Density

	// ClassName is carried for the host's styling and never read here.
	ClassName string
}

func (o Options) withDefaults() Options {
	o.Color = ParsePalette(string(o.Color))
	o.Density = ParseDensity(string(o.Density))
	return o
}
