package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/achmichael/next-porto/internal/backdrop"
)

// focusColor breathes the palette color between 30% and 80% opacity,
// one full cycle per unit of phase.
func focusColor(p backdrop.Palette, phase float64) color.NRGBA {
	k := (math.Sin(2*math.Pi*phase) + 1) / 2
	return p.Color(0.3 + 0.5*k)
}

// sectionAlpha converts a section opacity into a color scale factor.
func sectionAlpha(opacity float64) float32 {
	switch {
	case math.IsNaN(opacity) || opacity < 0:
		return 0
	case opacity > 1:
		return 1
	}
	return float32(opacity)
}

// formatUptime renders how long a section has been on screen, as M:SS
// below an hour and H:MM:SS above.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, sec := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
