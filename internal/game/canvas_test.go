package game

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achmichael/next-porto/internal/backdrop"
)

func TestAppendFanIndices(t *testing.T) {
	inner := color.NRGBA{R: 255, A: 255}
	outer := color.NRGBA{B: 255}

	// a vertex already in the buffer shifts every index
	vs := []ebiten.Vertex{vertex(0, 0, inner)}
	vs, is := appendFan(vs, nil, 50, 40, 10, inner, outer)

	require.Len(t, vs, 1+radialSegments+2)
	require.Len(t, is, 3*radialSegments)
	for i := 0; i < len(is); i += 3 {
		assert.Equal(t, uint16(1), is[i], "triangle %d must start at the center", i/3)
		assert.Equal(t, is[i+1]+1, is[i+2])
	}
	for _, idx := range is {
		assert.Less(t, int(idx), len(vs))
	}

	center := vs[1]
	assert.Equal(t, float32(50), center.DstX)
	assert.Equal(t, float32(40), center.DstY)
	assert.Equal(t, float32(1), center.ColorR)
	assert.Equal(t, float32(1), center.ColorA)

	for _, v := range vs[2:] {
		d := math.Hypot(float64(v.DstX-50), float64(v.DstY-40))
		assert.InDelta(t, 10, d, 1e-3)
		assert.Equal(t, float32(1), v.ColorB)
		assert.Zero(t, v.ColorA)
		assert.Equal(t, float32(1), v.SrcX)
	}
	first, last := vs[2], vs[len(vs)-1]
	assert.InDelta(t, first.DstX, last.DstX, 1e-3)
	assert.InDelta(t, first.DstY, last.DstY, 1e-3)
}

func TestTintFollowsGradient(t *testing.T) {
	grad := backdrop.LinearGradient{
		Y0:   0,
		Y1:   100,
		From: color.NRGBA{R: 20, G: 184, B: 166, A: 255},
		To:   color.NRGBA{R: 20, G: 184, B: 166, A: 0},
	}
	vs := []ebiten.Vertex{
		{DstX: 3, DstY: 0},
		{DstX: 4, DstY: 50},
		{DstX: 5, DstY: 100},
		{DstX: 6, DstY: 250},
	}
	tint(vs, func(y float32) color.NRGBA { return grad.At(float64(y)) })

	assert.Equal(t, float32(1), vs[0].ColorA)
	assert.InDelta(t, 128.0/255, vs[1].ColorA, 1e-6)
	assert.Zero(t, vs[2].ColorA)
	assert.Zero(t, vs[3].ColorA)
	for i, v := range vs {
		assert.Equal(t, float32(3+i), v.DstX)
		assert.InDelta(t, 184.0/255, v.ColorG, 1e-6)
		assert.Equal(t, float32(1), v.SrcX)
		assert.Equal(t, float32(1), v.SrcY)
	}
}
