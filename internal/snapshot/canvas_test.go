package snapshot

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achmichael/next-porto/internal/backdrop"
)

func TestRenderEachVariant(t *testing.T) {
	for _, v := range append(backdrop.Variants, "unknown") {
		t.Run(string(v), func(t *testing.T) {
			c, err := Render(context.Background(), Request{
				Options: backdrop.Options{Variant: v, Density: backdrop.High},
				Width:   160,
				Height:  120,
				Frames:  5,
				Seed:    1,
			})
			require.NoError(t, err)
			b := c.Image().Bounds()
			assert.Equal(t, 160, b.Dx())
			assert.Equal(t, 120, b.Dy())
			assert.True(t, painted(c), "variant %s drew nothing", v)
		})
	}
}

func painted(c *Canvas) bool {
	img := c.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return true
			}
		}
	}
	return false
}

func TestRenderEncodesPNG(t *testing.T) {
	c, err := Render(context.Background(), Request{
		Options: backdrop.Options{Variant: backdrop.Waves, Color: backdrop.Orange},
		Width:   64,
		Height:  48,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestRenderRejectsBadRequests(t *testing.T) {
	_, err := Render(context.Background(), Request{Width: 0, Height: 10})
	assert.ErrorContains(t, err, "invalid size")

	_, err = Render(context.Background(), Request{Width: 10, Height: 10, Frames: -1})
	assert.ErrorContains(t, err, "invalid frame count")
}

func TestRenderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, Request{
		Options:  backdrop.Options{Variant: backdrop.Grid},
		Width:    32,
		Height:   32,
		Frames:   100,
		Interval: time.Hour,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderWithTicker(t *testing.T) {
	c, err := Render(context.Background(), Request{
		Options:  backdrop.Options{Variant: backdrop.Circles},
		Width:    50,
		Height:   50,
		Frames:   3,
		Interval: time.Millisecond,
	})
	require.NoError(t, err)
	assert.True(t, painted(c))
}
