// Package snapshot renders backdrops off-screen with gg and encodes the
// result as PNG.
package snapshot

import (
	"context"
	"image"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/achmichael/next-porto/internal/backdrop"
)

// Canvas is a backdrop.Surface backed by a gg context.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	// gg cannot hold an empty image
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.dc = gg.NewContext(w, h)
}

func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(c.dc.EncodePNG(w), "encode png")
}

func (c *Canvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) polygon(pts []backdrop.Point) bool {
	if len(pts) < 3 {
		return false
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	return true
}

func (c *Canvas) FillPolygon(pts []backdrop.Point, clr color.NRGBA) {
	if c.polygon(pts) {
		c.dc.SetColor(clr)
		c.dc.Fill()
	}
}

func (c *Canvas) StrokePolygon(pts []backdrop.Point, width float64, clr color.NRGBA) {
	if c.polygon(pts) {
		c.dc.SetLineWidth(width)
		c.dc.SetColor(clr)
		c.dc.Stroke()
	}
}

func (c *Canvas) FillGradientPolygon(pts []backdrop.Point, g backdrop.LinearGradient) {
	if !c.polygon(pts) {
		return
	}
	grad := gg.NewLinearGradient(0, g.Y0, 0, g.Y1)
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

func (c *Canvas) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA) {
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	grad.AddColorStop(0, inner)
	grad.AddColorStop(1, outer)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

// Request describes one off-screen render.
type Request struct {
	Options  backdrop.Options
	Width    int
	Height   int
	Frames   int
	Seed     int64
	Interval time.Duration // 0 renders as fast as possible
}

// Render mounts an animator for req on a fresh canvas, steps it req.Frames
// times (at least once) and returns the canvas holding the last frame.
func Render(ctx context.Context, req Request) (*Canvas, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, errors.Errorf("invalid size %dx%d", req.Width, req.Height)
	}
	if req.Frames < 0 {
		return nil, errors.Errorf("invalid frame count %d", req.Frames)
	}

	canvas := NewCanvas(req.Width, req.Height)
	a := backdrop.New(req.Options, rand.New(rand.NewSource(req.Seed)))
	a.Mount(canvas, backdrop.Fixed(req.Width, req.Height))

	// a zero-frame request still shows the initial layout
	frames := req.Frames
	if frames == 0 {
		frames = 1
	}

	var ticks <-chan time.Time
	if req.Interval > 0 {
		ticker := time.NewTicker(req.Interval)
		defer ticker.Stop()
		ticks = limit(ctx, ticker.C, frames)
	} else {
		ticks = backdrop.Frames(ctx, frames)
	}
	if err := a.Run(ctx, ticks, nil); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return canvas, nil
}

// limit forwards the first n ticks of src and then closes.
func limit(ctx context.Context, src <-chan time.Time, n int) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			select {
			case t := <-src:
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
