// Command backdrop-render renders one animated backdrop off-screen and
// writes its last frame as a PNG.
//
// Usage
//
//	backdrop-render [-variant dots] [-color teal] [-density medium]
//	                [-width 640] [-height 640] [-frames 60] [-seed 0]
//	                [-realtime] [-o backdrop.png]
//
// With -realtime the frames are paced at the scene's fps instead of being
// stepped as fast as possible. Interrupting the command stops rendering.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/achmichael/next-porto/internal/backdrop"
	"github.com/achmichael/next-porto/internal/config"
	"github.com/achmichael/next-porto/internal/snapshot"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("backdrop-render: ")

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var (
		variant  = flag.String("variant", string(backdrop.Dots), "dots, circles, grid or waves")
		color    = flag.String("color", string(backdrop.Teal), "teal, blue, purple or orange")
		density  = flag.String("density", string(backdrop.Medium), "low, medium or high")
		width    = flag.Int("width", config.DefaultImageSize, "surface width in pixels")
		height   = flag.Int("height", config.DefaultImageSize, "surface height in pixels")
		frames   = flag.Int("frames", config.DefaultFrames, "frames to step before capturing")
		seed     = flag.Int64("seed", conf.Seed, "layout seed")
		realtime = flag.Bool("realtime", false, "pace frames at the scene fps")
		out      = flag.String("o", "backdrop.png", "output file")
	)
	flag.Parse()

	req := snapshot.Request{
		Options: backdrop.Options{
			Variant: backdrop.Variant(*variant),
			Color:   backdrop.ParsePalette(*color),
			Density: backdrop.ParseDensity(*density),
		},
		Width:  *width,
		Height: *height,
		Frames: *frames,
		Seed:   *seed,
	}
	if *realtime {
		req.Interval = time.Second / time.Duration(conf.FPS)
	}
	if !req.Options.Variant.Valid() {
		log.Printf("unknown variant %q, rendering the fallback gradient", *variant)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := render(ctx, req, *out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s, %dx%d, %d frames)", *out, req.Options.Variant, req.Width, req.Height, req.Frames)
}

func render(ctx context.Context, req snapshot.Request, path string) error {
	canvas, err := snapshot.Render(ctx, req)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}
