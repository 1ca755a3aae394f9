// Package server exposes the backdrops over HTTP: option listings, the
// configured scene and PNG renders of any variant.
package server

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/achmichael/next-porto/internal/backdrop"
	"github.com/achmichael/next-porto/internal/config"
	"github.com/achmichael/next-porto/internal/snapshot"
)

const renderTimeout = 10 * time.Second

// New returns the router serving conf.
func New(conf *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"variants":  backdrop.Variants,
			"colors":    backdrop.Palettes,
			"densities": backdrop.Densities,
		})
	})

	r.GET("/api/scene", func(c *gin.Context) {
		c.JSON(http.StatusOK, conf)
	})

	r.GET("/backdrop/:variant", func(c *gin.Context) {
		req, err := parseRequest(c, conf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), renderTimeout)
		defer cancel()
		canvas, err := snapshot.Render(ctx, req)
		if err != nil {
			log.Printf("render %s: %v", req.Options.Variant, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}

		var buf bytes.Buffer
		if err := canvas.EncodePNG(&buf); err != nil {
			log.Printf("render %s: %v", req.Options.Variant, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode failed"})
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})

	return r
}

// parseRequest reads the render parameters from the path and query.
// Sizes are clamped to [1, MaxSurfaceSize] and frames to [0, MaxRenderFrames].
func parseRequest(c *gin.Context, conf *config.Config) (snapshot.Request, error) {
	req := snapshot.Request{
		Options: backdrop.Options{
			Variant: backdrop.Variant(c.Param("variant")),
			Color:   backdrop.ParsePalette(c.Query("color")),
			Density: backdrop.ParseDensity(c.Query("density")),
		},
		Seed: conf.Seed,
	}

	var err error
	if req.Width, err = intQuery(c, "width", config.DefaultImageSize); err != nil {
		return req, err
	}
	if req.Height, err = intQuery(c, "height", config.DefaultImageSize); err != nil {
		return req, err
	}
	if req.Frames, err = intQuery(c, "frames", config.DefaultFrames); err != nil {
		return req, err
	}
	if s := c.Query("seed"); s != "" {
		if req.Seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			return req, errors.Errorf("seed %q is not an integer", s)
		}
	}

	req.Width = clamp(req.Width, 1, config.MaxSurfaceSize)
	req.Height = clamp(req.Height, 1, config.MaxSurfaceSize)
	req.Frames = clamp(req.Frames, 0, config.MaxRenderFrames)
	return req, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%s %q is not an integer", key, s)
	}
	return v, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
