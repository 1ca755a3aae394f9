package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	FrameRingSize = 240

	// Focus indicator
	FocusBorder     = 3
	ColorShiftSpeed = 0.01

	// Renderer / server limits
	MaxSurfaceSize   = 2048
	MaxRenderFrames  = 600
	DefaultFrames    = 60
	DefaultImageSize = 640
)

// Environment variables read by Load.
const (
	EnvScene = "BACKDROP_SCENE"
	EnvSeed  = "BACKDROP_SEED"
	EnvFPS   = "BACKDROP_FPS"
	EnvPort  = "PORT"
)

// Section is one page section with its own animated backdrop.
type Section struct {
	Name    string  `toml:"name" json:"name"`
	Variant string  `toml:"variant" json:"variant"`
	Color   string  `toml:"color" json:"color"`
	Density string  `toml:"density" json:"density"`
	Class   string  `toml:"class" json:"class"`
	Opacity float64 `toml:"opacity" json:"opacity"` // compositing alpha; omitted means opaque
}

// Shapes configures the page-wide floating shapes overlay.
type Shapes struct {
	Variant string `toml:"variant" json:"variant"`
	Count   int    `toml:"count" json:"count"`
}

// Config is a scene: the sections of the page and the shared overlay.
type Config struct {
	Seed     int64     `toml:"seed" json:"seed"` // 0 picks a time-based seed
	FPS      int       `toml:"fps" json:"fps"`
	Port     string    `toml:"port" json:"-"`
	Shapes   Shapes    `toml:"shapes" json:"shapes"`
	Sections []Section `toml:"section" json:"sections"`
}

// Default returns the scene of the portfolio page.
func Default() *Config {
	return &Config{
		FPS:    60,
		Port:   "8080",
		Shapes: Shapes{Variant: "mixed", Count: 8},
		Sections: []Section{
			{Name: "home", Variant: "dots", Color: "teal", Density: "high", Class: "opacity-80 z-0", Opacity: 0.8},
			{Name: "about", Variant: "circles", Color: "teal", Density: "medium", Class: "opacity-50", Opacity: 0.5},
			{Name: "experience", Variant: "grid", Color: "teal", Density: "medium", Class: "opacity-40 z-0", Opacity: 0.4},
			{Name: "projects", Variant: "waves", Color: "teal", Density: "medium", Class: "opacity-30 z-0", Opacity: 0.3},
			{Name: "footer", Variant: "dots", Color: "teal", Density: "medium", Class: "opacity-30 z-0", Opacity: 0.3},
		},
	}
}

// Parse decodes the TOML scene at path over the defaults. Sections in the
// file replace the default sections entirely.
func Parse(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	conf.Sections = nil
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, errors.Wrapf(err, "decode scene %s", path)
	}
	if len(conf.Sections) == 0 {
		conf.Sections = Default().Sections
	}
	for i := range conf.Sections {
		if conf.Sections[i].Opacity == 0 {
			conf.Sections[i].Opacity = 1
		}
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return conf, nil
}

// Load reads an optional .env file, then the scene named by the
// environment, then applies environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "load .env")
	}
	conf, err := Parse(os.Getenv(EnvScene))
	if err != nil {
		return nil, err
	}
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	return conf, conf.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvFPS)
		}
		c.FPS = fps
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.Port = v
	}
	return nil
}

// Validate checks the scene for values no animator can use. Unknown
// variants are allowed: they render the fallback gradient.
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return errors.Errorf("fps %d out of range (1-240)", c.FPS)
	}
	if c.Shapes.Count < 0 {
		return errors.Errorf("shapes count %d is negative", c.Shapes.Count)
	}
	if len(c.Sections) == 0 {
		return errors.New("scene has no sections")
	}
	for i, s := range c.Sections {
		if s.Name == "" {
			return errors.Errorf("section %d has no name", i)
		}
		if s.Opacity < 0 || s.Opacity > 1 {
			return errors.Errorf("section %q opacity %v out of range (0-1)", s.Name, s.Opacity)
		}
	}
	return nil
}
