package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/achmichael/next-porto/internal/backdrop"
	"github.com/achmichael/next-porto/internal/config"
)

// section is one page section: its scene entry and the animator that
// paints its backdrop.
type section struct {
	conf    config.Section
	anim    *backdrop.Animator
	surface backdrop.Surface
	mounted time.Time
}

func (s *section) options() backdrop.Options {
	return backdrop.Options{
		Variant:   backdrop.Variant(s.conf.Variant),
		Color:     backdrop.ParsePalette(s.conf.Color),
		Density:   backdrop.ParseDensity(s.conf.Density),
		ClassName: s.conf.Class,
	}
}

// Game shows one page section at a time with the floating shapes overlay
// on top. Only the focused section's animator is active.
type Game struct {
	conf *config.Config
	rng  *rand.Rand

	sections []*section
	focus    int
	overlay  *backdrop.Animator
	shapes   backdrop.Surface

	width, height int
	resized       bool

	frames     *frameTap
	colorPhase float64
	now        func() time.Time
	newSurface func() backdrop.Surface

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New(conf *config.Config) *Game {
	g := &Game{
		frames:     newFrameTap(config.FrameRingSize),
		now:        time.Now,
		newSurface: newSurface,
		prevKey:    map[ebiten.Key]bool{},
	}
	g.applyScene(conf)
	return g
}

// applyScene replaces every section and the overlay with those of conf.
func (g *Game) applyScene(conf *config.Config) {
	for _, s := range g.sections {
		s.anim.Unmount()
	}
	if g.overlay != nil {
		g.overlay.Unmount()
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.conf = conf
	g.rng = rand.New(rand.NewSource(seed))
	g.sections = g.sections[:0]
	for _, sc := range conf.Sections {
		s := &section{conf: sc}
		s.anim = backdrop.New(s.options(), g.rng)
		g.sections = append(g.sections, s)
	}
	shapes := backdrop.NewShapeField(backdrop.ParseShapeKind(conf.Shapes.Variant), conf.Shapes.Count)
	g.overlay = backdrop.NewWithField(shapes, g.rng)
	g.focus = -1
	g.frames.reset()

	if g.width > 0 && g.height > 0 {
		g.mountOverlay()
		g.focusSection(0)
	}
}

// Size reports the window size to the animators.
func (g *Game) Size() (int, int, bool) {
	return g.width, g.height, g.width > 0 && g.height > 0
}

func (g *Game) mountOverlay() {
	if g.conf.Shapes.Count == 0 {
		return
	}
	if g.shapes == nil {
		g.shapes = g.newSurface()
	}
	g.overlay.Mount(g.shapes, g)
}

// focusSection stops the focused section and mounts section i. The
// overlay resumes with it, so pausing always acts on both.
func (g *Game) focusSection(i int) {
	if len(g.sections) == 0 {
		return
	}
	i = (i%len(g.sections) + len(g.sections)) % len(g.sections)
	if g.focus >= 0 && g.focus < len(g.sections) {
		g.sections[g.focus].anim.Unmount()
	}
	g.focus = i
	s := g.sections[i]
	if s.surface == nil {
		s.surface = g.newSurface()
	}
	s.anim.Mount(s.surface, g)
	if g.overlay.State() != backdrop.Active {
		g.overlay.Resume()
	}
	s.mounted = g.now()
	g.frames.reset()
}

func (g *Game) current() *section {
	if g.focus < 0 || g.focus >= len(g.sections) {
		return nil
	}
	return g.sections[g.focus]
}

func (g *Game) togglePause() {
	s := g.current()
	if s == nil {
		return
	}
	if s.anim.State() == backdrop.Active {
		s.anim.Unmount()
		g.overlay.Unmount()
		return
	}
	s.anim.Resume()
	g.overlay.Resume()
}

func (g *Game) switchSection(mut func(*config.Section)) {
	s := g.current()
	if s == nil {
		return
	}
	mut(&s.conf)
	if s.anim.Switch(s.options()) {
		s.mounted = g.now()
	}
	g.frames.reset()
}

func (g *Game) setVariant(v backdrop.Variant) {
	g.switchSection(func(c *config.Section) { c.Variant = string(v) })
}

func (g *Game) cycleColor() {
	g.switchSection(func(c *config.Section) {
		c.Color = string(next(backdrop.Palettes, backdrop.ParsePalette(c.Color)))
	})
}

func (g *Game) cycleDensity() {
	g.switchSection(func(c *config.Section) {
		c.Density = string(next(backdrop.Densities, backdrop.ParseDensity(c.Density)))
	})
}

func next[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// tick advances the focused section and the overlay by one frame.
func (g *Game) tick() {
	if g.resized {
		g.resized = false
		if s := g.current(); s != nil {
			s.anim.Resize()
		}
		g.overlay.Resize()
	}

	start := g.now()
	stepped := false
	if s := g.current(); s != nil {
		stepped = s.anim.Step()
	}
	g.overlay.Step()
	if stepped {
		g.frames.record(g.now().Sub(start))
	}
	g.colorPhase += config.ColorShiftSpeed
}

func (g *Game) openScene() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	conf, err := config.Parse(filename)
	if err != nil {
		return err
	}
	log.Printf("loaded scene %s (%d sections)", filename, len(conf.Sections))
	g.applyScene(conf)
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.focusSection(g.focus - 1)
		} else {
			g.focusSection(g.focus + 1)
		}
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if justPressed(k) {
			g.setVariant(backdrop.Variants[i])
		}
	}
	if justPressed(ebiten.KeyC) {
		g.cycleColor()
	}
	if justPressed(ebiten.KeyD) {
		g.cycleDensity()
	}
	if justPressed(ebiten.KeyR) {
		if s := g.current(); s != nil {
			s.anim.Reseed()
		}
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openScene(); err != nil {
			g.lastErr = err
		}
	}

	g.tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if s := g.current(); s != nil {
		if img := imageOf(s.surface); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.ColorScale.ScaleAlpha(sectionAlpha(s.conf.Opacity))
			screen.DrawImage(img, op)
		}
	}
	if img := imageOf(g.shapes); img != nil && g.overlay.State() == backdrop.Active {
		screen.DrawImage(img, nil)
	}

	g.drawFocus(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	ebitenutil.DebugPrintAt(screen, "Tab: section  1-4: variant  C: color  D: density  R: reseed  Space: pause  O: open scene  Esc/Q: quit", 12, g.height-20)
}

func imageOf(s backdrop.Surface) *ebiten.Image {
	if es, ok := s.(*surface); ok {
		return es.Image()
	}
	return nil
}

// drawBackground paints the page's dark vertical gradient in 4px bands.
func (g *Game) drawBackground(screen *ebiten.Image) {
	top := color.NRGBA{R: 3, G: 7, B: 18, A: 255}
	bottom := color.NRGBA{R: 17, G: 24, B: 39, A: 255}
	grad := backdrop.LinearGradient{Y0: 0, Y1: float64(g.height), From: top, To: bottom}
	for y := 0; y < g.height; y += 4 {
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), 4, grad.At(float64(y)), false)
	}
}

// drawFocus outlines the window in the focused section's palette.
func (g *Game) drawFocus(screen *ebiten.Image) {
	s := g.current()
	if s == nil {
		return
	}
	c := focusColor(s.anim.Options().Color, g.colorPhase)
	vector.StrokeRect(screen, 1, 1, float32(g.width-2), float32(g.height-2), config.FocusBorder, c, false)
}

func (g *Game) status() string {
	s := g.current()
	if s == nil {
		return "no sections"
	}
	w, h := s.anim.Size()
	parts := []string{
		fmt.Sprintf("[%d/%d] %s", g.focus+1, len(g.sections), s.conf.Name),
		string(s.anim.Options().Variant),
		string(s.anim.Options().Color),
		string(s.anim.Options().Density),
		s.anim.State().String(),
		fmt.Sprintf("%dx%d", w, h),
		formatUptime(g.now().Sub(s.mounted)),
		fmt.Sprintf("step %.2fms", float64(g.frames.average().Microseconds())/1000),
	}
	status := strings.Join(parts, " | ")
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

// Layout follows the window size; a change is delivered to the animators
// as a resize notification on the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		first := g.width == 0 || g.height == 0
		g.width, g.height = outsideWidth, outsideHeight
		if first && g.focus < 0 {
			g.mountOverlay()
			g.focusSection(0)
		} else {
			g.resized = true
		}
	}
	return outsideWidth, outsideHeight
}
