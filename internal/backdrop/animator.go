package backdrop

import (
	"context"
	"math/rand"
	"time"
)

// Field is one animation algorithm. Reset reseeds the entities for a w×h
// surface and Step draws a frame and advances the simulation.
type Field interface {
	Reset(w, h int, rng *rand.Rand)
	Step(c Canvas)
}

// NewField returns the field for opts.Variant, or the static gradient
// when the variant is not a canvas variant.
func NewField(opts Options) Field {
	opts = opts.withDefaults()
	switch opts.Variant {
	case Dots:
		return NewParticleField(opts.Color, opts.Density)
	case Circles:
		return NewPulseField(opts.Color, opts.Density)
	case Grid:
		return NewGridField(opts.Color)
	case Waves:
		return NewWaveField(opts.Color)
	default:
		return NewGradientField(opts.Color)
	}
}

// State is the scheduling state of an animator.
type State int

const (
	Stopped State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "stopped"
}

// Animator binds one field to a surface and drives it frame by frame.
// An Animator is owned by a single goroutine.
type Animator struct {
	opts  Options
	rng   *rand.Rand
	field Field
	surf  surfaceSync
	state State
	steps uint64
}

// New returns a stopped animator for opts. rng seeds every entity layout;
// a nil rng uses a time-seeded source.
func New(opts Options, rng *rand.Rand) *Animator {
	a := newAnimator(rng)
	a.opts = opts.withDefaults()
	a.field = NewField(a.opts)
	return a
}

// NewWithField returns a stopped animator driving a caller-built field.
func NewWithField(f Field, rng *rand.Rand) *Animator {
	a := newAnimator(rng)
	a.field = f
	return a
}

func newAnimator(rng *rand.Rand) *Animator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Animator{rng: rng}
}

func (a *Animator) Options() Options { return a.opts }
func (a *Animator) Field() Field     { return a.field }
func (a *Animator) State() State     { return a.state }

// Steps returns the number of frames drawn since the last mount.
func (a *Animator) Steps() uint64 { return a.steps }

// Size returns the current surface size.
func (a *Animator) Size() (w, h int) { return a.surf.width, a.surf.height }

// Mount binds the animator to surface, sizes it to parent, seeds the
// field and becomes Active. A nil surface means no drawing context is
// available: nothing is mounted and Mount reports false. When the parent
// is absent the animator is Active but draws nothing until a Resize finds
// the parent.
func (a *Animator) Mount(surface Surface, parent Container) bool {
	if surface == nil {
		return false
	}
	a.Unmount()
	a.surf = surfaceSync{surface: surface, parent: parent}
	a.steps = 0
	if a.surf.sync() {
		a.field.Reset(a.surf.width, a.surf.height, a.rng)
	}
	a.state = Active
	return true
}

// Resize handles a container resize notification. It re-reads the parent
// size and reseeds the field. It is a no-op returning false when stopped
// or when the parent is absent.
func (a *Animator) Resize() bool {
	if a.state != Active || !a.surf.sync() {
		return false
	}
	a.field.Reset(a.surf.width, a.surf.height, a.rng)
	return true
}

// Reseed draws a fresh random layout at the current size.
func (a *Animator) Reseed() {
	if a.state == Active {
		a.field.Reset(a.surf.width, a.surf.height, a.rng)
	}
}

// Step draws one frame. Stopped animators, and animators whose surface
// has never been sized, draw nothing.
func (a *Animator) Step() bool {
	if a.state != Active || !a.surf.sized {
		return false
	}
	a.field.Step(a.surf.surface)
	a.steps++
	return true
}

// Unmount stops the animator. No further frames are drawn until the next
// Mount or Resume; the surface and container stay bound so Resume and
// Switch can reuse them.
func (a *Animator) Unmount() {
	a.state = Stopped
}

// Resume re-enters Active on the surface of the last mount. The surface
// is resized to the parent; the field is reseeded only if the size
// changed while stopped.
func (a *Animator) Resume() bool {
	if a.surf.surface == nil {
		return false
	}
	w, h, sized := a.surf.width, a.surf.height, a.surf.sized
	if a.surf.sync() && (!sized || w != a.surf.width || h != a.surf.height) {
		a.field.Reset(a.surf.width, a.surf.height, a.rng)
	}
	a.state = Active
	return true
}

// Switch stops the running field and remounts with opts on the same
// surface and container.
func (a *Animator) Switch(opts Options) bool {
	surface, parent := a.surf.surface, a.surf.parent
	a.Unmount()
	a.opts = opts.withDefaults()
	a.field = NewField(a.opts)
	return a.Mount(surface, parent)
}

// Run steps the animator once per value received on frames and resizes it
// once per value received on resized, until ctx is done or frames is
// closed. The animator is always stopped when Run returns.
func (a *Animator) Run(ctx context.Context, frames <-chan time.Time, resized <-chan struct{}) error {
	defer a.Unmount()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-resized:
			a.Resize()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			a.Step()
		}
	}
}

// Frames returns a channel that delivers n ticks as fast as they are
// consumed and is then closed. Stopping ctx closes it early.
func Frames(ctx context.Context, n int) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		for i := 0; i < n; i++ {
			select {
			case ch <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
