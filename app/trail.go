package app

import (
	"fmt"

	"mousetrail/hal"
	"mousetrail/internal/stream"
	"mousetrail/internal/trail"
)

// Mouse body sprite drawn under the ring.
const (
	mouseX     = trail.OriginX
	mouseY     = -trail.OriginY
	mouseScale = 0.2
)

// TrailConfig configures the trail scene.
type TrailConfig struct {
	// KeepHitTest skips the startup passthrough flip.
	KeepHitTest bool
}

// Trail is the mouse trail scene. Each Step drains the motion stream, folds
// every sample into the ring and re-renders all dots.
type Trail struct {
	log    hal.Logger
	in     *stream.Stream
	toggle *Toggle

	buf     trail.Buffer
	dots    []trail.Dot
	sprites []hal.Sprite
	pending []stream.Sample
	closed  bool

	ticks   uint64
	samples uint64
	resets  uint64
}

func NewTrail(h hal.HAL, in *stream.Stream, cfg TrailConfig) *Trail {
	t := &Trail{
		log:     h.Logger(),
		in:      in,
		toggle:  NewToggle(h),
		dots:    trail.NewDots(),
		sprites: make([]hal.Sprite, 0, 2*trail.Len+1),
	}
	if !cfg.KeepHitTest {
		t.toggle.Flip()
	}
	trail.Render(&t.buf, t.dots)
	t.buildSprites()
	return t
}

func (t *Trail) Step() error {
	return guard(t.log, "trail", t.step)
}

func (t *Trail) step() error {
	t.ticks++
	t.toggle.Poll()

	folded := 0
	if t.in != nil && !t.closed {
		var open bool
		t.pending, open = t.in.Drain(t.pending[:0])
		for _, s := range t.pending {
			t.buf.Fold(s.DX, s.DY)
		}
		folded = len(t.pending)
		if !open {
			t.closed = true
			hal.Logf(t.log, "trail: input stream closed after %d samples", t.samples+uint64(folded))
		}
	}
	t.samples += uint64(folded)
	if t.buf.EndTick(folded) {
		t.resets++
	}

	trail.Render(&t.buf, t.dots)
	t.buildSprites()
	return nil
}

func (t *Trail) buildSprites() {
	t.sprites = append(t.sprites[:0], hal.Sprite{
		Texture: hal.TextureMouse,
		X:       mouseX,
		Y:       mouseY,
		ScaleX:  mouseScale,
		ScaleY:  mouseScale,
		Color:   white,
	})
	for _, d := range t.dots {
		tex := hal.TextureDotGlow
		if d.Variant == trail.Core {
			tex = hal.TextureDotCore
		}
		t.sprites = append(t.sprites, hal.Sprite{
			Texture: tex,
			X:       d.X,
			Y:       d.Y,
			ScaleX:  d.Scale,
			ScaleY:  d.Scale,
			Color:   d.Color,
			Depth:   d.Depth,
		})
	}
}

func (t *Trail) Sprites() []hal.Sprite { return t.sprites }

// Buffer exposes the ring for inspection.
func (t *Trail) Buffer() *trail.Buffer { return &t.buf }

func (t *Trail) Status() string {
	s := fmt.Sprintf("samples %d  head %d  idle %d  resets %d", t.samples, t.buf.Head, t.buf.Idle, t.resets)
	if t.closed {
		s += "  input closed"
	}
	return s
}
