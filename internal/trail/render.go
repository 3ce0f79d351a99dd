package trail

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Screen-space origin the ring is drawn around.
const (
	OriginX = 480
	OriginY = 380
)

// Variant selects which of the two dots sharing a slot is being styled.
type Variant uint8

const (
	Glow Variant = iota
	Core
)

func (v Variant) String() string {
	switch v {
	case Glow:
		return "glow"
	case Core:
		return "core"
	default:
		return "unknown"
	}
}

type style struct {
	hue, sat float64
	l0, l1   float64
	a0, a1   float64
}

var styles = [...]style{
	Glow: {hue: 0.14, sat: 0.84, l0: 0.7, l1: 0.2, a0: 0.05, a1: 0.05},
	Core: {hue: 0.33, sat: 0.40, l0: 0.045, l1: 0.885, a0: 0.6, a1: 0.4},
}

// Dot is the visual state of one trail dot. Positions are in engine units:
// origin at the window centre, +Y up.
type Dot struct {
	Index   int
	Variant Variant
	X, Y    float64
	Scale   float64
	Color   color.NRGBA
	Depth   float64
}

// NewDots returns the fixed dot set: a glow and a core for every slot, in
// slot order.
func NewDots() []Dot {
	dots := make([]Dot, 0, 2*Len)
	for i := 0; i < Len; i++ {
		dots = append(dots,
			Dot{Index: i, Variant: Glow},
			Dot{Index: i, Variant: Core},
		)
	}
	return dots
}

// Unscale maps a cumulative sum to engine coordinates.
func Unscale(v Vec) (x, y float64) {
	return float64(v.X/DeltaDiv + OriginX), float64(-(v.Y / DeltaDiv) - OriginY)
}

// VisualHead is the slot one ahead of the storage head. Ranks are measured
// from it.
func (b *Buffer) VisualHead() int {
	return (b.Head + 1) % Len
}

// Rank is the circular distance of slot i behind the visual head.
func (b *Buffer) Rank(i int) int {
	return ((i-b.VisualHead())%Len + Len) % Len
}

// Render recomputes every dot from b. It reads nothing but b and the dot's
// Index and Variant, so repeated calls on the same buffer are identical.
func Render(b *Buffer, dots []Dot) {
	for i := range dots {
		d := &dots[i]
		rank := b.Rank(d.Index)
		size := (Len - 0.75*float64(rank)) / Len

		d.X, d.Y = Unscale(b.Sums[d.Index])
		d.Scale = 1.5 * size
		d.Depth = float64(2 * (Len - rank))
		d.Color = styles[d.Variant].color(size)
	}
}

func (s style) color(size float64) color.NRGBA {
	c := colorful.Hsl(s.hue, s.sat, s.l0+s.l1*size).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(s.a0 + s.a1*size)}
}

func alpha8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*0xff + 0.5)
	}
}
