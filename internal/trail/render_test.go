package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDotsPairsEverySlot(t *testing.T) {
	dots := NewDots()
	require.Len(t, dots, 2*Len)
	for i := 0; i < Len; i++ {
		assert.Equal(t, Dot{Index: i, Variant: Glow}, dots[2*i])
		assert.Equal(t, Dot{Index: i, Variant: Core}, dots[2*i+1])
	}
}

func TestUnscale(t *testing.T) {
	tests := []struct {
		in   Vec
		x, y float64
	}{
		{Vec{0, 0}, 480, -380},
		{Vec{40, 0}, 490, -380},
		{Vec{-7, 7}, 479, -381},
		{Vec{-8, -8}, 478, -378},
	}
	for _, tt := range tests {
		x, y := Unscale(tt.in)
		assert.Equalf(t, tt.x, x, "Unscale(%v) x", tt.in)
		assert.Equalf(t, tt.y, y, "Unscale(%v) y", tt.in)
	}
}

func TestRankFromVisualHead(t *testing.T) {
	var b Buffer
	b.Head = Len - 1
	assert.Equal(t, 0, b.VisualHead())
	assert.Equal(t, 0, b.Rank(0))
	assert.Equal(t, Len-1, b.Rank(Len-1))

	b.Head = 10
	assert.Equal(t, 11, b.VisualHead())
	assert.Equal(t, Len-1, b.Rank(10))
	assert.Equal(t, 1, b.Rank(12))
}

func TestRenderScaleAndDepth(t *testing.T) {
	var b Buffer
	b.Fold(40, 0)
	b.Fold(10, 0)

	dots := NewDots()
	Render(&b, dots)

	// Visual head is slot 119; the newest sum sits in 118, one full lap behind.
	for _, d := range dots {
		rank := b.Rank(d.Index)
		want := (Len - 0.75*float64(rank)) / Len
		assert.InDelta(t, 1.5*want, d.Scale, 1e-12)
		assert.Equal(t, float64(2*(Len-rank)), d.Depth)
	}

	head := dots[2*(Len-1)+1]
	assert.Equal(t, Core, head.Variant)
	assert.Equal(t, 1.5, head.Scale)
	assert.Equal(t, float64(2*Len), head.Depth)
	assert.Equal(t, 490.0, head.X)
	assert.Equal(t, -380.0, head.Y)

	newest := dots[2*(Len-2)+1]
	assert.Equal(t, 492.0, newest.X)
	assert.Equal(t, float64(2), newest.Depth)
}

func TestRenderColors(t *testing.T) {
	var b Buffer
	b.Head = Len - 1
	dots := NewDots()
	Render(&b, dots)

	glow, core := dots[0], dots[1]
	// rank 0: core alpha 1.0, glow alpha 0.1.
	assert.Equal(t, uint8(0xff), core.Color.A)
	assert.Equal(t, uint8(26), glow.Color.A)

	tail := dots[2*(Len-1)+1]
	assert.Less(t, tail.Color.A, core.Color.A)
	assert.Less(t, int(tail.Color.R)+int(tail.Color.G)+int(tail.Color.B),
		int(core.Color.R)+int(core.Color.G)+int(core.Color.B))
}

func TestAlpha8(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.1, 26},
		{0.5, 128},
		{1, 0xff},
		{1.2, 0xff},
	} {
		assert.Equal(t, tc.want, alpha8(tc.in), "alpha8(%v)", tc.in)
	}
}

func TestRenderDeterministic(t *testing.T) {
	var b Buffer
	for i := 0; i < 200; i++ {
		b.Fold(i%13-6, i%7-3)
	}

	first := NewDots()
	Render(&b, first)
	second := append([]Dot(nil), first...)
	Render(&b, second)
	Render(&b, second)

	assert.Equal(t, first, second)
}
