package trail

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldFirstSampleWraps(t *testing.T) {
	var b Buffer

	b.Fold(40, 0)
	assert.Equal(t, Len-1, b.Head)
	assert.Equal(t, Vec{40, 0}, b.Sums[Len-1])

	b.Fold(10, 0)
	assert.Equal(t, Len-2, b.Head)
	assert.Equal(t, Vec{50, 0}, b.Sums[Len-2])
}

func TestFoldClipFlipsSign(t *testing.T) {
	var b Buffer
	b.Head = 10
	b.Sums[10] = Vec{679, 0}

	b.Fold(50, 0)
	assert.Equal(t, 9, b.Head)
	assert.Equal(t, Vec{-678, 0}, b.Sums[9])
}

func TestFoldAxesClipIndependently(t *testing.T) {
	var b Buffer
	b.Head = 5
	b.Sums[5] = Vec{100, 300}

	// y: (300+40)/4 = 85 is outside (-80, 80); x stays well inside.
	b.Fold(8, 40)
	assert.Equal(t, Vec{108, -299}, b.Sums[4])
}

func TestFoldBoundaryIsExclusive(t *testing.T) {
	tests := []struct {
		name string
		sum  int
		d    int
		want int
	}{
		{"just inside", 676, 3, 679},
		{"on bound", 676, 4, -675},
		{"negative just inside", -676, -3, -679},
		{"negative on bound", -676, -4, 677},
		{"truncates toward zero", -2, -1, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			b.Head = 50
			b.Sums[50] = Vec{tt.sum, 0}
			b.Fold(tt.d, 0)
			assert.Equal(t, tt.want, b.Sums[49].X)
		})
	}
}

func TestFoldWrapBypassesClip(t *testing.T) {
	var b Buffer
	b.Sums[0] = Vec{679, 319}

	b.Fold(500, 500)
	assert.Equal(t, Len-1, b.Head)
	assert.Equal(t, Vec{1179, 819}, b.Sums[Len-1])
}

func TestFoldResetsIdle(t *testing.T) {
	var b Buffer
	for i := 0; i < 10; i++ {
		b.EndTick(0)
	}
	require.Equal(t, 10, b.Idle)

	b.Fold(1, 1)
	assert.Zero(t, b.Idle)
	assert.False(t, b.EndTick(1))
	assert.Zero(t, b.Idle)
}

func TestIdleResetAfter51Ticks(t *testing.T) {
	var b Buffer
	for i := 0; i < 30; i++ {
		b.Fold(7, -3)
	}
	b.EndTick(30)
	require.NotEqual(t, Vec{}, b.Newest())

	for i := 0; i < IdleLimit; i++ {
		require.Falsef(t, b.EndTick(0), "EndTick() reset after %d idle ticks", i+1)
	}
	assert.NotEqual(t, 0, b.Head)

	assert.True(t, b.EndTick(0))
	assert.Equal(t, Buffer{}, b)
}

func TestEnvelopeHoldsBeforeWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var b Buffer
	b.Fold(0, 0)

	for i := 0; i < Len-2; i++ {
		b.Fold(rng.Intn(121)-60, rng.Intn(121)-60)
		s := b.Newest()
		require.GreaterOrEqual(t, s.X, -DeltaDiv*BoundX+1)
		require.LessOrEqual(t, s.X, DeltaDiv*BoundX)
		require.GreaterOrEqual(t, s.Y, -DeltaDiv*BoundY+1)
		require.LessOrEqual(t, s.Y, DeltaDiv*BoundY)
	}
	require.Equal(t, 1, b.Head)
}

func TestHeadWalksBackward(t *testing.T) {
	var b Buffer
	for i := 0; i < 3*Len; i++ {
		want := (b.Head + Len - 1) % Len
		b.Fold(1, 0)
		require.Equal(t, want, b.Head)
	}
	assert.Equal(t, 0, b.Head)
}
